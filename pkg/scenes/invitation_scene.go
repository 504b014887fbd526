package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/flow"
	"github.com/decker502/ownrisk/pkg/ui"
)

// InvitationScene 邀请页：YES 进入庆祝时间线，NO 每次点击都躲到新位置
type InvitationScene struct {
	env *Env

	yesButton *ui.Button
	noButton  *ui.Button
	layout    card
}

// NewInvitationScene creates the invitation screen.
func NewInvitationScene(env *Env) *InvitationScene {
	s := &InvitationScene{env: env}
	k := env.scale()
	s.yesButton = ui.NewButton(config.YesLabel, buttonW*k, buttonH*k, primaryFill, white, s.accept)
	s.noButton = ui.NewButton(config.NoLabel, buttonW*k, buttonH*k, neutralFill, white, s.decline)
	return s
}

func (s *InvitationScene) accept() {
	s.env.Controller.Accept()
}

func (s *InvitationScene) decline() {
	w, h := s.env.size()
	s.env.Controller.Decline(flow.Size{W: w, H: h}, flow.Size{W: s.noButton.W, H: s.noButton.H})
}

// Primary 实现 PrimaryActor：Enter 等同 YES
func (s *InvitationScene) Primary() {
	s.yesButton.Click()
}

// NoButton returns the escaping button, for layout inspection.
func (s *InvitationScene) NoButton() *ui.Button { return s.noButton }

// YesButton returns the accept button.
func (s *InvitationScene) YesButton() *ui.Button { return s.yesButton }

func (s *InvitationScene) Update(deltaTime float64) {
	s.relayout()

	in := s.env.input()
	if s.yesButton.Update(in) {
		return
	}
	if s.noButton.Update(in) {
		// 点击后按钮已经移走，立即刷新位置
		s.relayout()
	}
}

func (s *InvitationScene) relayout() {
	c := s.env.Controller
	w, h := s.env.size()
	k := s.env.scale()
	s.layout = centeredCard(w, h, 600*k, 420*k)

	for _, b := range []*ui.Button{s.yesButton, s.noButton} {
		b.Visible = c.ButtonsVisible()
		b.Enabled = c.ButtonsEnabled()
	}

	placeButtons(s.layout.centerX(), s.layout.y+s.layout.h-buttonH*k-padding, 24*k, s.yesButton, s.noButton)
	if p, ok := c.NoPosition(); ok {
		s.noButton.X, s.noButton.Y = p.X, p.Y
	}
}

func (s *InvitationScene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	c := s.env.Controller
	f := s.env.Fonts
	k := s.env.scale()
	l := s.layout
	cx := l.centerX()
	l.draw(screen, cardFill)

	y := l.y + padding
	tw := ui.DrawCentered(screen, config.InvitationTitle, f.Title, cx, y, textDark)
	heartY := y + ui.LineHeight(f.Title)/2
	ui.DrawHeart(screen, cx-tw/2-28*k, heartY, 28*k, ui.HeartColor)
	ui.DrawHeart(screen, cx+tw/2+28*k, heartY, 28*k, ui.HeartColor)
	y += ui.LineHeight(f.Title) + 8*k

	y = ui.DrawParagraph(screen, config.InvitationQuestion, f.Body, cx, y, l.w-2*padding, textDark)

	if msg, ok := c.Message(); ok {
		y += 8 * k
		mw := ui.DrawCentered(screen, msg, f.Body, cx+14*k, y, textError)
		ui.DrawEmoji(screen, c.Emoji(), cx-mw/2-8*k, y+ui.LineHeight(f.Body)/2, 22*k, themeTint)
		y += ui.LineHeight(f.Body)
	}

	if c.AgreementShown() {
		y += 8 * k
		for _, line := range config.AgreementLines {
			ui.DrawCentered(screen, line, f.Small, cx, y, textMuted)
			y += ui.LineHeight(f.Small)
		}
	}

	s.yesButton.Draw(screen, f.Button)
	s.noButton.Draw(screen, f.Button)

	drawFooter(screen, s.env)
}
