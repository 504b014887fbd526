package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/share"
	"github.com/decker502/ownrisk/pkg/ui"
)

// WarningScene 分享链接进入时的警告页
//
// 显示分享链接和复制按钮；Continue 进入 404 页。
type WarningScene struct {
	env *Env

	copyButton     *ui.Button
	continueButton *ui.Button
	layout         card
}

// NewWarningScene creates the warning gate.
func NewWarningScene(env *Env) *WarningScene {
	s := &WarningScene{env: env}
	k := env.scale()
	s.copyButton = ui.NewButton(config.CopyLabel, 110*k, 40*k, primaryFill, white, s.Copy)
	s.continueButton = ui.NewButton(config.ContinueLabel, buttonW*k, buttonH*k, primaryFill, white, env.Controller.Continue)
	return s
}

// Copy 复制分享链接（按钮和 C 键共用）
func (s *WarningScene) Copy() {
	s.env.Share.Copy()
}

// Primary 实现 PrimaryActor：Enter 等同 Continue
func (s *WarningScene) Primary() {
	s.continueButton.Click()
}

func (s *WarningScene) Update(deltaTime float64) {
	s.relayout()

	switch s.env.Share.Status() {
	case share.StatusSuccess:
		s.copyButton.Label = config.CopiedLabel
	default:
		s.copyButton.Label = config.CopyLabel
	}

	in := s.env.input()
	if s.copyButton.Update(in) {
		return
	}
	s.continueButton.Update(in)
}

func (s *WarningScene) relayout() {
	w, h := s.env.size()
	k := s.env.scale()
	s.layout = centeredCard(w, h, 600*k, 380*k)
	cx := s.layout.centerX()
	s.copyButton.X = cx - s.copyButton.W/2
	s.copyButton.Y = s.layout.y + 210*k
	placeButtons(cx, s.layout.y+s.layout.h-buttonH*k-padding, 0, s.continueButton)
}

func (s *WarningScene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	f := s.env.Fonts
	c := s.layout
	cx := c.centerX()
	k := s.env.scale()
	c.draw(screen, cardFill)

	y := c.y + padding
	y = ui.DrawParagraph(screen, config.WarningTitle, f.Title, cx, y, c.w-2*padding, textDark)
	y = ui.DrawParagraph(screen, config.WarningTagline, f.Body, cx, y+8*k, c.w-2*padding, textMuted)

	y += 12 * k
	ui.DrawCentered(screen, config.ShareLabel, f.Small, cx, y, textMuted)
	ui.DrawCentered(screen, s.env.Share.ShareURL(), f.Body, cx, y+ui.LineHeight(f.Small), textDark)

	s.copyButton.Draw(screen, f.Button)
	if s.env.Share.Status() == share.StatusError {
		ui.DrawCentered(screen, config.CopyFailedLabel, f.Small,
			cx, s.copyButton.Y+s.copyButton.H+6*k, textError)
	}
	s.continueButton.Draw(screen, f.Button)

	drawFooter(screen, s.env)
}
