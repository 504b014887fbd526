package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/ui"
)

// NotFoundScene 伪装的 404 页，Refresh 进入邀请页
type NotFoundScene struct {
	env *Env

	refreshButton *ui.Button
	layout        card
}

// NewNotFoundScene creates the decoy landing page.
func NewNotFoundScene(env *Env) *NotFoundScene {
	k := env.scale()
	return &NotFoundScene{
		env:           env,
		refreshButton: ui.NewButton(config.RefreshLabel, buttonW*k, buttonH*k, neutralFill, white, env.Controller.Refresh),
	}
}

// Primary 实现 PrimaryActor
func (s *NotFoundScene) Primary() {
	s.refreshButton.Click()
}

func (s *NotFoundScene) Update(deltaTime float64) {
	w, h := s.env.size()
	k := s.env.scale()
	s.layout = centeredCard(w, h, 520*k, 320*k)
	placeButtons(s.layout.centerX(), s.layout.y+s.layout.h-buttonH*k-padding, 0, s.refreshButton)

	s.refreshButton.Update(s.env.input())
}

func (s *NotFoundScene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	f := s.env.Fonts
	c := s.layout
	cx := c.centerX()
	c.draw(screen, cardFill)

	y := c.y + padding
	ui.DrawCentered(screen, config.NotFoundCode, f.Display, cx, y, textDark)
	y += ui.LineHeight(f.Display)
	ui.DrawCentered(screen, config.NotFoundTitle, f.Title, cx, y, textDark)
	y += ui.LineHeight(f.Title) + 4
	ui.DrawParagraph(screen, config.NotFoundMessage, f.Body, cx, y, c.w-2*padding, textMuted)

	s.refreshButton.Draw(screen, f.Button)
	drawFooter(screen, s.env)
}
