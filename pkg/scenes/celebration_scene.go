package scenes

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/ui"
)

// CelebrationScene 庆祝页（终点，没有出口）
type CelebrationScene struct {
	env    *Env
	layout card
}

// NewCelebrationScene creates the final screen.
func NewCelebrationScene(env *Env) *CelebrationScene {
	return &CelebrationScene{env: env}
}

func (s *CelebrationScene) Update(deltaTime float64) {
	w, h := s.env.size()
	k := s.env.scale()
	s.layout = centeredCard(w, h, 560*k, 300*k)
}

func (s *CelebrationScene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	f := s.env.Fonts
	k := s.env.scale()
	l := s.layout
	cx := l.centerX()

	y := l.y - ui.LineHeight(f.Display)
	tw := ui.DrawCentered(screen, config.CelebrationTitle, f.Display, cx, math.Max(8, y), textDark)

	// 标题两侧跳动的心
	bob := math.Sin(s.env.now().Seconds()*4) * 6 * k
	heartY := math.Max(8, y) + ui.LineHeight(f.Display)/2
	ui.DrawHeart(screen, cx-tw/2-36*k, heartY+bob, 40*k, ui.HeartColor)
	ui.DrawHeart(screen, cx+tw/2+36*k, heartY-bob, 40*k, ui.HeartColor)

	l.draw(screen, cardFill)
	y = l.y + padding
	y = ui.DrawParagraph(screen, config.CelebrationSubtitle, f.Title, cx, y, l.w-2*padding, textDark)
	y += 12 * k
	y = ui.DrawParagraph(screen, config.CelebrationCard, f.Body, cx, y, l.w-2*padding, textDark)
	y += 12 * k
	ui.DrawParagraph(screen, config.CelebrationQuote, f.Body, cx, y, l.w-2*padding, textMuted)

	drawFooter(screen, s.env)
}
