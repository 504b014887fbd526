// Package main provides an effect viewer tool for tuning the confetti and
// fireworks emitters outside the page flow.
//
// Usage:
//
//	go run ./cmd/effects [flags]
//
// Flags:
//
//	--effect <name>    Start with confetti, fireworks or both (default both)
//	--config <file>    YAML override applied on top of the embedded defaults
//	--auto-play        Re-burst confetti every 5 seconds
//	--seed <n>         Random seed (0 = time based)
//
// Controls:
//
//	Mouse Click  - Launch a rocket towards the cursor column
//	Space        - Re-mount confetti (new burst)
//	1 / 2        - Toggle confetti / fireworks
//	R            - Unmount everything
//	P            - Toggle pause
//	Q/Escape     - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/ownrisk/pkg/effects"
	"github.com/decker502/ownrisk/pkg/embedded"
	"github.com/decker502/ownrisk/pkg/game"
	"github.com/decker502/ownrisk/pkg/render"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	effectFlag   = flag.String("effect", "both", "confetti | fireworks | both")
	configFlag   = flag.String("config", "", "YAML override file")
	autoPlayFlag = flag.Bool("auto-play", false, "Re-burst confetti every 5 seconds")
	seedFlag     = flag.Int64("seed", 0, "Random seed (0 = time based)")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var errQuit = errors.New("quit requested")

// EffectViewer implements ebiten.Game for the effect viewer
type EffectViewer struct {
	frames   *game.FrameLoop
	viewport *game.Viewport

	confetti  *effects.ConfettiEmitter
	fireworks *effects.FireworksEmitter

	paused        bool
	autoPlay      bool
	lastBurst     time.Time
	explosions    int
	statusMessage string
}

// NewEffectViewer creates the viewer and mounts the requested effects
func NewEffectViewer() (*EffectViewer, error) {
	cfg, err := embedded.LoadAppConfig(*configFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	v := &EffectViewer{
		frames:    game.NewFrameLoop(),
		viewport:  game.NewViewport(screenWidth, screenHeight),
		confetti:  effects.NewConfetti(cfg.Confetti, rng),
		fireworks: effects.NewFireworks(cfg.Fireworks, rng),
		autoPlay:  *autoPlayFlag,
		lastBurst: time.Now(),
	}
	v.fireworks.OnExplode = func(x, y float64) {
		v.explosions++
	}

	switch *effectFlag {
	case "confetti":
		v.toggle(v.confetti)
	case "fireworks":
		v.toggle(v.fireworks)
	case "both":
		v.toggle(v.fireworks)
		v.toggle(v.confetti)
	default:
		return nil, fmt.Errorf("unknown effect %q", *effectFlag)
	}

	log.Printf("Effect viewer initialized: effect=%s seed=%d", *effectFlag, seed)
	return v, nil
}

func (v *EffectViewer) toggle(e effects.Emitter) {
	if e.Mounted() {
		e.Unmount()
		v.statusMessage = "Unmounted"
		return
	}
	e.Mount(v.frames, v.viewport, render.NewImageSurface)
	v.statusMessage = "Mounted"
}

func (v *EffectViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.paused = !v.paused
		if v.paused {
			v.statusMessage = "PAUSED - Press P to resume"
		} else {
			v.statusMessage = "Resumed"
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		v.toggle(v.confetti)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		v.toggle(v.fireworks)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.confetti.Unmount()
		v.fireworks.Unmount()
		v.statusMessage = "Cleared all effects"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.confetti.Unmount()
		v.toggle(v.confetti)
		v.lastBurst = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && v.fireworks.Mounted() {
		x, _ := ebiten.CursorPosition()
		v.fireworks.Launch(float64(x))
		v.statusMessage = fmt.Sprintf("Launched rocket at x=%d", x)
	}

	if v.autoPlay && time.Since(v.lastBurst) > 5*time.Second {
		v.confetti.Unmount()
		v.toggle(v.confetti)
		v.lastBurst = time.Now()
	}

	if !v.paused {
		v.frames.Run()
	}
	return nil
}

func (v *EffectViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{25, 25, 38, 255})

	render.DrawSurface(screen, v.fireworks.Surface())
	render.DrawSurface(screen, v.confetti.Surface())

	v.drawUI(screen)
}

func (v *EffectViewer) drawUI(screen *ebiten.Image) {
	rockets, sparks := 0, 0
	for _, fw := range v.fireworks.Fireworks() {
		if fw.Exploded {
			sparks += len(fw.Particles)
		} else {
			rockets++
		}
	}

	lines := []string{
		fmt.Sprintf("Confetti:  mounted=%v particles=%d", v.confetti.Mounted(), v.confetti.Len()),
		fmt.Sprintf("Fireworks: mounted=%v rockets=%d sparks=%d explosions=%d", v.fireworks.Mounted(), rockets, sparks, v.explosions),
		fmt.Sprintf("Pending frame callbacks: %d  TPS: %.0f", v.frames.Pending(), ebiten.ActualTPS()),
	}
	if v.statusMessage != "" {
		lines = append(lines, v.statusMessage)
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*20)
	}

	ebitenutil.DebugPrintAt(screen,
		"Click = Rocket  Space = Confetti burst  1/2 = Toggle  R = Clear  P = Pause  Q = Quit",
		10, screenHeight-30)
}

func (v *EffectViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	viewer, err := NewEffectViewer()
	if err != nil {
		log.Fatalf("Failed to create effect viewer: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Effect Viewer")

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
