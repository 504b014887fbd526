// Package main renders the acceptance timeline headlessly to PNG frames.
//
// It drives the page state machine with the tick scheduler, mounts the
// emitters on gg-backed surfaces and writes one frame per interval, so the
// confetti and fireworks can be inspected without a window or GPU.
//
// Usage:
//
//	go run ./cmd/snapshot --out build/frames --duration 7s --every 250ms
//
// Flags:
//
//	--out <dir>          Output directory (created if missing)
//	--duration <d>       Logical time to simulate after YES (default 7s)
//	--every <d>          Frame interval (default 250ms)
//	--declines <n>       Press NO this many times before YES (default 3)
//	--width / --height   Viewport size
//	--config <file>      YAML override applied on top of the embedded defaults
//	--seed <n>           Random seed (default 1)
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/effects"
	"github.com/decker502/ownrisk/pkg/embedded"
	"github.com/decker502/ownrisk/pkg/flow"
	"github.com/decker502/ownrisk/pkg/game"
	"github.com/decker502/ownrisk/pkg/render"
	"github.com/decker502/ownrisk/pkg/ui"
)

const tick = time.Second / 60

var (
	outFlag      = flag.String("out", "frames", "Output directory")
	durationFlag = flag.Duration("duration", 7*time.Second, "Logical time to simulate after YES")
	everyFlag    = flag.Duration("every", 250*time.Millisecond, "Frame interval")
	declinesFlag = flag.Int("declines", 3, "NO presses before YES")
	widthFlag    = flag.Int("width", 960, "Viewport width")
	heightFlag   = flag.Int("height", 720, "Viewport height")
	configFlag   = flag.String("config", "", "YAML override file")
	seedFlag     = flag.Int64("seed", 1, "Random seed")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

type snapshot struct {
	scheduler  *game.Scheduler
	frames     *game.FrameLoop
	viewport   *game.Viewport
	controller *flow.Controller
	confetti   *effects.ConfettiEmitter
	fireworks  *effects.FireworksEmitter
	w, h       int

	// 接受之后主题不再变化，背景只算一次
	bg      *image.RGBA
	bgTheme config.Gradient
}

func newSnapshot() (*snapshot, error) {
	cfg, err := embedded.LoadAppConfig(*configFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	rng := rand.New(rand.NewSource(*seedFlag))

	s := &snapshot{
		scheduler: game.NewScheduler(),
		frames:    game.NewFrameLoop(),
		viewport:  game.NewViewport(float64(*widthFlag), float64(*heightFlag)),
		confetti:  effects.NewConfetti(cfg.Confetti, rng),
		fireworks: effects.NewFireworks(cfg.Fireworks, rng),
		w:         *widthFlag,
		h:         *heightFlag,
	}
	s.controller = flow.NewController(cfg.Flow, s.scheduler, rng, flow.ScreenInvitation)
	s.controller.OnChange(s.onEvent)
	return s, nil
}

func (s *snapshot) onEvent(ev flow.Event) {
	log.Printf("[Snapshot] t=%v %s", s.scheduler.Now(), ev.Kind)
	var e effects.Emitter
	switch ev.Kind {
	case flow.EventConfetti:
		e = s.confetti
	case flow.EventFireworks:
		e = s.fireworks
	default:
		return
	}
	if ev.On {
		e.Mount(s.frames, s.viewport, render.NewPNGSurface)
	} else {
		e.Unmount()
	}
}

func (s *snapshot) step() {
	s.scheduler.Advance(tick)
	s.frames.Run()
}

// frame 渐变背景 + 烟花 + 彩纸 + 状态标签
func (s *snapshot) frame() (*render.Frame, error) {
	if g := s.controller.Theme(); s.bg == nil || g != s.bgTheme {
		s.bg = image.NewRGBA(image.Rect(0, 0, s.w, s.h))
		ui.FillGradientPixels(s.bg.Pix, g, g, 1, s.w, s.h)
		s.bgTheme = g
	}

	f := render.NewFrameFromImage(s.bg)
	for _, surface := range []effects.Canvas{s.fireworks.Surface(), s.confetti.Surface()} {
		if c, ok := surface.(*render.PNGCanvas); ok {
			f.Compose(c)
		}
	}

	label := fmt.Sprintf("t=%.2fs screen=%s confetti=%d fireworks=%d",
		s.scheduler.Now().Seconds(), s.controller.Screen(), s.confetti.Len(), s.fireworks.Len())
	if err := f.Label(label, color.White); err != nil {
		return nil, err
	}
	return f, nil
}

func run() error {
	if *everyFlag < tick {
		return fmt.Errorf("--every must be at least %v", tick)
	}
	if err := os.MkdirAll(*outFlag, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	s, err := newSnapshot()
	if err != nil {
		return err
	}

	control := flow.Size{W: 140, H: 48}
	vp := flow.Size{W: float64(s.w), H: float64(s.h)}
	for i := 0; i < *declinesFlag; i++ {
		p := s.controller.Decline(vp, control)
		msg, _ := s.controller.Message()
		log.Printf("[Snapshot] decline %d: NO -> (%.0f, %.0f) %q", i+1, p.X, p.Y, msg)
	}
	if !s.controller.Accept() {
		return fmt.Errorf("accept rejected on %s", s.controller.Screen())
	}

	start := s.scheduler.Now()
	next := start
	n := 0
	for s.scheduler.Now()-start <= *durationFlag {
		if s.scheduler.Now() >= next {
			f, err := s.frame()
			if err != nil {
				return err
			}
			path := filepath.Join(*outFlag, fmt.Sprintf("frame_%04d.png", n))
			if err := f.SavePNG(path); err != nil {
				return err
			}
			n++
			next += *everyFlag
		}
		s.step()
	}

	s.controller.Cancel()
	s.confetti.Unmount()
	s.fireworks.Unmount()
	fmt.Printf("wrote %d frames to %s\n", n, *outFlag)
	return nil
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snapshot: %v\n", err)
		os.Exit(1)
	}
}
