// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/effects"
	"github.com/decker502/ownrisk/pkg/flow"
	"github.com/decker502/ownrisk/pkg/game"
	"github.com/decker502/ownrisk/pkg/render"
	"github.com/decker502/ownrisk/pkg/scenes"
	"github.com/decker502/ownrisk/pkg/share"
	"github.com/decker502/ownrisk/pkg/ui"
	"github.com/decker502/ownrisk/pkg/utils"
)

// TickDuration 每个 Update 推进的逻辑时间（ebiten 默认 60 TPS）
const TickDuration = time.Second / 60

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// App 应用配置；为 nil 时使用默认配置
	App *config.AppConfig
	// LaunchURL 启动 URL，片段决定入口页面，origin 参与构造分享链接
	LaunchURL string
	// ForceWarning 忽略 LaunchURL 直接从警告页开始
	ForceWarning bool

	// AudioContext 音频上下文（进程内只能创建一次），为 nil 时静音
	AudioContext *audio.Context
	// Settings 用户设置，为 nil 时使用仅内存的设置
	Settings *game.SettingsManager
	// Clipboard 覆盖配置中选择的剪贴板后端
	Clipboard share.Clipboard
	// NewSurface 覆盖发射器的绘图表面（默认离屏 ebiten.Image）
	NewSurface effects.SurfaceFactory
	// Input 覆盖输入读取（默认 utils.GetInputState）
	Input func() utils.InputState
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg *config.AppConfig

	scheduler *game.Scheduler
	frames    *game.FrameLoop
	viewport  *game.Viewport

	controller   *flow.Controller
	share        *share.Provider
	sceneManager *game.SceneManager
	background   *ui.Background

	confetti   *effects.ConfettiEmitter
	fireworks  *effects.FireworksEmitter
	newSurface effects.SurfaceFactory

	settings *game.SettingsManager
	audio    *game.AudioManager

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	appCfg := cfg.App
	if appCfg == nil {
		appCfg = config.DefaultAppConfig()
	}
	if err := appCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	clipboard := cfg.Clipboard
	if clipboard == nil {
		cb, err := share.NewClipboard(appCfg.Share.Clipboard)
		if err != nil {
			return nil, fmt.Errorf("剪贴板初始化失败: %w", err)
		}
		clipboard = cb
	}

	settings := cfg.Settings
	if settings == nil {
		settings, _ = game.NewSettingsManager(nil)
	}

	scale := 1.0
	if utils.IsMobile() {
		scale = 1.25
	}
	fonts, err := ui.LoadFonts(scale)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	a := &App{
		cfg:        appCfg,
		scheduler:  game.NewScheduler(),
		frames:     game.NewFrameLoop(),
		viewport:   game.NewViewport(float64(appCfg.Window.Width), float64(appCfg.Window.Height)),
		newSurface: cfg.NewSurface,
		settings:   settings,
		audio:      game.NewAudioManager(cfg.AudioContext, settings),
		verbose:    cfg.Verbose,
	}
	if a.newSurface == nil {
		a.newSurface = render.NewImageSurface
	}

	initial := flow.EntryScreen(cfg.LaunchURL, appCfg.Share.Marker)
	if cfg.ForceWarning {
		initial = flow.ScreenWarning
	}
	log.Printf("[App] launch URL %q -> %s", cfg.LaunchURL, initial)

	a.controller = flow.NewController(appCfg.Flow, a.scheduler, rng, initial)
	a.share = share.NewProvider(appCfg.Share, cfg.LaunchURL, clipboard, a.scheduler)
	a.background = ui.NewBackground(a.controller.Theme(), appCfg.Theme.Transition)

	a.confetti = effects.NewConfetti(appCfg.Confetti, rng)
	a.fireworks = effects.NewFireworks(appCfg.Fireworks, rng)
	a.fireworks.OnExplode = func(x, y float64) {
		a.audio.PlaySound(game.SoundPop)
	}

	input := cfg.Input
	if input == nil {
		input = utils.GetInputState
	}
	env := &scenes.Env{
		Controller: a.controller,
		Share:      a.share,
		Fonts:      fonts,
		Viewport:   a.viewport,
		Now:        a.scheduler.Now,
		Input:      input,
		Scale:      scale,
	}

	// 创建场景管理器
	a.sceneManager = game.NewSceneManager()
	a.sceneManager.SetSceneFactory(func(name string) game.Scene {
		return scenes.New(name, env)
	})
	a.sceneManager.Load(initial.String())

	a.controller.OnChange(a.onFlowEvent)
	return a, nil
}

// onFlowEvent 把状态机的变化应用到页面、粒子效果和背景
func (a *App) onFlowEvent(ev flow.Event) {
	switch ev.Kind {
	case flow.EventScreen:
		a.sceneManager.Load(ev.Screen.String())
	case flow.EventConfetti:
		if ev.On {
			a.confetti.Mount(a.frames, a.viewport, a.newSurface)
			a.audio.PlaySound(game.SoundChime)
		} else {
			a.confetti.Unmount()
		}
	case flow.EventFireworks:
		if ev.On {
			a.fireworks.Mount(a.frames, a.viewport, a.newSurface)
		} else {
			a.fireworks.Unmount()
		}
	case flow.EventDecline:
		a.background.SetTheme(a.controller.Theme(), a.scheduler.Now())
	}
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.handleWindowKeys()
	a.handleShortcuts()
	a.Step(TickDuration)
	return nil
}

// Step 推进一个 tick：页面输入、定时器、粒子帧回调
func (a *App) Step(dt time.Duration) {
	a.sceneManager.Update(dt.Seconds())
	a.scheduler.Advance(dt)
	a.frames.Run()
}

// handleWindowKeys F11 切换全屏（移动端没有窗口）
func (a *App) handleWindowKeys() {
	if utils.IsMobile() {
		return
	}
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if !utils.AnyKeyJustPressed(ebiten.KeyF11) {
		return
	}
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(fullscreen)
	a.saveSettings()
}

// handleShortcuts Enter/Space 触发主按钮，C 复制分享链接，M 切换音效
func (a *App) handleShortcuts() {
	if utils.AnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace) {
		a.Primary()
	}
	if utils.AnyKeyJustPressed(ebiten.KeyC) {
		a.CopyShareLink()
	}
	if utils.AnyKeyJustPressed(ebiten.KeyM) {
		on := a.settings.ToggleSound()
		log.Printf("[App] sound enabled: %v", on)
		a.saveSettings()
	}
}

// Primary 触发当前页面的主按钮
func (a *App) Primary() {
	if actor, ok := a.sceneManager.GetCurrentScene().(scenes.PrimaryActor); ok {
		actor.Primary()
	}
}

// CopyShareLink 仅在警告页可用
func (a *App) CopyShareLink() bool {
	if !a.controller.Interactive(flow.ScreenWarning) {
		return false
	}
	a.share.Copy()
	return true
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制画面：背景、页面、烟花、彩纸
func (a *App) Draw(screen *ebiten.Image) {
	a.background.Draw(screen, a.scheduler.Now())
	a.sceneManager.Draw(screen)
	render.DrawSurface(screen, a.fireworks.Surface())
	render.DrawSurface(screen, a.confetti.Surface())
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放时的 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑尺寸跟随窗口，尺寸变化转给 Viewport（粒子表面随之调整）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	a.viewport.Resize(float64(w), float64(h))
	return w, h
}

// Close 页面销毁：取消定时器、卸载粒子效果、保存设置
func (a *App) Close() {
	a.controller.Cancel()
	a.confetti.Unmount()
	a.fireworks.Unmount()
	a.audio.StopAll()
	a.saveSettings()
	log.Printf("[App] closed")
}

// Controller returns the flow state machine.
func (a *App) Controller() *flow.Controller { return a.controller }

// SceneManager returns the scene manager.
func (a *App) SceneManager() *game.SceneManager { return a.sceneManager }

// Share returns the share-link provider.
func (a *App) Share() *share.Provider { return a.share }

// Confetti returns the confetti emitter.
func (a *App) Confetti() *effects.ConfettiEmitter { return a.confetti }

// Fireworks returns the fireworks emitter.
func (a *App) Fireworks() *effects.FireworksEmitter { return a.fireworks }

// Frames returns the per-frame callback queue.
func (a *App) Frames() *game.FrameLoop { return a.frames }

// Viewport returns the logical viewport.
func (a *App) Viewport() *game.Viewport { return a.viewport }

// Background returns the theme painter.
func (a *App) Background() *ui.Background { return a.background }

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
