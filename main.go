package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/ownrisk/pkg/app"
	"github.com/decker502/ownrisk/pkg/embedded"
	"github.com/decker502/ownrisk/pkg/game"
)

// appName 用于设置存储目录
const appName = "ownrisk"

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "覆盖配置文件（YAML，只需写要修改的字段）")
	launchURL := flag.String("url", "", "启动 URL，片段 #<marker> 进入警告页")
	warning := flag.Bool("warning", false, "忽略 --url，直接从警告页开始")
	width := flag.Int("width", 0, "窗口宽度（覆盖配置）")
	height := flag.Int("height", 0, "窗口高度（覆盖配置）")
	seed := flag.Int64("seed", 0, "随机种子，0 表示按时间")
	flag.Parse()

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(dataFS)

	cfg, err := embedded.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	// 设置持久化失败时降级为仅内存设置
	storage, err := game.OpenSettingsStorage(appName)
	if err != nil {
		log.Printf("[main] Warning: settings storage unavailable: %v", err)
	}
	settings, _ := game.NewSettingsManager(storage)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		App:          cfg,
		LaunchURL:    *launchURL,
		ForceWarning: *warning,
		AudioContext: audio.NewContext(game.SampleRate),
		Settings:     settings,
		Seed:         *seed,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.GetSettings().Fullscreen)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Printf("运行错误: %v", err)
	}
}
