//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.ownrisk -o build/android/ownrisk.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/OwnRisk.xcframework -v ./mobile
//
// 移动端不嵌入 data/config.yaml，直接使用内置默认配置（两者由测试保证一致）。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/ownrisk/pkg/app"
	"github.com/decker502/ownrisk/pkg/embedded"
	"github.com/decker502/ownrisk/pkg/game"
)

func init() {
	cfg, err := embedded.LoadAppConfig("")
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	storage, err := game.OpenSettingsStorage("ownrisk")
	if err != nil {
		log.Printf("[mobile] Warning: settings storage unavailable: %v", err)
	}
	settings, _ := game.NewSettingsManager(storage)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      true, // Enable verbose logging for debugging
		App:          cfg,
		ForceWarning: true, // 应用内没有启动 URL，直接从警告页开始
		AudioContext: audio.NewContext(game.SampleRate),
		Settings:     settings,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
