package main

import (
	"fmt"
	"os"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/flow"
	"github.com/decker502/ownrisk/pkg/share"
)

// 用法: go run ./tools [config.yaml]
// 默认检查 data/config.yaml，覆盖文件同样适用（缺失字段按默认值补齐）
func main() {
	path := "data/config.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadAppConfig(path)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 格式正确\n", path)

	f := cfg.Flow
	fmt.Printf("✅ 时间线: 按钮隐藏 %v → 庆祝页 %v → 彩纸关闭 %v\n",
		f.HideButtonsAfter, f.CelebrateAfter, f.ConfettiStopAfter)

	e := f.Escape
	fmt.Printf("✅ NO 躲避区域: x ∈ [%.0f%%, %.0f%%], y ∈ [%.0f%%, %.0f%%]\n",
		e.MarginLeft*100, (1-e.MarginRight)*100, e.Top*100, e.Bottom*100)

	// 在窗口尺寸下检查按钮是否放得下
	vp := flow.Size{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)}
	usable := vp.W * (1 - e.MarginLeft - e.MarginRight)
	if usable < 140 {
		fmt.Printf("⚠️  %dx%d 窗口下躲避区域宽度只有 %.0fpx，按钮会被夹到中间\n",
			cfg.Window.Width, cfg.Window.Height, usable)
	}

	fmt.Printf("✅ 彩纸: %d 片, %d 种颜色\n", cfg.Confetti.Count, len(cfg.Confetti.Palette))
	fmt.Printf("✅ 烟花: 每次爆炸 %d 颗火星, %d 种颜色\n", cfg.Fireworks.Sparks, len(cfg.Fireworks.Palette))
	fmt.Printf("✅ 分享链接: %s (剪贴板: %s)\n", share.ShareURL(cfg.Share, ""), cfg.Share.Clipboard)
}
