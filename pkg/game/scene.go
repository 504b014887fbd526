package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene 一个全窗口页面（警告页、邀请页等），只有当前页面会被更新和绘制
type Scene interface {
	// Update 推进页面逻辑，deltaTime 单位为秒
	Update(deltaTime float64)
	// Draw 把页面画到 screen 上；screen 可能为 nil（无窗口测试）
	Draw(screen *ebiten.Image)
}
