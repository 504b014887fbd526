// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 本帧的指针输入（鼠标和触摸合并）
type InputState struct {
	// JustPressed 本帧刚按下
	JustPressed bool
	// X, Y 指针位置（逻辑屏幕坐标）
	X, Y int
	// IsTouching 指针来自触摸
	IsTouching bool
}

// GetInputState 读取本帧指针：新触摸优先，其次是仍按住的触摸，最后是鼠标
// 按钮在按下时触发，所以触摸和鼠标的行为一致。
func GetInputState() InputState {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		return touchState(ids[0], true)
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		return touchState(ids[0], false)
	}
	x, y := ebiten.CursorPosition()
	return InputState{
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		X:           x,
		Y:           y,
	}
}

func touchState(id ebiten.TouchID, justPressed bool) InputState {
	x, y := ebiten.TouchPosition(id)
	return InputState{JustPressed: justPressed, X: x, Y: y, IsTouching: true}
}

// AnyKeyJustPressed 列出的按键中是否有本帧刚按下的
func AnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
