package game

import "log"

// Viewport 当前窗口的逻辑尺寸以及尺寸变化监听
//
// App.Layout() 把 ebiten 报告的外部尺寸转给 Resize()；
// 粒子发射器通过 OnResize() 注册监听，卸载时调用返回的 remove 函数。
type Viewport struct {
	width, height float64

	nextID    int
	listeners map[int]func(w, h float64)
	order     []int
}

// NewViewport creates a viewport with the given initial size.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{
		width:     width,
		height:    height,
		listeners: make(map[int]func(w, h float64)),
	}
}

// Size returns the current viewport size in pixels.
func (v *Viewport) Size() (w, h float64) {
	return v.width, v.height
}

// Resize updates the size and notifies listeners in registration order.
// Calls with an unchanged size are ignored.
func (v *Viewport) Resize(width, height float64) {
	if width == v.width && height == v.height {
		return
	}
	log.Printf("[Viewport] Resize %.0fx%.0f -> %.0fx%.0f", v.width, v.height, width, height)
	v.width, v.height = width, height

	// 复制一份，允许监听函数在回调中注销自己
	ids := append([]int(nil), v.order...)
	for _, id := range ids {
		if fn, ok := v.listeners[id]; ok {
			fn(width, height)
		}
	}
}

// OnResize registers fn and returns a function that removes it.
// The remove function is safe to call more than once.
func (v *Viewport) OnResize(fn func(w, h float64)) (remove func()) {
	v.nextID++
	id := v.nextID
	v.listeners[id] = fn
	v.order = append(v.order, id)

	return func() {
		if _, ok := v.listeners[id]; !ok {
			return
		}
		delete(v.listeners, id)
		for i, oid := range v.order {
			if oid == id {
				v.order = append(v.order[:i], v.order[i+1:]...)
				break
			}
		}
	}
}

// Listeners returns the number of registered resize listeners.
func (v *Viewport) Listeners() int {
	return len(v.listeners)
}
