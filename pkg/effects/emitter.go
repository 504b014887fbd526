package effects

import (
	"log"
	"math"

	"github.com/decker502/ownrisk/pkg/game"
)

// Emitter 独立运行的粒子效果
//
// Mount 之后每帧自己申请下一帧回调，直到 Unmount。
// 两次挂载之间不保留任何状态。
type Emitter interface {
	Mount(frames FrameRequester, viewport ViewportSource, newSurface SurfaceFactory)
	Unmount()
	Mounted() bool
	// Surface 返回当前绘图表面，未挂载时为 nil
	Surface() Canvas
	// Step 同步推进一帧，不申请下一帧
	Step()
	// Len 返回存活粒子（或烟花）数量
	Len() int
}

// runner 挂载、帧循环和卸载的公共部分
type runner struct {
	name string

	frames       FrameRequester
	frameID      game.FrameID
	framePending bool
	removeResize func()

	surface       Canvas
	width, height float64
}

func (r *runner) mounted() bool {
	return r.frames != nil
}

// mount 创建表面、注册 resize 监听，返回视口尺寸
func (r *runner) mount(frames FrameRequester, viewport ViewportSource, newSurface SurfaceFactory) {
	r.frames = frames
	r.width, r.height = viewport.Size()
	r.surface = newSurface(pixels(r.width), pixels(r.height))
	r.removeResize = viewport.OnResize(r.resize)
	log.Printf("[%s] mounted at %.0fx%.0f", r.name, r.width, r.height)
}

// resize 只改变可绘制区域，粒子保持原坐标
func (r *runner) resize(w, h float64) {
	r.width, r.height = w, h
	if r.surface != nil {
		r.surface.Resize(pixels(w), pixels(h))
	}
}

// schedule 申请下一帧，回调先执行 step 再继续申请
func (r *runner) schedule(step func()) {
	r.frameID = r.frames.RequestFrame(func() {
		r.framePending = false
		step()
		if r.mounted() {
			r.schedule(step)
		}
	})
	r.framePending = true
}

// unmount 取消挂起的帧、注销监听、释放表面。重复调用无副作用。
func (r *runner) unmount() bool {
	if !r.mounted() {
		return false
	}
	if r.framePending {
		r.frames.CancelFrame(r.frameID)
		r.framePending = false
	}
	if r.removeResize != nil {
		r.removeResize()
		r.removeResize = nil
	}
	r.frames = nil
	r.surface = nil
	log.Printf("[%s] unmounted", r.name)
	return true
}

func pixels(v float64) int {
	return int(math.Ceil(v))
}
