package game

// FrameID identifies a callback requested from a FrameLoop.
type FrameID uint64

// FrameLoop 每帧回调队列
//
// 对应浏览器的 requestAnimationFrame：回调只执行一次，需要下一帧时在回调内再次申请。
// 宿主在每个 tick 调用一次 Run()。
// Run() 期间新申请的回调留到下一次 Run() 执行。
type FrameLoop struct {
	nextID  FrameID
	pending []frameRequest

	// 正在执行的批次；批次内被取消的请求记录在 skipped 中
	running []frameRequest
	skipped map[FrameID]bool
}

type frameRequest struct {
	id FrameID
	fn func()
}

// NewFrameLoop creates an empty frame loop.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// RequestFrame schedules fn for the next Run.
func (l *FrameLoop) RequestFrame(fn func()) FrameID {
	l.nextID++
	l.pending = append(l.pending, frameRequest{id: l.nextID, fn: fn})
	return l.nextID
}

// CancelFrame drops a request that has not run yet, including one in the batch
// currently being executed. Unknown or already-run ids are ignored.
func (l *FrameLoop) CancelFrame(id FrameID) {
	for i, r := range l.pending {
		if r.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	for _, r := range l.running {
		if r.id == id {
			if l.skipped == nil {
				l.skipped = make(map[FrameID]bool)
			}
			l.skipped[id] = true
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next Run.
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}

// Run executes every callback requested before this call.
func (l *FrameLoop) Run() {
	l.running = l.pending
	l.pending = nil

	for _, r := range l.running {
		if l.skipped[r.id] {
			continue
		}
		r.fn()
	}

	l.running = nil
	l.skipped = nil
}
