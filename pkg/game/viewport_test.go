package game

import "testing"

func TestViewportResizeNotifiesListeners(t *testing.T) {
	v := NewViewport(800, 600)
	var gotW, gotH float64
	calls := 0
	remove := v.OnResize(func(w, h float64) {
		calls++
		gotW, gotH = w, h
	})

	v.Resize(1024, 768)
	if calls != 1 || gotW != 1024 || gotH != 768 {
		t.Errorf("listener got %d calls with %.0fx%.0f", calls, gotW, gotH)
	}
	if w, h := v.Size(); w != 1024 || h != 768 {
		t.Errorf("Size() = %.0fx%.0f", w, h)
	}

	// 尺寸不变时不通知
	v.Resize(1024, 768)
	if calls != 1 {
		t.Errorf("unchanged resize should not notify, calls=%d", calls)
	}

	remove()
	remove()
	v.Resize(640, 480)
	if calls != 1 {
		t.Errorf("removed listener was notified, calls=%d", calls)
	}
	if v.Listeners() != 0 {
		t.Errorf("expected 0 listeners, got %d", v.Listeners())
	}
}

func TestViewportListenerMayRemoveItself(t *testing.T) {
	v := NewViewport(100, 100)
	other := 0
	var remove func()
	remove = v.OnResize(func(w, h float64) { remove() })
	v.OnResize(func(w, h float64) { other++ })

	v.Resize(200, 200)
	v.Resize(300, 300)

	if other != 2 {
		t.Errorf("second listener expected 2 calls, got %d", other)
	}
	if v.Listeners() != 1 {
		t.Errorf("expected 1 listener left, got %d", v.Listeners())
	}
}
