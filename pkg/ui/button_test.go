package ui

import (
	"image/color"
	"testing"

	"github.com/decker502/ownrisk/pkg/utils"
)

func TestButtonUpdate(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	tests := []struct {
		name      string
		setup     func(*Button)
		input     utils.InputState
		wantClick bool
		wantState ButtonState
	}{
		{"click inside", nil, utils.InputState{JustPressed: true, X: 150, Y: 120}, true, ButtonHovered},
		{"hover inside", nil, utils.InputState{X: 150, Y: 120}, false, ButtonHovered},
		{"click on edge", nil, utils.InputState{JustPressed: true, X: 100, Y: 100}, true, ButtonHovered},
		{"click outside", nil, utils.InputState{JustPressed: true, X: 99, Y: 120}, false, ButtonNormal},
		{"disabled", func(b *Button) { b.Enabled = false }, utils.InputState{JustPressed: true, X: 150, Y: 120}, false, ButtonDisabled},
		{"hidden", func(b *Button) { b.Visible = false }, utils.InputState{JustPressed: true, X: 150, Y: 120}, false, ButtonNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clicks := 0
			b := NewButton("YES", 100, 40, white, white, func() { clicks++ })
			b.X, b.Y = 100, 100
			if tt.setup != nil {
				tt.setup(b)
			}

			got := b.Update(tt.input)
			if got != tt.wantClick {
				t.Errorf("Update() = %v, want %v", got, tt.wantClick)
			}
			if (clicks == 1) != tt.wantClick {
				t.Errorf("OnClick called %d times", clicks)
			}
			if b.State != tt.wantState {
				t.Errorf("State = %v, want %v", b.State, tt.wantState)
			}
		})
	}
}

func TestButtonClick(t *testing.T) {
	clicks := 0
	b := NewButton("Continue", 100, 40, color.NRGBA{}, color.NRGBA{}, func() { clicks++ })

	if !b.Click() || clicks != 1 {
		t.Fatalf("Click() on an enabled button should fire, clicks=%d", clicks)
	}
	b.Enabled = false
	if b.Click() || clicks != 1 {
		t.Errorf("Click() on a disabled button should be ignored, clicks=%d", clicks)
	}

	// 没有回调也不会 panic
	b = NewButton("x", 1, 1, color.NRGBA{}, color.NRGBA{}, nil)
	b.Click()
	b.Draw(nil, nil)
}

func TestLighten(t *testing.T) {
	c := lighten(color.NRGBA{R: 0, G: 100, B: 255, A: 200}, 0.5)
	if c.R != 127 || c.G != 177 || c.B != 255 || c.A != 200 {
		t.Errorf("lighten() = %+v", c)
	}
}
