package scenes

import (
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/flow"
	"github.com/decker502/ownrisk/pkg/game"
	"github.com/decker502/ownrisk/pkg/share"
	"github.com/decker502/ownrisk/pkg/ui"
	"github.com/decker502/ownrisk/pkg/utils"
)

type memoryClipboard struct {
	text string
}

func (c *memoryClipboard) WriteText(text string) error {
	c.text = text
	return nil
}

// testEnv 组装页面依赖，输入由 press 控制
type testEnv struct {
	*Env
	clock     *game.Scheduler
	clipboard *memoryClipboard
	next      utils.InputState
}

func newTestEnv(t *testing.T, initial flow.Screen) *testEnv {
	t.Helper()
	fonts, err := ui.LoadFonts(1)
	if err != nil {
		t.Fatalf("LoadFonts() error: %v", err)
	}
	cfg := config.DefaultAppConfig()
	clock := game.NewScheduler()
	cb := &memoryClipboard{}

	te := &testEnv{clock: clock, clipboard: cb}
	te.Env = &Env{
		Controller: flow.NewController(cfg.Flow, clock, rand.New(rand.NewSource(9)), initial),
		Share:      share.NewProvider(cfg.Share, "", cb, clock),
		Fonts:      fonts,
		Viewport:   game.NewViewport(960, 720),
		Now:        clock.Now,
		Scale:      1,
	}
	te.Env.Input = func() utils.InputState {
		in := te.next
		te.next = utils.InputState{}
		return in
	}
	return te
}

// click 在按钮中心点击一次
func (te *testEnv) click(s Scene, b *ui.Button) {
	te.next = utils.InputState{JustPressed: true, X: int(b.X + b.W/2), Y: int(b.Y + b.H/2)}
	s.Update(1.0 / 60)
}

func TestNewByName(t *testing.T) {
	te := newTestEnv(t, flow.ScreenWarning)

	tests := []struct {
		screen flow.Screen
		check  func(Scene) bool
	}{
		{flow.ScreenWarning, func(s Scene) bool { _, ok := s.(*WarningScene); return ok }},
		{flow.ScreenNotFound, func(s Scene) bool { _, ok := s.(*NotFoundScene); return ok }},
		{flow.ScreenInvitation, func(s Scene) bool { _, ok := s.(*InvitationScene); return ok }},
		{flow.ScreenCelebration, func(s Scene) bool { _, ok := s.(*CelebrationScene); return ok }},
	}
	for _, tt := range tests {
		s := New(tt.screen.String(), te.Env)
		if s == nil || !tt.check(s) {
			t.Errorf("New(%q) returned %T", tt.screen, s)
		}
		// 没有屏幕时绘制是空操作
		s.Update(1.0 / 60)
		s.Draw(nil)
	}
	if New("bogus", te.Env) != nil {
		t.Error("unknown scene name should return nil")
	}
}

func TestWarningSceneCopyAndContinue(t *testing.T) {
	te := newTestEnv(t, flow.ScreenWarning)
	s := NewWarningScene(te.Env)
	s.Update(1.0 / 60)

	te.click(s, s.copyButton)
	if te.clipboard.text != te.Share.ShareURL() {
		t.Fatalf("clipboard = %q, want %q", te.clipboard.text, te.Share.ShareURL())
	}
	s.Update(1.0 / 60)
	if s.copyButton.Label != config.CopiedLabel {
		t.Errorf("copy label %q, want %q", s.copyButton.Label, config.CopiedLabel)
	}

	te.clock.Advance(config.DefaultAppConfig().Share.StatusReset)
	s.Update(1.0 / 60)
	if s.copyButton.Label != config.CopyLabel {
		t.Errorf("copy label should revert, got %q", s.copyButton.Label)
	}

	te.click(s, s.continueButton)
	if te.Controller.Screen() != flow.ScreenNotFound {
		t.Errorf("Continue should move to not-found, got %v", te.Controller.Screen())
	}
}

func TestNotFoundSceneRefresh(t *testing.T) {
	te := newTestEnv(t, flow.ScreenNotFound)
	s := NewNotFoundScene(te.Env)
	s.Update(1.0 / 60)

	s.Primary()
	if te.Controller.Screen() != flow.ScreenInvitation {
		t.Errorf("Refresh should move to invitation, got %v", te.Controller.Screen())
	}
}

func TestInvitationSceneNoEscapes(t *testing.T) {
	te := newTestEnv(t, flow.ScreenInvitation)
	s := NewInvitationScene(te.Env)
	s.Update(1.0 / 60)

	region := config.DefaultAppConfig().Flow.Escape
	for i := 1; i <= 4; i++ {
		te.click(s, s.noButton)
		if te.Controller.DeclineCount() != i {
			t.Fatalf("click %d: declineCount=%d", i, te.Controller.DeclineCount())
		}
		p, _ := te.Controller.NoPosition()
		if s.noButton.X != p.X || s.noButton.Y != p.Y {
			t.Errorf("click %d: NO button at (%.1f,%.1f), controller says %v", i, s.noButton.X, s.noButton.Y, p)
		}
		if p.X < 960*region.MarginLeft || p.X > 960-960*region.MarginRight-s.noButton.W {
			t.Errorf("click %d: x=%.1f outside the escape region", i, p.X)
		}
	}
}

func TestInvitationSceneAccept(t *testing.T) {
	te := newTestEnv(t, flow.ScreenInvitation)
	s := NewInvitationScene(te.Env)
	s.Update(1.0 / 60)

	te.click(s, s.yesButton)
	if !te.Controller.Accepted() {
		t.Fatal("YES click should accept")
	}
	s.Update(1.0 / 60)
	if s.yesButton.Enabled || s.noButton.Enabled {
		t.Error("buttons should be disabled right after accepting")
	}

	te.click(s, s.noButton)
	if te.Controller.DeclineCount() != 0 {
		t.Error("NO should be inert after accepting")
	}

	te.clock.Advance(time.Second)
	s.Update(1.0 / 60)
	if s.yesButton.Visible || s.noButton.Visible {
		t.Error("buttons should be hidden after 1000ms")
	}
}

func TestCenteredCard(t *testing.T) {
	c := centeredCard(960, 720, 600, 400)
	if c.x != 180 || c.y != 160 || c.w != 600 {
		t.Errorf("card %+v", c)
	}
	// 窄屏时卡片收缩并保留边距
	c = centeredCard(320, 200, 600, 400)
	if c.w != 320-2*padding || c.y != padding {
		t.Errorf("narrow card %+v", c)
	}
}

func TestPlaceButtons(t *testing.T) {
	a := &ui.Button{W: 100}
	b := &ui.Button{W: 60}
	placeButtons(500, 40, 20, a, b)
	if a.X != 410 || b.X != 530 || a.Y != 40 || b.Y != 40 {
		t.Errorf("a=(%v,%v) b=(%v,%v)", a.X, a.Y, b.X, b.Y)
	}
}
