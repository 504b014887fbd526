package flow

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/game"
)

// Clock 一次性定时器；*game.Scheduler 满足此接口
type Clock interface {
	After(d time.Duration, fn func()) game.TimerID
	Cancel(id game.TimerID) bool
}

// EventKind 状态变化类型
type EventKind int

const (
	EventScreen    EventKind = iota // 当前页面变化
	EventConfetti                   // confettiVisible 变化
	EventFireworks                  // fireworksVisible 变化
	EventButtons                    // buttonsVisible 或 buttonsEnabled 变化
	EventAgreement                  // agreementShown 变化
	EventDecline                    // 又一次拒绝
)

func (k EventKind) String() string {
	switch k {
	case EventScreen:
		return "screen"
	case EventConfetti:
		return "confetti"
	case EventFireworks:
		return "fireworks"
	case EventButtons:
		return "buttons"
	case EventAgreement:
		return "agreement"
	case EventDecline:
		return "decline"
	default:
		return "unknown"
	}
}

// Event 通知观察者的状态变化
type Event struct {
	Kind   EventKind
	Screen Screen // 事件发生后的当前页面
	On     bool   // 布尔标志事件的新值
}

// Controller 页面状态机
//
// 状态只在用户操作和定时器回调中修改，都在同一个 Update 线程上，不加锁。
// 主题、文案、表情都是查询结果，由表现层自己应用。
type Controller struct {
	cfg   config.FlowConfig
	clock Clock
	rng   *rand.Rand

	screen           Screen
	confettiVisible  bool
	fireworksVisible bool
	buttonsVisible   bool
	buttonsEnabled   bool
	agreementShown   bool
	accepted         bool

	declineCount  int
	gradientIndex int
	noPosition    Point

	timers    []game.TimerID
	observers []func(Event)
}

// NewController 创建状态机
//
// 参数：
//   - cfg: 时间线与躲避区域配置
//   - clock: 定时器来源
//   - rng: 躲避位置的随机源
//   - initial: 入口页面（见 EntryScreen）
func NewController(cfg config.FlowConfig, clock Clock, rng *rand.Rand, initial Screen) *Controller {
	return &Controller{
		cfg:            cfg,
		clock:          clock,
		rng:            rng,
		screen:         initial,
		buttonsVisible: true,
		buttonsEnabled: true,
	}
}

// OnChange registers an observer called synchronously after every change.
func (c *Controller) OnChange(fn func(Event)) {
	c.observers = append(c.observers, fn)
}

func (c *Controller) emit(kind EventKind, on bool) {
	ev := Event{Kind: kind, Screen: c.screen, On: on}
	for _, fn := range c.observers {
		fn(ev)
	}
}

func (c *Controller) setScreen(s Screen) {
	log.Printf("[Controller] %s -> %s", c.screen, s)
	c.screen = s
	c.emit(EventScreen, true)
}

// Continue 警告页 -> 404 页
func (c *Controller) Continue() {
	if c.screen != ScreenWarning {
		return
	}
	c.setScreen(ScreenNotFound)
}

// Refresh 404 页 -> 邀请页
func (c *Controller) Refresh() {
	if c.screen != ScreenNotFound {
		return
	}
	c.setScreen(ScreenInvitation)
}

// Decline 处理一次 NO
//
// 每次调用独立推进 declineCount 和 gradientIndex，并重新随机 NO 按钮位置。
// 不在邀请页或已经接受后调用时忽略，返回当前位置。
func (c *Controller) Decline(viewport, control Size) Point {
	if c.screen != ScreenInvitation || c.accepted || !c.buttonsEnabled {
		return c.noPosition
	}

	c.declineCount++
	c.gradientIndex = (c.gradientIndex + 1) % len(config.Gradients)
	c.noPosition = PlaceEscape(c.cfg.Escape, viewport, control, c.rng)

	log.Printf("[Controller] decline #%d, gradient %d, NO at (%.0f, %.0f)",
		c.declineCount, c.gradientIndex, c.noPosition.X, c.noPosition.Y)
	c.emit(EventDecline, true)
	return c.noPosition
}

// Accept 处理 YES，启动分阶段的庆祝时间线
//
// 时间线：
//   - t=0: 显示条款、显示彩纸、禁用按钮
//   - +HideButtonsAfter: 隐藏按钮
//   - +CelebrateAfter: 切换到庆祝页，显示烟花
//   - +ConfettiStopAfter: 隐藏彩纸
//
// 只能触发一次；再次调用返回 false 且不安排任何定时器。
func (c *Controller) Accept() bool {
	if c.screen != ScreenInvitation || c.accepted {
		return false
	}
	c.accepted = true
	log.Printf("[Controller] accepted after %d declines", c.declineCount)

	c.agreementShown = true
	c.emit(EventAgreement, true)
	c.confettiVisible = true
	c.emit(EventConfetti, true)
	c.buttonsEnabled = false
	c.emit(EventButtons, c.buttonsVisible)

	c.schedule(c.cfg.HideButtonsAfter, func() {
		c.buttonsVisible = false
		c.emit(EventButtons, false)
	})
	c.schedule(c.cfg.CelebrateAfter, func() {
		c.setScreen(ScreenCelebration)
		c.fireworksVisible = true
		c.emit(EventFireworks, true)
	})
	c.schedule(c.cfg.ConfettiStopAfter, func() {
		c.confettiVisible = false
		c.emit(EventConfetti, false)
	})
	return true
}

func (c *Controller) schedule(d time.Duration, fn func()) {
	var id game.TimerID
	id = c.clock.After(d, func() {
		c.forget(id)
		fn()
	})
	c.timers = append(c.timers, id)
}

func (c *Controller) forget(id game.TimerID) {
	for i, t := range c.timers {
		if t == id {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Cancel 取消尚未触发的阶段定时器（页面销毁时调用）
func (c *Controller) Cancel() {
	for _, id := range c.timers {
		c.clock.Cancel(id)
	}
	if len(c.timers) > 0 {
		log.Printf("[Controller] cancelled %d pending phase timers", len(c.timers))
	}
	c.timers = nil
}

// PendingTimers 返回尚未触发的阶段定时器数量
func (c *Controller) PendingTimers() int {
	return len(c.timers)
}

// Screen returns the current screen.
func (c *Controller) Screen() Screen { return c.screen }

// Interactive reports whether s is the one screen accepting input.
func (c *Controller) Interactive(s Screen) bool { return s == c.screen }

func (c *Controller) ConfettiVisible() bool  { return c.confettiVisible }
func (c *Controller) FireworksVisible() bool { return c.fireworksVisible }
func (c *Controller) ButtonsVisible() bool   { return c.buttonsVisible }
func (c *Controller) ButtonsEnabled() bool   { return c.buttonsEnabled }
func (c *Controller) AgreementShown() bool   { return c.agreementShown }
func (c *Controller) Accepted() bool         { return c.accepted }
func (c *Controller) DeclineCount() int      { return c.declineCount }
func (c *Controller) GradientIndex() int     { return c.gradientIndex }

// NoPosition returns the escaping NO button position; ok is false until the
// first decline.
func (c *Controller) NoPosition() (p Point, ok bool) {
	return c.noPosition, c.declineCount > 0
}

// Message 返回当前的拒绝文案，declineCount 为 0 时没有文案
func (c *Controller) Message() (string, bool) {
	if c.declineCount == 0 {
		return "", false
	}
	return MessageFor(c.declineCount), true
}

// Emoji 返回拒绝文案旁的表情
func (c *Controller) Emoji() string {
	return EmojiFor(c.declineCount)
}

// Theme 返回当前背景渐变
func (c *Controller) Theme() config.Gradient {
	return config.Gradients[c.gradientIndex]
}

// MessageFor 按拒绝次数取文案，超出表长后循环
func MessageFor(declineCount int) string {
	return config.NoMessages[declineCount%len(config.NoMessages)]
}

// EmojiFor 拒绝两次及以上显示哭脸，否则显示心碎
func EmojiFor(declineCount int) string {
	if declineCount >= config.SadEmojiThreshold {
		return config.EmojiSad
	}
	return config.EmojiHeartbreak
}
