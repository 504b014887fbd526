package share

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/game"
)

// Status 复制状态
type Status int

const (
	StatusIdle Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Clock 一次性定时器；*game.Scheduler 满足此接口
type Clock interface {
	After(d time.Duration, fn func()) game.TimerID
	Cancel(id game.TimerID) bool
}

// Provider 分享链接与复制操作
//
// 复制失败只会体现在 Status 上，不会返回错误，也不会 panic。
// 每次复制都会在 StatusReset 之后把状态恢复为 idle，新的复制会取消旧的恢复定时器。
type Provider struct {
	url       string
	clipboard Clipboard
	clock     Clock
	reset     time.Duration

	status     Status
	resetTimer game.TimerID
}

// NewProvider 创建分享链接提供者
func NewProvider(cfg config.ShareConfig, launchURL string, cb Clipboard, clock Clock) *Provider {
	return &Provider{
		url:       ShareURL(cfg, launchURL),
		clipboard: cb,
		clock:     clock,
		reset:     cfg.StatusReset,
	}
}

// ShareURL returns the link that opens the warning screen.
func (p *Provider) ShareURL() string { return p.url }

// Status returns the transient copy status.
func (p *Provider) Status() Status { return p.status }

// Copy 把分享链接写入剪贴板并返回结果（success 或 error）
func (p *Provider) Copy() Status {
	if err := p.write(); err != nil {
		log.Printf("[Share] copy failed: %v", err)
		p.status = StatusError
	} else {
		log.Printf("[Share] copied %s", p.url)
		p.status = StatusSuccess
	}

	if p.resetTimer != 0 {
		p.clock.Cancel(p.resetTimer)
	}
	p.resetTimer = p.clock.After(p.reset, func() {
		p.resetTimer = 0
		p.status = StatusIdle
	})
	return p.status
}

func (p *Provider) write() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard panicked: %v", r)
		}
	}()
	if p.clipboard == nil {
		return ErrUnavailable
	}
	return p.clipboard.WriteText(p.url)
}
