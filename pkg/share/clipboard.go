package share

import (
	"errors"
	"fmt"
	"log"
	"sync"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"

	"github.com/decker502/ownrisk/pkg/config"
)

// ErrUnavailable 当前环境没有可用的剪贴板
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard 只写剪贴板
type Clipboard interface {
	WriteText(text string) error
}

// NativeClipboard 通过 golang.design/x/clipboard 直接访问系统剪贴板
//
// 第一次写入时初始化；初始化失败（如 Linux 上没有 X11）后永久不可用。
type NativeClipboard struct {
	once    sync.Once
	initErr error
}

func (c *NativeClipboard) WriteText(text string) error {
	c.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			c.initErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	})
	if c.initErr != nil {
		return c.initErr
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// CommandClipboard 通过 github.com/atotto/clipboard 调用系统命令
// （pbcopy、xclip、xsel、wl-copy 或 Windows API）
type CommandClipboard struct{}

func (CommandClipboard) WriteText(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard command failed: %w", err)
	}
	return nil
}

// NoClipboard 总是失败
type NoClipboard struct{}

func (NoClipboard) WriteText(string) error { return ErrUnavailable }

// FallbackClipboard 依次尝试每个后端，第一个成功即返回
type FallbackClipboard []Clipboard

func (f FallbackClipboard) WriteText(text string) error {
	errs := make([]error, 0, len(f))
	for _, c := range f {
		err := c.WriteText(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrUnavailable
	}
	return errors.Join(errs...)
}

// NewClipboard 按配置选择后端：auto | native | command | none
func NewClipboard(backend string) (Clipboard, error) {
	switch backend {
	case config.ClipboardAuto, "":
		return FallbackClipboard{&NativeClipboard{}, CommandClipboard{}}, nil
	case config.ClipboardNative:
		return &NativeClipboard{}, nil
	case config.ClipboardCommand:
		return CommandClipboard{}, nil
	case config.ClipboardNone:
		log.Printf("[Share] clipboard disabled by config")
		return NoClipboard{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}
