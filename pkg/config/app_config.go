package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
//
// 默认配置文件嵌入在二进制中（data/config.yaml），可以通过 --config 指定覆盖文件。
// 覆盖文件只需要写需要修改的字段，未写的字段保留默认值。
type AppConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Share     ShareConfig     `yaml:"share"`
	Flow      FlowConfig      `yaml:"flow"`
	Theme     ThemeConfig     `yaml:"theme"`
	Confetti  ConfettiConfig  `yaml:"confetti"`
	Fireworks FireworksConfig `yaml:"fireworks"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ShareConfig 分享链接配置
type ShareConfig struct {
	// BaseURL 部署地址；为空时退回启动 URL 的 origin
	BaseURL string `yaml:"baseURL"`
	// Marker 进入警告页的片段标记（不带 #）
	Marker string `yaml:"marker"`
	// StatusReset 复制状态自动恢复为 idle 的延迟
	StatusReset time.Duration `yaml:"statusReset"`
	// Clipboard 剪贴板后端：auto | native | command | none
	Clipboard string `yaml:"clipboard"`
}

// FlowConfig 页面状态机配置
type FlowConfig struct {
	// HideButtonsAfter 点击 YES 后按钮淡出的时间
	HideButtonsAfter time.Duration `yaml:"hideButtonsAfter"`
	// CelebrateAfter 点击 YES 后切换到庆祝页的时间
	CelebrateAfter time.Duration `yaml:"celebrateAfter"`
	// ConfettiStopAfter 点击 YES 后关闭彩纸的时间
	ConfettiStopAfter time.Duration `yaml:"confettiStopAfter"`
	// Escape NO 按钮的躲避区域
	Escape EscapeRegion `yaml:"escape"`
}

// EscapeRegion NO 按钮可出现的区域，全部是视口尺寸的比例
type EscapeRegion struct {
	MarginLeft  float64 `yaml:"marginLeft"`
	MarginRight float64 `yaml:"marginRight"`
	Top         float64 `yaml:"top"`
	Bottom      float64 `yaml:"bottom"`
}

// ThemeConfig 背景主题配置
type ThemeConfig struct {
	// Transition 渐变切换的过渡时长
	Transition time.Duration `yaml:"transition"`
}

// ConfettiConfig 彩纸发射器参数（速度单位：像素/帧）
type ConfettiConfig struct {
	Count     int     `yaml:"count"`
	SpawnBand float64 `yaml:"spawnBand"`
	MaxDrift  float64 `yaml:"maxDrift"`
	MinFall   float64 `yaml:"minFall"`
	MaxFall   float64 `yaml:"maxFall"`
	Gravity   float64 `yaml:"gravity"`
	MaxSpin   float64 `yaml:"maxSpin"`
	Decay     float64 `yaml:"decay"`
	MinSize   float64 `yaml:"minSize"`
	MaxSize   float64 `yaml:"maxSize"`
	Palette   Palette `yaml:"palette"`
}

// FireworksConfig 烟花发射器参数（速度单位：像素/帧）
type FireworksConfig struct {
	LaunchChance      float64 `yaml:"launchChance"`
	ApexMin           float64 `yaml:"apexMin"`
	ApexMax           float64 `yaml:"apexMax"`
	LaunchSpeedMin    float64 `yaml:"launchSpeedMin"`
	LaunchSpeedJitter float64 `yaml:"launchSpeedJitter"`
	RocketGravity     float64 `yaml:"rocketGravity"`
	RocketRadius      float64 `yaml:"rocketRadius"`
	RocketColor       OkLch   `yaml:"rocketColor"`
	Sparks            int     `yaml:"sparks"`
	SparkSpeedMin     float64 `yaml:"sparkSpeedMin"`
	SparkSpeedJitter  float64 `yaml:"sparkSpeedJitter"`
	SparkGravity      float64 `yaml:"sparkGravity"`
	SparkDecay        float64 `yaml:"sparkDecay"`
	SparkRadius       float64 `yaml:"sparkRadius"`
	TrailAlpha        float64 `yaml:"trailAlpha"`
	Palette           Palette `yaml:"palette"`
}

// DefaultAppConfig 返回默认配置，与 data/config.yaml 保持一致
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:  "Open at your own risk",
			Width:  960,
			Height: 720,
		},
		Share: ShareConfig{
			BaseURL:     "https://open-at-your-own-risk.icp0.io",
			Marker:      "warning",
			StatusReset: 2000 * time.Millisecond,
			Clipboard:   ClipboardAuto,
		},
		Flow: FlowConfig{
			HideButtonsAfter:  1000 * time.Millisecond,
			CelebrateAfter:    1500 * time.Millisecond,
			ConfettiStopAfter: 5000 * time.Millisecond,
			Escape: EscapeRegion{
				MarginLeft:  0.20,
				MarginRight: 0.20,
				Top:         0.15,
				Bottom:      0.60,
			},
		},
		Theme: ThemeConfig{
			Transition: 800 * time.Millisecond,
		},
		Confetti: ConfettiConfig{
			Count:     150,
			SpawnBand: 0.25,
			MaxDrift:  3,
			MinFall:   2,
			MaxFall:   5,
			Gravity:   0.05,
			MaxSpin:   0.15,
			Decay:     0.004,
			MinSize:   6,
			MaxSize:   12,
			Palette: Palette{
				{0.75, 0.25, 350},
				{0.80, 0.22, 340},
				{0.85, 0.18, 330},
				{0.78, 0.20, 10},
				{0.88, 0.18, 90},
				{0.80, 0.15, 200},
			},
		},
		Fireworks: FireworksConfig{
			LaunchChance:      0.05,
			ApexMin:           0.10,
			ApexMax:           0.50,
			LaunchSpeedMin:    8,
			LaunchSpeedJitter: 4,
			RocketGravity:     0.2,
			RocketRadius:      3,
			RocketColor:       OkLch{0.95, 0.1, 50},
			Sparks:            80,
			SparkSpeedMin:     2,
			SparkSpeedJitter:  4,
			SparkGravity:      0.1,
			SparkDecay:        0.01,
			SparkRadius:       2,
			TrailAlpha:        0.1,
			Palette: Palette{
				{0.75, 0.25, 350},
				{0.80, 0.22, 340},
				{0.85, 0.18, 330},
				{0.78, 0.20, 10},
				{0.82, 0.18, 20},
				{0.88, 0.15, 50},
			},
		},
	}
}

// Clipboard backends.
const (
	ClipboardAuto    = "auto"
	ClipboardNative  = "native"
	ClipboardCommand = "command"
	ClipboardNone    = "none"
)

// ParseAppConfig 解析 YAML 配置
//
// 先填入默认值再反序列化，所以 data 中缺失的字段保留默认值。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *AppConfig: 合并后的配置
//   - error: 解析或验证失败时返回错误
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := cfg.Overlay(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay 把 YAML 覆盖到已有配置上并重新验证
// 嵌入配置之上再叠加 --config 指定的文件时使用
func (c *AppConfig) Overlay(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse app config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid app config: %w", err)
	}
	return nil
}

// LoadAppConfig 从文件加载配置
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app config: %w", err)
	}
	return ParseAppConfig(data)
}

// Validate 验证配置有效性
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Share.Marker == "" {
		return fmt.Errorf("share.marker must not be empty")
	}
	if c.Share.StatusReset <= 0 {
		return fmt.Errorf("share.statusReset must be positive, got %v", c.Share.StatusReset)
	}
	switch c.Share.Clipboard {
	case ClipboardAuto, ClipboardNative, ClipboardCommand, ClipboardNone:
	default:
		return fmt.Errorf("share.clipboard: unknown backend %q", c.Share.Clipboard)
	}

	if err := c.Flow.Validate(); err != nil {
		return fmt.Errorf("flow: %w", err)
	}
	if c.Theme.Transition < 0 {
		return fmt.Errorf("theme.transition must not be negative, got %v", c.Theme.Transition)
	}
	if err := c.Confetti.Validate(); err != nil {
		return fmt.Errorf("confetti: %w", err)
	}
	if err := c.Fireworks.Validate(); err != nil {
		return fmt.Errorf("fireworks: %w", err)
	}
	return nil
}

// Validate 检查时间线顺序和躲避区域
func (c *FlowConfig) Validate() error {
	if c.HideButtonsAfter < 0 || c.CelebrateAfter < 0 || c.ConfettiStopAfter < 0 {
		return fmt.Errorf("phase delays must not be negative")
	}
	if c.CelebrateAfter < c.HideButtonsAfter {
		return fmt.Errorf("celebrateAfter(%v) must not precede hideButtonsAfter(%v)",
			c.CelebrateAfter, c.HideButtonsAfter)
	}

	e := c.Escape
	for name, v := range map[string]float64{
		"marginLeft": e.MarginLeft, "marginRight": e.MarginRight, "top": e.Top, "bottom": e.Bottom,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("escape.%s %.2f out of range [0, 1]", name, v)
		}
	}
	if e.MarginLeft+e.MarginRight >= 1 {
		return fmt.Errorf("escape margins leave no horizontal room: %.2f + %.2f", e.MarginLeft, e.MarginRight)
	}
	if e.Top >= e.Bottom {
		return fmt.Errorf("escape band invalid: top(%.2f) >= bottom(%.2f)", e.Top, e.Bottom)
	}
	return nil
}

// Validate 检查彩纸参数
func (c *ConfettiConfig) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.Decay <= 0 {
		return fmt.Errorf("decay must be positive, got %f", c.Decay)
	}
	if c.MinFall > c.MaxFall {
		return fmt.Errorf("fall range invalid: min(%.2f) > max(%.2f)", c.MinFall, c.MaxFall)
	}
	if c.MinSize <= 0 || c.MinSize > c.MaxSize {
		return fmt.Errorf("size range invalid: min(%.2f) max(%.2f)", c.MinSize, c.MaxSize)
	}
	return validatePalette(c.Palette)
}

// Validate 检查烟花参数
func (c *FireworksConfig) Validate() error {
	if c.LaunchChance < 0 || c.LaunchChance > 1 {
		return fmt.Errorf("launchChance %.3f out of range [0, 1]", c.LaunchChance)
	}
	if c.ApexMin < 0 || c.ApexMin > c.ApexMax || c.ApexMax > 1 {
		return fmt.Errorf("apex range invalid: min(%.2f) max(%.2f)", c.ApexMin, c.ApexMax)
	}
	if c.LaunchSpeedMin <= 0 {
		return fmt.Errorf("launchSpeedMin must be positive, got %.2f", c.LaunchSpeedMin)
	}
	if c.Sparks <= 0 {
		return fmt.Errorf("sparks must be positive, got %d", c.Sparks)
	}
	if c.SparkDecay <= 0 {
		return fmt.Errorf("sparkDecay must be positive, got %f", c.SparkDecay)
	}
	if c.TrailAlpha <= 0 || c.TrailAlpha > 1 {
		return fmt.Errorf("trailAlpha %.3f out of range (0, 1]", c.TrailAlpha)
	}
	if err := c.RocketColor.Validate(); err != nil {
		return fmt.Errorf("rocketColor: %w", err)
	}
	return validatePalette(c.Palette)
}

func validatePalette(p Palette) error {
	if len(p) == 0 {
		return fmt.Errorf("palette must not be empty")
	}
	for i, c := range p {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("palette[%d]: %w", i, err)
		}
	}
	return nil
}
