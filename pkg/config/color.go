package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// OkLch 是 OkLch 色彩空间中的一个颜色
//
// 配置文件中写作三元组 [L, C, H]，例如 [0.75, 0.25, 350]：
//   - L: 亮度 0.0 ~ 1.0
//   - C: 色度 0.0 ~ 约 0.4
//   - H: 色相角（度）
type OkLch struct {
	L float64
	C float64
	H float64
}

// UnmarshalYAML 从 [L, C, H] 序列解析颜色
func (c *OkLch) UnmarshalYAML(node *yaml.Node) error {
	var triple []float64
	if err := node.Decode(&triple); err != nil {
		return fmt.Errorf("oklch color must be a [L, C, H] sequence: %w", err)
	}
	if len(triple) != 3 {
		return fmt.Errorf("oklch color must have 3 components, got %d", len(triple))
	}
	c.L, c.C, c.H = triple[0], triple[1], triple[2]
	return nil
}

// MarshalYAML 以 flow 风格输出 [L, C, H]
func (c OkLch) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float64{c.L, c.C, c.H} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!float",
			Value: fmt.Sprintf("%g", v),
		})
	}
	return node, nil
}

// Colorful 转换为 go-colorful 颜色（已裁剪到 sRGB 色域）
func (c OkLch) Colorful() colorful.Color {
	return colorful.OkLch(c.L, c.C, c.H).Clamped()
}

// NRGBA 转换为不透明的 sRGB 颜色
func (c OkLch) NRGBA() color.NRGBA {
	r, g, b := c.Colorful().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Validate 检查颜色分量是否在合理范围内
func (c OkLch) Validate() error {
	if c.L < 0 || c.L > 1 {
		return fmt.Errorf("lightness %.3f out of range [0, 1]", c.L)
	}
	if c.C < 0 {
		return fmt.Errorf("chroma %.3f must not be negative", c.C)
	}
	return nil
}

// Palette 是一组颜色，发射器从中随机取色
type Palette []OkLch

// NRGBA 将整组颜色转换为 sRGB，供每帧绘制使用
func (p Palette) NRGBA() []color.NRGBA {
	out := make([]color.NRGBA, len(p))
	for i, c := range p {
		out[i] = c.NRGBA()
	}
	return out
}

// Gradient 是 135° 线性渐变的三个色标（0%、50%、100%）
type Gradient [3]OkLch

// At 返回渐变在 t (0.0 ~ 1.0) 处的颜色，在 OkLab 空间中插值
func (g Gradient) At(t float64) colorful.Color {
	if t <= 0 {
		return g[0].Colorful()
	}
	if t >= 1 {
		return g[2].Colorful()
	}
	if t < 0.5 {
		return g[0].Colorful().BlendOkLab(g[1].Colorful(), t/0.5).Clamped()
	}
	return g[1].Colorful().BlendOkLab(g[2].Colorful(), (t-0.5)/0.5).Clamped()
}
