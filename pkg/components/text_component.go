package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextAlign 文字水平对齐方式
type TextAlign int

const (
	// AlignCenter 以坐标为中心
	AlignCenter TextAlign = iota
	// AlignLeft 坐标为左边缘
	AlignLeft
	// AlignRight 坐标为右边缘
	AlignRight
)

// TextComponent 文字显示（分数、漂浮符号、提示文案）
// 坐标为文字的锚点，垂直方向始终居中
type TextComponent struct {
	Text  string
	Face  *text.GoTextFace
	Color color.RGBA
	Align TextAlign
	Alpha float64 // 0-1

	// MaxWidth 大于 0 时按宽度自动换行
	MaxWidth float64
}
