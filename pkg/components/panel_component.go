package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// PanelComponent 矩形面板（顶部分数栏、胜利提示面板）
// PositionComponent 为左上角
type PanelComponent struct {
	Width  float64
	Height float64

	// Tile 平铺纹理，为 nil 时使用 Fill 填充
	Tile *ebiten.Image
	Fill color.RGBA

	// 描边，OutlineWidth 为 0 时不绘制
	Outline      color.RGBA
	OutlineWidth float64

	Alpha float64 // 0-1
}
