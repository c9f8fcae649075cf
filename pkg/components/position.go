package components

// PositionComponent 实体的屏幕坐标
// 对于精灵和文字，坐标是锚点（默认中心）；对于面板和按钮，坐标是左上角
type PositionComponent struct {
	X float64
	Y float64
}
