package components

// ClickableComponent 标记实体可以被点击
// 定义了以 PositionComponent 为中心的可点击区域
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素)
	Height    float64 // 可点击区域的高度(像素)
	IsEnabled bool    // 是否可以被点击
}

// Contains 判断屏幕坐标是否落在以 (cx, cy) 为中心的可点击区域内
func (c *ClickableComponent) Contains(cx, cy, x, y float64) bool {
	return x >= cx-c.Width/2 && x <= cx+c.Width/2 &&
		y >= cy-c.Height/2 && y <= cy+c.Height/2
}
