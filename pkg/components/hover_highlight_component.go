package components

// HoverHighlightComponent 悬停高亮组件
// 指针悬停在按钮上时提亮精灵（不闪烁），由 ButtonSystem 更新
type HoverHighlightComponent struct {
	// Intensity 高亮强度（0.0 - 1.0）
	// 1.0 = 亮度翻倍，0.0 = 无效果
	Intensity float64

	// IsActive 是否激活
	IsActive bool
}
