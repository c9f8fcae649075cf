package components

// ScaleComponent 存储实体级别的缩放因子
// 渲染时以图像中心为原点缩放（最终阶段的蘑菇放大到 1.5 倍）
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小）
	ScaleY float64
}
