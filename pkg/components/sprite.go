package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
type SpriteComponent struct {
	Image *ebiten.Image

	// SpriteID 资源 ID（调试和测试使用）
	SpriteID string

	// Alpha 透明度 (0-1)，由 TweenSystem / ParticleSystem 更新
	Alpha float64

	// Rotation 旋转角度（弧度），绕图像中心
	Rotation float64
}
