package components

// ParticleComponent 径向散射粒子的运动状态
//
// 位置由 PositionComponent 管理，生命周期由 LifetimeComponent 管理；
// ParticleSystem 每帧积分速度并根据生命周期淡出。
type ParticleComponent struct {
	// Velocity (速度, 像素/秒)
	VelocityX float64
	VelocityY float64

	// Drag 速度衰减系数（每秒），0 表示匀速
	Drag float64

	// RotationSpeed 旋转速度（弧度/秒）
	RotationSpeed float64

	// FadeOut 是否随生命周期线性淡出
	FadeOut bool
}
