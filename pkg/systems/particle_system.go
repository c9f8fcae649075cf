package systems

import (
	"math"

	"github.com/decker502/shroom/pkg/components"
	"github.com/decker502/shroom/pkg/ecs"
)

// ParticleSystem 更新径向散射粒子
// 每帧积分速度、施加阻力、旋转，并按生命周期淡出
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{entityManager: em}
}

// Update 更新所有粒子
func (s *ParticleSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pos.X += p.VelocityX * deltaTime
		pos.Y += p.VelocityY * deltaTime

		if p.Drag > 0 {
			damp := math.Max(0, 1-p.Drag*deltaTime)
			p.VelocityX *= damp
			p.VelocityY *= damp
		}

		sprite, hasSprite := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !hasSprite {
			continue
		}
		sprite.Rotation += p.RotationSpeed * deltaTime

		if p.FadeOut {
			if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok {
				sprite.Alpha = 1 - lifetime.Progress()
			}
		}
	}
}
