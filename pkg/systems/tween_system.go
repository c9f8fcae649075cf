package systems

import (
	"github.com/decker502/shroom/pkg/components"
	"github.com/decker502/shroom/pkg/ecs"
)

// TweenSystem 推进补间动画并把当前值写回目标组件
//
// 支持的目标：
//   - TweenOffsetY: PositionComponent.Y = Base + value
//   - TweenAlpha:   SpriteComponent / TextComponent / PanelComponent 的 Alpha
//   - TweenScale:   ScaleComponent（等比）
//
// 轨道结束后保持最终值；组件本身不会被移除，实体销毁由生命周期或所有者负责
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update 推进所有补间轨道
func (s *TweenSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.TweenComponent](s.entityManager)

	for _, id := range entities {
		tc, _ := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
		for _, track := range tc.Tracks {
			if track.Finished || track.Tween == nil {
				continue
			}
			value, finished := track.Tween.Update(float32(deltaTime))
			track.Finished = finished
			s.apply(id, track, float64(value))
		}
	}
}

func (s *TweenSystem) apply(id ecs.EntityID, track *components.TweenTrack, value float64) {
	em := s.entityManager

	switch track.Target {
	case components.TweenOffsetY:
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			pos.Y = track.Base + value
		}

	case components.TweenAlpha:
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
			sprite.Alpha = value
		}
		if txt, ok := ecs.GetComponent[*components.TextComponent](em, id); ok {
			txt.Alpha = value
		}
		if panel, ok := ecs.GetComponent[*components.PanelComponent](em, id); ok {
			panel.Alpha = value
		}

	case components.TweenScale:
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
			scale.ScaleX = value
			scale.ScaleY = value
		}
	}
}

// IsFinished 实体的所有补间轨道是否都已结束
func (s *TweenSystem) IsFinished(id ecs.EntityID) bool {
	tc, ok := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
	if !ok {
		return true
	}
	for _, track := range tc.Tracks {
		if !track.Finished {
			return false
		}
	}
	return true
}
