package entities

import (
	"fmt"

	"github.com/decker502/shroom/pkg/components"
	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/ecs"
	"github.com/decker502/shroom/pkg/game"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// stagePopDuration 阶段切换时的弹出动画时长（秒）
const stagePopDuration = 0.25

// stagePopFrom 弹出动画的起始缩放比例
const stagePopFrom = 0.8

// NewStageVisual 创建成长阶段的蘑菇精灵
//
// 参数:
//   - em: 实体管理器
//   - rl: 资源加载器
//   - spec: 阶段参数（屏幕坐标、缩放）
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，失败时返回 0
//   - error: 精灵未加载时返回错误
func NewStageVisual(em *ecs.EntityManager, rl ResourceLoader, spec game.StageSpec) (ecs.EntityID, error) {
	if em == nil || rl == nil {
		return 0, fmt.Errorf("entity manager and resource loader are required")
	}

	img, err := rl.LoadImage(spec.Sprite)
	if err != nil {
		return 0, fmt.Errorf("failed to load stage sprite: %w", err)
	}

	scale := spec.Scale
	if scale <= 0 {
		scale = 1
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Image:    img,
		SpriteID: spec.Sprite,
		Alpha:    1,
	})
	ecs.AddComponent(em, entityID, &components.ScaleComponent{ScaleX: scale, ScaleY: scale})
	ecs.AddComponent(em, entityID, &components.LayerComponent{Layer: config.LayerScene})
	ecs.AddComponent(em, entityID, &components.StageVisualComponent{Stage: spec.Stage.String()})

	// 新阶段出现时轻微弹出
	ecs.AddComponent(em, entityID, &components.TweenComponent{
		Tracks: []*components.TweenTrack{{
			Target: components.TweenScale,
			Tween:  gween.New(float32(scale*stagePopFrom), float32(scale), stagePopDuration, ease.OutBack),
		}},
	})

	return entityID, nil
}
