package entities

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/decker502/shroom/pkg/components"
	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/ecs"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scatterDrag 散射粒子的速度衰减（每秒）
const scatterDrag = 2.5

// NewScatterBurst 在点击位置创建径向散射的星星粒子
// 粒子均匀分布在圆周上并带随机扰动，随生命周期淡出后由 LifetimeSystem 销毁
//
// 参数:
//   - em: 实体管理器
//   - rl: 资源加载器（星星精灵）
//   - cfg: 粒子参数
//   - x, y: 散射中心（屏幕坐标）
//   - rng: 随机源
//
// 返回:
//   - []ecs.EntityID: 创建的粒子实体
//   - error: 精灵未加载时返回错误
func NewScatterBurst(em *ecs.EntityManager, rl ResourceLoader, cfg config.ScatterConfig, x, y float64, rng *rand.Rand) ([]ecs.EntityID, error) {
	if em == nil || rl == nil || rng == nil {
		return nil, fmt.Errorf("entity manager, resource loader and random source are required")
	}
	if cfg.Count <= 0 {
		return nil, nil
	}

	img, err := rl.LoadImage(cfg.Sprite)
	if err != nil {
		return nil, fmt.Errorf("failed to load scatter sprite: %w", err)
	}

	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}

	step := 2 * math.Pi / float64(cfg.Count)
	ids := make([]ecs.EntityID, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		angle := float64(i)*step + (rng.Float64()-0.5)*step*0.5
		speed := cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)

		entityID := em.CreateEntity()
		ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(em, entityID, &components.SpriteComponent{
			Image:    img,
			SpriteID: cfg.Sprite,
			Alpha:    1,
			Rotation: rng.Float64() * 2 * math.Pi,
		})
		ecs.AddComponent(em, entityID, &components.ScaleComponent{ScaleX: scale, ScaleY: scale})
		ecs.AddComponent(em, entityID, &components.LayerComponent{Layer: config.LayerScene})
		ecs.AddComponent(em, entityID, &components.ParticleComponent{
			VelocityX:     math.Cos(angle) * speed,
			VelocityY:     math.Sin(angle) * speed,
			Drag:          scatterDrag,
			RotationSpeed: (rng.Float64()*2 - 1) * math.Pi,
			FadeOut:       true,
		})
		ecs.AddComponent(em, entityID, &components.LifetimeComponent{MaxLifetime: cfg.Lifetime})

		ids = append(ids, entityID)
	}

	return ids, nil
}

// NewFloatingSymbol 创建上升并淡出的漂浮文字（如 "+1"）
//
// 参数:
//   - em: 实体管理器
//   - rl: 资源加载器（字体）
//   - cfg: 漂浮参数（字号、上升距离、时长、颜色）
//   - symbol: 显示的文字
//   - x, y: 起点（屏幕坐标）
func NewFloatingSymbol(em *ecs.EntityManager, rl ResourceLoader, cfg config.FloatingSymbolConfig, symbol string, x, y float64) (ecs.EntityID, error) {
	if em == nil || rl == nil {
		return 0, fmt.Errorf("entity manager and resource loader are required")
	}

	face, err := loadFace(rl, cfg.FontSize)
	if err != nil {
		return 0, err
	}

	duration := float32(cfg.Duration)
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.TextComponent{
		Text:  symbol,
		Face:  face,
		Color: config.MustColor(cfg.Color, defaultTextColor),
		Align: components.AlignCenter,
		Alpha: 1,
	})
	ecs.AddComponent(em, entityID, &components.LayerComponent{Layer: config.LayerUI})
	ecs.AddComponent(em, entityID, &components.TweenComponent{
		Tracks: []*components.TweenTrack{
			{
				Target: components.TweenOffsetY,
				Tween:  gween.New(0, float32(-cfg.Rise), duration, ease.OutQuad),
				Base:   y,
			},
			{
				Target: components.TweenAlpha,
				Tween:  gween.New(1, 0, duration, ease.Linear),
			},
		},
	})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{MaxLifetime: cfg.Duration})

	return entityID, nil
}
