package entities

import (
	"fmt"

	"github.com/decker502/shroom/pkg/components"
	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/ecs"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// dismissHighlight 关闭按钮悬停时的提亮强度
const dismissHighlight = 0.25

// NewDismissButton 创建胜利面板的关闭按钮
// 按钮位于面板底部居中，弹出出现；点击区域为精灵尺寸
//
// 参数：
//   - em: 实体管理器
//   - rl: 资源加载器（按钮图片）
//   - cfg: 面板参数（关闭按钮精灵与位置）
//   - sceneWidth: 画布宽度
//   - onClick: 点击回调
//
// 返回：
//   - 按钮实体ID
//   - 错误信息
func NewDismissButton(em *ecs.EntityManager, rl ResourceLoader, cfg config.NotificationConfig, sceneWidth float64, onClick func()) (ecs.EntityID, error) {
	if em == nil || rl == nil {
		return 0, fmt.Errorf("entity manager and resource loader are required")
	}

	img, err := rl.LoadImage(cfg.CloseSprite)
	if err != nil {
		return 0, fmt.Errorf("failed to load close button sprite: %w", err)
	}

	bounds := img.Bounds()
	duration := float32(cfg.FadeIn)
	if duration <= 0 {
		duration = 0.001
	}

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: sceneWidth / 2,
		Y: cfg.Y + cfg.Height - cfg.CloseOffset,
	})
	ecs.AddComponent(em, entity, &components.SpriteComponent{
		Image:    img,
		SpriteID: cfg.CloseSprite,
	})
	ecs.AddComponent(em, entity, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	ecs.AddComponent(em, entity, &components.LayerComponent{Layer: config.LayerUI})
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Width:     float64(bounds.Dx()),
		Height:    float64(bounds.Dy()),
		IsEnabled: true,
	})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		State:   components.UINormal,
		OnClick: onClick,
	})
	ecs.AddComponent(em, entity, &components.HoverHighlightComponent{Intensity: dismissHighlight})
	ecs.AddComponent(em, entity, &components.TweenComponent{
		Tracks: []*components.TweenTrack{
			{Target: components.TweenAlpha, Tween: gween.New(0, 1, duration, ease.OutQuad)},
			{Target: components.TweenScale, Tween: gween.New(0.6, 1, duration, ease.OutBack)},
		},
	})

	return entity, nil
}
