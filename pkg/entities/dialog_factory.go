package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/shroom/pkg/components"
	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/ecs"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// notificationTextPadding 提示文字距面板左右边缘的距离
const notificationTextPadding = 20

// notificationTextRatio 文字中心位于面板高度的比例处（下方留给关闭按钮）
const notificationTextRatio = 0.38

// NewNotificationPanel 创建胜利提示面板及其文字
//
// 面板水平居中，淡入显示；文字实体和面板共享 NotificationComponent.Owner，
// 由 DestroyNotification 一起销毁。
//
// 参数:
//   - em: 实体管理器
//   - rl: 资源加载器（字体）
//   - cfg: 面板参数
//   - sceneWidth: 画布宽度
//   - message: 提示文案
//
// 返回:
//   - ecs.EntityID: 面板实体ID（作为整个提示的句柄）
//   - error: 字体未加载时返回错误
func NewNotificationPanel(em *ecs.EntityManager, rl ResourceLoader, cfg config.NotificationConfig, sceneWidth float64, message string) (ecs.EntityID, error) {
	if em == nil || rl == nil {
		return 0, fmt.Errorf("entity manager and resource loader are required")
	}

	face, err := loadFace(rl, cfg.FontSize)
	if err != nil {
		return 0, err
	}

	x := (sceneWidth - cfg.Width) / 2
	y := cfg.Y

	panelID := em.CreateEntity()
	ecs.AddComponent(em, panelID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, panelID, &components.PanelComponent{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Fill:         config.MustColor(cfg.Background, color.RGBA{A: 204}),
		Outline:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		OutlineWidth: 2,
	})
	ecs.AddComponent(em, panelID, &components.LayerComponent{Layer: config.LayerUI})
	ecs.AddComponent(em, panelID, &components.NotificationComponent{Owner: panelID})
	ecs.AddComponent(em, panelID, fadeIn(cfg.FadeIn))

	textID := em.CreateEntity()
	ecs.AddComponent(em, textID, &components.PositionComponent{
		X: x + cfg.Width/2,
		Y: y + cfg.Height*notificationTextRatio,
	})
	ecs.AddComponent(em, textID, &components.TextComponent{
		Text:     message,
		Face:     face,
		Color:    defaultTextColor,
		Align:    components.AlignCenter,
		MaxWidth: cfg.Width - 2*notificationTextPadding,
	})
	ecs.AddComponent(em, textID, &components.LayerComponent{Layer: config.LayerUI})
	ecs.AddComponent(em, textID, &components.NotificationComponent{Owner: panelID})
	ecs.AddComponent(em, textID, fadeIn(cfg.FadeIn))

	return panelID, nil
}

// DestroyNotification 销毁提示面板及其所有附属实体
//
// 返回:
//   - int: 标记删除的实体数量
func DestroyNotification(em *ecs.EntityManager, owner ecs.EntityID) int {
	destroyed := 0
	for _, id := range ecs.GetEntitiesWith1[*components.NotificationComponent](em) {
		nc, _ := ecs.GetComponent[*components.NotificationComponent](em, id)
		if nc.Owner != owner || em.IsMarked(id) {
			continue
		}
		em.DestroyEntity(id)
		destroyed++
	}
	return destroyed
}

// fadeIn 透明度从 0 到 1 的补间；duration <= 0 时立即显示
func fadeIn(duration float64) *components.TweenComponent {
	if duration <= 0 {
		duration = 0.001
	}
	return &components.TweenComponent{
		Tracks: []*components.TweenTrack{{
			Target: components.TweenAlpha,
			Tween:  gween.New(0, 1, float32(duration), ease.OutQuad),
		}},
	}
}
