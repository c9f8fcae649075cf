package entities

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/decker502/shroom/pkg/components"
	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/ecs"
)

// defaultTextColor 配置中的颜色无法解析时使用
var defaultTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// NewClickableArea 创建屏幕中央的可点击区域背景
// 点击判定使用配置中的矩形（config.InArea），ClickableComponent 只用于调试绘制
func NewClickableArea(em *ecs.EntityManager, rl ResourceLoader, s *config.Settings) (ecs.EntityID, error) {
	img, err := rl.LoadImage(s.Area.Sprite)
	if err != nil {
		return 0, fmt.Errorf("failed to load area sprite: %w", err)
	}

	cx, cy := config.AreaCenter(s)
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: cx, Y: cy})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Image:    img,
		SpriteID: s.Area.Sprite,
		Alpha:    1,
	})
	ecs.AddComponent(em, entityID, &components.LayerComponent{Layer: config.LayerScene})
	ecs.AddComponent(em, entityID, &components.ClickableComponent{
		Width:     s.Area.Width,
		Height:    s.Area.Height,
		IsEnabled: true,
	})

	return entityID, nil
}

// NewTopPanel 创建顶部分数面板（平铺纹理 + 白色描边）
func NewTopPanel(em *ecs.EntityManager, rl ResourceLoader, cfg config.TopPanelConfig) (ecs.EntityID, error) {
	tile, err := rl.LoadImage(cfg.Sprite)
	if err != nil {
		return 0, fmt.Errorf("failed to load top panel sprite: %w", err)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: cfg.X, Y: cfg.Y})
	ecs.AddComponent(em, entityID, &components.PanelComponent{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Tile:         tile,
		Outline:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		OutlineWidth: cfg.OutlineWidth,
		Alpha:        1,
	})
	ecs.AddComponent(em, entityID, &components.LayerComponent{Layer: config.LayerUI})

	return entityID, nil
}

// NewScoreText 创建分数文字，右对齐于顶部面板内
//
// 参数:
//   - panel: 顶部面板配置（决定位置）
//   - cfg: 字号、右边距、颜色
//   - value: 初始分数
func NewScoreText(em *ecs.EntityManager, rl ResourceLoader, panel config.TopPanelConfig, cfg config.ScoreConfig, value int) (ecs.EntityID, error) {
	face, err := loadFace(rl, cfg.FontSize)
	if err != nil {
		return 0, err
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: panel.X + panel.Width - cfg.Padding,
		Y: panel.Y + panel.Height/2,
	})
	ecs.AddComponent(em, entityID, &components.TextComponent{
		Text:  strconv.Itoa(value),
		Face:  face,
		Color: config.MustColor(cfg.Color, defaultTextColor),
		Align: components.AlignRight,
		Alpha: 1,
	})
	ecs.AddComponent(em, entityID, &components.LayerComponent{Layer: config.LayerUI})

	return entityID, nil
}

// SetScoreText 更新分数文字
func SetScoreText(em *ecs.EntityManager, id ecs.EntityID, value int) bool {
	txt, ok := ecs.GetComponent[*components.TextComponent](em, id)
	if !ok {
		return false
	}
	txt.Text = strconv.Itoa(value)
	return true
}
