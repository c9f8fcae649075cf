package systems

import (
	"github.com/decker502/shroom/pkg/components"
	"github.com/decker502/shroom/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责按钮的悬停状态与点击命中
//
// 职责：
//   - UpdateHover 根据指针位置更新按钮状态为 UIHovered / UINormal，同步悬停高亮
//   - HandleClick 命中启用的按钮时同步触发 OnClick 回调
//
// 输入由场景统一轮询后传入，系统本身不读取 Ebitengine 输入
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// UpdateHover 更新按钮悬停状态
func (s *ButtonSystem) UpdateHover(x, y float64) {
	for _, id := range s.buttons() {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		switch {
		case !clickable.IsEnabled:
			button.State = components.UIDisabled
		case clickable.Contains(pos.X, pos.Y, x, y):
			button.State = components.UIHovered
		default:
			button.State = components.UINormal
		}

		if highlight, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id); ok {
			highlight.IsActive = button.State == components.UIHovered
		}
	}
}

// HandleClick 处理一次点击
//
// 返回：
//   - bool: 是否命中了某个启用的按钮（命中时点击不再传递给场景）
func (s *ButtonSystem) HandleClick(x, y float64) bool {
	// 后创建的按钮在上层，优先命中
	ids := s.buttons()
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		if s.entityManager.IsMarked(id) {
			continue
		}

		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if !clickable.IsEnabled || !clickable.Contains(pos.X, pos.Y, x, y) {
			continue
		}

		// 回调只触发一次：先禁用再执行
		clickable.IsEnabled = false
		button.State = components.UIClicked
		if button.OnClick != nil {
			button.OnClick()
		}
		return true
	}
	return false
}

func (s *ButtonSystem) buttons() []ecs.EntityID {
	return ecs.GetEntitiesWith3[
		*components.ButtonComponent,
		*components.ClickableComponent,
		*components.PositionComponent,
	](s.entityManager)
}
