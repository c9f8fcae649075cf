package components

// ButtonComponent 按钮组件（ECS 架构）
// 外观由 SpriteComponent 提供，点击区域由 ClickableComponent 提供
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 点击回调在 ButtonSystem 命中时同步执行
type ButtonComponent struct {
	// State 当前交互状态（Normal/Hovered/Clicked/Disabled）
	State UIState

	// OnClick 点击回调函数
	OnClick func()
}
