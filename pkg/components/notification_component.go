package components

import "github.com/decker502/shroom/pkg/ecs"

// NotificationComponent 标记胜利提示面板及其附属实体（文案）
// 隐藏面板时销毁所有 Owner 相同的实体
type NotificationComponent struct {
	Owner ecs.EntityID
}
