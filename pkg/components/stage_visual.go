package components

// StageVisualComponent 标记当前成长阶段的蘑菇精灵
// 任意时刻最多存在一个
type StageVisualComponent struct {
	Stage string
}
