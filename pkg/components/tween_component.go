package components

import "github.com/tanema/gween"

// TweenTarget 补间动画作用的属性
type TweenTarget int

const (
	// TweenOffsetY 相对 Base 的 Y 坐标
	TweenOffsetY TweenTarget = iota
	// TweenAlpha 精灵/文字/面板透明度
	TweenAlpha
	// TweenScale 等比缩放
	TweenScale
)

// TweenTrack 单个属性的补间轨道
type TweenTrack struct {
	Target   TweenTarget
	Tween    *gween.Tween
	Base     float64 // TweenOffsetY 的基准值
	Finished bool
}

// TweenComponent 补间动画组件
// 漂浮符号（上升+淡出）和提示面板（淡入）使用
type TweenComponent struct {
	Tracks []*TweenTrack
}
