package game

import (
	"fmt"

	"github.com/decker502/shroom/pkg/config"
)

// ProgressStore 存储一局游戏的点击进度
//
// 不变量：
//   - 0 <= countClick <= limit
//   - growPoints 严格递增且都落在 (0, limit) 内
//
// 只有 ProgressionController 持有并修改它；其他组件通过回调获得分数。
type ProgressStore struct {
	countClick int   // 当前点击次数
	limit      int   // 胜利阈值
	growPoints []int // 成长阈值 {s, m, l}
}

// NewProgressStore 创建新的进度存储
//
// 返回：
//   - error: limit 或 growPoints 不满足不变量时返回错误
func NewProgressStore(limit int, growPoints []int) (*ProgressStore, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", config.ErrInvalidLimit, limit)
	}
	if err := config.ValidateGrowPoints(growPoints, limit); err != nil {
		return nil, err
	}

	points := make([]int, len(growPoints))
	copy(points, growPoints)

	return &ProgressStore{
		limit:      limit,
		growPoints: points,
	}, nil
}

// Fresh 返回阈值表相同、计数为 0 的新实例
// 用于胜利后开始新一局
func (ps *ProgressStore) Fresh() *ProgressStore {
	return &ProgressStore{
		limit:      ps.limit,
		growPoints: ps.growPoints,
	}
}

// Count 当前点击次数
func (ps *ProgressStore) Count() int {
	return ps.countClick
}

// Limit 胜利阈值
func (ps *ProgressStore) Limit() int {
	return ps.limit
}

// GrowPoints 返回成长阈值的副本
func (ps *ProgressStore) GrowPoints() []int {
	points := make([]int, len(ps.growPoints))
	copy(points, ps.growPoints)
	return points
}

// IsComplete 是否已达到胜利阈值
func (ps *ProgressStore) IsComplete() bool {
	return ps.countClick >= ps.limit
}

// Increment 点击次数加 1
// 已达到上限时不做任何修改并返回 false
func (ps *ProgressStore) Increment() bool {
	if ps.IsComplete() {
		return false
	}
	ps.countClick++
	return true
}

// IsGrowPoint 判断 n 是否为成长阈值
func (ps *ProgressStore) IsGrowPoint(n int) bool {
	for _, p := range ps.growPoints {
		if p == n {
			return true
		}
	}
	return false
}

// Stage 根据当前计数推导成长阶段
func (ps *ProgressStore) Stage() GrowthStage {
	return StageForCount(ps.countClick, ps.growPoints, ps.limit)
}
