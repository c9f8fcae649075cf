package game

import "github.com/decker502/shroom/pkg/config"

// GrowthStage 蘑菇的成长阶段
// 由点击计数推导得出，不单独存储
type GrowthStage int

const (
	// StageSeed 初始阶段
	StageSeed GrowthStage = iota
	// StageSmall 达到第一个成长阈值
	StageSmall
	// StageMedium 达到第二个成长阈值
	StageMedium
	// StageLarge 达到第三个成长阈值
	StageLarge
	// StageFinal 达到胜利阈值
	StageFinal
)

// stageCount 阶段总数
const stageCount = int(StageFinal) + 1

// String 返回阶段在 settings.yaml 中的名称
func (s GrowthStage) String() string {
	if s < StageSeed || int(s) >= stageCount {
		return "unknown"
	}
	return config.StageOrder[s]
}

// StageForCount 根据计数推导成长阶段
//
// count >= limit 时为最终阶段；否则为已经越过的成长阈值个数
func StageForCount(count int, growPoints []int, limit int) GrowthStage {
	if count >= limit {
		return StageFinal
	}

	stage := StageSeed
	for _, p := range growPoints {
		if count >= p {
			stage++
		}
	}
	return stage
}
