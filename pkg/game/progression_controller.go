package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/shroom/pkg/config"
)

// ControllerConfig ProgressionController 的静态参数
type ControllerConfig struct {
	Limit        int
	GrowPoints   []int
	Stages       [stageCount]StageSpec // 按 GrowthStage 索引
	Symbol       string                // 漂浮符号文字，如 "+1"
	SymbolJitter float64               // 漂浮符号水平随机偏移范围（±）
	Vibration    []int                 // 震动模式（毫秒）
}

// ControllerConfigFromSettings 从配置文件构造控制器参数
// 阶段坐标换算为屏幕坐标
func ControllerConfigFromSettings(s *config.Settings) ControllerConfig {
	cfg := ControllerConfig{
		Limit:        s.ClickLimit,
		GrowPoints:   append([]int(nil), s.GrowPoints...),
		Symbol:       s.FloatingSymbol.Text,
		SymbolJitter: s.FloatingSymbol.Jitter,
		Vibration:    append([]int(nil), s.Vibration...),
	}

	for i, name := range config.StageOrder {
		stage := s.Stage(name)
		x, y := config.StageScreenPosition(s, stage)
		cfg.Stages[i] = StageSpec{
			Stage:  GrowthStage(i),
			Sprite: stage.Sprite,
			X:      x,
			Y:      y,
			Scale:  stage.Scale,
		}
	}

	return cfg
}

// ProgressionController 点击进度状态机
//
// 职责：
//   - 独占 ProgressStore
//   - 每次有效点击推进计数并按固定顺序派发副作用
//   - 越过成长阈值时替换阶段精灵，达到胜利阈值时启动 WinFlow
//
// 所有方法在游戏主循环中同步执行，不存在并发修改。
type ProgressionController struct {
	cfg     ControllerConfig
	store   *ProgressStore
	deps    Collaborators
	winFlow *WinFlow
	rng     *rand.Rand

	stageHandle Handle // 当前阶段精灵句柄
}

// NewProgressionController 创建进度控制器
//
// 参数：
//   - cfg: 阈值、阶段表等静态参数
//   - deps: 副作用协作者，均不可为 nil
//   - winFlow: 胜利流程
//   - rng: 随机源（漂浮符号偏移）
func NewProgressionController(cfg ControllerConfig, deps Collaborators, winFlow *WinFlow, rng *rand.Rand) (*ProgressionController, error) {
	store, err := NewProgressStore(cfg.Limit, cfg.GrowPoints)
	if err != nil {
		return nil, fmt.Errorf("invalid progress table: %w", err)
	}

	if deps.Stage == nil || deps.Score == nil || deps.Effects == nil || deps.Sound == nil || deps.Haptic == nil {
		return nil, errors.New("all collaborators are required")
	}
	if winFlow == nil {
		return nil, errors.New("win flow is required")
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}

	return &ProgressionController{
		cfg:     cfg,
		store:   store,
		deps:    deps,
		winFlow: winFlow,
		rng:     rng,
	}, nil
}

// Start 显示初始阶段和分数，场景进入时调用一次
func (c *ProgressionController) Start() {
	c.deps.Score.UpdateScore(c.store.Count())
	c.swapStage(c.store.Stage())
}

// OnTap 处理一次有效点击
//
// 返回：
//   - bool: 点击是否被接受（已达到上限时返回 false，且不产生任何副作用）
func (c *ProgressionController) OnTap(tap TapEvent) bool {
	if !c.store.Increment() {
		return false
	}
	count := c.store.Count()

	// 每次有效点击的基础效果
	c.deps.Sound.PlayCue(CueClick)
	c.deps.Score.UpdateScore(count)
	c.deps.Effects.PlayScatter(tap.Pos)
	c.deps.Effects.PlayFloatingSymbol(c.cfg.Symbol, c.symbolPosition(tap.Pos))

	// 阈值效果（每次点击最多命中一个）
	switch {
	case c.store.IsGrowPoint(count):
		c.deps.Sound.PlayCue(CueUp)
		c.swapStage(c.store.Stage())
		c.deps.Haptic.Trigger(c.cfg.Vibration)
		log.Printf("[ProgressionController] Grow point %d reached, stage=%s", count, c.store.Stage())

	case count == c.store.Limit():
		c.deps.Sound.PlayCue(CueWinner)
		c.swapStage(StageFinal)
		c.deps.Haptic.Trigger(c.cfg.Vibration)
		log.Printf("[ProgressionController] YOU WIN (%d clicks)", count)
		c.winFlow.Run(c)
	}

	return true
}

// ResetProgress 开始新一局：计数归零，分数归零，恢复初始阶段
// 由 WinFlow 在关闭按钮被激活时调用
func (c *ProgressionController) ResetProgress() {
	c.store = c.store.Fresh()
	c.deps.Score.UpdateScore(0)
	c.swapStage(StageSeed)
	log.Printf("[ProgressionController] Progress reset")
}

// Count 当前点击次数
func (c *ProgressionController) Count() int {
	return c.store.Count()
}

// Limit 胜利阈值
func (c *ProgressionController) Limit() int {
	return c.store.Limit()
}

// Stage 当前成长阶段
func (c *ProgressionController) Stage() GrowthStage {
	return c.store.Stage()
}

// StageHandle 当前阶段精灵句柄
func (c *ProgressionController) StageHandle() Handle {
	return c.stageHandle
}

// swapStage 销毁旧阶段精灵并创建新阶段精灵
func (c *ProgressionController) swapStage(stage GrowthStage) {
	if c.stageHandle != NoHandle {
		c.deps.Stage.DestroyStage(c.stageHandle)
	}
	c.stageHandle = c.deps.Stage.SpawnStage(c.cfg.Stages[stage])
}

// symbolPosition 漂浮符号的起点：点击位置附近的随机水平偏移
func (c *ProgressionController) symbolPosition(pos Point) Point {
	if c.cfg.SymbolJitter <= 0 {
		return pos
	}
	offset := (c.rng.Float64()*2 - 1) * c.cfg.SymbolJitter
	return Point{X: pos.X + offset, Y: pos.Y}
}
