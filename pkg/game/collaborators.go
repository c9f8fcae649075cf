package game

import "github.com/decker502/shroom/pkg/config"

// 本文件定义核心逻辑依赖的外部协作者接口
// 核心只通过这些接口产生副作用，具体实现位于 scenes 包（基于 ECS）

// Point 屏幕坐标
type Point struct {
	X, Y float64
}

// Handle 协作者返回的不透明句柄（ECS 实现中为实体 ID）
type Handle uint64

// NoHandle 表示没有句柄
const NoHandle Handle = 0

// SoundCue 提示音 ID
type SoundCue string

const (
	// CueClick 每次有效点击
	CueClick SoundCue = config.CueClick
	// CueUp 达到成长阈值
	CueUp SoundCue = config.CueUp
	// CueWinner 达到胜利阈值
	CueWinner SoundCue = config.CueWinner
	// CueClosed 关闭胜利面板
	CueClosed SoundCue = config.CueClosed
)

// StageSpec 阶段精灵的显示参数（屏幕坐标）
type StageSpec struct {
	Stage  GrowthStage
	Sprite string
	X, Y   float64
	Scale  float64
}

// AssetLoader 资源预加载，启动时调用一次
type AssetLoader interface {
	LoadAssets(spriteIDs []string, fontID string) error
}

// StageRenderer 负责阶段精灵的创建与销毁
// 调用方持有当前句柄，替换阶段时先销毁旧句柄再创建新句柄
type StageRenderer interface {
	SpawnStage(spec StageSpec) Handle
	DestroyStage(h Handle)
}

// ScoreDisplay 分数显示
type ScoreDisplay interface {
	UpdateScore(value int)
}

// EffectPlayer 一次性粒子效果，生命周期由渲染侧管理
type EffectPlayer interface {
	PlayScatter(pos Point)
	PlayFloatingSymbol(symbol string, pos Point)
}

// SoundPlayer 播放提示音
type SoundPlayer interface {
	PlayCue(cue SoundCue)
}

// HapticPlayer 触觉反馈，不支持的设备上为空操作
type HapticPlayer interface {
	Trigger(pattern []int)
}

// NotificationView 胜利提示面板与关闭按钮
type NotificationView interface {
	ShowNotificationPanel(text string) Handle
	HideNotificationPanel(h Handle)
	ShowDismissControl(onActivate func()) Handle
	HideDismissControl(h Handle)
}

// Collaborators 注入 ProgressionController 的协作者集合
type Collaborators struct {
	Stage   StageRenderer
	Score   ScoreDisplay
	Effects EffectPlayer
	Sound   SoundPlayer
	Haptic  HapticPlayer
}
