package game

import (
	"errors"
	"log"
	"math/rand"

	"github.com/decker502/shroom/pkg/config"
)

// FlowState 胜利流程状态
type FlowState int

const (
	// FlowPlaying 正常游戏（初始状态）
	FlowPlaying FlowState = iota
	// FlowWon 已胜利，等待关闭按钮
	FlowWon
)

// String 返回状态名
func (s FlowState) String() string {
	switch s {
	case FlowPlaying:
		return "playing"
	case FlowWon:
		return "won"
	default:
		return "unknown"
	}
}

// Resetter 胜利流程结束时重置进度
type Resetter interface {
	ResetProgress()
}

// WinFlow 胜利流程
//
// 状态机：Playing --达到上限--> Won --关闭按钮--> Playing
//
// Won 状态下唯一的出口是关闭按钮；计数冻结由 ProgressionController 的上限检查保证。
type WinFlow struct {
	view    NotificationView
	sound   SoundPlayer
	notices []string
	rng     *rand.Rand

	state    FlowState
	panel    Handle
	control  Handle
	resetter Resetter

	rounds     int    // 已完成的局数
	lastNotice string // 最近一次显示的文案
}

// NewWinFlow 创建胜利流程
//
// 参数：
//   - view: 提示面板与关闭按钮
//   - sound: 提示音
//   - notices: 文案池，不能为空
//   - rng: 随机源
func NewWinFlow(view NotificationView, sound SoundPlayer, notices []string, rng *rand.Rand) (*WinFlow, error) {
	if len(notices) == 0 {
		return nil, config.ErrEmptyNotices
	}
	if view == nil || sound == nil {
		return nil, errors.New("notification view and sound player are required")
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}

	return &WinFlow{
		view:    view,
		sound:   sound,
		notices: append([]string(nil), notices...),
		rng:     rng,
		state:   FlowPlaying,
	}, nil
}

// Run 进入胜利状态：显示随机文案和关闭按钮
// 已处于 Won 状态时为空操作
func (w *WinFlow) Run(r Resetter) {
	if w.state == FlowWon {
		return
	}

	w.lastNotice = w.notices[w.rng.Intn(len(w.notices))]
	w.resetter = r
	w.panel = w.view.ShowNotificationPanel(w.lastNotice)
	w.control = w.view.ShowDismissControl(w.Dismiss)
	w.state = FlowWon
	w.rounds++

	log.Printf("[WinFlow] Round %d complete: %q", w.rounds, w.lastNotice)
}

// Dismiss 关闭按钮回调：销毁面板、播放关闭音、重置进度
// 不在 Won 状态时为空操作
func (w *WinFlow) Dismiss() {
	if w.state != FlowWon {
		return
	}

	w.view.HideNotificationPanel(w.panel)
	w.view.HideDismissControl(w.control)
	w.panel = NoHandle
	w.control = NoHandle

	w.sound.PlayCue(CueClosed)

	w.state = FlowPlaying
	if w.resetter != nil {
		w.resetter.ResetProgress()
	}
	w.resetter = nil
}

// State 当前状态
func (w *WinFlow) State() FlowState {
	return w.state
}

// Rounds 已完成的局数
func (w *WinFlow) Rounds() int {
	return w.rounds
}

// LastNotice 最近一次显示的文案
func (w *WinFlow) LastNotice() string {
	return w.lastNotice
}
