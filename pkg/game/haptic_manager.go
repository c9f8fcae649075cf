package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// VibrateFunc 让设备震动指定时长
type VibrateFunc func(d time.Duration)

// EbitenVibrate 使用 ebiten.Vibrate 震动（桌面端为空操作）
func EbitenVibrate(d time.Duration) {
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  d,
		Magnitude: 1,
	})
}

// HapticManager 触觉反馈管理器（实现 HapticPlayer）
//
// 震动模式为毫秒数组，偶数下标为震动、奇数下标为暂停：[on, off, on, ...]
// 模式跨帧播放，由 Update 推进；新的 Trigger 替换正在播放的模式。
type HapticManager struct {
	settingsManager *SettingsManager // 可为 nil（始终启用）
	vibrate         VibrateFunc      // 为 nil 时不支持震动

	pattern []int
	index   int     // 当前段
	elapsed float64 // 当前段已经过的毫秒数
	playing bool
}

// NewHapticManager 创建触觉反馈管理器
//
// 参数：
//   - sm: 设置管理器（读取震动开关），可为 nil
//   - vibrate: 震动实现，为 nil 表示设备不支持
func NewHapticManager(sm *SettingsManager, vibrate VibrateFunc) *HapticManager {
	return &HapticManager{
		settingsManager: sm,
		vibrate:         vibrate,
	}
}

// Trigger 开始播放震动模式
// 震动关闭、设备不支持或模式为空时为空操作
func (hm *HapticManager) Trigger(pattern []int) {
	if hm.vibrate == nil || len(pattern) == 0 {
		return
	}
	if hm.settingsManager != nil && !hm.settingsManager.GetSettings().HapticsEnabled {
		return
	}

	hm.pattern = append(hm.pattern[:0], pattern...)
	hm.index = 0
	hm.elapsed = 0
	hm.playing = true
	hm.startSegment()

	log.Printf("[HapticManager] Pattern %v started", pattern)
}

// Update 推进震动模式
func (hm *HapticManager) Update(deltaTime float64) {
	if !hm.playing {
		return
	}

	hm.elapsed += deltaTime * 1000
	for hm.playing && hm.elapsed >= float64(hm.pattern[hm.index]) {
		hm.elapsed -= float64(hm.pattern[hm.index])
		hm.index++
		if hm.index >= len(hm.pattern) {
			hm.Stop()
			return
		}
		hm.startSegment()
	}
}

// Stop 停止当前模式（已开始的震动段由设备自行结束）
func (hm *HapticManager) Stop() {
	hm.playing = false
	hm.pattern = hm.pattern[:0]
	hm.index = 0
	hm.elapsed = 0
}

// IsPlaying 是否有模式正在播放
func (hm *HapticManager) IsPlaying() bool {
	return hm.playing
}

// startSegment 进入震动段时发出一次震动
func (hm *HapticManager) startSegment() {
	if hm.index%2 != 0 {
		return
	}
	ms := hm.pattern[hm.index]
	if ms > 0 {
		hm.vibrate(time.Duration(ms) * time.Millisecond)
	}
}
