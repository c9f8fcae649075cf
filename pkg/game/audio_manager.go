package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// cuePlayer 单个提示音的播放器
// *audio.Player 实现了该接口
type cuePlayer interface {
	SetVolume(volume float64)
	Rewind() error
	Play()
}

// AudioManager 音频管理器
// 职责：
//   - 播放合成的提示音（实现 SoundPlayer）
//   - 从 SettingsManager 读取音效开关和音量
//   - 为每个提示音缓存一个播放器，重复播放时从头开始
type AudioManager struct {
	resourceManager *ResourceManager       // 提示音 PCM 来源
	settingsManager *SettingsManager       // 可为 nil（使用默认音量）
	soundPlayers    map[SoundCue]cuePlayer // 播放器缓存（提示音 -> 播放器）

	newPlayer func(pcm []byte) cuePlayer // 为 nil 时 PlayCue 为空操作
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文，为 nil 时（无音频设备）所有播放都是空操作
//   - rm: 提供已合成的提示音
//   - sm: 设置管理器，可为 nil
func NewAudioManager(ctx *audio.Context, rm *ResourceManager, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[SoundCue]cuePlayer),
	}
	if ctx != nil {
		am.newPlayer = func(pcm []byte) cuePlayer {
			return ctx.NewPlayerFromBytes(pcm)
		}
	}
	return am
}

// PlayCue 播放提示音
// 音效关闭、提示音未合成或没有音频设备时静默忽略
func (am *AudioManager) PlayCue(cue SoundCue) {
	am.PlaySound(cue)
}

// PlaySound 播放提示音
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(cue SoundCue) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false // 音效已禁用
	}

	player := am.getSoundPlayer(cue)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", cue, err)
	}
	player.Play()

	return true
}

// Preload 为所有提示音预先创建播放器，避免首次播放时的延迟
func (am *AudioManager) Preload(cues []SoundCue) {
	for _, cue := range cues {
		am.getSoundPlayer(cue)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
}

// SetSoundVolume 设置音效音量并保存
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager == nil {
		return
	}
	am.settingsManager.SetSoundVolume(volume)
	am.settingsManager.saveOrWarn()

	v := am.GetSoundVolume()
	for _, player := range am.soundPlayers {
		player.SetVolume(v)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

// getSoundPlayer 获取或创建提示音播放器
func (am *AudioManager) getSoundPlayer(cue SoundCue) cuePlayer {
	if player, exists := am.soundPlayers[cue]; exists {
		return player
	}

	if am.newPlayer == nil || am.resourceManager == nil {
		return nil
	}

	pcm := am.resourceManager.GetCue(cue)
	if pcm == nil {
		log.Printf("[AudioManager] Warning: Sound not found: %s", cue)
		return nil
	}

	player := am.newPlayer(pcm)
	am.soundPlayers[cue] = player
	return player
}
