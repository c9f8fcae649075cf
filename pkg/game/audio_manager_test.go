package game

import (
	"math/rand"
	"testing"
)

// fakePlayer 记录播放调用
type fakePlayer struct {
	plays   int
	rewinds int
	volume  float64
}

func (p *fakePlayer) SetVolume(v float64) { p.volume = v }
func (p *fakePlayer) Rewind() error {
	p.rewinds++
	return nil
}
func (p *fakePlayer) Play() { p.plays++ }

// newTestAudioManager 使用假播放器创建音频管理器
func newTestAudioManager(t *testing.T, sm *SettingsManager) (*AudioManager, map[SoundCue]*fakePlayer) {
	t.Helper()
	rm := NewResourceManager()
	if err := rm.LoadSoundCues(testSounds(), rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("LoadSoundCues failed: %v", err)
	}

	am := NewAudioManager(nil, rm, sm)
	created := make(map[SoundCue]*fakePlayer)
	am.newPlayer = func(pcm []byte) cuePlayer {
		p := &fakePlayer{}
		for _, cue := range []SoundCue{CueClick, CueUp, CueWinner, CueClosed} {
			if &rm.GetCue(cue)[0] == &pcm[0] {
				created[cue] = p
			}
		}
		return p
	}
	return am, created
}

func TestPlayCueCachesPlayer(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am, created := newTestAudioManager(t, sm)

	am.PlayCue(CueClick)
	am.PlayCue(CueClick)
	am.PlayCue(CueUp)

	click := created[CueClick]
	if click == nil {
		t.Fatal("no player created for click")
	}
	if click.plays != 2 || click.rewinds != 2 {
		t.Errorf("click plays=%d rewinds=%d, want 2/2", click.plays, click.rewinds)
	}
	if click.volume != 0.8 {
		t.Errorf("click volume = %v, want 0.8", click.volume)
	}
	if len(created) != 2 {
		t.Errorf("created %d players, want 2", len(created))
	}
}

func TestPlayCueHonoursSoundToggle(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am, created := newTestAudioManager(t, sm)

	sm.SetSoundEnabled(false)
	if am.PlaySound(CueWinner) {
		t.Error("PlaySound should fail while sound is disabled")
	}
	if created[CueWinner] != nil {
		t.Error("no player should be created while sound is disabled")
	}

	sm.SetSoundEnabled(true)
	if !am.PlaySound(CueWinner) {
		t.Error("PlaySound should succeed once sound is enabled")
	}
}

func TestSetSoundVolumeUpdatesPlayers(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am, created := newTestAudioManager(t, sm)

	am.Preload([]SoundCue{CueClick, CueClosed})
	am.SetSoundVolume(0.25)

	for _, cue := range []SoundCue{CueClick, CueClosed} {
		if created[cue].volume != 0.25 {
			t.Errorf("%s volume = %v, want 0.25", cue, created[cue].volume)
		}
	}
	if am.GetSoundVolume() != 0.25 {
		t.Errorf("GetSoundVolume() = %v, want 0.25", am.GetSoundVolume())
	}
}

func TestPlayCueWithoutDevice(t *testing.T) {
	am := NewAudioManager(nil, NewResourceManager(), nil)
	if am.PlaySound(CueClick) {
		t.Error("PlaySound without an audio context should be a no-op")
	}
	am.PlayCue(CueClosed)
}

func TestPlayCueUnknownCue(t *testing.T) {
	am, _ := newTestAudioManager(t, nil)
	if am.PlaySound("missing") {
		t.Error("unknown cue should not play")
	}
}

func TestAudioManagerWithContext(t *testing.T) {
	rm := NewResourceManager()
	if err := rm.LoadSoundCues(testSounds(), rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("LoadSoundCues failed: %v", err)
	}

	am := NewAudioManager(testAudioContext, rm, nil)
	am.Preload([]SoundCue{CueClick})
	if len(am.soundPlayers) != 1 {
		t.Errorf("expected 1 cached player, got %d", len(am.soundPlayers))
	}
}
