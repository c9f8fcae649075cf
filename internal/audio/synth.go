// Package audio 合成游戏提示音
//
// 提示音全部在启动时由参数合成（不依赖音频文件），
// 由 beep streamer 组合生成，再渲染为 Ebitengine 可直接播放的 PCM 数据。
package audio

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate 与 Ebitengine 音频上下文一致的采样率
const SampleRate = beep.SampleRate(48000)

// minFrequency 频率滑动的下限，避免相位停滞
const minFrequency = 20.0

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveSaw
	WaveNoise
)

// ErrUnknownWave 未知波形名称
var ErrUnknownWave = errors.New("unknown wave type")

// ParseWave 解析 settings.yaml 中的波形名称
func ParseWave(name string) (WaveType, error) {
	switch name {
	case "sine", "":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "triangle":
		return WaveTriangle, nil
	case "saw":
		return WaveSaw, nil
	case "noise":
		return WaveNoise, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWave, name)
	}
}

// Params 单个提示音的合成参数
type Params struct {
	Wave      WaveType
	Frequency float64       // 基础频率 Hz
	Slide     float64       // 频率变化速度 Hz/秒
	Attack    time.Duration // 起音
	Sustain   time.Duration // 持续
	Release   time.Duration // 释音
	Volume    float64       // 0.0 ~ 1.0
	Notes     []float64     // 琶音：按顺序播放的频率倍数，为空时只播放一个音
}

// Duration 单个音符的时长
func (p Params) Duration() time.Duration {
	return p.Attack + p.Sustain + p.Release
}

// TotalDuration 整个提示音的时长
func (p Params) TotalDuration() time.Duration {
	n := len(p.Notes)
	if n == 0 {
		n = 1
	}
	return time.Duration(n) * p.Duration()
}

// Validate 检查参数是否可合成
func (p Params) Validate() error {
	if p.Frequency <= 0 && p.Wave != WaveNoise {
		return fmt.Errorf("frequency must be positive, got %v", p.Frequency)
	}
	if p.Duration() <= 0 {
		return errors.New("attack + sustain + release must be positive")
	}
	if p.Volume < 0 || p.Volume > 1 {
		return fmt.Errorf("volume must be within [0, 1], got %v", p.Volume)
	}
	for i, ratio := range p.Notes {
		if ratio <= 0 {
			return fmt.Errorf("notes[%d]: ratio must be positive, got %v", i, ratio)
		}
	}
	return nil
}

// oscillator 生成原始波形，支持线性频率滑动
type oscillator struct {
	freq     float64
	slide    float64 // Hz/秒
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator 创建振荡器
func NewOscillator(freq, slide float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &oscillator{
		freq:     freq,
		slide:    slide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.rate)
		if freq < minFrequency {
			freq = minFrequency
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 起音-持续-释音包络
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	sustainSamples int
	releaseSamples int
}

// NewEnvelope 为 streamer 施加线性起音/释音包络
func NewEnvelope(s beep.Streamer, attack, sustain, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		sustainSamples: rate.N(sustain),
		releaseSamples: rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.attackSamples + e.sustainSamples
	total := releaseStart + e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attackSamples:
			vol = float64(e.position) / float64(e.attackSamples)
		case e.position >= releaseStart && e.releaseSamples > 0:
			vol = float64(total-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 线性音量转换为 effects.Volume（以 2 为底）
// math.Log2(0) 为 -Inf，0 音量直接静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Build 按参数组合出提示音 streamer
// 有 Notes 时依次播放每个音符（琶音），否则播放单个音
func Build(p Params, rate beep.SampleRate, rng *rand.Rand) (beep.Streamer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	ratios := p.Notes
	if len(ratios) == 0 {
		ratios = []float64{1}
	}

	notes := make([]beep.Streamer, 0, len(ratios))
	for _, ratio := range ratios {
		osc := NewOscillator(p.Frequency*ratio, p.Slide, p.Duration(), p.Wave, rate, rng)
		shaped := NewEnvelope(osc, p.Attack, p.Sustain, p.Release, rate)
		// 限定长度，保证 Seq 按音符切换
		notes = append(notes, beep.Take(rate.N(p.Duration()), shaped))
	}

	return newVolume(beep.Seq(notes...), p.Volume), nil
}

// Synthesize 合成提示音并渲染为 16-bit 立体声 PCM
func Synthesize(p Params, rate beep.SampleRate, rng *rand.Rand) ([]byte, error) {
	s, err := Build(p, rate, rng)
	if err != nil {
		return nil, err
	}
	return Render(s, rate.N(p.TotalDuration()))
}
