package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopxl/beep"
)

// bytesPerFrame 16-bit 立体声一帧的字节数
const bytesPerFrame = 4

// renderChunk 每次从 streamer 读取的帧数
const renderChunk = 512

// Render 把 streamer 渲染为 16-bit 有符号小端立体声 PCM
// 最多读取 maxFrames 帧；streamer 提前结束时返回已读取部分
//
// 输出格式与 audio.Context.NewPlayerFromBytes 要求一致
func Render(s beep.Streamer, maxFrames int) ([]byte, error) {
	if maxFrames <= 0 {
		return nil, fmt.Errorf("invalid frame count %d", maxFrames)
	}

	buf := bytes.NewBuffer(make([]byte, 0, maxFrames*bytesPerFrame))
	samples := make([][2]float64, renderChunk)
	frames := 0

	for frames < maxFrames {
		want := renderChunk
		if remaining := maxFrames - frames; remaining < want {
			want = remaining
		}

		n, ok := s.Stream(samples[:want])
		for i := 0; i < n; i++ {
			left := toInt16(samples[i][0])
			right := toInt16(samples[i][1])
			if err := binary.Write(buf, binary.LittleEndian, [2]int16{left, right}); err != nil {
				return nil, fmt.Errorf("failed to encode PCM frame: %w", err)
			}
		}
		frames += n

		if !ok || n == 0 {
			break
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("stream error: %w", err)
	}
	return buf.Bytes(), nil
}

// toInt16 把 [-1, 1] 的浮点采样转换为 16-bit，超出范围时截断
func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
