package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"log"
	"math/rand"
	"path"
	"time"

	synth "github.com/decker502/shroom/internal/audio"
	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// 资源路径约定
const (
	spriteDir = "assets/sprites"
	fontDir   = "assets/fonts"

	// BuiltinFontID 内置字体，不需要字体文件
	BuiltinFontID = "goregular"
)

// ResourceManager is responsible for centralized management of game resources.
// Sprites are looked up by ID (assets/sprites/<id>.png in the embedded FS),
// faces are derived from a single font source, and sound cues are synthesized
// into PCM buffers once at startup.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All resources are loaded in the
// main goroutine before the game loop starts.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // sprite ID -> Image
	fontSource    *text.GoTextFaceSource      // 当前字体
	fontID        string                      // 当前字体 ID
	fontFaceCache map[string]*text.GoTextFace // "<fontID>:<size>" -> face
	cueCache      map[SoundCue][]byte         // 提示音 -> PCM
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[string]*text.GoTextFace),
		cueCache:      make(map[SoundCue][]byte),
	}
}

// LoadAssets 预加载精灵和字体，启动时调用一次
//
// 任何一个资源加载失败都会返回错误（启动失败）
func (rm *ResourceManager) LoadAssets(spriteIDs []string, fontID string) error {
	for _, id := range spriteIDs {
		if _, err := rm.LoadImage(id); err != nil {
			return err
		}
	}

	if err := rm.LoadFont(fontID); err != nil {
		return err
	}

	log.Printf("[ResourceManager] Loaded %d sprites, font=%s", len(spriteIDs), fontID)
	return nil
}

// SpritePath 返回精灵 ID 对应的嵌入资源路径
func SpritePath(id string) string {
	return path.Join(spriteDir, id+".png")
}

// LoadImage loads a sprite by ID and caches it for future use.
// If the image has already been loaded, it returns the cached version.
func (rm *ResourceManager) LoadImage(id string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[id]; exists {
		return cachedImage, nil
	}

	p := SpritePath(id)
	file, err := embedded.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[id] = ebitenImg

	return ebitenImg, nil
}

// GetImage 返回已加载的精灵，未加载时返回 nil
func (rm *ResourceManager) GetImage(id string) *ebiten.Image {
	return rm.imageCache[id]
}

// LoadFont 加载字体源
// BuiltinFontID 使用 Go 自带字体，其他 ID 从 assets/fonts/<id>.ttf 读取
func (rm *ResourceManager) LoadFont(fontID string) error {
	if rm.fontSource != nil && rm.fontID == fontID {
		return nil
	}

	var fontData []byte
	if fontID == BuiltinFontID || fontID == "" {
		fontData = goregular.TTF
	} else {
		p := path.Join(fontDir, fontID+".ttf")
		data, err := embedded.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read font file %s: %w", p, err)
		}
		fontData = data
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return fmt.Errorf("failed to create font source for %s: %w", fontID, err)
	}

	rm.fontSource = source
	rm.fontID = fontID
	rm.fontFaceCache = make(map[string]*text.GoTextFace)
	return nil
}

// Face 返回指定字号的字体
// 未调用 LoadFont 时返回 nil
func (rm *ResourceManager) Face(size float64) *text.GoTextFace {
	if rm.fontSource == nil {
		return nil
	}

	cacheKey := fmt.Sprintf("%s:%.1f", rm.fontID, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace
	}

	goTextFace := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace
}

// LoadSoundCues 按配置合成所有提示音
//
// 参数：
//   - sounds: 提示音 ID -> 合成参数
//   - rng: 噪声波形使用的随机源
func (rm *ResourceManager) LoadSoundCues(sounds map[string]config.SoundConfig, rng *rand.Rand) error {
	for _, name := range config.CueOrder {
		sc, ok := sounds[name]
		if !ok {
			return fmt.Errorf("%w: %s", config.ErrMissingSound, name)
		}

		params, err := SoundParams(sc)
		if err != nil {
			return fmt.Errorf("sound %s: %w", name, err)
		}

		pcm, err := synth.Synthesize(params, synth.SampleRate, rng)
		if err != nil {
			return fmt.Errorf("failed to synthesize sound %s: %w", name, err)
		}
		rm.cueCache[SoundCue(name)] = pcm
	}

	log.Printf("[ResourceManager] Synthesized %d sound cues", len(rm.cueCache))
	return nil
}

// GetCue 返回已合成的提示音 PCM，未合成时返回 nil
func (rm *ResourceManager) GetCue(cue SoundCue) []byte {
	return rm.cueCache[cue]
}

// SoundParams 把配置中的秒数换算为合成参数
func SoundParams(sc config.SoundConfig) (synth.Params, error) {
	wave, err := synth.ParseWave(sc.Wave)
	if err != nil {
		return synth.Params{}, err
	}

	params := synth.Params{
		Wave:      wave,
		Frequency: sc.Frequency,
		Slide:     sc.Slide,
		Attack:    seconds(sc.Attack),
		Sustain:   seconds(sc.Sustain),
		Release:   seconds(sc.Release),
		Volume:    sc.Volume,
		Notes:     append([]float64(nil), sc.Notes...),
	}
	if err := params.Validate(); err != nil {
		return synth.Params{}, err
	}
	return params, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
