package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/shroom/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsPath 嵌入资源中的默认配置文件路径
const DefaultSettingsPath = "data/settings.yaml"

// 阶段名称（settings.yaml 中 stages 的键）
// 顺序即成长顺序：种子 -> 小 -> 中 -> 大 -> 最终
const (
	StageSeed   = "seed"
	StageSmall  = "small"
	StageMedium = "medium"
	StageLarge  = "large"
	StageFinal  = "final"
)

// StageOrder 按成长顺序排列的阶段名称
var StageOrder = []string{StageSeed, StageSmall, StageMedium, StageLarge, StageFinal}

// 提示音 ID（settings.yaml 中 sounds 的键）
const (
	CueClick  = "click"
	CueUp     = "up"
	CueWinner = "winner"
	CueClosed = "closed"
)

// CueOrder 所有必须配置的提示音
var CueOrder = []string{CueClick, CueUp, CueWinner, CueClosed}

// 配置校验错误
var (
	ErrInvalidLimit      = errors.New("clickLimit must be greater than 0")
	ErrInvalidGrowPoints = errors.New("growPoints must be 3 strictly increasing values in (0, clickLimit)")
	ErrEmptyNotices      = errors.New("notices must contain at least one message")
	ErrMissingStage      = errors.New("stage is not configured")
	ErrEmptyVibration    = errors.New("vibration pattern must not be empty")
	ErrMissingSound      = errors.New("sound cue is not configured")
	ErrInvalidScene      = errors.New("scene size must be positive")
	ErrUnknownSprite     = errors.New("sprite is not listed in sprites")
	ErrMissingClose      = errors.New("notification.closeSprite is not configured")
	ErrFinalScale        = errors.New("final stage must be scaled larger than the other stages")
)

// Settings 游戏静态配置
// 对应 data/settings.yaml，启动时加载一次，运行期间只读
type Settings struct {
	Sprites []string `yaml:"sprites"` // 需要预加载的精灵 ID
	Font    string   `yaml:"font"`    // 字体 ID

	Scene    SceneConfig    `yaml:"scene"`
	Area     AreaConfig     `yaml:"area"`
	TopPanel TopPanelConfig `yaml:"topPanel"`
	Score    ScoreConfig    `yaml:"score"`

	Stages     map[string]StageConfig `yaml:"stages"`     // 阶段名 -> 精灵/位置/缩放
	GrowPoints []int                  `yaml:"growPoints"` // 成长阈值 {s, m, l}
	ClickLimit int                    `yaml:"clickLimit"` // 胜利阈值

	Vibration []int                  `yaml:"vibration"` // 震动模式（毫秒，开/关交替）
	Sounds    map[string]SoundConfig `yaml:"sounds"`    // 提示音 ID -> 合成参数

	Notices        []string             `yaml:"notices"` // 胜利提示文案池
	Notification   NotificationConfig   `yaml:"notification"`
	FloatingSymbol FloatingSymbolConfig `yaml:"floatingSymbol"`
	Scatter        ScatterConfig        `yaml:"scatter"`
}

// SceneConfig 画布配置
type SceneConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // 背景色 "#RRGGBB"
}

// AreaConfig 可点击区域配置
// 区域以屏幕中心为锚点，阶段精灵坐标相对于区域中心
type AreaConfig struct {
	Sprite string  `yaml:"sprite"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TopPanelConfig 顶部分数面板
type TopPanelConfig struct {
	Sprite       string  `yaml:"sprite"` // 平铺纹理
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	OutlineWidth float64 `yaml:"outlineWidth"`
}

// ScoreConfig 分数文字
type ScoreConfig struct {
	FontSize float64 `yaml:"fontSize"`
	Padding  float64 `yaml:"padding"` // 距离面板右边缘的距离
	Color    string  `yaml:"color"`
}

// StageConfig 单个成长阶段的显示参数
type StageConfig struct {
	Sprite string  `yaml:"sprite"`
	X      float64 `yaml:"x"` // 相对区域中心的 X 偏移
	Y      float64 `yaml:"y"` // 相对区域中心的 Y 偏移
	Scale  float64 `yaml:"scale"`
}

// SoundConfig 提示音合成参数
type SoundConfig struct {
	Wave      string    `yaml:"wave"`      // sine | square | triangle | saw | noise
	Frequency float64   `yaml:"frequency"` // 基础频率 Hz
	Slide     float64   `yaml:"slide"`     // 频率滑动 Hz/秒
	Attack    float64   `yaml:"attack"`    // 秒
	Sustain   float64   `yaml:"sustain"`   // 秒
	Release   float64   `yaml:"release"`   // 秒
	Volume    float64   `yaml:"volume"`    // 0.0 ~ 1.0
	Notes     []float64 `yaml:"notes,omitempty"`
}

// NotificationConfig 胜利提示面板
type NotificationConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Y           float64 `yaml:"y"`
	FontSize    float64 `yaml:"fontSize"`
	FadeIn      float64 `yaml:"fadeIn"` // 秒
	Background  string  `yaml:"background"`
	CloseSprite string  `yaml:"closeSprite"`
	CloseOffset float64 `yaml:"closeOffset"` // 关闭按钮距面板底部的距离
}

// FloatingSymbolConfig 漂浮符号效果
type FloatingSymbolConfig struct {
	Text     string  `yaml:"text"`
	FontSize float64 `yaml:"fontSize"`
	Jitter   float64 `yaml:"jitter"`   // 水平随机偏移范围（±）
	Rise     float64 `yaml:"rise"`     // 上升距离
	Duration float64 `yaml:"duration"` // 秒
	Color    string  `yaml:"color"`
}

// ScatterConfig 径向散射粒子
type ScatterConfig struct {
	Sprite   string  `yaml:"sprite"`
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`
	Lifetime float64 `yaml:"lifetime"` // 秒
	Scale    float64 `yaml:"scale"`
}

// LoadSettings 从嵌入资源加载配置
func LoadSettings(path string) (*Settings, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return ParseSettings(data, path)
}

// LoadSettingsFile 从磁盘加载配置（--config 覆盖）
func LoadSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return ParseSettings(data, path)
}

// ParseSettings 解析并校验 YAML 配置
// source 仅用于错误信息
func ParseSettings(data []byte, source string) (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML from %s: %w", source, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", source, err)
	}

	return &settings, nil
}

// Validate 校验配置的完整性
// 保证 0 < s < m < l < clickLimit，文案池非空，所有阶段和提示音都已配置
func (s *Settings) Validate() error {
	if s.Scene.Width <= 0 || s.Scene.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidScene, s.Scene.Width, s.Scene.Height)
	}

	if s.ClickLimit <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, s.ClickLimit)
	}

	if err := ValidateGrowPoints(s.GrowPoints, s.ClickLimit); err != nil {
		return err
	}

	if len(s.Notices) == 0 {
		return ErrEmptyNotices
	}

	if len(s.Vibration) == 0 {
		return ErrEmptyVibration
	}
	for i, ms := range s.Vibration {
		if ms < 0 {
			return fmt.Errorf("vibration[%d]: duration cannot be negative, got %d", i, ms)
		}
	}

	for _, name := range StageOrder {
		stage, ok := s.Stages[name]
		if !ok || stage.Sprite == "" {
			return fmt.Errorf("%w: %s", ErrMissingStage, name)
		}
		if stage.Scale <= 0 {
			return fmt.Errorf("stage %s: scale must be positive, got %v", name, stage.Scale)
		}
	}

	final := s.Stages[StageFinal].Scale
	for _, name := range StageOrder[:len(StageOrder)-1] {
		if scale := s.Stages[name].Scale; final <= scale {
			return fmt.Errorf("%w: final %v <= %s %v", ErrFinalScale, final, name, scale)
		}
	}

	if s.Notification.CloseSprite == "" {
		return ErrMissingClose
	}

	// 运行期才创建的精灵（阶段、关闭按钮）也必须在启动时可加载
	listed := make(map[string]bool, len(s.Sprites))
	for _, id := range s.Sprites {
		listed[id] = true
	}
	for _, id := range s.ReferencedSprites() {
		if !listed[id] {
			return fmt.Errorf("%w: %s", ErrUnknownSprite, id)
		}
	}

	for _, cue := range CueOrder {
		if _, ok := s.Sounds[cue]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingSound, cue)
		}
	}

	return nil
}

// ReferencedSprites 返回配置中引用的所有精灵 ID（去重，按出现顺序）
func (s *Settings) ReferencedSprites() []string {
	var ids []string
	seen := make(map[string]bool)
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	add(s.Area.Sprite)
	add(s.TopPanel.Sprite)
	for _, name := range StageOrder {
		add(s.Stages[name].Sprite)
	}
	add(s.Notification.CloseSprite)
	add(s.Scatter.Sprite)
	return ids
}

// ValidateGrowPoints 校验成长阈值表
func ValidateGrowPoints(points []int, limit int) error {
	if len(points) != 3 {
		return fmt.Errorf("%w: got %d values", ErrInvalidGrowPoints, len(points))
	}

	prev := 0
	for _, p := range points {
		if p <= prev || p >= limit {
			return fmt.Errorf("%w: %v with limit %d", ErrInvalidGrowPoints, points, limit)
		}
		prev = p
	}

	return nil
}

// Stage 返回指定阶段配置
func (s *Settings) Stage(name string) StageConfig {
	return s.Stages[name]
}
