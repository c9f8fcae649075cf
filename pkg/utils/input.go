// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerEventKind 原始指针事件类型
type PointerEventKind int

const (
	// PointerTouchStart 一个手指按下
	PointerTouchStart PointerEventKind = iota
	// PointerClick 点击类事件（鼠标按下，或所有手指抬起）
	PointerClick
)

// String 返回事件类型名
func (k PointerEventKind) String() string {
	switch k {
	case PointerTouchStart:
		return "touchstart"
	case PointerClick:
		return "click"
	default:
		return "unknown"
	}
}

// PointerEvent 未经去重的原始指针事件
// 去重由 game.InputClassifier 负责
type PointerEvent struct {
	Kind PointerEventKind
	X, Y float64

	// ActiveTouches 触摸开始时屏幕上的同时触摸数（仅 PointerTouchStart 有效）
	ActiveTouches int
}

// PointerSource 每帧的输入快照来源
// 默认实现读取 Ebitengine 输入状态，测试中可替换
type PointerSource interface {
	JustPressedTouchIDs() []ebiten.TouchID
	JustReleasedTouchIDs() []ebiten.TouchID
	ActiveTouchIDs() []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	MouseJustPressed() bool
	MouseJustReleased() bool
	CursorPosition() (int, int)
}

// ebitenSource 从 Ebitengine 读取输入
type ebitenSource struct{}

func (ebitenSource) JustPressedTouchIDs() []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(nil)
}

func (ebitenSource) JustReleasedTouchIDs() []ebiten.TouchID {
	return inpututil.AppendJustReleasedTouchIDs(nil)
}

func (ebitenSource) ActiveTouchIDs() []ebiten.TouchID {
	return ebiten.AppendTouchIDs(nil)
}

func (ebitenSource) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenSource) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (ebitenSource) MouseJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (ebitenSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// EbitenPointerSource 返回读取 Ebitengine 输入状态的 PointerSource
func EbitenPointerSource() PointerSource {
	return ebitenSource{}
}

// PointerPoller 将每帧的输入状态转换为原始指针事件
//
// 规则：
//   - 每个新按下的手指产生一个 PointerTouchStart，携带当时的同时触摸数
//   - 所有手指都抬起时产生一个 PointerClick，位置为最后一次触摸位置
//   - 鼠标左键按下产生一个 PointerClick
//   - EmulateTouch 模式下鼠标按下视为单指触摸开始，抬起视为点击（桌面调试触摸流程）
type PointerPoller struct {
	source       PointerSource
	emulateTouch bool

	// 保存最后一次触摸位置（用于触摸释放时获取位置）
	lastTouchX, lastTouchY int
	touching               bool
}

// NewPointerPoller 创建指针轮询器
//
// 参数：
//   - source: 输入来源，为 nil 时使用 Ebitengine
//   - emulateTouch: 是否把鼠标当作单指触摸
func NewPointerPoller(source PointerSource, emulateTouch bool) *PointerPoller {
	if source == nil {
		source = ebitenSource{}
	}
	return &PointerPoller{source: source, emulateTouch: emulateTouch}
}

// Poll 读取本帧的输入并把事件追加到 dst
func (p *PointerPoller) Poll(dst []PointerEvent) []PointerEvent {
	active := p.source.ActiveTouchIDs()

	pressed := p.source.JustPressedTouchIDs()
	released := p.source.JustReleasedTouchIDs()

	// 触摸开始
	for _, id := range pressed {
		x, y := p.source.TouchPosition(id)
		p.lastTouchX, p.lastTouchY = x, y
		p.touching = true
		dst = append(dst, PointerEvent{
			Kind:          PointerTouchStart,
			X:             float64(x),
			Y:             float64(y),
			ActiveTouches: len(active),
		})
	}

	// 跟踪主触摸点位置
	if len(active) > 0 {
		p.lastTouchX, p.lastTouchY = p.source.TouchPosition(active[0])
	}

	// 所有手指抬起
	if len(released) > 0 && len(active) == 0 && p.touching {
		p.touching = false
		dst = append(dst, PointerEvent{
			Kind: PointerClick,
			X:    float64(p.lastTouchX),
			Y:    float64(p.lastTouchY),
		})
	}

	// 有触摸活动的帧忽略鼠标，避免平台模拟的鼠标事件重复计数
	if p.touching || len(pressed) > 0 || len(released) > 0 {
		return dst
	}

	mx, my := p.source.CursorPosition()
	if p.emulateTouch {
		if p.source.MouseJustPressed() {
			dst = append(dst, PointerEvent{Kind: PointerTouchStart, X: float64(mx), Y: float64(my), ActiveTouches: 1})
		}
		if p.source.MouseJustReleased() {
			dst = append(dst, PointerEvent{Kind: PointerClick, X: float64(mx), Y: float64(my)})
		}
		return dst
	}

	if p.source.MouseJustPressed() {
		dst = append(dst, PointerEvent{Kind: PointerClick, X: float64(mx), Y: float64(my)})
	}
	return dst
}

// CursorPosition 当前指针位置（用于按钮悬停）
func (p *PointerPoller) CursorPosition() (float64, float64) {
	if p.touching {
		return float64(p.lastTouchX), float64(p.lastTouchY)
	}
	x, y := p.source.CursorPosition()
	return float64(x), float64(y)
}
