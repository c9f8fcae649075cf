package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// 布局配置常量
// 画布为固定尺寸的竖屏（与移动端一致），窗口缩放由 Ebitengine 负责

const (
	// ScreenWidth 逻辑画布宽度
	ScreenWidth = 360

	// ScreenHeight 逻辑画布高度
	ScreenHeight = 640

	// WindowScale 桌面端初始窗口缩放倍数
	WindowScale = 1
)

// Layer 渲染层级
// scene 层先绘制，ui 层后绘制
type Layer int

const (
	// LayerScene 场景层（可点击区域、蘑菇、粒子）
	LayerScene Layer = iota
	// LayerUI 界面层（顶部面板、分数、提示面板、按钮）
	LayerUI
)

// AreaCenter 返回可点击区域中心（屏幕中心）
func AreaCenter(s *Settings) (x, y float64) {
	return float64(s.Scene.Width) / 2, float64(s.Scene.Height) / 2
}

// AreaBounds 返回可点击区域的屏幕矩形
// 返回值：minX, minY, maxX, maxY
func AreaBounds(s *Settings) (float64, float64, float64, float64) {
	cx, cy := AreaCenter(s)
	halfW := s.Area.Width / 2
	halfH := s.Area.Height / 2
	return cx - halfW, cy - halfH, cx + halfW, cy + halfH
}

// InArea 判断屏幕坐标是否落在可点击区域内
func InArea(s *Settings, x, y float64) bool {
	minX, minY, maxX, maxY := AreaBounds(s)
	return x >= minX && x <= maxX && y >= minY && y <= maxY
}

// StageScreenPosition 将阶段的相对坐标换算为屏幕坐标
func StageScreenPosition(s *Settings, stage StageConfig) (x, y float64) {
	cx, cy := AreaCenter(s)
	return cx + stage.X, cy + stage.Y
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA" 颜色
func ParseHexColor(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #RRGGBBAA", hex)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	if len(h) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor 解析颜色，失败时返回 fallback
func MustColor(hex string, fallback color.RGBA) color.RGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return c
}
