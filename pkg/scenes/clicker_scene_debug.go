package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/shroom/pkg/components"
	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	debugAreaColor  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	debugStageColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// drawDebug 绘制点击区域、当前阶段精灵边界和计数信息
func (s *ClickerScene) drawDebug(screen *ebiten.Image) {
	x, y, w, h := config.AreaBounds(s.settings)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, debugAreaColor, false)

	stage := ecs.EntityID(s.controller.StageHandle())
	pos, hasPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, stage)
	sprite, hasSprite := ecs.GetComponent[*components.SpriteComponent](s.entityManager, stage)
	if hasPos && hasSprite && sprite.Image != nil {
		sw := float64(sprite.Image.Bounds().Dx())
		sh := float64(sprite.Image.Bounds().Dy())
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, stage); ok {
			sw *= scale.ScaleX
			sh *= scale.ScaleY
		}
		vector.StrokeRect(screen, float32(pos.X-sw/2), float32(pos.Y-sh/2), float32(sw), float32(sh), 1, debugStageColor, false)
	}

	ebitenutil.DebugPrintAt(screen, s.snapshot(), 4, s.settings.Scene.Height-36)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("entities=%d touch=%v", s.entityManager.Count(), s.classifier.TouchCapable()), 4, s.settings.Scene.Height-20)
}

// snapshot 当前进度的一行摘要
func (s *ClickerScene) snapshot() string {
	return fmt.Sprintf("count=%d/%d stage=%s state=%s rounds=%d",
		s.controller.Count(), s.controller.Limit(), s.controller.Stage(), s.winFlow.State(), s.winFlow.Rounds())
}

// copySnapshot 把进度摘要复制到剪贴板（F2）
func (s *ClickerScene) copySnapshot() {
	text := s.snapshot()
	if err := s.writeClipboard(text); err != nil {
		log.Printf("[ClickerScene] Warning: clipboard unavailable: %v", err)
		return
	}
	log.Printf("[ClickerScene] Copied snapshot: %s", text)
}
