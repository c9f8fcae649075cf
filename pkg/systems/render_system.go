package systems

import (
	"image"
	"strings"

	"github.com/decker502/shroom/pkg/components"
	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/ecs"
	"github.com/decker502/shroom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// renderLayers 绘制顺序：场景层在下，界面层在上
var renderLayers = []config.Layer{config.LayerScene, config.LayerUI}

// RenderSystem 按层级绘制所有可见实体
//
// 每个实体按组件类型依次绘制：面板 -> 精灵 -> 文字
// 同一层内按实体创建顺序绘制，后创建的在上层
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有层
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, layer := range renderLayers {
		s.DrawLayer(screen, layer)
	}
}

// DrawLayer 绘制指定层的实体
func (s *RenderSystem) DrawLayer(screen *ebiten.Image, layer config.Layer) {
	for _, id := range s.EntitiesInLayer(layer) {
		s.drawEntity(screen, id)
	}
}

// EntitiesInLayer 返回指定层的可绘制实体（按绘制顺序）
func (s *RenderSystem) EntitiesInLayer(layer config.Layer) []ecs.EntityID {
	entities := ecs.GetEntitiesWith2[*components.LayerComponent, *components.PositionComponent](s.entityManager)

	result := make([]ecs.EntityID, 0, len(entities))
	for _, id := range entities {
		lc, _ := ecs.GetComponent[*components.LayerComponent](s.entityManager, id)
		if lc.Layer == layer {
			result = append(result, id)
		}
	}
	return result
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	em := s.entityManager
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	if panel, ok := ecs.GetComponent[*components.PanelComponent](em, id); ok {
		drawPanel(screen, pos, panel)
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		scale, _ := ecs.GetComponent[*components.ScaleComponent](em, id)
		highlight, _ := ecs.GetComponent[*components.HoverHighlightComponent](em, id)
		drawSprite(screen, pos, sprite, scale, highlight)
	}
	if txt, ok := ecs.GetComponent[*components.TextComponent](em, id); ok {
		drawText(screen, pos, txt)
	}
}

// drawSprite 以图像中心为锚点绘制精灵
func drawSprite(screen *ebiten.Image, pos *components.PositionComponent, sprite *components.SpriteComponent, scale *components.ScaleComponent, highlight *components.HoverHighlightComponent) {
	if sprite.Image == nil || sprite.Alpha <= 0 {
		return
	}

	bounds := sprite.Image.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	if scale != nil {
		op.GeoM.Scale(scale.ScaleX, scale.ScaleY)
	}
	if sprite.Rotation != 0 {
		op.GeoM.Rotate(sprite.Rotation)
	}
	op.GeoM.Translate(pos.X, pos.Y)
	if highlight != nil && highlight.IsActive {
		k := float32(1 + highlight.Intensity)
		op.ColorScale.Scale(k, k, k, 1)
	}
	op.ColorScale.ScaleAlpha(float32(sprite.Alpha))
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(sprite.Image, op)
}

// drawPanel 绘制面板：平铺纹理或纯色填充，再叠加描边
func drawPanel(screen *ebiten.Image, pos *components.PositionComponent, panel *components.PanelComponent) {
	if panel.Alpha <= 0 {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(panel.Width), float32(panel.Height)

	if panel.Tile != nil {
		drawTiled(screen, panel.Tile, pos.X, pos.Y, panel.Width, panel.Height, panel.Alpha)
	} else {
		fill := panel.Fill
		fill.A = uint8(float64(fill.A) * panel.Alpha)
		vector.FillRect(screen, x, y, w, h, fill, false)
	}

	if panel.OutlineWidth > 0 {
		outline := panel.Outline
		outline.A = uint8(float64(outline.A) * panel.Alpha)
		vector.StrokeRect(screen, x, y, w, h, float32(panel.OutlineWidth), outline, true)
	}
}

// drawTiled 在矩形内平铺纹理，超出部分裁剪
func drawTiled(screen, tile *ebiten.Image, x, y, w, h, alpha float64) {
	rect := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(screen.Bounds())
	if rect.Empty() {
		return
	}
	dst := screen.SubImage(rect).(*ebiten.Image)

	tw, th := float64(tile.Bounds().Dx()), float64(tile.Bounds().Dy())
	if tw <= 0 || th <= 0 {
		return
	}

	for ty := y; ty < y+h; ty += th {
		for tx := x; tx < x+w; tx += tw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(tx, ty)
			op.ColorScale.ScaleAlpha(float32(alpha))
			dst.DrawImage(tile, op)
		}
	}
}

// drawText 绘制文字，垂直居中于锚点
func drawText(screen *ebiten.Image, pos *components.PositionComponent, txt *components.TextComponent) {
	if txt.Face == nil || txt.Text == "" || txt.Alpha <= 0 {
		return
	}

	content := txt.Text
	if txt.MaxWidth > 0 {
		lines := utils.WrapText(txt.Text, txt.Face, txt.MaxWidth)
		content = strings.Join(lines, "\n")
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.LineSpacing = txt.Face.Size * 1.25
	op.SecondaryAlign = text.AlignCenter
	switch txt.Align {
	case components.AlignLeft:
		op.PrimaryAlign = text.AlignStart
	case components.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignCenter
	}
	op.ColorScale.ScaleWithColor(txt.Color)
	op.ColorScale.ScaleAlpha(float32(txt.Alpha))

	text.Draw(screen, content, txt.Face, op)
}
