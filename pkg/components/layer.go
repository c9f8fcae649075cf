package components

import "github.com/decker502/shroom/pkg/config"

// LayerComponent 渲染层级
// RenderSystem 先绘制 LayerScene，再绘制 LayerUI；同一层内按创建顺序绘制
type LayerComponent struct {
	Layer config.Layer
}
