package entities

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceLoader 工厂函数需要的资源接口
// game.ResourceManager 实现了该接口；测试中使用内存实现，避免文件 I/O
type ResourceLoader interface {
	LoadImage(id string) (*ebiten.Image, error)
	Face(size float64) *text.GoTextFace
}

// loadFace 获取指定字号的字体，字体未加载时返回错误
func loadFace(rl ResourceLoader, size float64) (*text.GoTextFace, error) {
	face := rl.Face(size)
	if face == nil {
		return nil, fmt.Errorf("font face %.1f not available", size)
	}
	return face, nil
}
