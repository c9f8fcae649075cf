package entities

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// mockResourceLoader 实现 ResourceLoader 接口，避免文件 I/O
// 所有已知精灵返回固定尺寸的空白图像
type mockResourceLoader struct {
	images map[string]*ebiten.Image
	source *text.GoTextFaceSource
}

// newMockResourceLoader 创建一个不需要文件的 mock 资源加载器
func newMockResourceLoader(spriteIDs ...string) *mockResourceLoader {
	images := make(map[string]*ebiten.Image, len(spriteIDs))
	for _, id := range spriteIDs {
		images[id] = ebiten.NewImage(32, 24)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	return &mockResourceLoader{images: images, source: source}
}

func (m *mockResourceLoader) LoadImage(id string) (*ebiten.Image, error) {
	img, ok := m.images[id]
	if !ok {
		return nil, fmt.Errorf("sprite %s not found", id)
	}
	return img, nil
}

func (m *mockResourceLoader) Face(size float64) *text.GoTextFace {
	if m.source == nil {
		return nil
	}
	return &text.GoTextFace{Source: m.source, Size: size}
}
