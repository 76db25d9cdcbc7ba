package entities

import (
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// mockResourceLoader 实现 ResourceLoader 接口，避免依赖嵌入文件系统
// 所有图片统一返回 10x10 的测试贴图，方便断言位置计算
type mockResourceLoader struct {
	loadedImageIDs []string
}

func newMockResourceLoader() *mockResourceLoader {
	return &mockResourceLoader{}
}

// LoadImageByID 返回固定尺寸的测试图像，无需文件 IO
func (m *mockResourceLoader) LoadImageByID(resourceID string) *ebiten.Image {
	m.loadedImageIDs = append(m.loadedImageIDs, resourceID)
	return ebiten.NewImage(10, 10)
}

// LoadFontByID 返回内置位图字体，无需文件 IO
func (m *mockResourceLoader) LoadFontByID(fontID string, size float64) text.Face {
	return text.NewGoXFace(bitmapfont.Face)
}

// Ensure mockResourceLoader implements ResourceLoader
var _ ResourceLoader = (*mockResourceLoader)(nil)
