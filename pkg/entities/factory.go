package entities

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/starshooter/pkg/game"
)

// ResourceLoader 定义实体工厂需要的资源加载能力
// 生产代码传入 *game.ResourceManager；测试传入无文件 IO 的 mock
//
// 两个方法都保证返回可用对象（缺失资源会得到占位图/内置字体），
// 因此工厂不需要错误分支
type ResourceLoader interface {
	LoadImageByID(resourceID string) *ebiten.Image
	LoadFontByID(fontID string, size float64) text.Face
}

// Ensure game.ResourceManager implements ResourceLoader (at compile time)
var _ ResourceLoader = (*game.ResourceManager)(nil)
