package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 图像可能是真实素材,也可能是资源缺失时的占位色块
type SpriteComponent struct {
	Image *ebiten.Image
}
