package systems

import (
	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 管理游戏世界实体的渲染
//
// 职责范围：
//   - 游戏世界实体：玩家飞船、子弹、敌机
//   - 所有这些实体使用 SpriteComponent 进行渲染
//
// 不包括：
//   - UI 元素（按钮、滑块等）由 ButtonRenderSystem 和场景自行绘制
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有拥有位置和精灵组件的实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if sprite == nil || sprite.Image == nil || pos == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(sprite.Image, op)
	}
}
