package entities

import (
	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/ecs"
)

// NewEnemy 创建敌机实体
// 敌机出生在屏幕顶部之外（整机刚好不可见）,以给定速度垂直下落
// 水平出生点由出怪系统随机决定后传入
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源加载器（加载敌机贴图）
//   - x: 敌机左上角的水平出生位置
//   - speed: 下落速度（像素/帧）
//
// 返回：
//   - 敌机实体ID
func NewEnemy(
	em *ecs.EntityManager,
	rm ResourceLoader,
	x float64,
	speed float64,
) ecs.EntityID {
	img := rm.LoadImageByID("IMAGE_ENEMY")
	width := float64(img.Bounds().Dx())
	height := float64(img.Bounds().Dy())

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: -height,
	})

	ecs.AddComponent(em, entity, &components.VelocityComponent{
		VY: speed,
	})

	ecs.AddComponent(em, entity, &components.SpriteComponent{
		Image: img,
	})

	ecs.AddComponent(em, entity, &components.CollisionComponent{
		Width:  width,
		Height: height,
	})

	ecs.AddComponent(em, entity, &components.EnemyComponent{})

	return entity
}
