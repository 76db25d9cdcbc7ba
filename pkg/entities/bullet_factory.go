package entities

import (
	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
)

// NewBullet 创建子弹实体
// 子弹从发射者顶部中央射出,以固定速度垂直向上飞行
// 出生高度与发射者顶部对齐
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源加载器（加载子弹贴图）
//   - shooterX, shooterY: 发射者左上角位置
//   - shooterWidth: 发射者宽度（用于水平居中）
//
// 返回：
//   - 子弹实体ID
func NewBullet(
	em *ecs.EntityManager,
	rm ResourceLoader,
	shooterX, shooterY float64,
	shooterWidth float64,
) ecs.EntityID {
	img := rm.LoadImageByID("IMAGE_BULLET")
	width := float64(img.Bounds().Dx())
	height := float64(img.Bounds().Dy())

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: shooterX + (shooterWidth-width)/2,
		Y: shooterY,
	})

	ecs.AddComponent(em, entity, &components.VelocityComponent{
		VY: -config.BulletSpeed,
	})

	ecs.AddComponent(em, entity, &components.SpriteComponent{
		Image: img,
	})

	ecs.AddComponent(em, entity, &components.CollisionComponent{
		Width:  width,
		Height: height,
	})

	ecs.AddComponent(em, entity, &components.BulletComponent{})

	return entity
}
