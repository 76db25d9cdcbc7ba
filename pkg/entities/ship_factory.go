package entities

import (
	"fmt"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
)

// ShipImageID 返回指定飞船样式的图片资源ID
// 样式索引从 0 开始,资源ID从 1 开始编号（IMAGE_SHIP_1 ~ IMAGE_SHIP_3）
func ShipImageID(shipIndex int) string {
	return fmt.Sprintf("IMAGE_SHIP_%d", shipIndex+1)
}

// NewPlayerShip 创建玩家飞船实体
// 飞船出生在水平居中、距底部固定偏移的位置,初速为零
// 碰撞盒与贴图同尺寸,素材缺失时贴图是占位图,不影响实体装配
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源加载器（加载飞船贴图）
//   - shipIndex: 飞船样式索引 (0-2),越界时归零
//
// 返回：
//   - 玩家飞船实体ID
func NewPlayerShip(em *ecs.EntityManager, rm ResourceLoader, shipIndex int) ecs.EntityID {
	if shipIndex < 0 || shipIndex >= config.ShipStyleCount {
		shipIndex = 0
	}

	img := rm.LoadImageByID(ShipImageID(shipIndex))
	width := float64(img.Bounds().Dx())
	height := float64(img.Bounds().Dy())

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: (config.GameWindowWidth - width) / 2,
		Y: config.GameWindowHeight - config.PlayerSpawnOffsetY,
	})

	ecs.AddComponent(em, entity, &components.VelocityComponent{})

	ecs.AddComponent(em, entity, &components.SpriteComponent{
		Image: img,
	})

	ecs.AddComponent(em, entity, &components.CollisionComponent{
		Width:  width,
		Height: height,
	})

	ecs.AddComponent(em, entity, &components.PlayerComponent{
		ShipIndex: shipIndex,
	})

	return entity
}
