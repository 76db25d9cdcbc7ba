package systems

import (
	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
)

// MovementSystem 移动系统
// 按速度分量推进所有可移动实体的位置
//
// 职责：
//   - 每逻辑帧将 VelocityComponent 累加到 PositionComponent
//   - 玩家飞船水平方向限制在屏幕范围内
//   - 子弹飞出屏幕顶部后销毁
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
	}
}

// Update 推进所有拥有位置和速度组件的实体
//
// 速度单位为 像素/逻辑帧，按 deltaTime 折算为实际位移，
// 固定步长下每帧恰好推进一个速度分量
func (s *MovementSystem) Update(deltaTime float64) {
	// 本帧对应的逻辑帧数
	ticks := deltaTime * config.TicksPerSecond

	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.entityManager)

	for _, entityID := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, entityID)

		if pos == nil || vel == nil {
			continue
		}

		pos.X += vel.VX * ticks
		pos.Y += vel.VY * ticks

		// 玩家飞船不允许移出屏幕左右边界
		if _, isPlayer := ecs.GetComponent[*components.PlayerComponent](s.entityManager, entityID); isPlayer {
			s.clampToScreen(pos, entityID)
			continue
		}

		// 子弹完全飞出屏幕顶部后销毁
		if _, isBullet := ecs.GetComponent[*components.BulletComponent](s.entityManager, entityID); isBullet {
			if pos.Y+s.entityHeight(entityID) < 0 {
				s.entityManager.DestroyEntity(entityID)
			}
		}
	}
}

// clampToScreen 将实体的水平位置限制在屏幕范围内
func (s *MovementSystem) clampToScreen(pos *components.PositionComponent, entityID ecs.EntityID) {
	width := s.entityWidth(entityID)

	if pos.X < 0 {
		pos.X = 0
	}
	if maxX := float64(config.GameWindowWidth) - width; pos.X > maxX {
		pos.X = maxX
	}
}

// entityWidth 返回实体的显示宽度，优先取精灵图片尺寸
func (s *MovementSystem) entityWidth(entityID ecs.EntityID) float64 {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entityID); ok && sprite.Image != nil {
		return float64(sprite.Image.Bounds().Dx())
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, entityID); ok {
		return col.Width
	}
	return 0
}

// entityHeight 返回实体的显示高度，优先取精灵图片尺寸
func (s *MovementSystem) entityHeight(entityID ecs.EntityID) float64 {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entityID); ok && sprite.Image != nil {
		return float64(sprite.Image.Bounds().Dy())
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, entityID); ok {
		return col.Height
	}
	return 0
}
