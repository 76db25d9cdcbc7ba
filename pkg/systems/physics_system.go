package systems

import (
	"log"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/game"
	"github.com/gonewx/starshooter/pkg/utils"
)

// PhysicsSystem 处理游戏物理逻辑
// 负责碰撞检测和失败条件判定
//
// 职责：
//   - 子弹与敌机碰撞：双方销毁，加分，播放爆炸音效
//   - 敌机与玩家碰撞：判负
//   - 敌机触底：判负
//
// 碰撞盒仅边或角接触不算命中，必须有真实的面积重叠
type PhysicsSystem struct {
	em        *ecs.EntityManager
	gameState *game.GameState
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，用于查询和操作实体组件
//   - gs: 游戏状态，碰撞结果写回其中（分数、判负标志）
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, gs *game.GameState) *PhysicsSystem {
	return &PhysicsSystem{
		em:        em,
		gameState: gs,
	}
}

// Update 更新物理系统，处理碰撞检测
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），本系统暂不使用
func (ps *PhysicsSystem) Update(deltaTime float64) {
	// 已判负后不再处理碰撞
	if ps.gameState.IsGameOver {
		return
	}

	bullets := ecs.GetEntitiesWith2[*components.BulletComponent, *components.CollisionComponent](ps.em)
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.CollisionComponent](ps.em)
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.CollisionComponent](ps.em)

	// 子弹与敌机的碰撞
	destroyedEnemies := make(map[ecs.EntityID]bool)
	for _, bulletID := range bullets {
		bulletBox, ok := ps.collisionBox(bulletID)
		if !ok {
			continue
		}

		for _, enemyID := range enemies {
			if destroyedEnemies[enemyID] {
				continue
			}

			enemyBox, ok := ps.collisionBox(enemyID)
			if !ok {
				continue
			}

			if utils.Overlaps(bulletBox, enemyBox) {
				// 击中！双方销毁并加分
				ps.em.DestroyEntity(bulletID)
				ps.em.DestroyEntity(enemyID)
				destroyedEnemies[enemyID] = true

				ps.gameState.AddScore(config.ScorePerKill)

				if audioManager := ps.gameState.GetAudioManager(); audioManager != nil {
					audioManager.PlaySound("SOUND_EXPLOSION")
				}

				// 一颗子弹只能击中一架敌机
				break
			}
		}
	}

	// 敌机触底或撞上玩家均判负
	for _, enemyID := range enemies {
		if destroyedEnemies[enemyID] {
			continue
		}

		enemyBox, ok := ps.collisionBox(enemyID)
		if !ok {
			continue
		}

		// 敌机碰撞盒底边到达屏幕底部
		if enemyBox.Y+enemyBox.Height >= float64(config.GameWindowHeight) {
			log.Printf("[PhysicsSystem] Enemy reached the bottom, round over")
			ps.gameState.IsGameOver = true
			return
		}

		for _, playerID := range players {
			playerBox, ok := ps.collisionBox(playerID)
			if !ok {
				continue
			}

			if utils.Overlaps(enemyBox, playerBox) {
				log.Printf("[PhysicsSystem] Enemy collided with the player, round over")
				ps.gameState.IsGameOver = true
				return
			}
		}
	}
}

// collisionBox 返回实体碰撞盒在屏幕坐标系中的矩形
// 碰撞盒左上角 = 实体位置 + 组件偏移量
func (ps *PhysicsSystem) collisionBox(entityID ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](ps.em, entityID)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, entityID)
	if !ok {
		return utils.Rect{}, false
	}

	return utils.Rect{
		X:      pos.X + col.OffsetX,
		Y:      pos.Y + col.OffsetY,
		Width:  col.Width,
		Height: col.Height,
	}, true
}
