package systems

import (
	"testing"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/game"
)

// newCollidable 创建一个带位置和碰撞盒的实体，marker 为类型标记组件
func newCollidable(em *ecs.EntityManager, marker interface{}, x, y, w, h float64) ecs.EntityID {
	entity := em.CreateEntity()
	em.AddComponent(entity, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entity, &components.CollisionComponent{Width: w, Height: h})
	em.AddComponent(entity, marker)
	return entity
}

// TestPhysicsSystem_BulletHitsEnemy 测试子弹命中敌机
func TestPhysicsSystem_BulletHitsEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := &game.GameState{}
	system := NewPhysicsSystem(em, gs)

	bullet := newCollidable(em, &components.BulletComponent{}, 100, 100, 8, 32)
	enemy := newCollidable(em, &components.EnemyComponent{}, 96, 110, 64, 64)

	system.Update(stepTime)
	em.RemoveMarkedEntities()

	if ecs.HasComponent[*components.BulletComponent](em, bullet) {
		t.Error("Bullet should be destroyed on hit")
	}
	if ecs.HasComponent[*components.EnemyComponent](em, enemy) {
		t.Error("Enemy should be destroyed on hit")
	}
	if gs.GetScore() != config.ScorePerKill {
		t.Errorf("Score = %v, want %v", gs.GetScore(), config.ScorePerKill)
	}
}

// TestPhysicsSystem_EdgeTouchIsNotAHit 测试碰撞盒仅边接触不算命中
func TestPhysicsSystem_EdgeTouchIsNotAHit(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := &game.GameState{}
	system := NewPhysicsSystem(em, gs)

	// 子弹右边缘 108 与敌机左边缘 108 恰好接触
	bullet := newCollidable(em, &components.BulletComponent{}, 100, 100, 8, 32)
	enemy := newCollidable(em, &components.EnemyComponent{}, 108, 100, 64, 64)

	system.Update(stepTime)
	em.RemoveMarkedEntities()

	if !ecs.HasComponent[*components.BulletComponent](em, bullet) {
		t.Error("Bullet should survive an edge touch")
	}
	if !ecs.HasComponent[*components.EnemyComponent](em, enemy) {
		t.Error("Enemy should survive an edge touch")
	}
	if gs.GetScore() != 0 {
		t.Errorf("Score = %v, want 0", gs.GetScore())
	}
}

// TestPhysicsSystem_OneBulletDestroysOneEnemy 测试一颗子弹只命中一架敌机
func TestPhysicsSystem_OneBulletDestroysOneEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := &game.GameState{}
	system := NewPhysicsSystem(em, gs)

	// 两架敌机都与子弹重叠
	newCollidable(em, &components.BulletComponent{}, 100, 100, 8, 32)
	newCollidable(em, &components.EnemyComponent{}, 90, 90, 64, 64)
	newCollidable(em, &components.EnemyComponent{}, 95, 95, 64, 64)

	system.Update(stepTime)
	em.RemoveMarkedEntities()

	remaining := len(ecs.GetEntitiesWith1[*components.EnemyComponent](em))
	if remaining != 1 {
		t.Errorf("Remaining enemies = %v, want 1", remaining)
	}
	if gs.GetScore() != config.ScorePerKill {
		t.Errorf("Score = %v, want %v", gs.GetScore(), config.ScorePerKill)
	}
}

// TestPhysicsSystem_CollisionUsesOffset 测试碰撞盒偏移量参与检测
func TestPhysicsSystem_CollisionUsesOffset(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := &game.GameState{}
	system := NewPhysicsSystem(em, gs)

	// 实体位置相距 50，但敌机碰撞盒向左偏移后与子弹重叠
	bullet := newCollidable(em, &components.BulletComponent{}, 100, 100, 8, 32)
	enemy := em.CreateEntity()
	em.AddComponent(enemy, &components.PositionComponent{X: 150, Y: 100})
	em.AddComponent(enemy, &components.CollisionComponent{Width: 64, Height: 64, OffsetX: -45})
	em.AddComponent(enemy, &components.EnemyComponent{})

	system.Update(stepTime)
	em.RemoveMarkedEntities()

	if ecs.HasComponent[*components.BulletComponent](em, bullet) {
		t.Error("Bullet should hit the offset collision box")
	}
	if gs.GetScore() != config.ScorePerKill {
		t.Errorf("Score = %v, want %v", gs.GetScore(), config.ScorePerKill)
	}
}

// TestPhysicsSystem_EnemyReachesBottom 测试敌机触底判负
func TestPhysicsSystem_EnemyReachesBottom(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := &game.GameState{}
	system := NewPhysicsSystem(em, gs)

	// 碰撞盒底边正好到达屏幕底部
	newCollidable(em, &components.EnemyComponent{}, 300, float64(config.GameWindowHeight)-64, 64, 64)

	system.Update(stepTime)

	if !gs.IsGameOver {
		t.Error("IsGameOver should be true when an enemy reaches the bottom")
	}
}

// TestPhysicsSystem_EnemyAboveBottomKeepsPlaying 测试敌机未触底不判负
func TestPhysicsSystem_EnemyAboveBottomKeepsPlaying(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := &game.GameState{}
	system := NewPhysicsSystem(em, gs)

	// 底边 719，距离屏幕底部还差 1 像素
	newCollidable(em, &components.EnemyComponent{}, 300, float64(config.GameWindowHeight)-65, 64, 64)

	system.Update(stepTime)

	if gs.IsGameOver {
		t.Error("IsGameOver should stay false while enemies are above the bottom")
	}
}

// TestPhysicsSystem_EnemyHitsPlayer 测试敌机撞上玩家判负
func TestPhysicsSystem_EnemyHitsPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := &game.GameState{}
	system := NewPhysicsSystem(em, gs)

	newCollidable(em, &components.PlayerComponent{}, 600, 580, 64, 64)
	newCollidable(em, &components.EnemyComponent{}, 620, 560, 64, 64)

	system.Update(stepTime)

	if !gs.IsGameOver {
		t.Error("IsGameOver should be true when an enemy collides with the player")
	}
}

// TestPhysicsSystem_EnemyMissesPlayer 测试敌机未撞上玩家不判负
func TestPhysicsSystem_EnemyMissesPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := &game.GameState{}
	system := NewPhysicsSystem(em, gs)

	newCollidable(em, &components.PlayerComponent{}, 600, 580, 64, 64)
	newCollidable(em, &components.EnemyComponent{}, 100, 100, 64, 64)

	system.Update(stepTime)

	if gs.IsGameOver {
		t.Error("IsGameOver should stay false without a collision")
	}
}

// TestPhysicsSystem_SkipsWhenGameOver 测试判负后不再处理碰撞
func TestPhysicsSystem_SkipsWhenGameOver(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := &game.GameState{}
	gs.IsGameOver = true
	system := NewPhysicsSystem(em, gs)

	bullet := newCollidable(em, &components.BulletComponent{}, 100, 100, 8, 32)
	newCollidable(em, &components.EnemyComponent{}, 96, 110, 64, 64)

	system.Update(stepTime)
	em.RemoveMarkedEntities()

	if !ecs.HasComponent[*components.BulletComponent](em, bullet) {
		t.Error("No collisions should be processed after the round is over")
	}
	if gs.GetScore() != 0 {
		t.Errorf("Score = %v, want 0", gs.GetScore())
	}
}

// TestPhysicsSystem_NoEntities 测试没有实体时不崩溃
func TestPhysicsSystem_NoEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := &game.GameState{}
	system := NewPhysicsSystem(em, gs)

	// 不应崩溃
	system.Update(stepTime)
}
