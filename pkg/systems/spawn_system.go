package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/entities"
	"github.com/gonewx/starshooter/pkg/game"
)

// SpawnSystem 管理敌机的定时生成
// 生成间隔和敌机速度由难度曲线决定，随当前分数阶梯式变化
type SpawnSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager entities.ResourceLoader
	gameState       *game.GameState
	spawnRules      *config.SpawnRulesConfig
	spawnTimer      float64 // 当前计时器(逻辑帧)
}

// NewSpawnSystem 创建敌机生成系统
// 参数:
//   - em: EntityManager 实例
//   - rm: 资源加载器，用于创建敌机实体
//   - gs: 游戏状态，难度由其中的分数决定
//   - rules: 难度曲线配置
func NewSpawnSystem(em *ecs.EntityManager, rm entities.ResourceLoader, gs *game.GameState, rules *config.SpawnRulesConfig) *SpawnSystem {
	if rules == nil {
		rules = config.DefaultSpawnRules()
	}
	log.Printf("[SpawnSystem] Initialized with baseInterval=%.0f ticks, baseSpeed=%.2f",
		rules.SpawnInterval.BaseTicks, rules.EnemySpeed.Base)
	return &SpawnSystem{
		entityManager:   em,
		resourceManager: rm,
		gameState:       gs,
		spawnRules:      rules,
		spawnTimer:      0,
	}
}

// Update 更新敌机生成计时器
// 计时器以逻辑帧为单位累加，到达当前难度的生成间隔后生成一架敌机
func (s *SpawnSystem) Update(deltaTime float64) {
	// 累加计时器
	s.spawnTimer += deltaTime * config.TicksPerSecond

	// 生成间隔随当前分数变化
	interval := s.spawnRules.IntervalTicks(s.gameState.GetScore())

	if s.spawnTimer >= interval {
		// 重置计时器
		s.spawnTimer = 0
		s.spawnEnemy()
	}
}

// spawnEnemy 在屏幕顶部的随机水平位置生成一架敌机
func (s *SpawnSystem) spawnEnemy() {
	speed := s.spawnRules.SpeedAt(s.gameState.GetScore())

	// 随机X坐标，保证敌机完整落在屏幕内
	maxX := float64(config.GameWindowWidth) - float64(config.EnemyMaxWidth)
	if maxX < 0 {
		maxX = 0
	}
	x := rand.Float64() * maxX

	entities.NewEnemy(s.entityManager, s.resourceManager, x, speed)
}

// Reset 重置生成计时器（开始新对局时调用）
func (s *SpawnSystem) Reset() {
	s.spawnTimer = 0
}
