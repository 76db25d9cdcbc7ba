package systems

import (
	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/entities"
	"github.com/gonewx/starshooter/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerKeyInput 玩家控制系统键盘输入接口
// 用于依赖注入，支持测试时 mock
type PlayerKeyInput interface {
	IsKeyPressed(key ebiten.Key) bool
}

// ebitenPlayerKeyInput Ebitengine 默认实现
type ebitenPlayerKeyInput struct{}

func (e *ebitenPlayerKeyInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// defaultPlayerKeyInput 默认键盘输入实例
var defaultPlayerKeyInput PlayerKeyInput = &ebitenPlayerKeyInput{}

// PlayerControlSystem 玩家控制系统
// 将键盘输入转换为玩家飞船的移动和射击
//
// 职责：
//   - 左右方向键（或 A/D）控制水平速度
//   - 空格键射击，受冷却时间限制
//   - 射击时生成子弹实体并播放激光音效
//   - 每帧递减射击冷却计时器
type PlayerControlSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager entities.ResourceLoader
	keyInput        PlayerKeyInput
}

// NewPlayerControlSystem 创建玩家控制系统
//
// Parameters:
//   - em: 实体管理器
//   - rm: 资源加载器，用于创建子弹实体
func NewPlayerControlSystem(em *ecs.EntityManager, rm entities.ResourceLoader) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager:   em,
		resourceManager: rm,
		keyInput:        defaultPlayerKeyInput,
	}
}

// NewPlayerControlSystemWithInput 创建带自定义键盘输入的玩家控制系统（用于测试）
func NewPlayerControlSystemWithInput(em *ecs.EntityManager, rm entities.ResourceLoader, input PlayerKeyInput) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager:   em,
		resourceManager: rm,
		keyInput:        input,
	}
}

// Update 处理玩家输入
//
// 左右同时按下时互相抵消，飞船停住。
// 空格持续按住时按冷却间隔连发。
func (s *PlayerControlSystem) Update(deltaTime float64) {
	left := s.keyInput.IsKeyPressed(ebiten.KeyArrowLeft) || s.keyInput.IsKeyPressed(ebiten.KeyA)
	right := s.keyInput.IsKeyPressed(ebiten.KeyArrowRight) || s.keyInput.IsKeyPressed(ebiten.KeyD)
	shoot := s.keyInput.IsKeyPressed(ebiten.KeySpace)

	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if player == nil || pos == nil {
			continue
		}

		// 更新水平速度
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, entityID); ok {
			switch {
			case left && !right:
				vel.VX = -config.PlayerSpeed
			case right && !left:
				vel.VX = config.PlayerSpeed
			default:
				vel.VX = 0
			}
		}

		// 递减射击冷却
		if player.CooldownTimer > 0 {
			player.CooldownTimer -= deltaTime
			if player.CooldownTimer < 0 {
				player.CooldownTimer = 0
			}
		}

		// 处理射击
		if shoot && player.CooldownTimer <= 0 {
			s.fireBullet(pos, entityID)
			player.CooldownTimer = config.ShootCooldownSeconds
		}
	}
}

// fireBullet 在飞船正上方生成一颗子弹并播放激光音效
func (s *PlayerControlSystem) fireBullet(pos *components.PositionComponent, playerID ecs.EntityID) {
	// 飞船宽度用于子弹水平居中
	var shipWidth float64
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, playerID); ok && sprite.Image != nil {
		shipWidth = float64(sprite.Image.Bounds().Dx())
	}

	entities.NewBullet(s.entityManager, s.resourceManager, pos.X, pos.Y, shipWidth)

	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.PlaySound("SOUND_LASER")
	}
}
