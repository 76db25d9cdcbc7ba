package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/entities"
	"github.com/gonewx/starshooter/pkg/game"
	"github.com/gonewx/starshooter/pkg/systems"
	"github.com/gonewx/starshooter/pkg/utils"
)

// 对局界面的字号
const (
	hudFontSize        = 24.0
	pauseTitleFontSize = 56.0
)

// gameFallbackColor 背景图缺失时的纯色背景（深空黑）
var gameFallbackColor = color.RGBA{R: 8, G: 10, B: 24, A: 255}

// pauseOverlayColor 暂停时铺满屏幕的半透明遮罩
var pauseOverlayColor = color.RGBA{R: 0, G: 0, B: 0, A: 180}

// GameScene 对局场景
// 驱动一局游戏的完整生命周期：操控、刷怪、移动、碰撞、计分、暂停与判负
//
// 职责：
//   - 按固定顺序驱动各游戏系统
//   - ESC 切换暂停，暂停时冻结世界只响应暂停菜单
//   - 物理系统判负后切换到结算场景
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager

	entityManager       *ecs.EntityManager
	playerControlSystem *systems.PlayerControlSystem
	spawnSystem         *systems.SpawnSystem
	movementSystem      *systems.MovementSystem
	physicsSystem       *systems.PhysicsSystem
	renderSystem        *systems.RenderSystem
	buttonSystem        *systems.ButtonSystem
	buttonRenderSystem  *systems.ButtonRenderSystem

	backgroundImage *ebiten.Image
	hudFont         text.Face
	pauseTitleFont  text.Face

	resumeButtonEntity ecs.EntityID
	menuButtonEntity   ecs.EntityID
}

// NewGameScene creates and returns a new GameScene instance.
// It builds the gameplay world with the currently selected ship and
// parks the pause menu buttons offscreen until ESC is pressed.
//
// Parameters:
//   - rm: The ResourceManager instance used to load game resources.
//   - sm: The SceneManager instance used to switch between scenes.
//
// Returns:
//   - A pointer to the newly created GameScene.
func NewGameScene(rm *game.ResourceManager, sm *game.SceneManager) *GameScene {
	scene := &GameScene{
		resourceManager: rm,
		sceneManager:    sm,
	}

	gameState := game.GetGameState()

	scene.entityManager = ecs.NewEntityManager()
	scene.playerControlSystem = systems.NewPlayerControlSystem(scene.entityManager, rm)
	scene.movementSystem = systems.NewMovementSystem(scene.entityManager)
	scene.physicsSystem = systems.NewPhysicsSystem(scene.entityManager, gameState)
	scene.renderSystem = systems.NewRenderSystem(scene.entityManager)
	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.entityManager)

	spawnRules, err := config.LoadSpawnRules("data/spawn_rules.yaml")
	if err != nil {
		log.Printf("[GameScene] Warning: failed to load spawn rules: %v (using defaults)", err)
		spawnRules = config.DefaultSpawnRules()
	}
	scene.spawnSystem = systems.NewSpawnSystem(scene.entityManager, rm, gameState, spawnRules)

	scene.backgroundImage = rm.LoadImageByID("IMAGE_BACKGROUND_GAME")
	scene.hudFont = rm.LoadFontByID("FONT_RETRO", hudFontSize)
	scene.pauseTitleFont = rm.LoadFontByID("FONT_TITLE", pauseTitleFontSize)

	// 提前加载对局音效和音乐，避免首次开火或播放时卡顿
	if audioManager := gameState.GetAudioManager(); audioManager != nil {
		audioManager.PreloadSounds([]string{"SOUND_LASER", "SOUND_EXPLOSION", "SOUND_GAMEOVER"})
		audioManager.PreloadMusic([]string{"MUSIC_GAMEPLAY"})
	}

	entities.NewPlayerShip(scene.entityManager, rm, gameState.GetSelectedShip())
	scene.createPauseMenuButtons()

	log.Printf("[GameScene] Initialized with ship %d", gameState.GetSelectedShip())
	return scene
}

// createPauseMenuButtons 创建暂停菜单按钮
// 按钮初始停在屏幕外，暂停时移动到设计位置
func (s *GameScene) createPauseMenuButtons() {
	resumeRect := config.PauseResumeRect
	s.resumeButtonEntity = entities.NewTextButton(s.entityManager, s.resourceManager,
		config.OffscreenX, config.OffscreenY, resumeRect.Width, resumeRect.Height,
		"RESUME", s.onResumeClicked)

	menuRect := config.PauseMainMenuRect
	s.menuButtonEntity = entities.NewTextButton(s.entityManager, s.resourceManager,
		config.OffscreenX, config.OffscreenY, menuRect.Width, menuRect.Height,
		"QUIT TO MENU", s.onQuitToMenuClicked)
}

// setPauseMenuVisible 移动暂停菜单按钮的位置
// 显示时移动到设计位置，隐藏时移回屏幕外
func (s *GameScene) setPauseMenuVisible(visible bool) {
	moveButton := func(entity ecs.EntityID, rect config.WidgetRect) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		if !ok {
			return
		}
		if visible {
			pos.X = rect.X
			pos.Y = rect.Y
		} else {
			pos.X = config.OffscreenX
			pos.Y = config.OffscreenY
		}
	}

	moveButton(s.resumeButtonEntity, config.PauseResumeRect)
	moveButton(s.menuButtonEntity, config.PauseMainMenuRect)
}

// togglePause 切换暂停状态，同步音乐播放与暂停菜单按钮
func (s *GameScene) togglePause() {
	gameState := game.GetGameState()
	gameState.IsPaused = !gameState.IsPaused
	s.setPauseMenuVisible(gameState.IsPaused)

	if audioManager := gameState.GetAudioManager(); audioManager != nil {
		if gameState.IsPaused {
			audioManager.PauseMusic()
		} else {
			audioManager.ResumeMusic()
		}
	}

	log.Printf("[GameScene] Paused: %v", gameState.IsPaused)
}

// onResumeClicked 继续按钮回调，恢复对局
func (s *GameScene) onResumeClicked() {
	if game.GetGameState().IsPaused {
		s.togglePause()
	}
}

// onQuitToMenuClicked 返回主菜单按钮回调，放弃当前对局
func (s *GameScene) onQuitToMenuClicked() {
	log.Println("[GameScene] Quit to menu, abandoning the round")
	game.GetGameState().IsPaused = false
	s.sceneManager.SwitchTo(NewMainMenuScene(s.resourceManager, s.sceneManager))
}

// onGameOver 对局结束处理：停止音乐、播放结束音效并切换到结算场景
func (s *GameScene) onGameOver() {
	gameState := game.GetGameState()
	log.Printf("[GameScene] Game over with score %d", gameState.GetScore())

	if audioManager := gameState.GetAudioManager(); audioManager != nil {
		audioManager.StopMusic()
		audioManager.PlaySound("SOUND_GAMEOVER")
	}

	s.sceneManager.SwitchTo(NewGameOverScene(s.resourceManager, s.sceneManager))
}

// Update 更新对局逻辑
// 暂停时只驱动暂停菜单按钮，世界实体全部冻结
func (s *GameScene) Update(deltaTime float64) {
	gameState := game.GetGameState()

	if !gameState.IsPaused {
		if audioManager := gameState.GetAudioManager(); audioManager != nil {
			audioManager.PlayMusic("MUSIC_GAMEPLAY")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.togglePause()
		return
	}

	if gameState.IsPaused {
		s.buttonSystem.Update(deltaTime)
		return
	}

	s.playerControlSystem.Update(deltaTime)
	s.spawnSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()

	if gameState.IsGameOver {
		s.onGameOver()
	}
}

// Draw 绘制对局画面
// 世界实体之上是计分 HUD，暂停时再覆盖半透明遮罩和暂停菜单
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.renderSystem.Draw(screen)
	s.drawHUD(screen)

	if game.GetGameState().IsPaused {
		s.drawPauseOverlay(screen)
	}

	s.buttonRenderSystem.Draw(screen)
}

// drawHUD 绘制左上角的得分
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	score := game.GetGameState().GetScore()
	utils.DrawText(screen, fmt.Sprintf("SCORE: %d", score), s.hudFont,
		config.HUDScoreX, config.HUDScoreY,
		color.RGBA{R: 235, G: 238, B: 245, A: 255})
}

// drawPauseOverlay 绘制暂停遮罩与标题
func (s *GameScene) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0,
		float32(config.GameWindowWidth), float32(config.GameWindowHeight),
		pauseOverlayColor, true)

	utils.DrawCenteredText(screen, "PAUSED", s.pauseTitleFont,
		config.GameWindowWidth/2.0, config.PauseTitleY,
		color.RGBA{R: 235, G: 238, B: 245, A: 255})
}

// drawBackground 绘制背景图，图片缺失时填充纯色
func (s *GameScene) drawBackground(screen *ebiten.Image) {
	if s.backgroundImage == nil {
		screen.Fill(gameFallbackColor)
		return
	}

	bounds := s.backgroundImage.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(config.GameWindowWidth)/float64(bounds.Dx()),
		float64(config.GameWindowHeight)/float64(bounds.Dy()),
	)
	screen.DrawImage(s.backgroundImage, op)
}
