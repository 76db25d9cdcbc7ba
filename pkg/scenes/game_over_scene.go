package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/entities"
	"github.com/gonewx/starshooter/pkg/game"
	"github.com/gonewx/starshooter/pkg/systems"
	"github.com/gonewx/starshooter/pkg/utils"
)

// 结算界面的字号
const (
	gameOverTitleFontSize = 64.0
	gameOverScoreFontSize = 28.0
)

// gameOverOverlayColor 结算界面压暗背景的遮罩
var gameOverOverlayColor = color.RGBA{R: 0, G: 0, B: 0, A: 180}

// GameOverScene 结算场景
// 对局判负后展示最终得分，提供重新开始与返回主菜单两个出口
type GameOverScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	backgroundImage *ebiten.Image
	titleFont       text.Face
	scoreFont       text.Face

	finalScore int
}

// NewGameOverScene creates and returns a new GameOverScene instance.
// The final score is captured at creation time, before any round reset.
//
// Parameters:
//   - rm: The ResourceManager instance used to load game resources.
//   - sm: The SceneManager instance used to switch between scenes.
//
// Returns:
//   - A pointer to the newly created GameOverScene.
func NewGameOverScene(rm *game.ResourceManager, sm *game.SceneManager) *GameOverScene {
	scene := &GameOverScene{
		resourceManager: rm,
		sceneManager:    sm,
		finalScore:      game.GetGameState().GetScore(),
	}

	scene.entityManager = ecs.NewEntityManager()
	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.entityManager)

	scene.backgroundImage = rm.LoadImageByID("IMAGE_BACKGROUND_GAME")
	scene.titleFont = rm.LoadFontByID("FONT_TITLE", gameOverTitleFontSize)
	scene.scoreFont = rm.LoadFontByID("FONT_RETRO", gameOverScoreFontSize)

	scene.createButtons()

	log.Printf("[GameOverScene] Initialized with final score %d", scene.finalScore)
	return scene
}

// createButtons 创建重新开始与返回主菜单按钮
func (s *GameOverScene) createButtons() {
	restartRect := config.GameOverRestartRect
	entities.NewTextButton(s.entityManager, s.resourceManager,
		restartRect.X, restartRect.Y, restartRect.Width, restartRect.Height,
		"RESTART", s.onRestartClicked)

	menuRect := config.GameOverMenuRect
	entities.NewTextButton(s.entityManager, s.resourceManager,
		menuRect.X, menuRect.Y, menuRect.Width, menuRect.Height,
		"MAIN MENU", s.onMainMenuClicked)
}

// onRestartClicked 重新开始按钮回调，沿用上局飞船开始新对局
func (s *GameOverScene) onRestartClicked() {
	log.Println("[GameOverScene] Restart clicked, starting a new round")
	game.GetGameState().ResetRound()
	s.sceneManager.SwitchTo(NewGameScene(s.resourceManager, s.sceneManager))
}

// onMainMenuClicked 返回主菜单按钮回调
func (s *GameOverScene) onMainMenuClicked() {
	s.sceneManager.SwitchTo(NewMainMenuScene(s.resourceManager, s.sceneManager))
}

// Update 更新结算界面逻辑
func (s *GameOverScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
}

// Draw 绘制结算界面
// 对局背景压暗后居中显示标题与最终得分
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	vector.DrawFilledRect(screen, 0, 0,
		float32(config.GameWindowWidth), float32(config.GameWindowHeight),
		gameOverOverlayColor, true)

	utils.DrawCenteredText(screen, "GAME OVER", s.titleFont,
		config.GameWindowWidth/2.0, config.GameOverTitleY,
		color.RGBA{R: 235, G: 90, B: 90, A: 255})

	utils.DrawCenteredText(screen, fmt.Sprintf("FINAL SCORE: %d", s.finalScore), s.scoreFont,
		config.GameWindowWidth/2.0, config.GameOverScoreY,
		color.RGBA{R: 235, G: 238, B: 245, A: 255})

	s.buttonRenderSystem.Draw(screen)
}

// drawBackground 绘制背景图，图片缺失时填充纯色
func (s *GameOverScene) drawBackground(screen *ebiten.Image) {
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
