package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/entities"
	"github.com/gonewx/starshooter/pkg/game"
	"github.com/gonewx/starshooter/pkg/systems"
	"github.com/gonewx/starshooter/pkg/utils"
)

// menuTitleFontSize 主菜单标题字号
const menuTitleFontSize = 72.0

// menuFallbackColor 背景图缺失时的纯色背景（午夜蓝）
var menuFallbackColor = color.RGBA{R: 25, G: 25, B: 112, A: 255}

// MainMenuScene 主菜单场景
// 游戏启动后的第一个场景，提供开始游戏、设置与退出三个入口
//
// 职责：
//   - 显示标题与菜单按钮
//   - 循环播放菜单音乐
//   - 按钮点击后切换到对应场景
type MainMenuScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	backgroundImage *ebiten.Image
	titleFont       text.Face
}

// NewMainMenuScene creates and returns a new MainMenuScene instance.
// It loads the menu background and builds the three menu buttons.
//
// Parameters:
//   - rm: The ResourceManager instance used to load game resources.
//   - sm: The SceneManager instance used to switch between scenes.
//
// Returns:
//   - A pointer to the newly created MainMenuScene.
//
// If the background image fails to load, the scene falls back to a solid color background.
func NewMainMenuScene(rm *game.ResourceManager, sm *game.SceneManager) *MainMenuScene {
	scene := &MainMenuScene{
		resourceManager: rm,
		sceneManager:    sm,
	}

	scene.entityManager = ecs.NewEntityManager()
	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.entityManager)

	scene.backgroundImage = rm.LoadImageByID("IMAGE_BACKGROUND_MENU")
	scene.titleFont = rm.LoadFontByID("FONT_TITLE", menuTitleFontSize)

	// 提前加载按钮音效和菜单音乐，避免首次悬停或播放时卡顿
	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.PreloadSounds([]string{"SOUND_CLICK", "SOUND_HOVER"})
		audioManager.PreloadMusic([]string{"MUSIC_MENU"})
	}

	scene.createButtons()

	log.Printf("[MainMenuScene] Initialized")
	return scene
}

// createButtons 创建主菜单的三个按钮实体
func (s *MainMenuScene) createButtons() {
	startRect := config.MenuButtonRects[0]
	entities.NewTextButton(s.entityManager, s.resourceManager,
		startRect.X, startRect.Y, startRect.Width, startRect.Height,
		"START", s.onStartClicked)

	settingsRect := config.MenuButtonRects[1]
	entities.NewTextButton(s.entityManager, s.resourceManager,
		settingsRect.X, settingsRect.Y, settingsRect.Width, settingsRect.Height,
		"SETTINGS", s.onSettingsClicked)

	quitRect := config.MenuButtonRects[2]
	entities.NewTextButton(s.entityManager, s.resourceManager,
		quitRect.X, quitRect.Y, quitRect.Width, quitRect.Height,
		"QUIT", s.onQuitClicked)
}

// onStartClicked 开始游戏按钮回调，进入选机界面
func (s *MainMenuScene) onStartClicked() {
	log.Println("[MainMenuScene] Start clicked, entering character select")
	s.sceneManager.SwitchTo(NewCharacterSelectScene(s.resourceManager, s.sceneManager))
}

// onSettingsClicked 设置按钮回调，进入设置界面
func (s *MainMenuScene) onSettingsClicked() {
	log.Println("[MainMenuScene] Settings clicked")
	s.sceneManager.SwitchTo(NewSettingsScene(s.resourceManager, s.sceneManager))
}

// onQuitClicked 退出按钮回调，进入退出确认界面
func (s *MainMenuScene) onQuitClicked() {
	log.Println("[MainMenuScene] Quit clicked, asking for confirmation")
	s.sceneManager.SwitchTo(NewQuitConfirmScene(s.resourceManager, s.sceneManager))
}

// Update 更新主菜单逻辑
// 确保菜单音乐处于播放状态，并驱动按钮交互
func (s *MainMenuScene) Update(deltaTime float64) {
	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.PlayMusic("MUSIC_MENU")
	}

	s.buttonSystem.Update(deltaTime)
}

// Draw 绘制主菜单
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	utils.DrawCenteredText(screen, "STAR SHOOTER", s.titleFont,
		config.GameWindowWidth/2.0, config.MenuTitleY,
		color.RGBA{R: 235, G: 238, B: 245, A: 255})

	s.buttonRenderSystem.Draw(screen)
}

// drawBackground 绘制背景图，缩放到窗口大小；图片缺失时填充纯色
func (s *MainMenuScene) drawBackground(screen *ebiten.Image) {
	if s.backgroundImage == nil {
		screen.Fill(menuFallbackColor)
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
