package scenes

import (
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
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

// quitPromptFontSize 退出确认文字的字号
const quitPromptFontSize = 40.0

// quitOverlayColor 退出确认界面压暗背景的遮罩
var quitOverlayColor = color.RGBA{R: 0, G: 0, B: 0, A: 180}

// 确认与取消按钮的配色，红色确认退出，绿色留下
var (
	quitYesNormalColor = color.RGBA{R: 140, G: 36, B: 36, A: 255}
	quitYesHoverColor  = color.RGBA{R: 190, G: 56, B: 56, A: 255}
	quitNoNormalColor  = color.RGBA{R: 36, G: 120, B: 52, A: 255}
	quitNoHoverColor   = color.RGBA{R: 52, G: 165, B: 74, A: 255}
)

// QuitConfirmScene 退出确认场景
// 在真正退出进程前要求玩家二次确认
type QuitConfirmScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	backgroundImage *ebiten.Image
	promptFont      text.Face
}

// NewQuitConfirmScene creates and returns a new QuitConfirmScene instance.
//
// Parameters:
//   - rm: The ResourceManager instance used to load game resources.
//   - sm: The SceneManager instance used to switch between scenes.
//
// Returns:
//   - A pointer to the newly created QuitConfirmScene.
func NewQuitConfirmScene(rm *game.ResourceManager, sm *game.SceneManager) *QuitConfirmScene {
	scene := &QuitConfirmScene{
		resourceManager: rm,
		sceneManager:    sm,
	}

	scene.entityManager = ecs.NewEntityManager()
	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.entityManager)

	scene.backgroundImage = rm.LoadImageByID("IMAGE_BACKGROUND_MENU")
	scene.promptFont = rm.LoadFontByID("FONT_TITLE", quitPromptFontSize)

	scene.createButtons()

	log.Printf("[QuitConfirmScene] Initialized")
	return scene
}

// createButtons 创建确认与取消按钮
func (s *QuitConfirmScene) createButtons() {
	yesRect := config.QuitYesRect
	yesEntity := entities.NewTextButton(s.entityManager, s.resourceManager,
		yesRect.X, yesRect.Y, yesRect.Width, yesRect.Height,
		"YES", s.onYesClicked)
	s.tintButton(yesEntity, quitYesNormalColor, quitYesHoverColor)

	noRect := config.QuitNoRect
	noEntity := entities.NewTextButton(s.entityManager, s.resourceManager,
		noRect.X, noRect.Y, noRect.Width, noRect.Height,
		"NO", s.onNoClicked)
	s.tintButton(noEntity, quitNoNormalColor, quitNoHoverColor)
}

// tintButton 覆盖文字按钮的底色，用颜色区分确认与取消
func (s *QuitConfirmScene) tintButton(entity ecs.EntityID, normal, hover color.RGBA) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entity)
	if !ok {
		return
	}
	button.NormalColor = normal
	button.HoverColor = hover
}

// onYesClicked 确认退出回调，直接结束进程
func (s *QuitConfirmScene) onYesClicked() {
	log.Println("[QuitConfirmScene] Quit confirmed, exiting game")
	os.Exit(0)
}

// onNoClicked 取消退出回调，回到主菜单
func (s *QuitConfirmScene) onNoClicked() {
	s.sceneManager.SwitchTo(NewMainMenuScene(s.resourceManager, s.sceneManager))
}

// Update 更新退出确认界面逻辑
func (s *QuitConfirmScene) Update(deltaTime float64) {
	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.PlayMusic("MUSIC_MENU")
	}

	s.buttonSystem.Update(deltaTime)
}

// Draw 绘制退出确认界面
func (s *QuitConfirmScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	vector.DrawFilledRect(screen, 0, 0,
		float32(config.GameWindowWidth), float32(config.GameWindowHeight),
		quitOverlayColor, true)

	utils.DrawCenteredText(screen, "QUIT THE GAME?", s.promptFont,
		config.GameWindowWidth/2.0, config.QuitPromptY,
		color.RGBA{R: 235, G: 238, B: 245, A: 255})

	s.buttonRenderSystem.Draw(screen)
}

// drawBackground 绘制背景图，图片缺失时填充纯色
func (s *QuitConfirmScene) drawBackground(screen *ebiten.Image) {
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
