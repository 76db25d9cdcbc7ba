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

// 选机界面的字号
const (
	shipSelectTitleFontSize = 48.0
	shipSelectLabelFontSize = 20.0
)

// 槽位的配色，选中的槽位用亮色描边标记
var (
	shipSlotFillColor     = color.RGBA{R: 22, G: 28, B: 46, A: 255}
	shipSlotBorderColor   = color.RGBA{R: 90, G: 105, B: 140, A: 255}
	shipSlotSelectedColor = color.RGBA{R: 255, G: 210, B: 80, A: 255}
)

// CharacterSelectScene 选机场景
// 展示三种飞船样式，玩家点击 SELECT 后以所选飞船开始新对局
type CharacterSelectScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	backgroundImage *ebiten.Image
	titleFont       text.Face
	labelFont       text.Face
	shipImages      []*ebiten.Image
}

// NewCharacterSelectScene creates and returns a new CharacterSelectScene instance.
// It loads the three ship preview images and builds the SELECT and BACK buttons.
//
// Parameters:
//   - rm: The ResourceManager instance used to load game resources.
//   - sm: The SceneManager instance used to switch between scenes.
//
// Returns:
//   - A pointer to the newly created CharacterSelectScene.
func NewCharacterSelectScene(rm *game.ResourceManager, sm *game.SceneManager) *CharacterSelectScene {
	scene := &CharacterSelectScene{
		resourceManager: rm,
		sceneManager:    sm,
	}

	scene.entityManager = ecs.NewEntityManager()
	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.entityManager)

	scene.backgroundImage = rm.LoadImageByID("IMAGE_BACKGROUND_MENU")
	scene.titleFont = rm.LoadFontByID("FONT_TITLE", shipSelectTitleFontSize)
	scene.labelFont = rm.LoadFontByID("FONT_RETRO", shipSelectLabelFontSize)

	scene.shipImages = make([]*ebiten.Image, config.ShipStyleCount)
	for i := 0; i < config.ShipStyleCount; i++ {
		scene.shipImages[i] = rm.LoadImageByID(entities.ShipImageID(i))
	}

	scene.createButtons()

	log.Printf("[CharacterSelectScene] Initialized")
	return scene
}

// createButtons 创建每个槽位下方的 SELECT 按钮和左下角的返回按钮
func (s *CharacterSelectScene) createButtons() {
	for i := 0; i < config.ShipStyleCount; i++ {
		shipIndex := i
		rect := config.ShipSelectButtonRects[i]
		entities.NewTextButton(s.entityManager, s.resourceManager,
			rect.X, rect.Y, rect.Width, rect.Height,
			"SELECT", func() { s.onSelectShip(shipIndex) })
	}

	backRect := config.ShipSelectBackRect
	entities.NewTextButton(s.entityManager, s.resourceManager,
		backRect.X, backRect.Y, backRect.Width, backRect.Height,
		"BACK", s.onBackClicked)
}

// onSelectShip SELECT 按钮回调，记录所选飞船并开始新对局
func (s *CharacterSelectScene) onSelectShip(shipIndex int) {
	log.Printf("[CharacterSelectScene] Ship %d selected, starting game", shipIndex)

	gameState := game.GetGameState()
	gameState.SelectShip(shipIndex)
	gameState.ResetRound()

	s.sceneManager.SwitchTo(NewGameScene(s.resourceManager, s.sceneManager))
}

// onBackClicked 返回按钮回调，回到主菜单
func (s *CharacterSelectScene) onBackClicked() {
	s.sceneManager.SwitchTo(NewMainMenuScene(s.resourceManager, s.sceneManager))
}

// Update 更新选机界面逻辑
func (s *CharacterSelectScene) Update(deltaTime float64) {
	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.PlayMusic("MUSIC_MENU")
	}

	s.buttonSystem.Update(deltaTime)
}

// Draw 绘制选机界面
func (s *CharacterSelectScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	utils.DrawCenteredText(screen, "SELECT YOUR SHIP", s.titleFont,
		config.GameWindowWidth/2.0, config.ShipSelectTitleY,
		color.RGBA{R: 235, G: 238, B: 245, A: 255})

	selected := game.GetGameState().GetSelectedShip()
	for i, rect := range config.ShipSlotRects {
		s.drawShipSlot(screen, i, rect, i == selected)
	}

	s.buttonRenderSystem.Draw(screen)
}

// drawShipSlot 绘制单个飞船槽位
// 上次选过的飞船用亮色描边标记，预览图等比缩放后居中显示
func (s *CharacterSelectScene) drawShipSlot(screen *ebiten.Image, index int, rect config.WidgetRect, isSelected bool) {
	vector.DrawFilledRect(screen,
		float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height),
		shipSlotFillColor, true)

	borderColor := shipSlotBorderColor
	if isSelected {
		borderColor = shipSlotSelectedColor
	}
	vector.StrokeRect(screen,
		float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height),
		2, borderColor, true)

	if index < len(s.shipImages) && s.shipImages[index] != nil {
		s.drawShipPreview(screen, s.shipImages[index], rect)
	}

	utils.DrawCenteredText(screen, fmt.Sprintf("SHIP %d", index+1), s.labelFont,
		rect.X+rect.Width/2, rect.Y-18,
		color.RGBA{R: 200, G: 206, B: 220, A: 255})
}

// drawShipPreview 将飞船图片等比缩放到预览区域并居中绘制
func (s *CharacterSelectScene) drawShipPreview(screen *ebiten.Image, img *ebiten.Image, rect config.WidgetRect) {
	bounds := img.Bounds()
	imgWidth := float64(bounds.Dx())
	imgHeight := float64(bounds.Dy())
	if imgWidth <= 0 || imgHeight <= 0 {
		return
	}

	scale := config.ShipPreviewSize / imgWidth
	if alt := config.ShipPreviewSize / imgHeight; alt < scale {
		scale = alt
	}

	drawWidth := imgWidth * scale
	drawHeight := imgHeight * scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		rect.X+(rect.Width-drawWidth)/2,
		rect.Y+(rect.Height-drawHeight)/2,
	)
	screen.DrawImage(img, op)
}

// drawBackground 绘制背景图，图片缺失时填充纯色
func (s *CharacterSelectScene) drawBackground(screen *ebiten.Image) {
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
