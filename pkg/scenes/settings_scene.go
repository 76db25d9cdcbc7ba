package scenes

import (
	"fmt"
	"image/color"
	"log"

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

// 设置界面的字号
const (
	settingsTitleFontSize = 48.0
	settingsLabelFontSize = 22.0
)

// 设置控件的配色
var (
	settingsLabelColor = color.RGBA{R: 180, G: 180, B: 255, A: 255}
	widgetFillColor    = color.RGBA{R: 30, G: 36, B: 58, A: 255}
	widgetBorderColor  = color.RGBA{R: 110, G: 128, B: 165, A: 255}
	widgetActiveColor  = color.RGBA{R: 58, G: 70, B: 104, A: 255}
	widgetTextColor    = color.RGBA{R: 235, G: 238, B: 245, A: 255}
	sliderKnobColor    = color.RGBA{R: 150, G: 168, B: 205, A: 255}
	checkboxMarkColor  = color.RGBA{R: 120, G: 220, B: 130, A: 255}
)

// testSoundOptions 试听音效选项，下拉框索引与音效资源ID一一对应
var testSoundOptions = []struct {
	Label   string
	SoundID string
}{
	{Label: "Laser", SoundID: "SOUND_LASER"},
	{Label: "Explosion", SoundID: "SOUND_EXPLOSION"},
}

// SettingsScene 设置场景
// 提供音效音量、音乐音量、试听音效与全屏开关四项设置
//
// 职责：
//   - 滑动条改动立即写入 SettingsManager 并作用于音频
//   - 音效滑条松手时按新音量播放所选试听音效
//   - 返回主菜单时持久化设置
type SettingsScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	sliderSystem       *systems.SliderSystem
	checkboxSystem     *systems.CheckboxSystem
	dropdownSystem     *systems.DropdownSystem

	backgroundImage *ebiten.Image
	titleFont       text.Face
	labelFont       text.Face

	sfxSliderEntity   ecs.EntityID
	musicSliderEntity ecs.EntityID
	testSoundEntity   ecs.EntityID
	fullscreenEntity  ecs.EntityID

	selectedTestSound int // 当前试听音效的选项索引
}

// NewSettingsScene creates and returns a new SettingsScene instance.
// Widget initial values come from the persisted settings.
//
// Parameters:
//   - rm: The ResourceManager instance used to load game resources.
//   - sm: The SceneManager instance used to switch between scenes.
//
// Returns:
//   - A pointer to the newly created SettingsScene.
func NewSettingsScene(rm *game.ResourceManager, sm *game.SceneManager) *SettingsScene {
	scene := &SettingsScene{
		resourceManager: rm,
		sceneManager:    sm,
		settingsManager: game.GetGameState().GetSettingsManager(),
	}

	scene.entityManager = ecs.NewEntityManager()
	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.entityManager)
	scene.sliderSystem = systems.NewSliderSystem(scene.entityManager)
	scene.checkboxSystem = systems.NewCheckboxSystem(scene.entityManager)
	scene.dropdownSystem = systems.NewDropdownSystem(scene.entityManager)

	scene.backgroundImage = rm.LoadImageByID("IMAGE_BACKGROUND_MENU")
	scene.titleFont = rm.LoadFontByID("FONT_TITLE", settingsTitleFontSize)
	scene.labelFont = rm.LoadFontByID("FONT_RETRO", settingsLabelFontSize)

	scene.createWidgets()

	log.Printf("[SettingsScene] Initialized")
	return scene
}

// createWidgets 创建四个设置控件和返回按钮
func (s *SettingsScene) createWidgets() {
	settings := s.settingsManager.GetSettings()

	sfxRect := config.SettingsSfxSliderRect
	s.sfxSliderEntity = entities.NewVolumeSlider(s.entityManager,
		sfxRect.X, sfxRect.Y, sfxRect.Width, sfxRect.Height,
		"SFX VOLUME", settings.SoundVolume,
		s.onSfxVolumeChange, s.onSfxVolumeRelease)

	// 音效滑条松手只播放试听音效，不再叠加点击音
	if slider, ok := ecs.GetComponent[*components.SliderComponent](s.entityManager, s.sfxSliderEntity); ok {
		slider.ClickSoundID = ""
	}

	musicRect := config.SettingsMusicSliderRect
	s.musicSliderEntity = entities.NewVolumeSlider(s.entityManager,
		musicRect.X, musicRect.Y, musicRect.Width, musicRect.Height,
		"MUSIC VOLUME", settings.MusicVolume,
		s.onMusicVolumeChange, nil)

	testRect := config.SettingsTestSoundRect
	labels := make([]string, len(testSoundOptions))
	for i, option := range testSoundOptions {
		labels[i] = option.Label
	}
	s.testSoundEntity = entities.NewDropdown(s.entityManager,
		testRect.X, testRect.Y, testRect.Width, testRect.Height,
		"TEST SOUND", labels, s.selectedTestSound, s.onTestSoundSelect)

	fullscreenRect := config.SettingsFullscreenRect
	s.fullscreenEntity = entities.NewCheckbox(s.entityManager,
		fullscreenRect.X, fullscreenRect.Y, fullscreenRect.Width, fullscreenRect.Height,
		"FULLSCREEN", settings.Fullscreen, s.onFullscreenToggle)

	backRect := config.SettingsBackRect
	entities.NewTextButton(s.entityManager, s.resourceManager,
		backRect.X, backRect.Y, backRect.Width, backRect.Height,
		"BACK", s.onBackClicked)
}

// onSfxVolumeChange 音效滑条拖动回调，新的音量立即生效
func (s *SettingsScene) onSfxVolumeChange(value float64) {
	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.SetSoundVolume(value)
		return
	}
	if s.settingsManager != nil {
		s.settingsManager.SetSoundVolume(value)
	}
}

// onSfxVolumeRelease 音效滑条松手回调，按新音量播放试听音效
func (s *SettingsScene) onSfxVolumeRelease(value float64) {
	if s.selectedTestSound < 0 || s.selectedTestSound >= len(testSoundOptions) {
		return
	}
	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.PlaySound(testSoundOptions[s.selectedTestSound].SoundID)
	}
}

// onMusicVolumeChange 音乐滑条拖动回调，立即作用于正在播放的音乐
func (s *SettingsScene) onMusicVolumeChange(value float64) {
	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.SetMusicVolume(value)
		return
	}
	if s.settingsManager != nil {
		s.settingsManager.SetMusicVolume(value)
	}
}

// onTestSoundSelect 试听音效选项回调，选中后立即播放一次
func (s *SettingsScene) onTestSoundSelect(index int) {
	if index < 0 || index >= len(testSoundOptions) {
		return
	}
	s.selectedTestSound = index
	log.Printf("[SettingsScene] Test sound switched to %s", testSoundOptions[index].Label)

	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.PlaySound(testSoundOptions[index].SoundID)
	}
}

// onFullscreenToggle 全屏复选框回调，立即切换显示模式
func (s *SettingsScene) onFullscreenToggle(isChecked bool) {
	log.Printf("[SettingsScene] Fullscreen toggled: %v", isChecked)

	if s.settingsManager != nil {
		s.settingsManager.SetFullscreen(isChecked)
	}

	if isChecked {
		ebiten.SetFullscreen(true)
	} else {
		// 退出全屏时，恢复窗口尺寸为游戏逻辑尺寸
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	}
}

// onBackClicked 返回按钮回调，保存设置后回到主菜单
func (s *SettingsScene) onBackClicked() {
	if s.settingsManager != nil {
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[SettingsScene] Warning: failed to save settings: %v", err)
		}
	}
	s.sceneManager.SwitchTo(NewMainMenuScene(s.resourceManager, s.sceneManager))
}

// isDropdownOpen 下拉框是否处于展开状态
func (s *SettingsScene) isDropdownOpen() bool {
	dropdown, ok := ecs.GetComponent[*components.DropdownComponent](s.entityManager, s.testSoundEntity)
	return ok && dropdown.IsOpen
}

// Update 更新设置界面逻辑
// 下拉框展开时独占输入，防止选项行下方的控件被同一次点击触发
func (s *SettingsScene) Update(deltaTime float64) {
	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.PlayMusic("MUSIC_MENU")
	}

	if s.isDropdownOpen() {
		s.dropdownSystem.Update(deltaTime)
		return
	}

	s.dropdownSystem.Update(deltaTime)
	s.sliderSystem.Update(deltaTime)
	s.checkboxSystem.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)
}

// Draw 绘制设置界面
// 展开的下拉框最后绘制，覆盖住下方的控件
func (s *SettingsScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	utils.DrawCenteredText(screen, "SETTINGS", s.titleFont,
		config.GameWindowWidth/2.0, config.SettingsTitleY, widgetTextColor)

	if slider, ok := ecs.GetComponent[*components.SliderComponent](s.entityManager, s.sfxSliderEntity); ok {
		if pos, hasPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.sfxSliderEntity); hasPos {
			s.drawSlider(screen, slider, pos.X, pos.Y)
		}
	}

	if slider, ok := ecs.GetComponent[*components.SliderComponent](s.entityManager, s.musicSliderEntity); ok {
		if pos, hasPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.musicSliderEntity); hasPos {
			s.drawSlider(screen, slider, pos.X, pos.Y)
		}
	}

	if checkbox, ok := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, s.fullscreenEntity); ok {
		if pos, hasPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.fullscreenEntity); hasPos {
			s.drawCheckbox(screen, checkbox, pos.X, pos.Y)
		}
	}

	s.buttonRenderSystem.Draw(screen)

	if dropdown, ok := ecs.GetComponent[*components.DropdownComponent](s.entityManager, s.testSoundEntity); ok {
		if pos, hasPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.testSoundEntity); hasPos {
			s.drawDropdown(screen, dropdown, pos.X, pos.Y)
		}
	}
}

// drawSlider 渲染单个滑动条
// 标签带当前值的百分比，滑块水平位置由当前值决定，垂直方向相对滑槽居中
func (s *SettingsScene) drawSlider(screen *ebiten.Image, slider *components.SliderComponent, x, y float64) {
	if slider.Label != "" {
		label := fmt.Sprintf("%s: %.0f%%", slider.Label, slider.Value*100)
		utils.DrawRightAlignedText(screen, label, s.labelFont,
			config.SettingsLabelX, y+slider.SlotHeight/2, settingsLabelColor)
	}

	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(slider.SlotWidth), float32(slider.SlotHeight), widgetFillColor, true)
	vector.StrokeRect(screen, float32(x), float32(y),
		float32(slider.SlotWidth), float32(slider.SlotHeight), 1, widgetBorderColor, true)

	knobX := x + slider.SlotWidth*slider.Value - slider.KnobWidth/2.0
	knobY := y + (slider.SlotHeight-slider.KnobHeight)/2.0

	knobColor := sliderKnobColor
	if slider.IsDragging || slider.IsHovered {
		knobColor = widgetTextColor
	}
	vector.DrawFilledRect(screen, float32(knobX), float32(knobY),
		float32(slider.KnobWidth), float32(slider.KnobHeight), knobColor, true)
}

// drawCheckbox 渲染单个复选框，勾选状态用内部色块表示
func (s *SettingsScene) drawCheckbox(screen *ebiten.Image, checkbox *components.CheckboxComponent, x, y float64) {
	if checkbox.Label != "" {
		utils.DrawRightAlignedText(screen, checkbox.Label, s.labelFont,
			config.SettingsLabelX, y+checkbox.Height/2, settingsLabelColor)
	}

	fillColor := widgetFillColor
	if checkbox.IsHovered {
		fillColor = widgetActiveColor
	}
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(checkbox.Width), float32(checkbox.Height), fillColor, true)
	vector.StrokeRect(screen, float32(x), float32(y),
		float32(checkbox.Width), float32(checkbox.Height), 2, widgetBorderColor, true)

	if checkbox.IsChecked {
		inset := 6.0
		vector.DrawFilledRect(screen,
			float32(x+inset), float32(y+inset),
			float32(checkbox.Width-inset*2), float32(checkbox.Height-inset*2),
			checkboxMarkColor, true)
	}
}

// drawDropdown 渲染下拉选择框
// 折叠时只绘制当前选项，展开后在下方列出全部选项行
func (s *SettingsScene) drawDropdown(screen *ebiten.Image, dropdown *components.DropdownComponent, x, y float64) {
	if dropdown.Label != "" {
		utils.DrawRightAlignedText(screen, dropdown.Label, s.labelFont,
			config.SettingsLabelX, y+dropdown.Height/2, settingsLabelColor)
	}

	headerColor := widgetFillColor
	if dropdown.IsHovered || dropdown.IsOpen {
		headerColor = widgetActiveColor
	}
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(dropdown.Width), float32(dropdown.Height), headerColor, true)
	vector.StrokeRect(screen, float32(x), float32(y),
		float32(dropdown.Width), float32(dropdown.Height), 2, widgetBorderColor, true)

	if dropdown.SelectedIndex >= 0 && dropdown.SelectedIndex < len(dropdown.Options) {
		utils.DrawCenteredText(screen, dropdown.Options[dropdown.SelectedIndex], s.labelFont,
			x+dropdown.Width/2, y+dropdown.Height/2, widgetTextColor)
	}

	if !dropdown.IsOpen {
		return
	}

	for i, option := range dropdown.Options {
		rowY := y + dropdown.Height + float64(i)*dropdown.OptionHeight

		rowColor := widgetFillColor
		if i == dropdown.HoveredOption {
			rowColor = widgetActiveColor
		}
		vector.DrawFilledRect(screen, float32(x), float32(rowY),
			float32(dropdown.Width), float32(dropdown.OptionHeight), rowColor, true)
		vector.StrokeRect(screen, float32(x), float32(rowY),
			float32(dropdown.Width), float32(dropdown.OptionHeight), 1, widgetBorderColor, true)

		utils.DrawCenteredText(screen, option, s.labelFont,
			x+dropdown.Width/2, rowY+dropdown.OptionHeight/2, widgetTextColor)
	}
}

// drawBackground 绘制背景图，图片缺失时填充纯色
func (s *SettingsScene) drawBackground(screen *ebiten.Image) {
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
