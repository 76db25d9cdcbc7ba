package systems

import (
	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/game"
	"github.com/gonewx/starshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonMouseInput 按钮系统鼠标输入接口
// 用于依赖注入，支持测试时 mock
type ButtonMouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
}

// ebitenButtonMouseInput Ebitengine 默认实现
type ebitenButtonMouseInput struct{}

func (e *ebitenButtonMouseInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenButtonMouseInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return utils.IsPointerPressed()
}

func (e *ebitenButtonMouseInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	released, _, _ := utils.IsPointerJustReleased()
	return released
}

// defaultButtonMouseInput 默认鼠标输入实例
var defaultButtonMouseInput ButtonMouseInput = &ebitenButtonMouseInput{}

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标交互逻辑
//
// 职责：
//   - 检测鼠标悬停状态
//   - 检测鼠标点击事件
//   - 更新按钮状态（Normal/Hovered/Clicked/Disabled）
//   - 触发点击回调
//   - 鼠标进入按钮时播放悬停音效，点击确认时播放点击音效
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    ButtonMouseInput

	// hoveredLastFrame 记录上一帧各按钮的悬停状态
	// 用于只在鼠标进入按钮的那一帧播放悬停音效
	hoveredLastFrame map[ecs.EntityID]bool
}

// NewButtonSystem 创建按钮交互系统
//
// Parameters:
//   - em: 实体管理器
//
// Returns:
//   - *ButtonSystem: 按钮系统实例
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager:    em,
		mouseInput:       defaultButtonMouseInput,
		hoveredLastFrame: make(map[ecs.EntityID]bool),
	}
}

// NewButtonSystemWithInput 创建带自定义鼠标输入的按钮交互系统（用于测试）
func NewButtonSystemWithInput(em *ecs.EntityManager, input ButtonMouseInput) *ButtonSystem {
	return &ButtonSystem{
		entityManager:    em,
		mouseInput:       input,
		hoveredLastFrame: make(map[ecs.EntityID]bool),
	}
}

// Update 更新所有按钮的交互状态
//
// 状态转换逻辑：
//   - 禁用按钮 → UIDisabled
//   - 悬停 + 按下 → UIClicked
//   - 悬停 + 刚释放 → 触发 OnClick，状态 UIHovered
//   - 仅悬停 → UIHovered
//   - 其他 → UINormal
func (s *ButtonSystem) Update(deltaTime float64) {
	// 获取鼠标位置
	mouseX, mouseY := s.mouseInput.CursorPosition()

	// 检测鼠标左键状态
	mousePressed := s.mouseInput.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mouseJustReleased := s.mouseInput.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	// 本帧悬停状态，循环结束后整体替换上一帧记录
	hoveredThisFrame := make(map[ecs.EntityID]bool)

	// 查询所有按钮实体
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if button == nil || pos == nil {
			continue
		}

		// 禁用的按钮不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		// 检测鼠标是否在按钮区域内
		isHovered := s.isMouseInButton(float64(mouseX), float64(mouseY), pos.X, pos.Y, button.Width, button.Height)
		hoveredThisFrame[entityID] = isHovered

		// 鼠标刚进入按钮时播放悬停音效
		if isHovered && !s.hoveredLastFrame[entityID] && button.HoverSoundID != "" {
			if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
				audioManager.PlaySound(button.HoverSoundID)
			}
		}

		// 更新按钮状态
		if isHovered && mousePressed {
			// 悬停且按下
			button.State = components.UIClicked
		} else if isHovered && mouseJustReleased {
			// 悬停且刚释放，触发点击
			if button.ClickSoundID != "" {
				if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
					audioManager.PlaySound(button.ClickSoundID)
				}
			}
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		} else if isHovered {
			// 仅悬停
			button.State = components.UIHovered
		} else {
			// 正常状态
			button.State = components.UINormal
		}
	}

	s.hoveredLastFrame = hoveredThisFrame
}

// isMouseInButton 检测鼠标是否在按钮区域内
func (s *ButtonSystem) isMouseInButton(mouseX, mouseY, buttonX, buttonY, width, height float64) bool {
	return mouseX >= buttonX &&
		mouseX <= buttonX+width &&
		mouseY >= buttonY &&
		mouseY <= buttonY+height
}
