package systems

import (
	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/game"
	"github.com/gonewx/starshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SliderMouseInput 滑块系统鼠标输入接口
// 用于依赖注入，支持测试时 mock
type SliderMouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
}

// ebitenSliderMouseInput Ebitengine 默认实现
type ebitenSliderMouseInput struct{}

func (e *ebitenSliderMouseInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenSliderMouseInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	// 使用支持触摸的按下检测
	return utils.IsPointerPressed()
}

// defaultSliderMouseInput 默认鼠标输入实例
var defaultSliderMouseInput SliderMouseInput = &ebitenSliderMouseInput{}

// SliderSystem 滑块交互系统
// 负责处理滑块的鼠标拖拽交互
//
// 职责：
//   - 检测鼠标是否在滑槽区域内
//   - 处理按下开始拖拽、拖拽中更新值、释放结束拖拽
//   - 拖拽时根据鼠标位置计算滑块值（0.0 - 1.0）
//   - 值变化时调用 OnValueChange 回调
//   - 拖拽结束时调用 OnRelease 回调并播放音效
type SliderSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    SliderMouseInput
}

// NewSliderSystem 创建滑块交互系统
func NewSliderSystem(em *ecs.EntityManager) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		mouseInput:    defaultSliderMouseInput,
	}
}

// NewSliderSystemWithInput 创建带自定义鼠标输入的滑块交互系统（用于测试）
func NewSliderSystemWithInput(em *ecs.EntityManager, input SliderMouseInput) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// Update 更新滑块交互状态
// 检测鼠标位置和按键，更新滑块值和拖拽状态
func (s *SliderSystem) Update(deltaTime float64) {
	// 获取鼠标位置
	mouseX, mouseY := s.mouseInput.CursorPosition()

	// 检测鼠标左键是否按下
	mousePressed := s.mouseInput.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// 查询所有滑块实体
	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if slider == nil || pos == nil {
			continue
		}

		// 检测鼠标是否在滑槽区域内
		isInSlot := s.isMouseInSlot(float64(mouseX), float64(mouseY), pos.X, pos.Y, slider.SlotWidth, slider.SlotHeight)

		// 更新悬停状态
		slider.IsHovered = isInSlot

		// 记录本帧之前是否处于拖拽状态
		wasDragging := slider.IsDragging

		if mousePressed {
			// 按下时：在滑槽内开始拖拽，或者已经在拖拽中（允许拖出滑槽）
			if isInSlot || slider.IsDragging {
				slider.IsDragging = true

				// 根据鼠标位置计算新值
				newValue := s.calculateValue(float64(mouseX), pos.X, slider.SlotWidth)

				// 值变化时触发回调
				if newValue != slider.Value {
					slider.Value = newValue
					if slider.OnValueChange != nil {
						slider.OnValueChange(slider.Value)
					}
				}
			}
		} else {
			// 释放鼠标，结束拖拽
			slider.IsDragging = false

			// 拖拽结束时播放音效并触发释放回调
			if wasDragging {
				if slider.ClickSoundID != "" {
					if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
						audioManager.PlaySound(slider.ClickSoundID)
					}
				}
				if slider.OnRelease != nil {
					slider.OnRelease(slider.Value)
				}
			}
		}
	}
}

// isMouseInSlot 检测鼠标是否在滑槽区域内
func (s *SliderSystem) isMouseInSlot(mouseX, mouseY, slotX, slotY, slotWidth, slotHeight float64) bool {
	return mouseX >= slotX &&
		mouseX <= slotX+slotWidth &&
		mouseY >= slotY &&
		mouseY <= slotY+slotHeight
}

// calculateValue 根据鼠标 X 坐标计算滑块值
// 返回值范围 [0.0, 1.0]
func (s *SliderSystem) calculateValue(mouseX, slotX, slotWidth float64) float64 {
	if slotWidth <= 0 {
		return 0.0
	}

	value := (mouseX - slotX) / slotWidth

	// 限制在 [0.0, 1.0] 范围内
	if value < 0.0 {
		value = 0.0
	}
	if value > 1.0 {
		value = 1.0
	}

	return value
}
