package systems

import (
	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/game"
	"github.com/gonewx/starshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// DropdownMouseInput 下拉框系统鼠标输入接口
// 用于依赖注入，支持测试时 mock
type DropdownMouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
}

// ebitenDropdownMouseInput Ebitengine 默认实现
type ebitenDropdownMouseInput struct{}

func (e *ebitenDropdownMouseInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenDropdownMouseInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	released, _, _ := utils.IsPointerJustReleased()
	return released
}

// defaultDropdownMouseInput 默认鼠标输入实例
var defaultDropdownMouseInput DropdownMouseInput = &ebitenDropdownMouseInput{}

// DropdownSystem 下拉选择框交互系统
// 负责处理下拉框的展开、选项选择和收起
//
// 职责：
//   - 点击主体区域时切换展开/收起状态
//   - 展开时跟踪悬停的选项行（HoveredOption）
//   - 点击选项行时更新 SelectedIndex 并触发 OnSelect 回调
//   - 点击下拉框外部时收起
type DropdownSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    DropdownMouseInput
}

// NewDropdownSystem 创建下拉框交互系统
func NewDropdownSystem(em *ecs.EntityManager) *DropdownSystem {
	return &DropdownSystem{
		entityManager: em,
		mouseInput:    defaultDropdownMouseInput,
	}
}

// NewDropdownSystemWithInput 创建带自定义鼠标输入的下拉框交互系统（用于测试）
func NewDropdownSystemWithInput(em *ecs.EntityManager, input DropdownMouseInput) *DropdownSystem {
	return &DropdownSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// Update 更新下拉框交互状态
func (s *DropdownSystem) Update(deltaTime float64) {
	// 获取鼠标位置
	mouseX, mouseY := s.mouseInput.CursorPosition()

	// 检测鼠标左键是否刚释放
	mouseJustReleased := s.mouseInput.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	// 查询所有下拉框实体
	entities := ecs.GetEntitiesWith2[*components.DropdownComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		dropdown, _ := ecs.GetComponent[*components.DropdownComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if dropdown == nil || pos == nil {
			continue
		}

		mx, my := float64(mouseX), float64(mouseY)

		// 主体区域悬停检测
		inHeader := s.isMouseInRect(mx, my, pos.X, pos.Y, dropdown.Width, dropdown.Height)
		dropdown.IsHovered = inHeader

		// 展开时跟踪悬停的选项行
		dropdown.HoveredOption = -1
		if dropdown.IsOpen {
			dropdown.HoveredOption = s.optionAt(dropdown, pos.X, pos.Y, mx, my)
		}

		if !mouseJustReleased {
			continue
		}

		// 点击主体区域：切换展开状态
		if inHeader {
			dropdown.IsOpen = !dropdown.IsOpen
			s.playClickSound(dropdown)
			continue
		}

		if !dropdown.IsOpen {
			continue
		}

		// 点击选项行：选中并收起
		if option := s.optionAt(dropdown, pos.X, pos.Y, mx, my); option >= 0 {
			dropdown.SelectedIndex = option
			dropdown.IsOpen = false
			dropdown.HoveredOption = -1
			s.playClickSound(dropdown)
			if dropdown.OnSelect != nil {
				dropdown.OnSelect(option)
			}
			continue
		}

		// 点击下拉框外部：收起
		dropdown.IsOpen = false
		dropdown.HoveredOption = -1
	}
}

// optionAt 返回鼠标所在的选项行索引，不在任何选项上时返回 -1
// 选项列表从主体下边缘开始向下排列
func (s *DropdownSystem) optionAt(dropdown *components.DropdownComponent, x, y, mouseX, mouseY float64) int {
	if dropdown.OptionHeight <= 0 {
		return -1
	}

	for i := range dropdown.Options {
		optionY := y + dropdown.Height + float64(i)*dropdown.OptionHeight
		if s.isMouseInRect(mouseX, mouseY, x, optionY, dropdown.Width, dropdown.OptionHeight) {
			return i
		}
	}
	return -1
}

// isMouseInRect 检测鼠标是否在矩形区域内
func (s *DropdownSystem) isMouseInRect(mouseX, mouseY, x, y, width, height float64) bool {
	return utils.PointInRect(mouseX, mouseY, utils.Rect{X: x, Y: y, Width: width, Height: height})
}

// playClickSound 播放下拉框点击音效
func (s *DropdownSystem) playClickSound(dropdown *components.DropdownComponent) {
	if dropdown.ClickSoundID == "" {
		return
	}
	if audioManager := game.GetGameState().GetAudioManager(); audioManager != nil {
		audioManager.PlaySound(dropdown.ClickSoundID)
	}
}
