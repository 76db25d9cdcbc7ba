package systems

import (
	"testing"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockDropdownMouseInput 用于测试的 mock 鼠标输入
type mockDropdownMouseInput struct {
	mouseX       int
	mouseY       int
	justReleased bool
}

func (m *mockDropdownMouseInput) CursorPosition() (int, int) {
	return m.mouseX, m.mouseY
}

func (m *mockDropdownMouseInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return m.justReleased
}

// newTestDropdown 创建一个位于 (100, 50)、主体 200x40、选项行高 30 的下拉框
// 共三个选项
func newTestDropdown(em *ecs.EntityManager, onSelect func(int)) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: 100,
		Y: 50,
	})
	ecs.AddComponent(em, entity, &components.DropdownComponent{
		Options:       []string{"Laser", "Explosion", "Click"},
		SelectedIndex: 0,
		Width:         200,
		Height:        40,
		OptionHeight:  30,
		HoveredOption: -1,
		OnSelect:      onSelect,
	})
	return entity
}

// TestNewDropdownSystem 测试下拉框系统创建
func TestNewDropdownSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewDropdownSystem(em)

	if system == nil {
		t.Fatal("NewDropdownSystem() returned nil")
	}
	if system.entityManager != em {
		t.Error("entityManager not set correctly")
	}
}

// TestDropdownSystem_Update_OpenAndClose 测试点击主体展开和收起
func TestDropdownSystem_Update_OpenAndClose(t *testing.T) {
	em := ecs.NewEntityManager()
	mockInput := &mockDropdownMouseInput{
		mouseX:       150, // 在主体内
		mouseY:       70,
		justReleased: true,
	}
	system := NewDropdownSystemWithInput(em, mockInput)

	entity := newTestDropdown(em, nil)

	// 第一次点击：展开
	system.Update(0.016)

	dropdown, _ := ecs.GetComponent[*components.DropdownComponent](em, entity)
	if !dropdown.IsOpen {
		t.Error("IsOpen should be true after clicking the header")
	}

	// 第二次点击主体：收起
	system.Update(0.016)

	if dropdown.IsOpen {
		t.Error("IsOpen should be false after clicking the header again")
	}
}

// TestDropdownSystem_Update_SelectOption 测试点击选项行选中
func TestDropdownSystem_Update_SelectOption(t *testing.T) {
	em := ecs.NewEntityManager()
	// 主体在 y=[50,90]，选项行依次为 [90,120) [120,150) [150,180)
	mockInput := &mockDropdownMouseInput{
		mouseX:       150,
		mouseY:       130, // 第二个选项行
		justReleased: true,
	}
	system := NewDropdownSystemWithInput(em, mockInput)

	selectedIndex := -1
	entity := newTestDropdown(em, func(index int) { selectedIndex = index })
	dropdown, _ := ecs.GetComponent[*components.DropdownComponent](em, entity)
	dropdown.IsOpen = true

	system.Update(0.016)

	if dropdown.SelectedIndex != 1 {
		t.Errorf("SelectedIndex = %v, want 1", dropdown.SelectedIndex)
	}
	if selectedIndex != 1 {
		t.Errorf("OnSelect index = %v, want 1", selectedIndex)
	}
	if dropdown.IsOpen {
		t.Error("Dropdown should close after selecting an option")
	}
}

// TestDropdownSystem_Update_ClickOutsideCloses 测试点击外部收起且不选中
func TestDropdownSystem_Update_ClickOutsideCloses(t *testing.T) {
	em := ecs.NewEntityManager()
	mockInput := &mockDropdownMouseInput{
		mouseX:       500, // 下拉框外
		mouseY:       300,
		justReleased: true,
	}
	system := NewDropdownSystemWithInput(em, mockInput)

	callbackCalled := false
	entity := newTestDropdown(em, func(index int) { callbackCalled = true })
	dropdown, _ := ecs.GetComponent[*components.DropdownComponent](em, entity)
	dropdown.IsOpen = true
	dropdown.SelectedIndex = 2

	system.Update(0.016)

	if dropdown.IsOpen {
		t.Error("Clicking outside should close the dropdown")
	}
	if dropdown.SelectedIndex != 2 {
		t.Errorf("SelectedIndex = %v, want 2 (unchanged)", dropdown.SelectedIndex)
	}
	if callbackCalled {
		t.Error("OnSelect should not be called when clicking outside")
	}
}

// TestDropdownSystem_Update_HoveredOption 测试展开时选项悬停跟踪
func TestDropdownSystem_Update_HoveredOption(t *testing.T) {
	em := ecs.NewEntityManager()
	mockInput := &mockDropdownMouseInput{
		mouseX: 150,
		mouseY: 160, // 第三个选项行
	}
	system := NewDropdownSystemWithInput(em, mockInput)

	entity := newTestDropdown(em, nil)
	dropdown, _ := ecs.GetComponent[*components.DropdownComponent](em, entity)
	dropdown.IsOpen = true

	system.Update(0.016)

	if dropdown.HoveredOption != 2 {
		t.Errorf("HoveredOption = %v, want 2", dropdown.HoveredOption)
	}

	// 鼠标移到选项之外
	mockInput.mouseY = 400
	system.Update(0.016)

	if dropdown.HoveredOption != -1 {
		t.Errorf("HoveredOption = %v, want -1 outside the options", dropdown.HoveredOption)
	}
}

// TestDropdownSystem_Update_ClosedIgnoresOptionRows 测试收起时点击选项区域无效
func TestDropdownSystem_Update_ClosedIgnoresOptionRows(t *testing.T) {
	em := ecs.NewEntityManager()
	mockInput := &mockDropdownMouseInput{
		mouseX:       150,
		mouseY:       130, // 展开后第二个选项行的位置
		justReleased: true,
	}
	system := NewDropdownSystemWithInput(em, mockInput)

	callbackCalled := false
	entity := newTestDropdown(em, func(index int) { callbackCalled = true })

	system.Update(0.016)

	dropdown, _ := ecs.GetComponent[*components.DropdownComponent](em, entity)
	if dropdown.SelectedIndex != 0 {
		t.Errorf("SelectedIndex = %v, want 0 (unchanged)", dropdown.SelectedIndex)
	}
	if callbackCalled {
		t.Error("OnSelect should not fire while the dropdown is closed")
	}
}

// TestDropdownSystem_optionAt 测试选项行命中计算
func TestDropdownSystem_optionAt(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewDropdownSystem(em)

	dropdown := &components.DropdownComponent{
		Options:      []string{"A", "B", "C"},
		Width:        200,
		Height:       40,
		OptionHeight: 30,
	}

	tests := []struct {
		name     string
		mouseX   float64
		mouseY   float64
		expected int
	}{
		{"第一个选项", 150, 95, 0},
		{"第二个选项", 150, 125, 1},
		{"第三个选项", 150, 175, 2},
		{"主体区域", 150, 70, -1},
		{"选项下方", 150, 200, -1},
		{"水平方向外", 350, 95, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := system.optionAt(dropdown, 100, 50, tt.mouseX, tt.mouseY)
			if result != tt.expected {
				t.Errorf("optionAt() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// TestDropdownSystem_Update_NoEntities 测试没有实体时不崩溃
func TestDropdownSystem_Update_NoEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	mockInput := &mockDropdownMouseInput{mouseX: 150, mouseY: 55, justReleased: true}
	system := NewDropdownSystemWithInput(em, mockInput)

	// 不应崩溃
	system.Update(0.016)
}
