package systems

import (
	"image/color"
	"testing"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestNewButtonRenderSystem 测试按钮渲染系统创建
func TestNewButtonRenderSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewButtonRenderSystem(em)

	if system == nil {
		t.Fatal("NewButtonRenderSystem() returned nil")
	}
	if system.entityManager != em {
		t.Error("entityManager not set correctly")
	}
}

// TestButtonRenderSystem_DrawFlatButton 测试纯色按钮绘制不崩溃
func TestButtonRenderSystem_DrawFlatButton(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewButtonRenderSystem(em)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: 100, Y: 50})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Type:        components.ButtonTypeFlat,
		NormalColor: color.RGBA{28, 34, 56, 255},
		HoverColor:  color.RGBA{52, 64, 96, 255},
		BorderColor: color.RGBA{130, 150, 190, 255},
		Width:       200,
		Height:      60,
		Enabled:     true,
	})

	// 各状态下都不应崩溃
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, entity)
	for _, state := range []components.UIState{
		components.UINormal,
		components.UIHovered,
		components.UIClicked,
		components.UIDisabled,
	} {
		button.State = state
		system.Draw(screen)
	}
}

// TestButtonRenderSystem_DrawFlatButtonWithoutBorder 测试无边框纯色按钮
func TestButtonRenderSystem_DrawFlatButtonWithoutBorder(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewButtonRenderSystem(em)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: 100, Y: 50})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Type:        components.ButtonTypeFlat,
		NormalColor: color.RGBA{28, 34, 56, 255},
		// BorderColor Alpha 为 0，不绘制边框
		Width:   200,
		Height:  60,
		Enabled: true,
	})

	// 不应崩溃
	system.Draw(screen)
}

// TestButtonRenderSystem_SimpleButtonCachesSize 测试图片按钮缓存图片尺寸
func TestButtonRenderSystem_SimpleButtonCachesSize(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewButtonRenderSystem(em)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: 100, Y: 50})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Type:        components.ButtonTypeSimple,
		NormalImage: ebiten.NewImage(40, 20),
		Enabled:     true,
	})

	system.Draw(screen)

	button, _ := ecs.GetComponent[*components.ButtonComponent](em, entity)
	if button.Width != 40 {
		t.Errorf("Width = %v, want 40 (cached from image)", button.Width)
	}
	if button.Height != 20 {
		t.Errorf("Height = %v, want 20 (cached from image)", button.Height)
	}
}

// TestButtonRenderSystem_SimpleButtonKeepsExplicitSize 测试显式尺寸不被图片覆盖
func TestButtonRenderSystem_SimpleButtonKeepsExplicitSize(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewButtonRenderSystem(em)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: 100, Y: 50})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Type:        components.ButtonTypeSimple,
		NormalImage: ebiten.NewImage(40, 20),
		Width:       120,
		Height:      80,
		Enabled:     true,
	})

	system.Draw(screen)

	button, _ := ecs.GetComponent[*components.ButtonComponent](em, entity)
	if button.Width != 120 || button.Height != 80 {
		t.Errorf("Size = (%v, %v), want (120, 80)", button.Width, button.Height)
	}
}

// TestButtonRenderSystem_SimpleButtonNilImages 测试缺失状态图片时回退
func TestButtonRenderSystem_SimpleButtonNilImages(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewButtonRenderSystem(em)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: 100, Y: 50})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Type:        components.ButtonTypeSimple,
		NormalImage: ebiten.NewImage(40, 20),
		// HoverImage 和 PressedImage 为 nil，应回退到 NormalImage
		State:   components.UIHovered,
		Enabled: true,
	})

	// 不应崩溃
	system.Draw(screen)

	button, _ := ecs.GetComponent[*components.ButtonComponent](em, entity)
	button.State = components.UIClicked
	system.Draw(screen)
}

// TestButtonRenderSystem_NoImageNoCrash 测试完全没有图片时不崩溃
func TestButtonRenderSystem_NoImageNoCrash(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewButtonRenderSystem(em)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: 100, Y: 50})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Type:    components.ButtonTypeSimple,
		Enabled: true,
	})

	// 不应崩溃
	system.Draw(screen)
}
