package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
)

// TestNewMainMenuScene 验证主菜单场景的初始装配
func TestNewMainMenuScene(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewMainMenuScene(rm, sm)

	if scene == nil {
		t.Fatal("NewMainMenuScene returned nil")
	}
	if scene.backgroundImage == nil {
		t.Error("background image should never be nil, missing assets fall back to a placeholder")
	}
	if scene.titleFont == nil {
		t.Error("title font should never be nil, missing fonts fall back to the bitmap face")
	}

	buttons := ecs.GetEntitiesWith1[*components.ButtonComponent](scene.entityManager)
	if len(buttons) != 3 {
		t.Errorf("button count: got %d, want 3", len(buttons))
	}
}

// TestMainMenuScene_ButtonLayout 验证三个按钮落在设计位置上
func TestMainMenuScene_ButtonLayout(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewMainMenuScene(rm, sm)

	buttons := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](scene.entityManager)
	if len(buttons) != 3 {
		t.Fatalf("button count: got %d, want 3", len(buttons))
	}

	// 每个按钮应当与某个设计矩形重合
	for _, entity := range buttons {
		pos, _ := ecs.GetComponent[*components.PositionComponent](scene.entityManager, entity)
		button, _ := ecs.GetComponent[*components.ButtonComponent](scene.entityManager, entity)

		matched := false
		for _, rect := range config.MenuButtonRects {
			if pos.X == rect.X && pos.Y == rect.Y &&
				button.Width == rect.Width && button.Height == rect.Height {
				matched = true
				break
			}
		}
		if !matched {
			t.Errorf("button %q at (%.0f, %.0f) does not match any menu slot", button.Text, pos.X, pos.Y)
		}
	}
}

// TestMainMenuScene_StartTransition 验证开始按钮切换到选机场景
func TestMainMenuScene_StartTransition(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewMainMenuScene(rm, sm)
	scene.onStartClicked()

	if _, ok := sm.GetCurrentScene().(*CharacterSelectScene); !ok {
		t.Errorf("current scene after START: got %T, want *CharacterSelectScene", sm.GetCurrentScene())
	}
}

// TestMainMenuScene_SettingsTransition 验证设置按钮切换到设置场景
func TestMainMenuScene_SettingsTransition(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewMainMenuScene(rm, sm)
	scene.onSettingsClicked()

	if _, ok := sm.GetCurrentScene().(*SettingsScene); !ok {
		t.Errorf("current scene after SETTINGS: got %T, want *SettingsScene", sm.GetCurrentScene())
	}
}

// TestMainMenuScene_QuitTransition 验证退出按钮切换到确认场景而非直接退出
func TestMainMenuScene_QuitTransition(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewMainMenuScene(rm, sm)
	scene.onQuitClicked()

	if _, ok := sm.GetCurrentScene().(*QuitConfirmScene); !ok {
		t.Errorf("current scene after QUIT: got %T, want *QuitConfirmScene", sm.GetCurrentScene())
	}
}

// TestMainMenuScene_UpdateAndDraw 验证更新与绘制不崩溃
func TestMainMenuScene_UpdateAndDraw(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewMainMenuScene(rm, sm)
	scene.Update(1.0 / config.TicksPerSecond)

	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	scene.Draw(screen)
}
