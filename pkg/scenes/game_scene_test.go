package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/game"
)

// stepTime 一个逻辑帧对应的秒数
const stepTime = 1.0 / config.TicksPerSecond

// TestNewGameScene 验证对局场景的初始装配
func TestNewGameScene(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewGameScene(rm, sm)

	if scene == nil {
		t.Fatal("NewGameScene returned nil")
	}

	players := ecs.GetEntitiesWith1[*components.PlayerComponent](scene.entityManager)
	if len(players) != 1 {
		t.Errorf("player count: got %d, want 1", len(players))
	}

	// 暂停菜单按钮初始应当停在屏幕外
	for _, entity := range []ecs.EntityID{scene.resumeButtonEntity, scene.menuButtonEntity} {
		pos, ok := ecs.GetComponent[*components.PositionComponent](scene.entityManager, entity)
		if !ok {
			t.Fatal("pause menu button has no PositionComponent")
		}
		if pos.X != config.OffscreenX || pos.Y != config.OffscreenY {
			t.Errorf("pause button position: got (%.0f, %.0f), want offscreen", pos.X, pos.Y)
		}
	}
}

// TestGameScene_UsesSelectedShip 验证对局使用选机界面选中的飞船
func TestGameScene_UsesSelectedShip(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	game.GetGameState().SelectShip(2)
	scene := NewGameScene(rm, sm)

	players := ecs.GetEntitiesWith1[*components.PlayerComponent](scene.entityManager)
	if len(players) != 1 {
		t.Fatalf("player count: got %d, want 1", len(players))
	}

	player, _ := ecs.GetComponent[*components.PlayerComponent](scene.entityManager, players[0])
	if player.ShipIndex != 2 {
		t.Errorf("player ship index: got %d, want 2", player.ShipIndex)
	}
}

// TestGameScene_PauseToggle 验证暂停切换与暂停菜单按钮的移位
func TestGameScene_PauseToggle(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewGameScene(rm, sm)
	gameState := game.GetGameState()

	scene.togglePause()
	if !gameState.IsPaused {
		t.Fatal("game should be paused after the first toggle")
	}

	resumePos, _ := ecs.GetComponent[*components.PositionComponent](scene.entityManager, scene.resumeButtonEntity)
	if resumePos.X != config.PauseResumeRect.X || resumePos.Y != config.PauseResumeRect.Y {
		t.Errorf("resume button position while paused: got (%.0f, %.0f), want (%.0f, %.0f)",
			resumePos.X, resumePos.Y, config.PauseResumeRect.X, config.PauseResumeRect.Y)
	}

	menuPos, _ := ecs.GetComponent[*components.PositionComponent](scene.entityManager, scene.menuButtonEntity)
	if menuPos.X != config.PauseMainMenuRect.X || menuPos.Y != config.PauseMainMenuRect.Y {
		t.Errorf("menu button position while paused: got (%.0f, %.0f), want (%.0f, %.0f)",
			menuPos.X, menuPos.Y, config.PauseMainMenuRect.X, config.PauseMainMenuRect.Y)
	}

	scene.togglePause()
	if gameState.IsPaused {
		t.Fatal("game should resume after the second toggle")
	}
	if resumePos.X != config.OffscreenX || resumePos.Y != config.OffscreenY {
		t.Errorf("resume button should move back offscreen, got (%.0f, %.0f)", resumePos.X, resumePos.Y)
	}
}

// TestGameScene_PausePreservesWorld 验证暂停期间世界实体完全冻结
func TestGameScene_PausePreservesWorld(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewGameScene(rm, sm)

	// 先跑出一个敌机，让世界里有活动实体
	scene.Update(1.0)
	enemiesBefore := len(ecs.GetEntitiesWith1[*components.EnemyComponent](scene.entityManager))
	if enemiesBefore == 0 {
		t.Fatal("expected at least one enemy after the first second")
	}

	players := ecs.GetEntitiesWith1[*components.PlayerComponent](scene.entityManager)
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](scene.entityManager, players[0])
	playerX, playerY := playerPos.X, playerPos.Y

	scene.togglePause()
	for i := 0; i < 120; i++ {
		scene.Update(stepTime)
	}

	enemiesAfter := len(ecs.GetEntitiesWith1[*components.EnemyComponent](scene.entityManager))
	if enemiesAfter != enemiesBefore {
		t.Errorf("enemy count changed while paused: got %d, want %d", enemiesAfter, enemiesBefore)
	}
	if playerPos.X != playerX || playerPos.Y != playerY {
		t.Errorf("player moved while paused: got (%v, %v), want (%v, %v)",
			playerPos.X, playerPos.Y, playerX, playerY)
	}
}

// TestGameScene_SpawnsEnemies 验证对局更新驱动敌机生成
func TestGameScene_SpawnsEnemies(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewGameScene(rm, sm)

	scene.Update(1.0)

	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](scene.entityManager)
	if len(enemies) != 1 {
		t.Errorf("enemy count after one base interval: got %d, want 1", len(enemies))
	}
}

// TestGameScene_GameOverTransition 验证判负后切换到结算场景
func TestGameScene_GameOverTransition(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewGameScene(rm, sm)
	game.GetGameState().IsGameOver = true

	scene.Update(stepTime)

	if _, ok := sm.GetCurrentScene().(*GameOverScene); !ok {
		t.Errorf("current scene after game over: got %T, want *GameOverScene", sm.GetCurrentScene())
	}
}

// TestGameScene_QuitToMenu 验证暂停菜单返回主菜单并复位暂停标记
func TestGameScene_QuitToMenu(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewGameScene(rm, sm)
	scene.togglePause()
	scene.onQuitToMenuClicked()

	if game.GetGameState().IsPaused {
		t.Error("IsPaused should be cleared when leaving to the menu")
	}
	if _, ok := sm.GetCurrentScene().(*MainMenuScene); !ok {
		t.Errorf("current scene after quit to menu: got %T, want *MainMenuScene", sm.GetCurrentScene())
	}
}

// TestGameScene_ResumeClicked 验证继续按钮只在暂停时生效
func TestGameScene_ResumeClicked(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewGameScene(rm, sm)
	gameState := game.GetGameState()

	scene.onResumeClicked()
	if gameState.IsPaused {
		t.Error("resume on a running game should not pause it")
	}

	scene.togglePause()
	scene.onResumeClicked()
	if gameState.IsPaused {
		t.Error("resume while paused should unpause the game")
	}
}

// TestGameScene_Draw 验证运行与暂停两种状态的绘制不崩溃
func TestGameScene_Draw(t *testing.T) {
	resetGameState()
	rm, sm := newTestSceneDeps()

	scene := NewGameScene(rm, sm)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	scene.Update(stepTime)
	scene.Draw(screen)

	scene.togglePause()
	scene.Draw(screen)
}
