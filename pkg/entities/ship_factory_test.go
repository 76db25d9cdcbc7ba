package entities

import (
	"testing"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
)

// TestShipImageID 测试飞船样式索引到资源ID的映射
func TestShipImageID(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "IMAGE_SHIP_1"},
		{1, "IMAGE_SHIP_2"},
		{2, "IMAGE_SHIP_3"},
	}

	for _, tt := range tests {
		if got := ShipImageID(tt.index); got != tt.want {
			t.Errorf("ShipImageID(%d): got %q, want %q", tt.index, got, tt.want)
		}
	}
}

// TestNewPlayerShip 测试玩家飞船实体创建
func TestNewPlayerShip(t *testing.T) {
	tests := []struct {
		name        string
		shipIndex   int
		wantImageID string
		wantIndex   int
	}{
		{"第一艘飞船", 0, "IMAGE_SHIP_1", 0},
		{"第二艘飞船", 1, "IMAGE_SHIP_2", 1},
		{"第三艘飞船", 2, "IMAGE_SHIP_3", 2},
		{"负索引归零", -1, "IMAGE_SHIP_1", 0},
		{"越界索引归零", config.ShipStyleCount, "IMAGE_SHIP_1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := newMockResourceLoader()
			em := ecs.NewEntityManager()

			shipID := NewPlayerShip(em, rm, tt.shipIndex)
			if shipID == 0 {
				t.Fatal("Expected valid entity ID, got 0")
			}

			// 验证按正确的资源ID加载贴图
			if len(rm.loadedImageIDs) != 1 || rm.loadedImageIDs[0] != tt.wantImageID {
				t.Errorf("loaded image IDs: got %v, want [%s]", rm.loadedImageIDs, tt.wantImageID)
			}

			// 验证 PositionComponent：水平居中，距底部固定偏移
			pos, ok := ecs.GetComponent[*components.PositionComponent](em, shipID)
			if !ok {
				t.Fatal("Player ship should have PositionComponent")
			}
			wantX := (config.GameWindowWidth - 10.0) / 2
			if pos.X != wantX {
				t.Errorf("Position.X: got %v, want %v", pos.X, wantX)
			}
			wantY := float64(config.GameWindowHeight - config.PlayerSpawnOffsetY)
			if pos.Y != wantY {
				t.Errorf("Position.Y: got %v, want %v", pos.Y, wantY)
			}

			// 验证 VelocityComponent：初速为零
			vel, ok := ecs.GetComponent[*components.VelocityComponent](em, shipID)
			if !ok {
				t.Fatal("Player ship should have VelocityComponent")
			}
			if vel.VX != 0 || vel.VY != 0 {
				t.Errorf("Velocity: got (%v, %v), want (0, 0)", vel.VX, vel.VY)
			}

			// 验证 SpriteComponent
			sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, shipID)
			if !ok {
				t.Fatal("Player ship should have SpriteComponent")
			}
			if sprite.Image == nil {
				t.Error("Sprite.Image should not be nil")
			}

			// 验证 CollisionComponent：与贴图同尺寸
			col, ok := ecs.GetComponent[*components.CollisionComponent](em, shipID)
			if !ok {
				t.Fatal("Player ship should have CollisionComponent")
			}
			if col.Width != 10 || col.Height != 10 {
				t.Errorf("Collision size: got %vx%v, want 10x10", col.Width, col.Height)
			}

			// 验证 PlayerComponent：样式索引与冷却
			player, ok := ecs.GetComponent[*components.PlayerComponent](em, shipID)
			if !ok {
				t.Fatal("Player ship should have PlayerComponent")
			}
			if player.ShipIndex != tt.wantIndex {
				t.Errorf("ShipIndex: got %d, want %d", player.ShipIndex, tt.wantIndex)
			}
			if player.CooldownTimer != 0 {
				t.Errorf("CooldownTimer: got %v, want 0 (ready to fire)", player.CooldownTimer)
			}
		})
	}
}
