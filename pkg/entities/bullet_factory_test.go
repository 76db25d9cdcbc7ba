package entities

import (
	"testing"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
)

// TestNewBullet 测试子弹实体创建
// mock 贴图为 10x10，发射者宽度不同则子弹水平居中位置不同
// 出生高度与发射者顶部对齐
func TestNewBullet(t *testing.T) {
	tests := []struct {
		name         string
		shooterX     float64
		shooterY     float64
		shooterWidth float64
		wantX        float64
		wantY        float64
	}{
		{"与子弹同宽的发射者", 100, 200, 10, 100, 200},
		{"较宽的发射者居中发射", 100, 200, 50, 120, 200},
		{"屏幕左缘发射", 0, 600, 80, 35, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := newMockResourceLoader()
			em := ecs.NewEntityManager()

			bulletID := NewBullet(em, rm, tt.shooterX, tt.shooterY, tt.shooterWidth)
			if bulletID == 0 {
				t.Fatal("Expected valid entity ID, got 0")
			}

			pos, ok := ecs.GetComponent[*components.PositionComponent](em, bulletID)
			if !ok {
				t.Fatal("Bullet should have PositionComponent")
			}
			if pos.X != tt.wantX {
				t.Errorf("Position.X: got %v, want %v", pos.X, tt.wantX)
			}
			if pos.Y != tt.wantY {
				t.Errorf("Position.Y: got %v, want %v", pos.Y, tt.wantY)
			}

			// 验证垂直向上的飞行速度
			vel, ok := ecs.GetComponent[*components.VelocityComponent](em, bulletID)
			if !ok {
				t.Fatal("Bullet should have VelocityComponent")
			}
			if vel.VX != 0 {
				t.Errorf("Velocity.VX: got %v, want 0", vel.VX)
			}
			if vel.VY != -config.BulletSpeed {
				t.Errorf("Velocity.VY: got %v, want %v", vel.VY, -config.BulletSpeed)
			}

			// 验证标记组件与碰撞盒
			if !ecs.HasComponent[*components.BulletComponent](em, bulletID) {
				t.Error("Bullet should have BulletComponent marker")
			}
			col, ok := ecs.GetComponent[*components.CollisionComponent](em, bulletID)
			if !ok {
				t.Fatal("Bullet should have CollisionComponent")
			}
			if col.Width != 10 || col.Height != 10 {
				t.Errorf("Collision size: got %vx%v, want 10x10", col.Width, col.Height)
			}
		})
	}
}
