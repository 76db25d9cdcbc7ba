package ecs

import "testing"

// 泛型辅助函数的功能测试
// 组件类型复用 entity_manager_test.go 中的定义

func TestGenericAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 42, Y: 24})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 42 || pos.Y != 24 {
		t.Errorf("Component data mismatch, got (%f, %f), want (42, 24)", pos.X, pos.Y)
	}

	// 未添加的组件类型返回 false
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Velocity component should not be found")
	}
}

func TestGenericGetComponentReturnsSameInstance(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 1})

	pos, _ := GetComponent[*testPositionComponent](em, id)
	pos.X = 99

	// 组件以指针存储,修改应对后续读取可见
	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 99 {
		t.Errorf("Component mutation should persist, got X=%f", again.X)
	}
}

func TestGenericHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testPositionComponent{})
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component after removal")
	}
}

func TestGenericEntityQueries(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1 with both components, got %v", both)
	}

	posOnly := GetEntitiesWith1[*testPositionComponent](em)
	if len(posOnly) != 2 {
		t.Errorf("Expected 2 entities with Position, got %d", len(posOnly))
	}
}
