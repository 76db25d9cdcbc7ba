package components

// PlayerComponent 标记玩家飞船实体并保存射击状态
type PlayerComponent struct {
	// ShipIndex 所选飞船样式的索引(0-2)
	ShipIndex int
	// CooldownTimer 距离下次可射击的剩余时间(秒),为0时可射击
	CooldownTimer float64
}
