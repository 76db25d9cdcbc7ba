package components

// PositionComponent 存储实体在屏幕坐标系中的位置
// 约定 (X, Y) 为实体包围盒的左上角,单位为像素
type PositionComponent struct {
	X float64
	Y float64
}
