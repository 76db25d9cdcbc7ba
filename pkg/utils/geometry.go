package utils

// Rect 表示屏幕坐标系中的轴对齐矩形
// (X, Y) 为左上角,宽高沿正X/正Y方向延伸
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Overlaps 判断两个轴对齐矩形是否相交
// 相交的定义是交集面积大于零:
//   - 仅边或角接触不算相交
//   - 宽或高为零(或负)的退化矩形与任何矩形都不相交
func Overlaps(a, b Rect) bool {
	if a.Width <= 0 || a.Height <= 0 || b.Width <= 0 || b.Height <= 0 {
		return false
	}
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// PointInRect 判断点是否落在矩形内(含边界)
// UI 命中检测使用,与碰撞检测不同,点在边界上也算命中
func PointInRect(px, py float64, r Rect) bool {
	return px >= r.X && px <= r.X+r.Width &&
		py >= r.Y && py <= r.Y+r.Height
}
