package components

// VelocityComponent 存储实体每逻辑帧的位移量
// 单位为 像素/帧(60帧每秒),正X向右,正Y向下
type VelocityComponent struct {
	VX float64
	VY float64
}
