package components

import "github.com/hajimehoshi/ebiten/v2"

// CheckboxComponent 复选框组件
// 用于开关选项（如全屏切换）
type CheckboxComponent struct {
	// 复选框图片（可选，为nil时按纯色矩形绘制）
	UncheckedImage *ebiten.Image // 未选中状态图片
	CheckedImage   *ebiten.Image // 选中状态图片

	// 复选框尺寸（纯色绘制和命中检测使用）
	Width  float64
	Height float64

	// 当前状态
	IsChecked bool
	IsHovered bool // 是否鼠标悬停

	// 标签文字
	Label string

	// 回调函数
	OnToggle func(isChecked bool) // 状态切换时的回调

	// 音效
	ClickSoundID string // 切换时播放的音效ID
}
