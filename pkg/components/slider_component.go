package components

import "github.com/hajimehoshi/ebiten/v2"

// SliderComponent 滑动条组件
// 用于音量控制等需要滑动调整数值的UI元素
type SliderComponent struct {
	// 滑动条图片（可选，为nil时按纯色矩形绘制）
	SlotImage *ebiten.Image // 滑槽图片
	KnobImage *ebiten.Image // 滑块图片

	// 滑动条尺寸
	SlotWidth  float64 // 滑槽宽度
	SlotHeight float64 // 滑槽高度
	KnobWidth  float64 // 滑块宽度
	KnobHeight float64 // 滑块高度

	// 当前值（0.0 - 1.0）
	Value float64

	// 标签文字
	Label string

	// 状态
	IsDragging bool // 是否正在拖动
	IsHovered  bool // 是否鼠标悬停

	// 回调函数
	OnValueChange func(value float64) // 值改变时的回调
	OnRelease     func(value float64) // 拖拽结束时的回调（如播放试听音效）

	// 音效
	ClickSoundID string // 拖拽结束时播放的音效ID
}
