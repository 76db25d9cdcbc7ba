package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonType 定义按钮的渲染类型
type ButtonType int

const (
	// ButtonTypeFlat 纯色矩形按钮，悬停时切换填充色
	ButtonTypeFlat ButtonType = iota
	// ButtonTypeSimple 图片按钮
	ButtonTypeSimple
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 支持纯色矩形按钮和图片按钮
//   - 支持文字自动居中显示
//   - 支持点击回调和交互音效
type ButtonComponent struct {
	// Type 按钮类型（纯色 or 图片）
	Type ButtonType

	// ===== 纯色按钮外观（ButtonTypeFlat）=====
	// NormalColor 正常状态的填充色
	NormalColor color.RGBA
	// HoverColor 悬停状态的填充色
	HoverColor color.RGBA
	// BorderColor 边框颜色（Alpha为0时不绘制边框）
	BorderColor color.RGBA

	// ===== 图片按钮资源（ButtonTypeSimple）=====
	// NormalImage 正常状态图片
	NormalImage *ebiten.Image
	// HoverImage 悬停状态图片（可选）
	HoverImage *ebiten.Image
	// PressedImage 按下状态图片（可选）
	PressedImage *ebiten.Image

	// ===== 按钮文字 =====
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font text.Face
	// TextColor 文字颜色（RGBA）
	TextColor [4]uint8 // R, G, B, A

	// ===== 按钮尺寸 =====
	// Width 按钮总宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// ===== 按钮状态 =====
	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// ===== 交互音效 =====
	// HoverSoundID 鼠标进入按钮时播放的音效ID（可选）
	HoverSoundID string
	// ClickSoundID 点击确认时播放的音效ID（可选）
	ClickSoundID string

	// ===== 点击回调 =====
	// OnClick 点击回调函数
	OnClick func()
}
