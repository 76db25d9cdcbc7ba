package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 文字绘制辅助
// 界面文字统一带 2 像素半透明阴影,各场景和渲染系统通过这里的函数绘制,
// 保证标题、按钮、HUD 的文字风格一致

// 阴影偏移量
const (
	textShadowOffsetX = 2.0
	textShadowOffsetY = 2.0
)

// shadowColor 半透明黑色阴影
var shadowColor = color.RGBA{0, 0, 0, 180}

// DrawCenteredText 以 (centerX, centerY) 为中心绘制带阴影的文字
// 为了让"文字+阴影"整体看起来垂直居中,主文字向上偏移阴影的一半
func DrawCenteredText(screen *ebiten.Image, str string, face text.Face, centerX, centerY float64, clr color.RGBA) {
	if str == "" || face == nil {
		return
	}

	visualCenterOffsetY := -textShadowOffsetY / 2.0

	// 1. 先绘制阴影（深色文字，偏移位置）
	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+textShadowOffsetX, centerY+textShadowOffsetY+visualCenterOffsetY)
	shadowOp.ColorScale.ScaleWithColor(shadowColor)
	text.Draw(screen, str, face, shadowOp)

	// 2. 再绘制主文字
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY+visualCenterOffsetY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawText 以左上角为锚点绘制带阴影的文字(如 HUD 计分)
func DrawText(screen *ebiten.Image, str string, face text.Face, x, y float64, clr color.RGBA) {
	if str == "" || face == nil {
		return
	}

	shadowOp := &text.DrawOptions{}
	shadowOp.GeoM.Translate(x+textShadowOffsetX, y+textShadowOffsetY)
	shadowOp.ColorScale.ScaleWithColor(shadowColor)
	text.Draw(screen, str, face, shadowOp)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawRightAlignedText 以右侧基准点绘制带阴影的文字(如设置项标签)
// (x, centerY) 为文字右边缘的垂直中心
func DrawRightAlignedText(screen *ebiten.Image, str string, face text.Face, x, centerY float64, clr color.RGBA) {
	if str == "" || face == nil {
		return
	}

	visualCenterOffsetY := -textShadowOffsetY / 2.0

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignEnd
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(x+textShadowOffsetX, centerY+textShadowOffsetY+visualCenterOffsetY)
	shadowOp.ColorScale.ScaleWithColor(shadowColor)
	text.Draw(screen, str, face, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignEnd
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, centerY+visualCenterOffsetY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
