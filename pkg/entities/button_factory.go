package entities

import (
	"image/color"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/ecs"
)

// buttonFontSize 按钮文字的统一字号
const buttonFontSize = 24.0

// 扁平按钮的默认配色,深色底浅色描边,悬停时提亮
var (
	buttonNormalColor = color.RGBA{R: 28, G: 34, B: 56, A: 255}
	buttonHoverColor  = color.RGBA{R: 52, G: 64, B: 96, A: 255}
	buttonBorderColor = color.RGBA{R: 130, G: 150, B: 190, A: 255}
	buttonTextColor   = [4]uint8{235, 238, 245, 255}
)

// NewTextButton 创建扁平样式的文字按钮实体
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源加载器（加载按钮字体）
//   - x, y: 按钮左上角位置（屏幕坐标）
//   - width, height: 按钮尺寸
//   - label: 按钮文字
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewTextButton(
	em *ecs.EntityManager,
	rm ResourceLoader,
	x, y float64,
	width, height float64,
	label string,
	onClick func(),
) ecs.EntityID {
	font := rm.LoadFontByID("FONT_RETRO", buttonFontSize)

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Type:         components.ButtonTypeFlat,
		NormalColor:  buttonNormalColor,
		HoverColor:   buttonHoverColor,
		BorderColor:  buttonBorderColor,
		Text:         label,
		Font:         font,
		TextColor:    buttonTextColor,
		Width:        width,
		Height:       height,
		State:        components.UINormal,
		Enabled:      true,
		HoverSoundID: "SOUND_HOVER",
		ClickSoundID: "SOUND_CLICK",
		OnClick:      onClick,
	})

	return entity
}

// NewImageButton 创建图片按钮实体
// 图片会被渲染系统缩放到 width x height,缺失的资源会以占位图显示
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源加载器（加载按钮图片）
//   - x, y: 按钮左上角位置（屏幕坐标）
//   - width, height: 按钮显示尺寸
//   - normalImageID: 正常状态图片资源ID
//   - hoverImageID: 悬停状态图片资源ID（空字符串时复用正常图片）
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewImageButton(
	em *ecs.EntityManager,
	rm ResourceLoader,
	x, y float64,
	width, height float64,
	normalImageID, hoverImageID string,
	onClick func(),
) ecs.EntityID {
	normalImage := rm.LoadImageByID(normalImageID)

	hoverImage := normalImage
	if hoverImageID != "" && hoverImageID != normalImageID {
		hoverImage = rm.LoadImageByID(hoverImageID)
	}

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Type:         components.ButtonTypeSimple,
		NormalImage:  normalImage,
		HoverImage:   hoverImage,
		Width:        width,
		Height:       height,
		State:        components.UINormal,
		Enabled:      true,
		HoverSoundID: "SOUND_HOVER",
		ClickSoundID: "SOUND_CLICK",
		OnClick:      onClick,
	})

	return entity
}
