package systems

import (
	"image/color"

	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/ecs"
	"github.com/gonewx/starshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体（纯色按钮和图片按钮）
//
// 职责：
//   - 渲染按钮背景（纯色矩形 or 图片）
//   - 渲染按钮文字（自动居中，带阴影）
//   - 根据按钮状态选择填充色或图片（hover/pressed）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
// 查询所有拥有 ButtonComponent 和 PositionComponent 的实体并渲染
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	// 查询所有按钮实体
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
// 用于需要精确控制渲染顺序的场景（如暂停菜单覆盖层）
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	// 渲染按钮背景
	s.drawButtonBackground(screen, button, pos.X, pos.Y)

	// 渲染按钮文字
	s.drawButtonText(screen, button, pos.X, pos.Y)
}

// drawButtonBackground 渲染按钮背景
func (s *ButtonRenderSystem) drawButtonBackground(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Type == components.ButtonTypeFlat {
		// 纯色矩形按钮
		s.drawFlatButton(screen, button, x, y)
	} else {
		// 图片按钮
		s.drawSimpleButton(screen, button, x, y)
	}
}

// drawFlatButton 渲染纯色矩形按钮
// 悬停和按下状态使用 HoverColor，其余状态使用 NormalColor
func (s *ButtonRenderSystem) drawFlatButton(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Width <= 0 || button.Height <= 0 {
		return
	}

	// 根据状态选择填充色
	fill := button.NormalColor
	switch button.State {
	case components.UIHovered, components.UIClicked:
		fill = button.HoverColor
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), fill, true)

	// 绘制边框（Alpha 为 0 时跳过）
	if button.BorderColor.A > 0 {
		vector.StrokeRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), 2, button.BorderColor, true)
	}
}

// drawSimpleButton 渲染图片按钮
func (s *ButtonRenderSystem) drawSimpleButton(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	// 根据状态选择图片
	var img *ebiten.Image
	switch button.State {
	case components.UIHovered:
		if button.HoverImage != nil {
			img = button.HoverImage
		} else {
			img = button.NormalImage
		}
	case components.UIClicked:
		if button.PressedImage != nil {
			img = button.PressedImage
		} else {
			img = button.NormalImage
		}
	default:
		img = button.NormalImage
	}

	if img == nil {
		return
	}

	imgWidth := float64(img.Bounds().Dx())
	imgHeight := float64(img.Bounds().Dy())
	if imgWidth <= 0 || imgHeight <= 0 {
		return
	}

	// 未指定按钮尺寸时使用图片自身尺寸（缓存）
	if button.Width <= 0 {
		button.Width = imgWidth
	}
	if button.Height <= 0 {
		button.Height = imgHeight
	}

	// 绘制按钮图片（拉伸到按钮尺寸）
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(button.Width/imgWidth, button.Height/imgHeight)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Text == "" || button.Font == nil {
		return
	}

	// 计算按钮中心点
	centerX := x + button.Width/2
	centerY := y + button.Height/2

	utils.DrawCenteredText(screen, button.Text, button.Font, centerX, centerY, color.RGBA{
		R: button.TextColor[0],
		G: button.TextColor[1],
		B: button.TextColor[2],
		A: button.TextColor[3],
	})
}
