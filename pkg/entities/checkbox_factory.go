package entities

import (
	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/ecs"
)

// NewCheckbox 创建复选框实体
// 复选框不携带图片资源,由渲染层按纯色矩形绘制
//
// 参数：
//   - em: 实体管理器
//   - x, y: 复选框左上角位置（屏幕坐标）
//   - width, height: 复选框尺寸
//   - label: 复选框右侧的标签文字
//   - checked: 初始勾选状态
//   - onToggle: 状态切换时的回调
//
// 返回：
//   - 复选框实体ID
func NewCheckbox(
	em *ecs.EntityManager,
	x, y float64,
	width, height float64,
	label string,
	checked bool,
	onToggle func(isChecked bool),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.CheckboxComponent{
		Width:        width,
		Height:       height,
		IsChecked:    checked,
		Label:        label,
		ClickSoundID: "SOUND_CLICK",
		OnToggle:     onToggle,
	})

	return entity
}
