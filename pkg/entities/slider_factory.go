package entities

import (
	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
)

// NewVolumeSlider 创建音量滑动条实体
// 滑动条不携带图片资源,由渲染层按纯色矩形绘制
//
// 参数：
//   - em: 实体管理器
//   - x, y: 滑槽左上角位置（屏幕坐标）
//   - width, height: 滑槽尺寸
//   - label: 滑动条左侧的标签文字
//   - initial: 初始值 (0.0 ~ 1.0)
//   - onChange: 值改变时的回调（拖动过程中持续触发）
//   - onRelease: 拖拽结束时的回调（可为 nil）
//
// 返回：
//   - 滑动条实体ID
func NewVolumeSlider(
	em *ecs.EntityManager,
	x, y float64,
	width, height float64,
	label string,
	initial float64,
	onChange func(value float64),
	onRelease func(value float64),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.SliderComponent{
		SlotWidth:     width,
		SlotHeight:    height,
		KnobWidth:     config.SettingsSliderKnobWidth,
		KnobHeight:    config.SettingsSliderKnobHeight,
		Value:         initial,
		Label:         label,
		ClickSoundID:  "SOUND_CLICK",
		OnValueChange: onChange,
		OnRelease:     onRelease,
	})

	return entity
}
