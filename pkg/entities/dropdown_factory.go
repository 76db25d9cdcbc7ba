package entities

import (
	"github.com/gonewx/starshooter/pkg/components"
	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/ecs"
)

// NewDropdown 创建下拉选择框实体
// 折叠时显示当前选项,点击展开后在下方列出全部选项
//
// 参数：
//   - em: 实体管理器
//   - x, y: 选择框左上角位置（屏幕坐标）
//   - width, height: 折叠状态下的尺寸
//   - label: 选择框左侧的标签文字
//   - options: 全部可选项的显示文字
//   - selected: 初始选中项索引（越界时归零）
//   - onSelect: 选中某项时的回调
//
// 返回：
//   - 下拉选择框实体ID
func NewDropdown(
	em *ecs.EntityManager,
	x, y float64,
	width, height float64,
	label string,
	options []string,
	selected int,
	onSelect func(index int),
) ecs.EntityID {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.DropdownComponent{
		Options:       options,
		SelectedIndex: selected,
		Width:         width,
		Height:        height,
		OptionHeight:  config.SettingsTestSoundOptionHeight,
		HoveredOption: -1,
		Label:         label,
		ClickSoundID:  "SOUND_CLICK",
		OnSelect:      onSelect,
	})

	return entity
}
