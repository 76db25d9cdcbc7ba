package components

// DropdownComponent 下拉选择框组件
// 用于从少量固定选项中选择(如试听音效的种类)
// 折叠时只显示当前选项,展开后在下方列出全部选项
type DropdownComponent struct {
	// Options 全部可选项的显示文字
	Options []string
	// SelectedIndex 当前选中项的索引
	SelectedIndex int

	// 尺寸
	Width        float64 // 选择框宽度
	Height       float64 // 折叠时的高度
	OptionHeight float64 // 展开后每个选项行的高度

	// 状态
	IsOpen        bool // 是否处于展开状态
	IsHovered     bool // 鼠标是否悬停在选择框主体上
	HoveredOption int  // 展开时悬停的选项索引,-1表示无

	// 标签文字
	Label string

	// 回调函数
	OnSelect func(index int) // 选中某项时的回调

	// 音效
	ClickSoundID string // 展开/选中时播放的音效ID
}
