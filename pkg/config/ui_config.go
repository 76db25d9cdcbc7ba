package config

// UI 布局相关的常量配置
// 各场景的按钮、滑动条等 UI 元素的位置与尺寸
//
// 调整指南：
//   - X: 向右增加，向左减少
//   - Y: 向下增加，向上减少
//   - 屏幕逻辑尺寸：1280x720，水平居中基准为 640

// WidgetRect 描述一个矩形 UI 元素的位置与尺寸
type WidgetRect struct {
	X      float64 // 左上角 X 坐标
	Y      float64 // 左上角 Y 坐标
	Width  float64 // 宽度（像素）
	Height float64 // 高度（像素）
}

// ===== 主菜单 =====

// MenuTitleY 主菜单标题的垂直位置
const MenuTitleY = 160.0

// MenuButtonRects 主菜单按钮位置
// 索引顺序：0=开始游戏(Start), 1=设置(Settings), 2=退出(Quit)
var MenuButtonRects = []WidgetRect{
	{X: 490, Y: 300, Width: 300, Height: 60},
	{X: 490, Y: 380, Width: 300, Height: 60},
	{X: 490, Y: 460, Width: 300, Height: 60},
}

// ===== 选机界面 =====

// ShipSelectTitleY 选机界面标题的垂直位置
const ShipSelectTitleY = 140.0

// ShipSlotRects 三个飞船预览槽位的位置
var ShipSlotRects = []WidgetRect{
	{X: 315, Y: 280, Width: 150, Height: 150},
	{X: 565, Y: 280, Width: 150, Height: 150},
	{X: 815, Y: 280, Width: 150, Height: 150},
}

// ShipPreviewSize 槽位内飞船预览图的边长
const ShipPreviewSize = 120.0

// ShipSelectButtonRects 每个槽位下方的 SELECT 按钮位置
var ShipSelectButtonRects = []WidgetRect{
	{X: 335, Y: 450, Width: 110, Height: 40},
	{X: 585, Y: 450, Width: 110, Height: 40},
	{X: 835, Y: 450, Width: 110, Height: 40},
}

// ShipSelectBackRect 选机界面返回按钮位置
var ShipSelectBackRect = WidgetRect{X: 60, Y: 620, Width: 150, Height: 50}

// ===== 设置界面 =====

// SettingsTitleY 设置界面标题的垂直位置
const SettingsTitleY = 120.0

// SettingsSfxSliderRect 音效音量滑槽位置
var SettingsSfxSliderRect = WidgetRect{X: 440, Y: 250, Width: 400, Height: 20}

// SettingsMusicSliderRect 音乐音量滑槽位置
var SettingsMusicSliderRect = WidgetRect{X: 440, Y: 350, Width: 400, Height: 20}

// SettingsSliderKnobWidth 滑块宽度
const SettingsSliderKnobWidth = 20.0

// SettingsSliderKnobHeight 滑块高度
const SettingsSliderKnobHeight = 36.0

// SettingsTestSoundRect 试听音效下拉框位置
var SettingsTestSoundRect = WidgetRect{X: 440, Y: 470, Width: 400, Height: 40}

// SettingsTestSoundOptionHeight 下拉框展开后每个选项行的高度
const SettingsTestSoundOptionHeight = 36.0

// SettingsFullscreenRect 全屏复选框位置
var SettingsFullscreenRect = WidgetRect{X: 540, Y: 570, Width: 30, Height: 30}

// SettingsLabelX 设置项标签文字的右对齐基准 X 坐标
const SettingsLabelX = 410.0

// SettingsBackRect 设置界面返回按钮位置
var SettingsBackRect = WidgetRect{X: 540, Y: 650, Width: 200, Height: 50}

// ===== 游戏内 HUD 与暂停菜单 =====

// HUDScoreX 得分显示的 X 坐标
const HUDScoreX = 20.0

// HUDScoreY 得分显示的 Y 坐标
const HUDScoreY = 20.0

// PauseTitleY 暂停标题的垂直位置
const PauseTitleY = 250.0

// PauseResumeRect 暂停菜单继续按钮位置
var PauseResumeRect = WidgetRect{X: 490, Y: 360, Width: 300, Height: 60}

// PauseMainMenuRect 暂停菜单返回主菜单按钮位置
var PauseMainMenuRect = WidgetRect{X: 490, Y: 440, Width: 300, Height: 60}

// OffscreenX 隐藏 UI 实体时使用的屏幕外 X 坐标
const OffscreenX = -1000.0

// OffscreenY 隐藏 UI 实体时使用的屏幕外 Y 坐标
const OffscreenY = -1000.0

// ===== 结算界面 =====

// GameOverTitleY 结算标题的垂直位置
const GameOverTitleY = 250.0

// GameOverScoreY 最终得分文字的垂直位置
const GameOverScoreY = 330.0

// GameOverRestartRect 重新开始按钮位置
var GameOverRestartRect = WidgetRect{X: 390, Y: 400, Width: 200, Height: 60}

// GameOverMenuRect 返回主菜单按钮位置
var GameOverMenuRect = WidgetRect{X: 690, Y: 400, Width: 200, Height: 60}

// ===== 退出确认界面 =====

// QuitPromptY 确认文字的垂直位置
const QuitPromptY = 250.0

// QuitYesRect 确认退出按钮位置
var QuitYesRect = WidgetRect{X: 440, Y: 350, Width: 150, Height: 60}

// QuitNoRect 取消退出按钮位置
var QuitNoRect = WidgetRect{X: 690, Y: 350, Width: 150, Height: 60}
