package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/starshooter/pkg/config"
)

// storageAppName gdata 存储目录名,决定设置文件在各平台的落盘位置
const storageAppName = "starshooter"

// GameState 存储全局游戏状态
// 这是一个单例，用于管理跨场景和跨系统的全局状态数据
type GameState struct {
	Score        int  // 当前局得分
	SelectedShip int  // 选中的飞船样式索引 (0-2)，跨局保留
	IsPaused     bool // 对局是否处于暂停
	IsGameOver   bool // 对局是否已判负，由物理系统置位，游戏场景消费

	settingsManager *SettingsManager
	audioManager    *AudioManager
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个游戏生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{}
	}
	return globalGameState
}

// AddScore 增加得分
// 负数会被忽略,得分只能通过击落敌机增长或随新对局清零
func (gs *GameState) AddScore(points int) {
	if points <= 0 {
		return
	}
	gs.Score += points
}

// GetScore 返回当前得分
func (gs *GameState) GetScore() int {
	return gs.Score
}

// ResetRound 开始新对局前重置单局状态
// 得分清零，暂停与判负标记复位；所选飞船跨局保留
func (gs *GameState) ResetRound() {
	gs.Score = 0
	gs.IsPaused = false
	gs.IsGameOver = false
}

// SelectShip 记录玩家选中的飞船样式
// 越界索引仅记录日志并忽略，当前选择保持不变
func (gs *GameState) SelectShip(index int) {
	if index < 0 || index >= config.ShipStyleCount {
		log.Printf("[GameState] Warning: invalid ship index %d, keeping %d", index, gs.SelectedShip)
		return
	}
	gs.SelectedShip = index
}

// GetSelectedShip 返回当前选中的飞船样式索引
func (gs *GameState) GetSelectedShip() int {
	return gs.SelectedShip
}

// GetSettingsManager 返回设置管理器，首次调用时初始化
// gdata 存储打开失败时进入降级模式：设置仅保存在内存中，游戏照常运行
func (gs *GameState) GetSettingsManager() *SettingsManager {
	if gs.settingsManager == nil {
		gdataManager, err := gdata.Open(gdata.Config{AppName: storageAppName})
		if err != nil {
			log.Printf("[GameState] Warning: Failed to open data storage: %v (settings will not persist)", err)
			gdataManager = nil
		}

		sm, err := NewSettingsManager(gdataManager)
		if err != nil {
			log.Printf("[GameState] Warning: Failed to create settings manager: %v", err)
		}
		gs.settingsManager = sm
	}
	return gs.settingsManager
}

// SetAudioManager 注入音频管理器
// 音频管理器依赖资源管理器，由应用初始化时创建后注入
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器，未注入时返回 nil
// 调用方需要做 nil 检查（测试环境通常没有音频设备）
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}
