package scenes

import (
	"github.com/gonewx/starshooter/pkg/game"
)

// newTestSceneDeps 构造场景测试通用的资源与场景管理器
// 不带音频上下文，音频与存储相关调用都走安全的降级路径
func newTestSceneDeps() (*game.ResourceManager, *game.SceneManager) {
	return game.NewResourceManager(nil), game.NewSceneManager()
}

// resetGameState 把全局游戏状态恢复到干净的初始样子
// 场景切换回调依赖全局单例，测试开始前统一复位
func resetGameState() {
	gameState := game.GetGameState()
	gameState.ResetRound()
	gameState.SelectShip(0)
}
