package config

// 游戏窗口与逻辑帧率的全局常量
// 所有场景按此逻辑分辨率布局,实际窗口缩放由 ebiten 处理
const (
	// GameWindowWidth 游戏逻辑宽度(像素)
	GameWindowWidth = 1280
	// GameWindowHeight 游戏逻辑高度(像素)
	GameWindowHeight = 720

	// TicksPerSecond 逻辑帧率,速度常量均以 像素/帧 为单位
	TicksPerSecond = 60.0
)

// 玩家飞船相关常量
const (
	// PlayerSpeed 玩家水平移动速度(像素/帧)
	PlayerSpeed = 8.0
	// PlayerMaxWidth 飞船图片的最大显示宽度(像素),超出时等比缩小
	PlayerMaxWidth = 80
	// PlayerFallbackWidth 素材缺失时占位飞船的宽度(像素)
	PlayerFallbackWidth = 64
	// PlayerFallbackHeight 素材缺失时占位飞船的高度(像素)
	PlayerFallbackHeight = 64
	// PlayerSpawnOffsetY 玩家出生位置距屏幕底部的距离(像素)
	PlayerSpawnOffsetY = 120
	// ShootCooldownSeconds 两次射击之间的最小间隔(秒)
	ShootCooldownSeconds = 0.25
	// ShipStyleCount 可选飞船样式数量
	ShipStyleCount = 3
)

// 子弹相关常量
const (
	// BulletSpeed 子弹向上飞行速度(像素/帧)
	BulletSpeed = 7.0
	// BulletMaxWidth 子弹图片的最大显示宽度(像素)
	BulletMaxWidth = 16
	// BulletFallbackWidth 素材缺失时占位子弹的宽度(像素)
	BulletFallbackWidth = 8
	// BulletFallbackHeight 素材缺失时占位子弹的高度(像素)
	BulletFallbackHeight = 32
)

// 敌机相关常量
const (
	// EnemyMaxWidth 敌机图片的最大显示宽度(像素)
	EnemyMaxWidth = 70
	// EnemyFallbackWidth 素材缺失时占位敌机的宽度(像素)
	EnemyFallbackWidth = 64
	// EnemyFallbackHeight 素材缺失时占位敌机的高度(像素)
	EnemyFallbackHeight = 64
)

// 计分常量
const (
	// ScorePerKill 每击落一架敌机的得分
	ScorePerKill = 10
)
