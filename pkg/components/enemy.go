package components

// EnemyComponent 标记敌机实体
// 敌机从屏幕顶部生成,向下移动,被击中或触底后离场
type EnemyComponent struct{}
