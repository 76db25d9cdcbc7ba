package components

// BulletComponent 标记玩家发射的子弹实体
// 子弹命中敌机或飞出屏幕顶部后销毁
type BulletComponent struct{}
