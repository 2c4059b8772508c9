package components

// PositionComponent 存储实体在屏幕坐标系中的位置
// 对选手而言是海龟中心点
type PositionComponent struct {
	X float64
	Y float64
}
