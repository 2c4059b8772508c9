package components

// TrailComponent 选手落笔后留下的轨迹
//
// 选手只沿直线前进，轨迹是从 (FromX, FromY) 到当前位置的一条线段。
// Visible 为 false 时相当于抬笔/清除轨迹。
type TrailComponent struct {
	FromX   float64
	FromY   float64
	Visible bool
}
