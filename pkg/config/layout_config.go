package config

// 布局配置常量
// 本文件定义了赛道的几何参数，坐标全部使用屏幕坐标系（左上角为原点，Y 轴向下）

// Window Configuration (窗口配置)
const (
	// WindowWidth 是窗口（逻辑屏幕）宽度
	WindowWidth = 900

	// WindowHeight 是窗口（逻辑屏幕）高度
	WindowHeight = 540
)

// Track Configuration (赛道配置)
const (
	// Lanes 是赛道数量，每条赛道恰好一名选手
	Lanes = 6

	// MarginX 是起点线距离左边缘（以及终点线距离右边缘）的距离
	MarginX = 80.0

	// MarginY 是赛道区域距离上下边缘的距离
	MarginY = 60.0

	// BorderInset 是外边框相对窗口边缘的内缩量
	BorderInset = 20.0

	// BorderWidth 是外边框线宽
	BorderWidth = 3.0

	// LaneLineWidth 是赛道分隔线线宽
	LaneLineWidth = 2.0

	// LaneOverhang 是分隔线超出起点/终点线的长度
	LaneOverhang = 30.0

	// PostOverhang 是起点/终点竖线在赛道区域上下各超出的长度
	PostOverhang = 10.0

	// PostLabelGap 是 START/FINISH 文字距离最上方分隔线的高度
	PostLabelGap = 20.0

	// CheckerCell 是终点棋盘格的边长
	CheckerCell = 12.0

	// CheckerCols 是终点棋盘格的列数
	CheckerCols = 2

	// TrailWidth 是选手留下的轨迹线宽
	TrailWidth = 3.0
)

// Text Layout (文字布局)
const (
	// LabelOffsetX 是名字标签相对起点线的左移距离
	LabelOffsetX = 55.0

	// LabelOffsetY 是名字标签相对选手中心的下移距离
	LabelOffsetY = 10.0

	// TitleOffsetY 是标题相对屏幕中心的上移距离
	TitleOffsetY = 20.0

	// HelpOffsetY 是帮助文字距离底边的距离
	HelpOffsetY = 60.0

	// HintOffsetY 是比赛结束提示距离底边的距离
	HintOffsetY = 40.0
)

// StartX 返回起点线的 X 坐标
func StartX() float64 {
	return MarginX
}

// FinishX 返回终点线的 X 坐标
func FinishX() float64 {
	return WindowWidth - MarginX
}

// LaneHeight 返回每条赛道的高度
// 计算方式：(540 - 2*60) / 6 = 70
func LaneHeight() float64 {
	return (WindowHeight - 2*MarginY) / Lanes
}

// TrackTop 返回最上方分隔线的 Y 坐标
func TrackTop() float64 {
	return MarginY
}

// TrackBottom 返回最下方分隔线的 Y 坐标
func TrackBottom() float64 {
	return TrackTop() + Lanes*LaneHeight()
}

// LaneBand 返回第 lane 条赛道（从 0 开始）的上下边界
//
// 示例:
//
//	LaneBand(0) = (60, 130)
//	LaneBand(5) = (410, 480)
func LaneBand(lane int) (top, bottom float64) {
	top = TrackTop() + float64(lane)*LaneHeight()
	return top, top + LaneHeight()
}

// LaneCenterY 返回第 lane 条赛道中心的 Y 坐标
func LaneCenterY(lane int) float64 {
	return TrackTop() + (float64(lane)+0.5)*LaneHeight()
}

// CheckerRows 返回终点棋盘格的行数（覆盖整个赛道区域并多出两行）
func CheckerRows() int {
	return int((Lanes*LaneHeight())/CheckerCell) + 2
}
