package components

import (
	"image/color"

	"github.com/decker502/turtlerace/pkg/ecs"
)

// RacerComponent 标记一个参赛选手
//
// 选手在生成时分配赛道，赛道、颜色、名字在整场比赛中不变，
// 每个比赛 tick 只修改 PositionComponent。
type RacerComponent struct {
	Lane      int        // 赛道索引（0 开始，从上到下）
	ColorName string     // 调色板中的颜色名，如 "red"
	Name      string     // 显示名字，如 "Ruby"
	Color     color.RGBA // 绘制颜色
	Heading   float64    // 朝向（度），0 表示朝右（终点方向）
	Scale     float64    // 海龟形状缩放

	// LabelEntity 是名字标签的文字实体，选手销毁时一并销毁
	LabelEntity ecs.EntityID
}
