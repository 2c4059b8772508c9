package entities

import (
	"image/color"
	"log"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
)

// RacerScale 海龟形状的缩放倍数
const RacerScale = 1.6

// NewRacerEntity 在指定赛道的起点创建一名选手
// 参数:
//   - em: EntityManager 实例
//   - cfg: 比赛配置（提供颜色和名字）
//   - lane: 赛道索引（0 开始）
//   - startX: 起点线 X 坐标
//
// 选手位于赛道中心，朝向终点（Heading=0），轨迹为空。
// 同时创建一个名字标签实体，ID 记录在 RacerComponent.LabelEntity 中。
//
// 返回: 选手实体ID
func NewRacerEntity(em *ecs.EntityManager, cfg *config.RaceConfig, lane int, startX float64) ecs.EntityID {
	entry := cfg.LaneColor(lane)
	rgba, err := entry.RGBA()
	if err != nil {
		// 配置在加载时已校验，这里只做兜底
		log.Printf("[RacerFactory] Warning: %v (using black)", err)
		rgba = color.RGBA{A: 255}
	}

	y := config.LaneCenterY(lane)
	name := cfg.LaneName(lane)

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: startX,
		Y: y,
	})

	ecs.AddComponent(em, id, &components.TrailComponent{
		FromX:   startX,
		FromY:   y,
		Visible: false,
	})

	labelID := NewTextOverlayEntity(em, components.TextOverlayComponent{
		Text:  name,
		X:     startX - config.LabelOffsetX,
		Y:     y + config.LabelOffsetY,
		Font:  components.FontLabel,
		Align: components.AlignLeft,
		Color: color.Black,
	})

	ecs.AddComponent(em, id, &components.RacerComponent{
		Lane:        lane,
		ColorName:   entry.Name,
		Name:        name,
		Color:       rgba,
		Heading:     0,
		Scale:       RacerScale,
		LabelEntity: labelID,
	})

	return id
}
