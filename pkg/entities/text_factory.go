package entities

import (
	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/ecs"
)

// NewTextOverlayEntity 创建一个文字叠加层实体
// 参数:
//   - em: EntityManager 实例
//   - overlay: 文字内容、位置、字体和对齐方式（按值复制）
//
// 返回: 创建的实体ID
func NewTextOverlayEntity(em *ecs.EntityManager, overlay components.TextOverlayComponent) ecs.EntityID {
	id := em.CreateEntity()

	o := overlay
	ecs.AddComponent(em, id, &o)

	return id
}
