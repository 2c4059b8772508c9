package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/ecs"
	"github.com/decker502/turtlerace/pkg/entities"
	"github.com/decker502/turtlerace/pkg/utils"
)

// FaceProvider 按档位提供字体（game.FontManager 实现了此接口）
type FaceProvider interface {
	Face(kind components.FontKind) *text.GoTextFace
}

// TextOverlaySystem 文字叠加层系统
//
// 职责：
//   - 创建、修改、清除屏幕文字（Create / Update / Clear / Destroy）
//   - 按层级绘制所有非空文字
//
// 其他系统只通过这里修改文字，不直接操作 TextOverlayComponent。
type TextOverlaySystem struct {
	entityManager *ecs.EntityManager
	fonts         FaceProvider
}

// NewTextOverlaySystem 创建文字叠加层系统
// fonts 可为 nil（只使用状态操作、不绘制时）
func NewTextOverlaySystem(em *ecs.EntityManager, fonts FaceProvider) *TextOverlaySystem {
	return &TextOverlaySystem{
		entityManager: em,
		fonts:         fonts,
	}
}

// Create 创建一个文字实体
func (s *TextOverlaySystem) Create(overlay components.TextOverlayComponent) ecs.EntityID {
	return entities.NewTextOverlayEntity(s.entityManager, overlay)
}

// Update 修改文字内容，实体不存在时返回 false
func (s *TextOverlaySystem) Update(id ecs.EntityID, textStr string) bool {
	overlay, ok := ecs.GetComponent[*components.TextOverlayComponent](s.entityManager, id)
	if !ok {
		return false
	}
	overlay.Text = textStr
	return true
}

// Clear 清除文字（实体保留，可以再次 Update）
func (s *TextOverlaySystem) Clear(id ecs.EntityID) {
	s.Update(id, "")
}

// Text 返回当前显示的文字，实体不存在时返回空字符串
func (s *TextOverlaySystem) Text(id ecs.EntityID) string {
	overlay, ok := ecs.GetComponent[*components.TextOverlayComponent](s.entityManager, id)
	if !ok {
		return ""
	}
	return overlay.Text
}

// Destroy 清除文字并销毁实体（实体在帧末 RemoveMarkedEntities 时删除）
func (s *TextOverlaySystem) Destroy(id ecs.EntityID) {
	s.Clear(id)
	s.entityManager.DestroyEntity(id)
}

// Draw 绘制所有非空文字，Layer 小的先画
func (s *TextOverlaySystem) Draw(screen *ebiten.Image) {
	if s.fonts == nil {
		return
	}

	ids := ecs.GetEntitiesWith1[*components.TextOverlayComponent](s.entityManager)
	overlays := make([]*components.TextOverlayComponent, 0, len(ids))
	for _, id := range ids {
		overlay, ok := ecs.GetComponent[*components.TextOverlayComponent](s.entityManager, id)
		if !ok || overlay.Text == "" {
			continue
		}
		overlays = append(overlays, overlay)
	}

	// ids 已按创建顺序排列，同层保持创建顺序
	sort.SliceStable(overlays, func(i, j int) bool {
		return overlays[i].Layer < overlays[j].Layer
	})

	for _, overlay := range overlays {
		s.drawOverlay(screen, overlay)
	}
}

func (s *TextOverlaySystem) drawOverlay(screen *ebiten.Image, overlay *components.TextOverlayComponent) {
	face := s.fonts.Face(overlay.Font)
	if face == nil {
		return
	}

	x := utils.AlignedX(overlay.Text, face, overlay.X, int(overlay.Align))
	y := utils.BaselineToTop(overlay.Y, face)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	if overlay.Color != nil {
		op.ColorScale.ScaleWithColor(overlay.Color)
	}
	text.Draw(screen, overlay.Text, face, op)
}
