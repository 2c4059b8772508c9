package systems

import (
	"image/color"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
)

// BannerLayer 横幅的绘制层级，位于其他文字之上
const BannerLayer = 10

// Banner 屏幕中央的大字横幅
// 标题、倒计时和比赛结果共用同一个文字实体，每次 Show 覆盖上一次的内容
type Banner struct {
	overlays *TextOverlaySystem
	entityID ecs.EntityID
}

// NewBanner 创建横幅（文字实体在第一次 Show 时创建）
func NewBanner(overlays *TextOverlaySystem) *Banner {
	return &Banner{overlays: overlays}
}

// Show 在屏幕中央显示文字，yOffset 为向上的偏移（像素）
func (b *Banner) Show(textStr string, yOffset float64) {
	x := float64(config.WindowWidth) / 2
	y := float64(config.WindowHeight)/2 - yOffset

	if b.entityID == 0 || !b.overlays.entityManager.IsAlive(b.entityID) {
		b.entityID = b.overlays.Create(components.TextOverlayComponent{
			Font:  components.FontBig,
			Align: components.AlignCenter,
			Color: color.Black,
			Layer: BannerLayer,
		})
	}

	overlay, ok := ecs.GetComponent[*components.TextOverlayComponent](b.overlays.entityManager, b.entityID)
	if !ok {
		return
	}
	overlay.Text = textStr
	overlay.X = x
	overlay.Y = y
}

// Clear 清除横幅文字
func (b *Banner) Clear() {
	if b.entityID != 0 {
		b.overlays.Clear(b.entityID)
	}
}

// Text 返回横幅当前文字
func (b *Banner) Text() string {
	if b.entityID == 0 {
		return ""
	}
	return b.overlays.Text(b.entityID)
}

// EntityID 返回横幅的文字实体
func (b *Banner) EntityID() ecs.EntityID {
	return b.entityID
}
