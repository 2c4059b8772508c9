package systems

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/utils"
)

// 赛道颜色
var (
	TrackBackgroundColor = color.RGBA{255, 255, 255, 255}
	TrackLineColor       = color.RGBA{0, 0, 0, 255}
	StartPostColor       = color.RGBA{64, 64, 64, 255} // gray25
	FinishPostColor      = color.RGBA{0, 0, 0, 255}
	CheckerDarkColor     = color.RGBA{0, 0, 0, 255}
	CheckerLightColor    = color.RGBA{255, 255, 255, 255}
)

// TrackLine 一条线段
type TrackLine struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          color.RGBA
}

// TrackLabel 赛道上的文字（y 为基线，x 为居中锚点）
type TrackLabel struct {
	Text  string
	X, Y  float64
	Color color.RGBA
}

// CheckerCell 终点格子
type CheckerCell struct {
	X, Y, Size float64
	Dark       bool
}

// TrackLayout 赛道的全部几何元素，按绘制顺序排列
type TrackLayout struct {
	BorderX, BorderY, BorderW, BorderH float64
	Lanes                              []TrackLine
	Posts                              []TrackLine
	Labels                             []TrackLabel
	Checker                            []CheckerCell
}

// BuildTrackLayout 根据布局常量计算赛道几何
func BuildTrackLayout() TrackLayout {
	startX := config.StartX()
	finishX := config.FinishX()
	top := config.TrackTop()
	bottom := config.TrackBottom()
	laneHeight := config.LaneHeight()

	layout := TrackLayout{
		BorderX: config.BorderInset,
		BorderY: config.BorderInset,
		BorderW: config.WindowWidth - 2*config.BorderInset,
		BorderH: config.WindowHeight - 2*config.BorderInset,
	}

	// 赛道分隔线：Lanes+1 条
	for i := 0; i <= config.Lanes; i++ {
		y := top + float64(i)*laneHeight
		layout.Lanes = append(layout.Lanes, TrackLine{
			X1:    startX - config.LaneOverhang,
			Y1:    y,
			X2:    finishX + config.LaneOverhang,
			Y2:    y,
			Width: config.LaneLineWidth,
			Color: TrackLineColor,
		})
	}

	// 起点和终点柱
	posts := []struct {
		x     float64
		label string
		color color.RGBA
	}{
		{startX, "START", StartPostColor},
		{finishX, "FINISH", FinishPostColor},
	}
	for _, p := range posts {
		layout.Posts = append(layout.Posts, TrackLine{
			X1:    p.x,
			Y1:    top - config.PostOverhang,
			X2:    p.x,
			Y2:    bottom + config.PostOverhang,
			Width: config.LaneLineWidth,
			Color: p.color,
		})
		layout.Labels = append(layout.Labels, TrackLabel{
			Text:  p.label,
			X:     p.x,
			Y:     top - config.PostLabelGap,
			Color: p.color,
		})
	}

	// 终点棋盘格
	rows := config.CheckerRows()
	for r := 0; r < rows; r++ {
		for c := 0; c < config.CheckerCols; c++ {
			layout.Checker = append(layout.Checker, CheckerCell{
				X:    finishX - config.CheckerCell + float64(c)*config.CheckerCell,
				Y:    top + float64(r)*config.CheckerCell,
				Size: config.CheckerCell,
				Dark: (r+c)%2 == 0,
			})
		}
	}

	return layout
}

// TrackRenderSystem 赛道渲染系统
//
// 赛道画在一张离屏图片上，只有 Redraw 之后才重新绘制。
// 每次重绘都先清空图片，所以重复调用结果相同。
type TrackRenderSystem struct {
	fonts  FaceProvider
	layout TrackLayout

	trackImage *ebiten.Image
	dirty      bool
	redraws    int
}

// NewTrackRenderSystem 创建赛道渲染系统
func NewTrackRenderSystem(fonts FaceProvider) *TrackRenderSystem {
	return &TrackRenderSystem{
		fonts:  fonts,
		layout: BuildTrackLayout(),
		dirty:  true,
	}
}

// Redraw 请求在下一帧重新绘制赛道
func (s *TrackRenderSystem) Redraw() {
	s.dirty = true
	s.redraws++
	log.Printf("[TrackRenderSystem] Track redraw requested (#%d)", s.redraws)
}

// Layout 返回赛道几何
func (s *TrackRenderSystem) Layout() TrackLayout {
	return s.layout
}

// RedrawCount 返回 Redraw 被调用的次数
func (s *TrackRenderSystem) RedrawCount() int {
	return s.redraws
}

// Draw 把赛道画到屏幕上
func (s *TrackRenderSystem) Draw(screen *ebiten.Image) {
	if s.trackImage == nil {
		s.trackImage = ebiten.NewImage(config.WindowWidth, config.WindowHeight)
		s.dirty = true
	}
	if s.dirty {
		s.render(s.trackImage)
		s.dirty = false
	}
	screen.DrawImage(s.trackImage, nil)
}

// render 按顺序绘制：背景、边框、分隔线、起终点柱和文字、棋盘格
func (s *TrackRenderSystem) render(dst *ebiten.Image) {
	dst.Clear()
	dst.Fill(TrackBackgroundColor)

	l := s.layout
	vector.StrokeRect(dst, float32(l.BorderX), float32(l.BorderY), float32(l.BorderW), float32(l.BorderH),
		config.BorderWidth, TrackLineColor, true)

	for _, line := range l.Lanes {
		drawTrackLine(dst, line)
	}
	for _, line := range l.Posts {
		drawTrackLine(dst, line)
	}

	if s.fonts != nil {
		face := s.fonts.Face(components.FontNormal)
		for _, label := range l.Labels {
			op := &text.DrawOptions{}
			op.GeoM.Translate(utils.AlignedX(label.Text, face, label.X, int(components.AlignCenter)), utils.BaselineToTop(label.Y, face))
			op.ColorScale.ScaleWithColor(label.Color)
			text.Draw(dst, label.Text, face, op)
		}
	}

	for _, cell := range l.Checker {
		fill := CheckerLightColor
		if cell.Dark {
			fill = CheckerDarkColor
		}
		x, y, size := float32(cell.X), float32(cell.Y), float32(cell.Size)
		vector.DrawFilledRect(dst, x, y, size, size, fill, false)
		vector.StrokeRect(dst, x, y, size, size, config.LaneLineWidth, TrackLineColor, false)
	}
}

func drawTrackLine(dst *ebiten.Image, line TrackLine) {
	vector.StrokeLine(dst, float32(line.X1), float32(line.Y1), float32(line.X2), float32(line.Y2),
		float32(line.Width), line.Color, true)
}
