package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
)

// turtleOutline 海龟形状的轮廓点（局部坐标，+Y 指向头部）
var turtleOutline = [][2]float64{
	{0, 16}, {-2, 14}, {-1, 10}, {-4, 7}, {-7, 9}, {-9, 8}, {-6, 5}, {-7, 1},
	{-5, -3}, {-8, -6}, {-6, -8}, {-4, -5}, {0, -7}, {4, -5}, {6, -8}, {8, -6},
	{5, -3}, {7, 1}, {6, 5}, {9, 8}, {7, 9}, {4, 7}, {1, 10}, {2, 14},
}

// TurtleShape 返回海龟轮廓在屏幕上的顶点
// heading 为角度（度），0 朝右，逆时针为正（屏幕 Y 轴向下）
func TurtleShape(x, y, heading, scale float64) [][2]float64 {
	rad := heading * math.Pi / 180
	// 前进方向和右侧方向（屏幕坐标）
	fx, fy := math.Cos(rad), -math.Sin(rad)
	rx, ry := -fy, fx

	points := make([][2]float64, len(turtleOutline))
	for i, p := range turtleOutline {
		side, forward := p[0]*scale, p[1]*scale
		points[i] = [2]float64{
			x + forward*fx + side*rx,
			y + forward*fy + side*ry,
		}
	}
	return points
}

// RacerRenderSystem 选手渲染系统
// 先画所有轨迹，再画海龟，海龟总是在轨迹之上
type RacerRenderSystem struct {
	entityManager *ecs.EntityManager

	whitePixel *ebiten.Image // DrawTriangles 的纯色纹理
	path       vector.Path
	vertices   []ebiten.Vertex
	indices    []uint16
}

// NewRacerRenderSystem 创建选手渲染系统
func NewRacerRenderSystem(em *ecs.EntityManager) *RacerRenderSystem {
	return &RacerRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有选手
func (s *RacerRenderSystem) Draw(screen *ebiten.Image) {
	racers := ecs.GetEntitiesWith2[*components.RacerComponent, *components.PositionComponent](s.entityManager)

	for _, id := range racers {
		racer, _ := ecs.GetComponent[*components.RacerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		trail, ok := ecs.GetComponent[*components.TrailComponent](s.entityManager, id)
		if !ok || !trail.Visible {
			continue
		}
		vector.StrokeLine(screen, float32(trail.FromX), float32(trail.FromY), float32(pos.X), float32(pos.Y),
			config.TrailWidth, racer.Color, true)
	}

	for _, id := range racers {
		racer, _ := ecs.GetComponent[*components.RacerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.drawTurtle(screen, pos.X, pos.Y, racer)
	}
}

// drawTurtle 填充海龟多边形
func (s *RacerRenderSystem) drawTurtle(screen *ebiten.Image, x, y float64, racer *components.RacerComponent) {
	if s.whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	points := TurtleShape(x, y, racer.Heading, racer.Scale)

	s.path = vector.Path{}
	s.path.MoveTo(float32(points[0][0]), float32(points[0][1]))
	for _, p := range points[1:] {
		s.path.LineTo(float32(p[0]), float32(p[1]))
	}
	s.path.Close()

	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])

	r, g, b, a := racer.Color.R, racer.Color.G, racer.Color.B, racer.Color.A
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r) / 255
		s.vertices[i].ColorG = float32(g) / 255
		s.vertices[i].ColorB = float32(b) / 255
		s.vertices[i].ColorA = float32(a) / 255
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	screen.DrawTriangles(s.vertices, s.indices, s.whitePixel, op)
}
