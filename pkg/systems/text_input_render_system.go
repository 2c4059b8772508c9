package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
	"github.com/decker502/turtlerace/pkg/utils"
)

// 提示框样式
const (
	promptPadding     = 16.0
	promptLineSpacing = 6.0
)

var (
	promptDimColor    = color.RGBA{0, 0, 0, 96}
	promptPanelColor  = color.RGBA{240, 240, 240, 255}
	promptBorderColor = color.RGBA{64, 64, 64, 255}
	promptBoxColor    = color.White
	promptTextColor   = color.Black
	promptHintColor   = color.RGBA{110, 110, 110, 255}
)

// TextInputRenderSystem 文本输入框渲染系统
// 绘制模态提示框：半透明遮罩、面板、标题、说明文字、输入框、光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         FaceProvider
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager, fonts FaceProvider) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
		fonts:         fonts,
	}
}

// Draw 绘制所有未关闭的文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image) {
	if s.fonts == nil {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if input.Submitted || input.Cancelled {
			continue
		}
		s.DrawInputBox(screen, input, pos)
	}
}

// DrawInputBox 绘制单个提示框，pos 为输入框左上角
func (s *TextInputRenderSystem) DrawInputBox(screen *ebiten.Image, input *components.TextInputComponent, pos *components.PositionComponent) {
	titleFace := s.fonts.Face(components.FontLabel)
	bodyFace := s.fonts.Face(components.FontNormal)
	lineHeight := bodyFace.Size + promptLineSpacing

	promptLines := utils.WrapText(input.Prompt, bodyFace, input.Width)

	// 面板包住标题、说明文字和输入框
	panelX := pos.X - promptPadding
	panelW := input.Width + promptPadding*2
	contentH := lineHeight + float64(len(promptLines))*lineHeight + input.Height
	panelY := pos.Y - promptPadding - lineHeight*float64(len(promptLines)+1)
	panelH := contentH + promptPadding*2

	// 1. 遮罩
	vector.DrawFilledRect(screen, 0, 0, float32(config.WindowWidth), float32(config.WindowHeight), promptDimColor, false)

	// 2. 面板
	vector.DrawFilledRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH), promptPanelColor, false)
	vector.StrokeRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH), 2, promptBorderColor, false)

	// 3. 标题和说明文字（y 为基线）
	baseline := panelY + promptPadding + lineHeight - promptLineSpacing
	s.drawText(screen, input.Title, titleFace, pos.X, baseline, promptTextColor)
	for _, line := range promptLines {
		baseline += lineHeight
		s.drawText(screen, line, bodyFace, pos.X, baseline, promptHintColor)
	}

	// 4. 输入框
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(input.Width), float32(input.Height), promptBoxColor, false)
	vector.StrokeRect(screen, float32(pos.X), float32(pos.Y), float32(input.Width), float32(input.Height), 1, promptBorderColor, false)

	textX := pos.X + 6
	textBaseline := pos.Y + input.Height/2 + bodyFace.Size/3
	s.drawText(screen, input.Text, bodyFace, textX, textBaseline, promptTextColor)

	// 5. 光标（闪烁的竖线）
	if input.IsFocused && input.CursorVisible {
		s.drawCursor(screen, input, pos, textX, bodyFace)
	}
}

// drawText 绘制文本，y 为基线
func (s *TextInputRenderSystem) drawText(screen *ebiten.Image, txt string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil || txt == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, utils.BaselineToTop(y, face))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, txt, face, op)
}

// drawCursor 绘制光标
func (s *TextInputRenderSystem) drawCursor(screen *ebiten.Image, input *components.TextInputComponent, pos *components.PositionComponent, textX float64, face *text.GoTextFace) {
	runes := []rune(input.Text)
	cursor := input.CursorPosition
	if cursor > len(runes) {
		cursor = len(runes)
	}

	cursorX := textX + utils.MeasureTextWidth(string(runes[:cursor]), face)
	cursorY := pos.Y + input.Height/4
	cursorHeight := input.Height / 2

	vector.DrawFilledRect(screen, float32(cursorX), float32(cursorY), 2, float32(cursorHeight), promptTextColor, false)
}
