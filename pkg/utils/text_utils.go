package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空格处断行
//   - 单个单词超过最大宽度时独占一行，不再拆分
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if MeasureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(textStr) {
		if currentLine == "" {
			currentLine = word
			continue
		}

		testLine := currentLine + " " + word
		if MeasureTextWidth(testLine, font) > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	if len(lines) == 0 {
		lines = []string{textStr}
	}

	return lines
}

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}

// AlignedX 根据对齐方式计算文字左边缘的 X 坐标
// align: 0 左对齐（anchorX 为左边缘），1 居中，2 右对齐
func AlignedX(textStr string, font *text.GoTextFace, anchorX float64, align int) float64 {
	width := MeasureTextWidth(textStr, font)
	switch align {
	case 1:
		return anchorX - width/2
	case 2:
		return anchorX - width
	default:
		return anchorX
	}
}

// BaselineToTop 将基线 Y 坐标转换为 text.Draw 需要的行顶部 Y 坐标
func BaselineToTop(baselineY float64, font *text.GoTextFace) float64 {
	if font == nil {
		return baselineY
	}
	return baselineY - font.Metrics().HAscent
}
