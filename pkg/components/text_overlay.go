package components

import "image/color"

// FontKind 文字使用的字体档位
type FontKind int

const (
	// FontNormal 普通提示文字（16号）
	FontNormal FontKind = iota
	// FontBig 横幅大字（42号粗体）
	FontBig
	// FontLabel 选手名字标签（12号粗体）
	FontLabel
)

// TextAlign 文字水平对齐方式，X 坐标为对齐锚点
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextOverlayComponent 文字叠加层
//
// 所有屏幕文字（横幅、提示、名字标签、赛道标注）都用这个组件表示，
// 通过 TextOverlaySystem 的 Create / Update / Clear 操作修改。
// Text 为空表示已清除，实体本身可以继续复用。
type TextOverlayComponent struct {
	Text  string
	X     float64 // 对齐锚点 X
	Y     float64 // 文字基线 Y
	Font  FontKind
	Align TextAlign
	Color color.Color
	Layer int // 绘制层级，数值大的后绘制
}
