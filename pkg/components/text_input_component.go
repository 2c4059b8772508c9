package components

// TextInputComponent 文本输入框组件
// 用于下注提示框中输入颜色名
type TextInputComponent struct {
	// 提示框文字
	Title  string // 标题，如 "Place your bet"
	Prompt string // 说明文字

	// 输入框文本
	Text string // 当前输入的文本

	// 输入框尺寸
	Width  float64 // 输入框宽度（像素）
	Height float64 // 输入框高度（像素）

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（字符索引）

	// 输入限制
	MaxLength int // 最大字符数（0 = 无限制）

	// 焦点状态
	IsFocused bool // 是否获得焦点（接收键盘输入）

	// 结果状态：确认（Enter）或取消（Escape）后输入框关闭
	Submitted bool
	Cancelled bool
}
