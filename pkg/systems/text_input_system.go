package systems

import (
	"log"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/ecs"
	"github.com/decker502/turtlerace/pkg/utils"
)

// cursorBlinkInterval 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInputSystem 文本输入系统
// 处理文本输入框的键盘输入、光标闪烁等逻辑
// Enter 确认（Submitted），Escape 取消（Cancelled）
type TextInputSystem struct {
	entityManager *ecs.EntityManager
	keyboard      utils.Keyboard
	runeBuf       []rune
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager, keyboard utils.Keyboard) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
		keyboard:      keyboard,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)

	for _, entityID := range entities {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		// 只处理获得焦点、尚未关闭的输入框
		if !input.IsFocused || input.Submitted || input.Cancelled {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)
		s.handleKeyboardInput(input)
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= cursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	// 1. 确认 / 取消
	if s.keyboard.IsKeyJustPressed(ebiten.KeyEnter) || s.keyboard.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		input.Submitted = true
		input.IsFocused = false
		return
	}
	if s.keyboard.IsKeyJustPressed(ebiten.KeyEscape) {
		input.Cancelled = true
		input.IsFocused = false
		return
	}

	// 2. 文本字符输入
	s.runeBuf = s.keyboard.AppendInputChars(s.runeBuf[:0])
	if len(s.runeBuf) > 0 {
		s.insertText(input, s.runeBuf)
		s.showCursor(input)
	}

	// 3. 退格键（删除光标前的字符），按住时连续删除
	if utils.IsRepeatTick(s.keyboard.KeyPressDuration(ebiten.KeyBackspace)) {
		s.deleteCharBefore(input)
		s.showCursor(input)
	}

	// 4. 删除键（删除光标后的字符）
	if utils.IsRepeatTick(s.keyboard.KeyPressDuration(ebiten.KeyDelete)) {
		s.deleteCharAfter(input)
		s.showCursor(input)
	}

	// 5. 左右箭头移动光标
	if utils.IsRepeatTick(s.keyboard.KeyPressDuration(ebiten.KeyArrowLeft)) {
		s.moveCursorLeft(input)
		s.showCursor(input)
	}
	if utils.IsRepeatTick(s.keyboard.KeyPressDuration(ebiten.KeyArrowRight)) {
		s.moveCursorRight(input)
		s.showCursor(input)
	}

	// 6. Home / End
	if s.keyboard.IsKeyJustPressed(ebiten.KeyHome) {
		input.CursorPosition = 0
		s.showCursor(input)
	}
	if s.keyboard.IsKeyJustPressed(ebiten.KeyEnd) {
		input.CursorPosition = len([]rune(input.Text))
		s.showCursor(input)
	}
}

// showCursor 输入时光标应该可见
func (s *TextInputSystem) showCursor(input *components.TextInputComponent) {
	input.CursorBlinkTimer = 0
	input.CursorVisible = true
}

// insertText 在光标位置插入文本
// 只接受可打印字符，控制字符被丢弃
func (s *TextInputSystem) insertText(input *components.TextInputComponent, text []rune) {
	filtered := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsPrint(r) {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return
	}

	runes := []rune(input.Text)
	if input.MaxLength > 0 && len(runes)+len(filtered) > input.MaxLength {
		log.Printf("[TextInputSystem] Max length reached (%d chars)", input.MaxLength)
		return
	}

	if input.CursorPosition > len(runes) {
		input.CursorPosition = len(runes)
	}

	result := make([]rune, 0, len(runes)+len(filtered))
	result = append(result, runes[:input.CursorPosition]...)
	result = append(result, filtered...)
	result = append(result, runes[input.CursorPosition:]...)

	input.Text = string(result)
	input.CursorPosition += len(filtered)
}

// deleteCharBefore 删除光标前的字符（退格）
func (s *TextInputSystem) deleteCharBefore(input *components.TextInputComponent) {
	if input.CursorPosition == 0 {
		return
	}

	runes := []rune(input.Text)
	before := runes[:input.CursorPosition-1]
	after := runes[input.CursorPosition:]

	input.Text = string(append(before, after...))
	input.CursorPosition--
}

// deleteCharAfter 删除光标后的字符（Delete键）
func (s *TextInputSystem) deleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if input.CursorPosition >= len(runes) {
		return
	}

	before := runes[:input.CursorPosition]
	after := runes[input.CursorPosition+1:]

	input.Text = string(append(before, after...))
}

// moveCursorLeft 光标左移
func (s *TextInputSystem) moveCursorLeft(input *components.TextInputComponent) {
	if input.CursorPosition > 0 {
		input.CursorPosition--
	}
}

// moveCursorRight 光标右移
func (s *TextInputSystem) moveCursorRight(input *components.TextInputComponent) {
	if input.CursorPosition < len([]rune(input.Text)) {
		input.CursorPosition++
	}
}
