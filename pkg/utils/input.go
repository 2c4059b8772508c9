// Package utils 提供通用工具函数
package utils

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard 键盘输入来源
// 系统通过此接口读取按键，测试中可以替换为脚本化的实现
type Keyboard interface {
	// IsKeyJustPressed 按键是否在本帧刚按下
	IsKeyJustPressed(key ebiten.Key) bool
	// KeyPressDuration 按键已按住的帧数（未按下为 0）
	KeyPressDuration(key ebiten.Key) int
	// AppendInputChars 追加本帧输入的字符
	AppendInputChars(runes []rune) []rune
}

// EbitenKeyboard 直接读取 ebiten 的键盘状态
type EbitenKeyboard struct{}

// IsKeyJustPressed 实现 Keyboard
func (EbitenKeyboard) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// KeyPressDuration 实现 Keyboard
func (EbitenKeyboard) KeyPressDuration(key ebiten.Key) int {
	return inpututil.KeyPressDuration(key)
}

// AppendInputChars 实现 Keyboard
func (EbitenKeyboard) AppendInputChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}

// ParseKey 将按键名（如 "Space"、"R"）解析为 ebiten.Key，不区分大小写
func ParseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key name '%s': %w", name, err)
	}
	return key, nil
}

// IsRepeatTick 判断按住的按键在本帧是否应当触发
// 第1帧立即响应，按住 30 帧后每 3 帧响应一次
func IsRepeatTick(duration int) bool {
	return duration == 1 || (duration >= 30 && duration%3 == 0)
}
