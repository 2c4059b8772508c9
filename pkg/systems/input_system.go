package systems

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/utils"
)

// KeyBindings 开始、重开、退出三个按键
type KeyBindings struct {
	Start   ebiten.Key
	Restart ebiten.Key
	Quit    ebiten.Key
}

// ParseKeyBindings 从配置解析按键
func ParseKeyBindings(cfg config.KeyConfig) (KeyBindings, error) {
	var kb KeyBindings
	var err error
	if kb.Start, err = utils.ParseKey(cfg.Start); err != nil {
		return kb, fmt.Errorf("start key: %w", err)
	}
	if kb.Restart, err = utils.ParseKey(cfg.Restart); err != nil {
		return kb, fmt.Errorf("restart key: %w", err)
	}
	if kb.Quit, err = utils.ParseKey(cfg.Quit); err != nil {
		return kb, fmt.Errorf("quit key: %w", err)
	}
	return kb, nil
}

// RaceController 响应按键的比赛操作（RaceScene 实现）
type RaceController interface {
	// HandleStart 开始倒计时，比赛进行中时无效
	HandleStart()
	// HandleRestart 中止当前比赛并重新开始
	HandleRestart()
}

// InputSystem 输入分发系统
//
// 只有三个按键：开始、重开、退出。
// 下注提示框打开时由它独占键盘，这三个按键暂停响应。
type InputSystem struct {
	keyboard   utils.Keyboard
	bindings   KeyBindings
	controller RaceController
	betPrompt  *BetPromptSystem
}

// NewInputSystem 创建输入分发系统，betPrompt 可为 nil
func NewInputSystem(keyboard utils.Keyboard, bindings KeyBindings, controller RaceController, betPrompt *BetPromptSystem) *InputSystem {
	return &InputSystem{
		keyboard:   keyboard,
		bindings:   bindings,
		controller: controller,
		betPrompt:  betPrompt,
	}
}

// Update 处理本帧按键
// 按下退出键时返回 ebiten.Termination
func (s *InputSystem) Update() error {
	if s.betPrompt != nil && s.betPrompt.IsOpen() {
		return nil
	}

	if s.keyboard.IsKeyJustPressed(s.bindings.Quit) {
		log.Printf("[InputSystem] Quit requested")
		return ebiten.Termination
	}

	if s.keyboard.IsKeyJustPressed(s.bindings.Restart) {
		log.Printf("[InputSystem] Restart requested")
		s.controller.HandleRestart()
		return nil
	}

	if s.keyboard.IsKeyJustPressed(s.bindings.Start) {
		s.controller.HandleStart()
	}
	return nil
}
