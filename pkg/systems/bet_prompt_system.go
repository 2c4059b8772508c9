package systems

import (
	"fmt"
	"log"
	"strings"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
)

// 下注提示框尺寸
const (
	betPromptWidth     = 460.0
	betPromptHeight    = 32.0
	betPromptMaxLength = 24
)

// BetPromptTitle 下注提示框标题
const BetPromptTitle = "Place your bet"

// BetPromptSystem 下注提示系统
//
// 打开一个模态文本输入框，询问玩家支持哪种颜色。
// 关闭时（Enter 确认或 Escape 取消）回调 onClose，参数为规范化后的颜色名，
// 未下注时为空字符串。提示框不会让程序失败。
type BetPromptSystem struct {
	entityManager *ecs.EntityManager
	textInput     *TextInputSystem
	raceConfig    *config.RaceConfig

	entityID ecs.EntityID
	onClose  func(bet string)
}

// NewBetPromptSystem 创建下注提示系统
func NewBetPromptSystem(em *ecs.EntityManager, textInput *TextInputSystem, cfg *config.RaceConfig) *BetPromptSystem {
	return &BetPromptSystem{
		entityManager: em,
		textInput:     textInput,
		raceConfig:    cfg,
	}
}

// PromptText 返回提示文字，列出所有可选颜色
func PromptText(cfg *config.RaceConfig) string {
	return fmt.Sprintf("Pick a turtle color to cheer (%s):", strings.Join(cfg.ColorNames(), ", "))
}

// Open 打开提示框；已经打开时只替换回调并清空输入
func (s *BetPromptSystem) Open(onClose func(bet string)) {
	s.onClose = onClose

	if input := s.input(); input != nil {
		input.Text = ""
		input.CursorPosition = 0
		return
	}

	s.entityID = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.entityID, &components.PositionComponent{
		X: (float64(config.WindowWidth) - betPromptWidth) / 2,
		Y: float64(config.WindowHeight)/2 + betPromptHeight,
	})
	ecs.AddComponent(s.entityManager, s.entityID, &components.TextInputComponent{
		Title:         BetPromptTitle,
		Prompt:        PromptText(s.raceConfig),
		Width:         betPromptWidth,
		Height:        betPromptHeight,
		CursorVisible: true,
		MaxLength:     betPromptMaxLength,
		IsFocused:     true,
	})

	log.Printf("[BetPromptSystem] Prompt opened (entity %d)", s.entityID)
}

// IsOpen 提示框是否打开
func (s *BetPromptSystem) IsOpen() bool {
	return s.input() != nil
}

// Update 处理输入，确认或取消后关闭提示框
func (s *BetPromptSystem) Update(deltaTime float64) {
	if !s.IsOpen() {
		return
	}

	s.textInput.Update(deltaTime)

	input := s.input()
	switch {
	case input.Submitted:
		s.close(NormalizeBet(s.raceConfig, input.Text))
	case input.Cancelled:
		s.close("")
	}
}

// close 销毁提示框实体并回调
func (s *BetPromptSystem) close(bet string) {
	s.entityManager.DestroyEntity(s.entityID)
	// 立即从查询中移除，防止同一帧内再次被当作打开状态
	ecs.RemoveComponent[*components.TextInputComponent](s.entityManager, s.entityID)
	s.entityID = 0

	if bet == "" {
		log.Printf("[BetPromptSystem] Prompt closed, no bet")
	} else {
		log.Printf("[BetPromptSystem] Prompt closed, bet on %s", bet)
	}

	onClose := s.onClose
	s.onClose = nil
	if onClose != nil {
		onClose(bet)
	}
}

// input 返回当前提示框的输入组件，未打开时返回 nil
func (s *BetPromptSystem) input() *components.TextInputComponent {
	if s.entityID == 0 {
		return nil
	}
	input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, s.entityID)
	if !ok {
		return nil
	}
	return input
}

// NormalizeBet 规范化玩家输入：去掉首尾空白、转小写后与调色板匹配
// 无法匹配或为空时返回空字符串（不下注）
func NormalizeBet(cfg *config.RaceConfig, raw string) string {
	answer := strings.ToLower(strings.TrimSpace(raw))
	if answer == "" {
		return ""
	}

	entry, ok := cfg.FindColor(answer)
	if !ok {
		return ""
	}
	return strings.ToLower(entry.Name)
}
