package systems

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
	"github.com/decker502/turtlerace/pkg/game"
)

// RaceAgainHint 比赛结束后的提示文字
const RaceAgainHint = "Press R to race again, Q to quit."

// OutcomeSystem 比赛结果系统
// 在横幅上宣布胜者（与下注比较），显示一段时间后自动消失的提示
type OutcomeSystem struct {
	entityManager *ecs.EntityManager
	race          *game.RaceState
	banner        *Banner
	overlays      *TextOverlaySystem
	timer         game.Timer
	sounds        SoundPlayer
	hintDuration  time.Duration

	hintEntity ecs.EntityID
}

// NewOutcomeSystem 创建比赛结果系统，sounds 可为 nil
func NewOutcomeSystem(em *ecs.EntityManager, race *game.RaceState, banner *Banner, overlays *TextOverlaySystem, timer game.Timer, sounds SoundPlayer, hintDuration time.Duration) *OutcomeSystem {
	return &OutcomeSystem{
		entityManager: em,
		race:          race,
		banner:        banner,
		overlays:      overlays,
		timer:         timer,
		sounds:        sounds,
		hintDuration:  hintDuration,
	}
}

// Present 显示胜者横幅和提示，返回横幅文字
func (s *OutcomeSystem) Present(winner ecs.EntityID) string {
	racer, ok := ecs.GetComponent[*components.RacerComponent](s.entityManager, winner)
	if !ok {
		log.Printf("[OutcomeSystem] Warning: winner %d is not a racer", winner)
		return ""
	}

	msg := WinnerMessage(racer.ColorName, s.race.BetColor)
	s.banner.Show(msg, 0)

	hint := s.overlays.Create(components.TextOverlayComponent{
		Text:  RaceAgainHint,
		X:     float64(config.WindowWidth) / 2,
		Y:     float64(config.WindowHeight) - config.HintOffsetY,
		Font:  components.FontNormal,
		Align: components.AlignCenter,
		Color: color.Black,
	})
	s.hintEntity = hint
	// 提示只清除自己，与之后是否重开无关
	s.timer.After(s.hintDuration, func() {
		s.overlays.Destroy(hint)
	})

	if s.sounds != nil {
		s.sounds.PlaySound(game.SoundFinish)
	}

	log.Printf("[OutcomeSystem] %s", msg)
	return msg
}

// HintEntity 返回最近一次显示的提示实体
func (s *OutcomeSystem) HintEntity() ecs.EntityID {
	return s.hintEntity
}

// WinnerMessage 生成胜者横幅文字
// 有下注时追加 " You guessed right!" 或 " Your pick was <bet>."
func WinnerMessage(colorName, bet string) string {
	colorName = strings.ToLower(colorName)
	msg := fmt.Sprintf("%s wins!", capitalize(colorName))
	if bet == "" {
		return msg
	}
	if bet == colorName {
		return msg + " You guessed right!"
	}
	return msg + fmt.Sprintf(" Your pick was %s.", bet)
}

// capitalize 首字母大写，其余小写
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
