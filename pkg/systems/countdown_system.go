package systems

import (
	"log"
	"time"

	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/game"
)

// CountdownState 倒计时状态
type CountdownState int

const (
	CountdownIdle CountdownState = iota
	CountdownThree
	CountdownTwo
	CountdownOne
	CountdownGo
	CountdownRaceRunning
)

// String 返回状态名（用于日志）
func (c CountdownState) String() string {
	switch c {
	case CountdownIdle:
		return "Idle"
	case CountdownThree:
		return "Three"
	case CountdownTwo:
		return "Two"
	case CountdownOne:
		return "One"
	case CountdownGo:
		return "Go"
	case CountdownRaceRunning:
		return "RaceRunning"
	default:
		return "Unknown"
	}
}

// Next 返回下一个状态，以及当前状态保持的时长
// 数字状态保持 CountdownStep，Go 保持 GoHold，Idle 立即进入 Three
func (c CountdownState) Next(timing config.TimingConfig) (CountdownState, time.Duration) {
	step := timing.CountdownStep()
	switch c {
	case CountdownIdle:
		return CountdownThree, 0
	case CountdownThree:
		return CountdownTwo, step
	case CountdownTwo:
		return CountdownOne, step
	case CountdownOne:
		return CountdownGo, step
	case CountdownGo:
		return CountdownRaceRunning, timing.GoHold()
	default:
		return CountdownRaceRunning, 0
	}
}

// Banner 返回该状态的横幅文字，没有横幅的状态返回空字符串
func (c CountdownState) Banner() string {
	switch c {
	case CountdownThree:
		return "3"
	case CountdownTwo:
		return "2"
	case CountdownOne:
		return "1"
	case CountdownGo:
		return "Go!"
	default:
		return ""
	}
}

// Count 返回该状态对应的倒计时数字（Go 及之后为 0）
func (c CountdownState) Count() int {
	switch c {
	case CountdownThree:
		return 3
	case CountdownTwo:
		return 2
	case CountdownOne:
		return 1
	default:
		return 0
	}
}

// inCountdown 是否正在显示 3/2/1/Go
func (c CountdownState) inCountdown() bool {
	return c >= CountdownThree && c <= CountdownGo
}

// SoundPlayer 播放音效（game.AudioManager 实现了此接口）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// CountdownSystem 倒计时系统
//
// 状态机 Idle → Three → Two → One → Go → RaceRunning，由 Timer 驱动。
// 每一步回调都捕获开始时的 Epoch，重开后旧回调直接失效。
type CountdownSystem struct {
	race       *game.RaceState
	timer      game.Timer
	banner     *Banner
	raceSystem *RaceSystem
	sounds     SoundPlayer
	timing     config.TimingConfig

	state CountdownState
}

// NewCountdownSystem 创建倒计时系统，sounds 可为 nil
func NewCountdownSystem(race *game.RaceState, timer game.Timer, banner *Banner, raceSystem *RaceSystem, sounds SoundPlayer, timing config.TimingConfig) *CountdownSystem {
	return &CountdownSystem{
		race:       race,
		timer:      timer,
		banner:     banner,
		raceSystem: raceSystem,
		sounds:     sounds,
		timing:     timing,
		state:      CountdownIdle,
	}
}

// Start 开始倒计时
// 比赛进行中或倒计时进行中时什么都不做，返回 false
func (s *CountdownSystem) Start() bool {
	if s.race.Running || s.state.inCountdown() {
		log.Printf("[CountdownSystem] Start ignored (state=%s, running=%v)", s.state, s.race.Running)
		return false
	}

	epoch := s.race.BeginCountdown()
	log.Printf("[CountdownSystem] Countdown started for race %s (epoch %d)", s.race.RaceID, epoch)

	next, _ := CountdownIdle.Next(s.timing)
	s.enter(epoch, next)
	return true
}

// Reset 回到 Idle（重开时在 RaceState.Halt 之后调用）
func (s *CountdownSystem) Reset() {
	s.state = CountdownIdle
}

// State 返回当前状态
func (s *CountdownSystem) State() CountdownState {
	return s.state
}

// enter 进入一个状态，并安排下一个状态
func (s *CountdownSystem) enter(epoch uint64, state CountdownState) {
	if !s.race.IsCurrent(epoch) {
		return
	}
	s.state = state

	switch state {
	case CountdownThree, CountdownTwo, CountdownOne:
		s.race.Count = state.Count()
		s.banner.Show(state.Banner(), 0)
		s.playSound(game.SoundCountdown)
	case CountdownGo:
		s.race.Count = 0
		s.banner.Show(state.Banner(), 0)
		s.playSound(game.SoundGo)
	case CountdownRaceRunning:
		s.banner.Clear()
		s.raceSystem.Begin(epoch)
		return
	default:
		return
	}

	next, delay := state.Next(s.timing)
	s.timer.After(delay, func() {
		s.enter(epoch, next)
	})
}

func (s *CountdownSystem) playSound(soundID string) {
	if s.sounds != nil {
		s.sounds.PlaySound(soundID)
	}
}
