package systems

import (
	"log"
	"math"
	"time"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
	"github.com/decker502/turtlerace/pkg/game"
)

// RaceSystem 比赛循环系统
//
// 每个 tick 按赛道顺序让每名选手前进一个随机步长。
// 某名选手移动后 X >= FinishX 即为胜者，本 tick 后面的选手不再移动，
// 因此同一 tick 内多人过线时赛道编号最小者获胜。
// 没有胜者时在 TickInterval 之后安排下一个 tick。
type RaceSystem struct {
	entityManager *ecs.EntityManager
	race          *game.RaceState
	timer         game.Timer
	steps         game.StepSource

	stepMin  int
	stepMax  int
	interval time.Duration

	onFinish func(winner ecs.EntityID)
	ticks    int
}

// NewRaceSystem 创建比赛循环系统
func NewRaceSystem(em *ecs.EntityManager, race *game.RaceState, timer game.Timer, steps game.StepSource, cfg *config.RaceConfig) *RaceSystem {
	return &RaceSystem{
		entityManager: em,
		race:          race,
		timer:         timer,
		steps:         steps,
		stepMin:       cfg.Step.Min,
		stepMax:       cfg.Step.Max,
		interval:      cfg.TickInterval(),
	}
}

// SetOnFinish 设置产生胜者时的回调
func (s *RaceSystem) SetOnFinish(fn func(winner ecs.EntityID)) {
	s.onFinish = fn
}

// Begin 开始比赛：清除轨迹、所有选手回到起点、Running=true，并立即执行第一个 tick
// epoch 已过期时什么都不做
func (s *RaceSystem) Begin(epoch uint64) {
	if !s.race.IsCurrent(epoch) {
		return
	}

	for _, id := range s.race.Racers {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos.X = s.race.StartX

		if trail, ok := ecs.GetComponent[*components.TrailComponent](s.entityManager, id); ok {
			trail.FromX = pos.X
			trail.FromY = pos.Y
			trail.Visible = true
		}
	}

	s.race.Running = true
	s.ticks = 0
	log.Printf("[RaceSystem] Race %s started with %d racers", s.race.RaceID, len(s.race.Racers))

	s.tick(epoch)
}

// tick 执行一次比赛步进，没有胜者时安排下一次
func (s *RaceSystem) tick(epoch uint64) {
	if !s.race.IsCurrent(epoch) || !s.race.Running {
		return
	}

	winner := s.Step()
	if winner != 0 {
		s.finish(winner)
		return
	}

	s.timer.After(s.interval, func() {
		s.tick(epoch)
	})
}

// Step 让每名选手前进一步，返回本 tick 的胜者（没有则返回 0）
// Running 为 false 时不移动任何选手
func (s *RaceSystem) Step() ecs.EntityID {
	if !s.race.Running {
		return 0
	}
	s.ticks++

	for _, id := range s.race.Racers {
		racer, ok := ecs.GetComponent[*components.RacerComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		step := float64(s.steps.Step(s.stepMin, s.stepMax))
		rad := racer.Heading * math.Pi / 180
		pos.X += step * math.Cos(rad)
		pos.Y -= step * math.Sin(rad)

		if pos.X >= s.race.FinishX {
			return id
		}
	}
	return 0
}

// finish 记录胜者并停止比赛
func (s *RaceSystem) finish(winner ecs.EntityID) {
	s.race.Running = false
	s.race.Winner = winner

	colorName := ""
	if racer, ok := ecs.GetComponent[*components.RacerComponent](s.entityManager, winner); ok {
		colorName = racer.ColorName
	}
	log.Printf("[RaceSystem] Race %s finished after %d ticks, winner: %s (entity %d)",
		s.race.RaceID, s.ticks, colorName, winner)

	if s.onFinish != nil {
		s.onFinish(winner)
	}
}

// Ticks 返回本局已执行的 tick 数
func (s *RaceSystem) Ticks() int {
	return s.ticks
}
