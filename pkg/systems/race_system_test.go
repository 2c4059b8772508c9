package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
	"github.com/decker502/turtlerace/pkg/game"
)

func racerX(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) float64 {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok, "racer %d has no position", id)
	return pos.X
}

func positions(t *testing.T, f *raceFixture) []float64 {
	t.Helper()
	xs := make([]float64, len(f.race.Racers))
	for i, id := range f.race.Racers {
		xs[i] = racerX(t, f.em, id)
	}
	return xs
}

func TestSpawnPlacesRacersAtStart(t *testing.T) {
	f := newRaceFixture(&fixedSteps{values: []int{2}})

	require.Len(t, f.race.Racers, config.Lanes)
	for lane, id := range f.race.Racers {
		pos, ok := ecs.GetComponent[*components.PositionComponent](f.em, id)
		require.True(t, ok)
		racer, ok := ecs.GetComponent[*components.RacerComponent](f.em, id)
		require.True(t, ok)

		top, bottom := config.LaneBand(lane)
		assert.Equal(t, config.StartX(), pos.X, "lane %d x", lane)
		assert.Greater(t, pos.Y, top, "lane %d y above band", lane)
		assert.Less(t, pos.Y, bottom, "lane %d y below band", lane)

		assert.Equal(t, lane, racer.Lane)
		assert.Equal(t, f.cfg.LaneColor(lane).Name, racer.ColorName)
		assert.Equal(t, 0.0, racer.Heading)

		label, ok := ecs.GetComponent[*components.TextOverlayComponent](f.em, racer.LabelEntity)
		require.True(t, ok, "lane %d label", lane)
		assert.Equal(t, f.cfg.LaneName(lane), label.Text)
		assert.Equal(t, config.StartX()-config.LabelOffsetX, label.X)
		assert.Equal(t, pos.Y+config.LabelOffsetY, label.Y)
	}
}

func TestRespawnReplacesRacers(t *testing.T) {
	f := newRaceFixture(&fixedSteps{values: []int{2}})
	old := append([]ecs.EntityID(nil), f.race.Racers...)
	oldLabel := ecs.GetEntitiesWith1[*components.TextOverlayComponent](f.em)

	f.spawner.Spawn(f.race)

	assert.Len(t, ecs.GetEntitiesWith1[*components.RacerComponent](f.em), config.Lanes)
	assert.Len(t, ecs.GetEntitiesWith1[*components.TextOverlayComponent](f.em), len(oldLabel))
	for _, id := range old {
		assert.False(t, f.em.IsAlive(id), "old racer %d still alive", id)
	}
}

func TestStepsStayWithinRange(t *testing.T) {
	f := newRaceFixture(game.NewRandStepSource(42))
	f.race.Running = true

	for tick := 0; tick < 60; tick++ {
		before := positions(t, f)
		winner := f.raceSystem.Step()
		after := positions(t, f)

		for i := range before {
			delta := after[i] - before[i]
			if delta == 0 && winner != 0 {
				// 胜者之后的选手本 tick 不移动
				continue
			}
			assert.GreaterOrEqual(t, delta, float64(f.cfg.Step.Min), "tick %d lane %d", tick, i)
			assert.LessOrEqual(t, delta, float64(f.cfg.Step.Max), "tick %d lane %d", tick, i)
		}
		if winner != 0 {
			break
		}
	}
}

func TestLowestLaneWinsTie(t *testing.T) {
	f := newRaceFixture(&fixedSteps{values: []int{6}})
	for _, id := range f.race.Racers {
		pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
		pos.X = f.race.FinishX - 1
	}
	f.race.Running = true

	winner := f.raceSystem.Step()

	assert.Equal(t, f.race.Racers[0], winner)
	assert.Equal(t, f.race.FinishX+5, racerX(t, f.em, f.race.Racers[0]))
	for _, id := range f.race.Racers[1:] {
		assert.Equal(t, f.race.FinishX-1, racerX(t, f.em, id), "racer after winner must not move")
	}
}

func TestRaceRunsToFinishAndStops(t *testing.T) {
	steps := &fixedSteps{values: []int{6}}
	f := newRaceFixture(steps)

	epoch := f.race.BeginCountdown()
	f.raceSystem.Begin(epoch)
	require.True(t, f.race.Running)

	f.scheduler.Advance(10 * time.Second)

	require.False(t, f.race.Running)
	require.True(t, f.race.HasWinner())
	assert.Equal(t, f.race.Racers[0], f.race.Winner)
	assert.GreaterOrEqual(t, racerX(t, f.em, f.race.Winner), f.race.FinishX)
	// 740 / 6 向上取整
	assert.Equal(t, 124, f.raceSystem.Ticks())

	frozen := positions(t, f)
	calls := steps.calls
	f.scheduler.Advance(5 * time.Second)
	assert.Equal(t, ecs.EntityID(0), f.raceSystem.Step())
	assert.Equal(t, frozen, positions(t, f))
	assert.Equal(t, calls, steps.calls)
	assert.Equal(t, 0, f.scheduler.Pending())
}

func TestBeginResetsTrailsAndPositions(t *testing.T) {
	f := newRaceFixture(&fixedSteps{values: []int{2}})
	for _, id := range f.race.Racers {
		pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
		pos.X = 500
	}

	epoch := f.race.BeginCountdown()
	f.raceSystem.Begin(epoch)

	for _, id := range f.race.Racers {
		trail, ok := ecs.GetComponent[*components.TrailComponent](f.em, id)
		require.True(t, ok)
		assert.True(t, trail.Visible)
		assert.Equal(t, f.race.StartX, trail.FromX)
		// 第一个 tick 已经执行
		assert.Equal(t, f.race.StartX+2, racerX(t, f.em, id))
	}
}

func TestHaltInvalidatesScheduledTicks(t *testing.T) {
	f := newRaceFixture(&fixedSteps{values: []int{3}})

	epoch := f.race.BeginCountdown()
	f.raceSystem.Begin(epoch)
	f.scheduler.Advance(100 * time.Millisecond)

	f.race.Halt()
	frozen := positions(t, f)
	f.scheduler.Advance(time.Second)

	assert.False(t, f.race.Running)
	assert.False(t, f.race.HasWinner())
	assert.Equal(t, frozen, positions(t, f))
}

func TestBeginWithStaleEpochDoesNothing(t *testing.T) {
	f := newRaceFixture(&fixedSteps{values: []int{3}})

	stale := f.race.BeginCountdown()
	f.race.BeginCountdown()
	f.raceSystem.Begin(stale)

	assert.False(t, f.race.Running)
	assert.Equal(t, 0, f.scheduler.Pending())
}
