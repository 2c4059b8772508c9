package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
	"github.com/decker502/turtlerace/pkg/game"
)

// fakeKeyboard 测试用键盘，按帧脚本化按键
// press / typeText 设置本帧的输入，endFrame 清空
type fakeKeyboard struct {
	justPressed map[ebiten.Key]bool
	durations   map[ebiten.Key]int
	chars       []rune
}

func newFakeKeyboard() *fakeKeyboard {
	return &fakeKeyboard{
		justPressed: make(map[ebiten.Key]bool),
		durations:   make(map[ebiten.Key]int),
	}
}

func (k *fakeKeyboard) press(keys ...ebiten.Key) {
	for _, key := range keys {
		k.justPressed[key] = true
		k.durations[key] = 1
	}
}

func (k *fakeKeyboard) typeText(s string) {
	k.chars = append(k.chars, []rune(s)...)
}

func (k *fakeKeyboard) endFrame() {
	k.justPressed = make(map[ebiten.Key]bool)
	k.durations = make(map[ebiten.Key]int)
	k.chars = k.chars[:0]
}

func (k *fakeKeyboard) IsKeyJustPressed(key ebiten.Key) bool { return k.justPressed[key] }
func (k *fakeKeyboard) KeyPressDuration(key ebiten.Key) int  { return k.durations[key] }
func (k *fakeKeyboard) AppendInputChars(runes []rune) []rune { return append(runes, k.chars...) }

// fixedSteps 按顺序循环返回预设步长
type fixedSteps struct {
	values []int
	next   int
	calls  int
}

func (f *fixedSteps) Step(min, max int) int {
	f.calls++
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

// recordingSounds 记录播放过的音效
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(soundID string) bool {
	r.played = append(r.played, soundID)
	return true
}

func (r *recordingSounds) count(soundID string) int {
	n := 0
	for _, id := range r.played {
		if id == soundID {
			n++
		}
	}
	return n
}

// raceFixture 组装比赛相关系统（不创建任何图片）
type raceFixture struct {
	em        *ecs.EntityManager
	cfg       *config.RaceConfig
	race      *game.RaceState
	scheduler *game.Scheduler
	sounds    *recordingSounds

	overlays   *TextOverlaySystem
	banner     *Banner
	spawner    *RacerSpawnSystem
	raceSystem *RaceSystem
	countdown  *CountdownSystem
	outcome    *OutcomeSystem
}

func newRaceFixture(steps game.StepSource) *raceFixture {
	f := &raceFixture{
		em:        ecs.NewEntityManager(),
		cfg:       config.DefaultRaceConfig(),
		race:      game.NewRaceState(),
		scheduler: game.NewScheduler(),
		sounds:    &recordingSounds{},
	}

	f.overlays = NewTextOverlaySystem(f.em, nil)
	f.banner = NewBanner(f.overlays)
	f.spawner = NewRacerSpawnSystem(f.em, f.cfg)
	f.raceSystem = NewRaceSystem(f.em, f.race, f.scheduler, steps, f.cfg)
	f.countdown = NewCountdownSystem(f.race, f.scheduler, f.banner, f.raceSystem, f.sounds, f.cfg.Timing)
	f.outcome = NewOutcomeSystem(f.em, f.race, f.banner, f.overlays, f.scheduler, f.sounds, f.cfg.HintDuration())
	f.raceSystem.SetOnFinish(func(winner ecs.EntityID) {
		f.outcome.Present(winner)
	})

	f.spawner.Spawn(f.race)
	return f
}
