package scenes

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
	"github.com/decker502/turtlerace/pkg/game"
	"github.com/decker502/turtlerace/pkg/systems"
	"github.com/decker502/turtlerace/pkg/utils"
)

// HelpText 屏幕底部的常驻帮助文字
const HelpText = "Press SPACE to start • R to restart • Q to quit"

// RaceSceneOptions 创建比赛场景需要的依赖
type RaceSceneOptions struct {
	Config   *config.RaceConfig
	Fonts    systems.FaceProvider // 可为 nil（测试中不绘制）
	Keyboard utils.Keyboard
	Steps    game.StepSource
	Sounds   systems.SoundPlayer // 可为 nil
}

// RaceScene 比赛场景
//
// 持有 RaceState 和虚拟时钟，把各个系统连接起来：
// InputSystem → CountdownSystem → RaceSystem → OutcomeSystem。
// 赛道和选手在启动时以及每次重开时重新生成。
type RaceScene struct {
	entityManager *ecs.EntityManager
	raceConfig    *config.RaceConfig
	race          *game.RaceState
	scheduler     *game.Scheduler

	// 系统
	overlays        *systems.TextOverlaySystem
	banner          *systems.Banner
	trackRender     *systems.TrackRenderSystem
	racerRender     *systems.RacerRenderSystem
	textInputRender *systems.TextInputRenderSystem
	spawner         *systems.RacerSpawnSystem
	raceSystem      *systems.RaceSystem
	countdown       *systems.CountdownSystem
	outcome         *systems.OutcomeSystem
	betPrompt       *systems.BetPromptSystem
	input           *systems.InputSystem

	helpEntity ecs.EntityID
}

// NewRaceScene 创建比赛场景：画赛道、生成选手、显示标题和帮助文字、打开下注提示
func NewRaceScene(opts RaceSceneOptions) (*RaceScene, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("race scene requires a race config")
	}
	if opts.Keyboard == nil || opts.Steps == nil {
		return nil, fmt.Errorf("race scene requires a keyboard and a step source")
	}

	bindings, err := systems.ParseKeyBindings(opts.Config.Keys)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key bindings: %w", err)
	}

	em := ecs.NewEntityManager()
	race := game.NewRaceState()
	scheduler := game.NewScheduler()

	s := &RaceScene{
		entityManager: em,
		raceConfig:    opts.Config,
		race:          race,
		scheduler:     scheduler,
	}

	s.overlays = systems.NewTextOverlaySystem(em, opts.Fonts)
	s.banner = systems.NewBanner(s.overlays)
	s.trackRender = systems.NewTrackRenderSystem(opts.Fonts)
	s.racerRender = systems.NewRacerRenderSystem(em)
	s.textInputRender = systems.NewTextInputRenderSystem(em, opts.Fonts)
	s.spawner = systems.NewRacerSpawnSystem(em, opts.Config)
	s.raceSystem = systems.NewRaceSystem(em, race, scheduler, opts.Steps, opts.Config)
	s.countdown = systems.NewCountdownSystem(race, scheduler, s.banner, s.raceSystem, opts.Sounds, opts.Config.Timing)
	s.outcome = systems.NewOutcomeSystem(em, race, s.banner, s.overlays, scheduler, opts.Sounds, opts.Config.HintDuration())
	s.betPrompt = systems.NewBetPromptSystem(em, systems.NewTextInputSystem(em, opts.Keyboard), opts.Config)
	s.input = systems.NewInputSystem(opts.Keyboard, bindings, s, s.betPrompt)

	s.raceSystem.SetOnFinish(func(winner ecs.EntityID) {
		s.outcome.Present(winner)
	})

	s.spawner.Spawn(race)
	s.banner.Show(opts.Config.Title, config.TitleOffsetY)
	s.helpEntity = s.overlays.Create(components.TextOverlayComponent{
		Text:  HelpText,
		X:     float64(config.WindowWidth) / 2,
		Y:     float64(config.WindowHeight) - config.HelpOffsetY,
		Font:  components.FontNormal,
		Align: components.AlignCenter,
		Color: color.Black,
	})

	// 启动时只询问下注，按空格才开始
	s.betPrompt.Open(s.setBet)

	log.Printf("[RaceScene] Race scene ready: %d racers, title %q", len(race.Racers), opts.Config.Title)
	return s, nil
}

// HandleStart 实现 systems.RaceController：开始倒计时（比赛进行中时无效）
func (s *RaceScene) HandleStart() {
	s.countdown.Start()
}

// HandleRestart 实现 systems.RaceController
// 中止当前比赛（不宣布胜者）、清除横幅、重画赛道、重新生成选手，
// 重新询问下注，提示框关闭后开始倒计时
func (s *RaceScene) HandleRestart() {
	s.race.Halt()
	s.countdown.Reset()
	s.banner.Clear()
	s.trackRender.Redraw()
	s.spawner.Spawn(s.race)

	s.betPrompt.Open(func(bet string) {
		s.setBet(bet)
		s.countdown.Start()
	})
}

// setBet 记录下注结果
func (s *RaceScene) setBet(bet string) {
	s.race.BetColor = bet
}

// Update 更新场景逻辑
// 顺序：下注提示框（打开时独占键盘）或按键分发 → 推进虚拟时钟 → 清理实体
func (s *RaceScene) Update(deltaTime float64) error {
	if s.betPrompt.IsOpen() {
		s.betPrompt.Update(deltaTime)
	} else if err := s.input.Update(); err != nil {
		return err
	}

	s.scheduler.Advance(time.Duration(deltaTime * float64(time.Second)))

	s.entityManager.RemoveMarkedEntities() // 始终最后执行
	return nil
}

// Draw 绘制场景：赛道 → 选手 → 文字 → 下注提示框
func (s *RaceScene) Draw(screen *ebiten.Image) {
	s.trackRender.Draw(screen)
	s.racerRender.Draw(screen)
	s.overlays.Draw(screen)
	s.textInputRender.Draw(screen)
}
