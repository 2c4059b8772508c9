// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 调用 NewApp() 后交给 ebiten.RunGame。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/embedded"
	"github.com/decker502/turtlerace/pkg/game"
	"github.com/decker502/turtlerace/pkg/scenes"
	"github.com/decker502/turtlerace/pkg/utils"
)

// AppName 设置存储使用的应用名
const AppName = "turtlerace"

// 音效开关参数
const (
	SoundKeep = ""    // 使用已保存的设置
	SoundOn   = "on"  // 打开并保存
	SoundOff  = "off" // 关闭并保存
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
	// Sound 音效开关："on"、"off"，为空时使用已保存的设置
	Sound string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	raceConfig   *config.RaceConfig
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载比赛配置
	raceConfig, err := LoadRaceConfig()
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded %s: %d colors, step %d..%d, tick %dms",
		config.RaceConfigPath, len(raceConfig.Palette), raceConfig.Step.Min, raceConfig.Step.Max, raceConfig.Timing.TickMs)

	// 字体
	fonts, err := game.NewFontManager(raceConfig.Fonts)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	// 设置（持久化失败时降级为仅内存）
	settingsManager := game.NewSettingsManager(openSettingsStore())
	if err := applySoundFlag(settingsManager, cfg.Sound); err != nil {
		return nil, err
	}

	// 音频
	audioContext := audio.NewContext(game.AudioSampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized (sound enabled: %v)", settingsManager.GetSettings().SoundEnabled)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[App] Step source seed: %d", seed)

	raceScene, err := scenes.NewRaceScene(scenes.RaceSceneOptions{
		Config:   raceConfig,
		Fonts:    fonts,
		Keyboard: utils.EbitenKeyboard{},
		Steps:    game.NewRandStepSource(seed),
		Sounds:   audioManager,
	})
	if err != nil {
		return nil, fmt.Errorf("比赛场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(raceScene)

	return &App{
		sceneManager: sceneManager,
		raceConfig:   raceConfig,
	}, nil
}

// LoadRaceConfig 从嵌入资源读取并校验比赛配置
func LoadRaceConfig() (*config.RaceConfig, error) {
	data, err := embedded.ReadFile(config.RaceConfigPath)
	if err != nil {
		return nil, fmt.Errorf("比赛配置读取失败: %w", err)
	}
	raceConfig, err := config.ParseRaceConfig(data)
	if err != nil {
		return nil, fmt.Errorf("比赛配置加载失败: %w", err)
	}
	return raceConfig, nil
}

// openSettingsStore 打开 gdata 存储，失败时返回 nil（降级模式）
func openSettingsStore() *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		log.Printf("[App] Warning: settings store unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// applySoundFlag 根据命令行参数修改并保存音效开关
func applySoundFlag(sm *game.SettingsManager, sound string) error {
	switch sound {
	case SoundKeep:
		return nil
	case SoundOn, SoundOff:
		sm.SetSoundEnabled(sound == SoundOn)
		if err := sm.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
		return nil
	default:
		return fmt.Errorf("invalid sound option '%s' (want %q or %q)", sound, SoundOn, SoundOff)
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 键盘输入全部由场景处理
	deltaTime := 1.0 / float64(ebiten.TPS())
	return a.sceneManager.Update(deltaTime)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.raceConfig.Title
}
