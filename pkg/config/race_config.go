package config

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// RaceConfigPath 是嵌入资源中比赛配置文件的路径
const RaceConfigPath = "data/race.yaml"

// RaceConfig 比赛配置
//
// 包含调色板、选手名字、步长范围、各类计时参数和按键绑定。
// 赛道几何不在此配置中，几何参数固定在 layout_config.go。
//
// 配置文件位置: data/race.yaml（编译期嵌入）
type RaceConfig struct {
	// Title 窗口标题，同时作为开场横幅文字
	Title string `yaml:"title"`

	// Palette 选手颜色表，第 i 条赛道使用 Palette[i%len]
	Palette []PaletteEntry `yaml:"palette"`

	// Names 选手名字表，第 i 条赛道使用 Names[i%len]
	Names []string `yaml:"names"`

	// Step 每个 tick 的随机步长范围（闭区间）
	Step StepRange `yaml:"step"`

	// Timing 计时参数（毫秒）
	Timing TimingConfig `yaml:"timing"`

	// Fonts 字号
	Fonts FontConfig `yaml:"fonts"`

	// Keys 按键名（ebiten.Key 的文本名，如 "Space", "R"）
	Keys KeyConfig `yaml:"keys"`
}

// PaletteEntry 调色板条目
type PaletteEntry struct {
	Name string `yaml:"name"` // 颜色名（小写，用于下注匹配和胜者播报）
	Hex  string `yaml:"hex"`  // "#rrggbb"
}

// StepRange 随机步长范围
type StepRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TimingConfig 计时参数（毫秒）
type TimingConfig struct {
	TickMs          int `yaml:"tickMs"`          // 比赛 tick 间隔
	CountdownStepMs int `yaml:"countdownStepMs"` // 3/2/1 每个数字停留时间
	GoHoldMs        int `yaml:"goHoldMs"`        // "Go!" 到正式开跑的时间
	HintMs          int `yaml:"hintMs"`          // 结束提示显示时长
}

// FontConfig 字号配置
type FontConfig struct {
	Normal float64 `yaml:"normal"`
	Big    float64 `yaml:"big"`
	Label  float64 `yaml:"label"`
}

// KeyConfig 三个按键绑定
type KeyConfig struct {
	Start   string `yaml:"start"`
	Restart string `yaml:"restart"`
	Quit    string `yaml:"quit"`
}

// DefaultRaceConfig 返回与 data/race.yaml 一致的默认配置（供测试使用）
func DefaultRaceConfig() *RaceConfig {
	return &RaceConfig{
		Title: "Turtle Racing",
		Palette: []PaletteEntry{
			{Name: "red", Hex: "#ff0000"},
			{Name: "blue", Hex: "#0000ff"},
			{Name: "green", Hex: "#00ff00"},
			{Name: "orange", Hex: "#ffa500"},
			{Name: "purple", Hex: "#a020f0"},
			{Name: "deeppink", Hex: "#ff1493"},
		},
		Names: []string{"Ruby", "Bolt", "Mint", "Tiger", "Violet", "Candy"},
		Step:  StepRange{Min: 2, Max: 6},
		Timing: TimingConfig{
			TickMs:          35,
			CountdownStepMs: 700,
			GoHoldMs:        300,
			HintMs:          3500,
		},
		Fonts: FontConfig{Normal: 16, Big: 42, Label: 12},
		Keys:  KeyConfig{Start: "Space", Restart: "R", Quit: "Q"},
	}
}

// ParseRaceConfig 解析 YAML 格式的比赛配置并校验
func ParseRaceConfig(data []byte) (*RaceConfig, error) {
	var cfg RaceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse race config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid race config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 调色板和名字表非空，颜色名不重复且能解析
//   - 步长范围 1 <= min <= max
//   - 所有计时参数为正
//   - 字号为正，按键名非空
func (c *RaceConfig) Validate() error {
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette must not be empty")
	}
	seen := make(map[string]bool, len(c.Palette))
	for i, entry := range c.Palette {
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		if name == "" {
			return fmt.Errorf("palette[%d]: empty name", i)
		}
		if seen[name] {
			return fmt.Errorf("palette[%d]: duplicate color '%s'", i, name)
		}
		seen[name] = true
		if _, err := entry.RGBA(); err != nil {
			return fmt.Errorf("palette[%d]: %w", i, err)
		}
	}

	if len(c.Names) == 0 {
		return fmt.Errorf("names must not be empty")
	}

	if c.Step.Min < 1 || c.Step.Min > c.Step.Max {
		return fmt.Errorf("step range invalid: min(%d) max(%d)", c.Step.Min, c.Step.Max)
	}

	timings := map[string]int{
		"tickMs":          c.Timing.TickMs,
		"countdownStepMs": c.Timing.CountdownStepMs,
		"goHoldMs":        c.Timing.GoHoldMs,
		"hintMs":          c.Timing.HintMs,
	}
	for field, value := range timings {
		if value <= 0 {
			return fmt.Errorf("timing.%s must be positive, got %d", field, value)
		}
	}

	if c.Fonts.Normal <= 0 || c.Fonts.Big <= 0 || c.Fonts.Label <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}

	if c.Keys.Start == "" || c.Keys.Restart == "" || c.Keys.Quit == "" {
		return fmt.Errorf("keys.start, keys.restart and keys.quit are required")
	}

	return nil
}

// RGBA 解析 "#rrggbb" 格式的颜色
// Hex 为空时按颜色名查 SVG 标准颜色表（colornames）
func (p PaletteEntry) RGBA() (color.RGBA, error) {
	if p.Hex == "" {
		if c, ok := colornames.Map[strings.ToLower(p.Name)]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("color '%s': no hex given and not a known color name", p.Name)
	}

	var r, g, b uint8
	if len(p.Hex) != 7 || p.Hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color '%s': hex must look like #rrggbb, got '%s'", p.Name, p.Hex)
	}
	if _, err := fmt.Sscanf(p.Hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("color '%s': bad hex '%s': %w", p.Name, p.Hex, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// LaneColor 返回第 lane 条赛道的调色板条目
func (c *RaceConfig) LaneColor(lane int) PaletteEntry {
	return c.Palette[lane%len(c.Palette)]
}

// LaneName 返回第 lane 条赛道的选手名字
func (c *RaceConfig) LaneName(lane int) string {
	return c.Names[lane%len(c.Names)]
}

// ColorNames 返回调色板中所有颜色名（按配置顺序）
func (c *RaceConfig) ColorNames() []string {
	names := make([]string, len(c.Palette))
	for i, entry := range c.Palette {
		names[i] = entry.Name
	}
	return names
}

// FindColor 按名字查找调色板条目（不区分大小写）
func (c *RaceConfig) FindColor(name string) (PaletteEntry, bool) {
	for _, entry := range c.Palette {
		if strings.EqualFold(entry.Name, name) {
			return entry, true
		}
	}
	return PaletteEntry{}, false
}

// TickInterval 返回比赛 tick 间隔
func (c *RaceConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMs) * time.Millisecond
}

// CountdownStep 返回倒计时每个数字的停留时间
func (t TimingConfig) CountdownStep() time.Duration {
	return time.Duration(t.CountdownStepMs) * time.Millisecond
}

// GoHold 返回 "Go!" 的停留时间
func (t TimingConfig) GoHold() time.Duration {
	return time.Duration(t.GoHoldMs) * time.Millisecond
}

// HintDuration 返回结束提示的显示时长
func (c *RaceConfig) HintDuration() time.Duration {
	return time.Duration(c.Timing.HintMs) * time.Millisecond
}
