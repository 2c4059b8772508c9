package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/turtlerace/pkg/app"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/embedded"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	seed    = flag.Uint64("seed", 0, "随机种子（0 表示使用当前时间）")
	sound   = flag.String("sound", "", "音效开关: on 或 off（保存到设置），为空时使用已保存的设置")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Seed:    *seed,
		Sound:   *sound,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(gameApp.Title())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
