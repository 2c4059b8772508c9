package scenes

import (
	"github.com/decker502/turtlerace/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 编译期检查
var _ Scene = (*RaceScene)(nil)
