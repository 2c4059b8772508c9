package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
)

// FontManager 管理游戏中使用的字体
//
// 字体来自 Go 字体族（编译进程序），不需要加载外部字体文件。
// 三个档位对应 components.FontKind：普通 16 号、横幅 42 号粗体、标签 12 号粗体。
type FontManager struct {
	faces map[components.FontKind]*text.GoTextFace
}

// NewFontManager 根据字号配置创建字体
func NewFontManager(cfg config.FontConfig) (*FontManager, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create regular font source: %w", err)
	}

	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create bold font source: %w", err)
	}

	return &FontManager{
		faces: map[components.FontKind]*text.GoTextFace{
			components.FontNormal: {Source: regular, Size: cfg.Normal, Direction: text.DirectionLeftToRight},
			components.FontBig:    {Source: bold, Size: cfg.Big, Direction: text.DirectionLeftToRight},
			components.FontLabel:  {Source: bold, Size: cfg.Label, Direction: text.DirectionLeftToRight},
		},
	}, nil
}

// Face 返回指定档位的字体，未知档位返回普通字体
func (fm *FontManager) Face(kind components.FontKind) *text.GoTextFace {
	if face, ok := fm.faces[kind]; ok {
		return face
	}
	return fm.faces[components.FontNormal]
}
