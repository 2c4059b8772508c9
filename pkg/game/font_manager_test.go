package game

import (
	"testing"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
)

func TestNewFontManager(t *testing.T) {
	fm, err := NewFontManager(config.FontConfig{Normal: 16, Big: 42, Label: 12})
	if err != nil {
		t.Fatalf("NewFontManager() error: %v", err)
	}

	tests := []struct {
		kind components.FontKind
		size float64
	}{
		{components.FontNormal, 16},
		{components.FontBig, 42},
		{components.FontLabel, 12},
	}
	for _, tt := range tests {
		face := fm.Face(tt.kind)
		if face == nil {
			t.Fatalf("Face(%v) = nil", tt.kind)
		}
		if face.Size != tt.size {
			t.Errorf("Face(%v).Size = %v, want %v", tt.kind, face.Size, tt.size)
		}
	}

	// 未知档位回退到普通字体
	if fm.Face(components.FontKind(99)) != fm.Face(components.FontNormal) {
		t.Error("unknown font kind should fall back to the normal face")
	}
}
