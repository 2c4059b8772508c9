package systems

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/turtlerace/pkg/config"
)

type countingController struct {
	starts   int
	restarts int
}

func (c *countingController) HandleStart()   { c.starts++ }
func (c *countingController) HandleRestart() { c.restarts++ }

func defaultBindings(t *testing.T) KeyBindings {
	t.Helper()
	kb, err := ParseKeyBindings(config.DefaultRaceConfig().Keys)
	if err != nil {
		t.Fatalf("ParseKeyBindings() error: %v", err)
	}
	return kb
}

func TestParseKeyBindings(t *testing.T) {
	kb := defaultBindings(t)
	if kb.Start != ebiten.KeySpace || kb.Restart != ebiten.KeyR || kb.Quit != ebiten.KeyQ {
		t.Errorf("unexpected bindings: %+v", kb)
	}

	if _, err := ParseKeyBindings(config.KeyConfig{Start: "Space", Restart: "Nope", Quit: "Q"}); err == nil {
		t.Error("expected error for unknown key name")
	}
}

func TestInputDispatch(t *testing.T) {
	tests := []struct {
		name         string
		key          ebiten.Key
		wantStarts   int
		wantRestarts int
		wantQuit     bool
	}{
		{"空格开始", ebiten.KeySpace, 1, 0, false},
		{"R 重开", ebiten.KeyR, 0, 1, false},
		{"Q 退出", ebiten.KeyQ, 0, 0, true},
		{"其他按键无效", ebiten.KeyA, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := newFakeKeyboard()
			ctrl := &countingController{}
			input := NewInputSystem(kb, defaultBindings(t), ctrl, nil)

			kb.press(tt.key)
			err := input.Update()

			if got := errors.Is(err, ebiten.Termination); got != tt.wantQuit {
				t.Errorf("quit = %v, want %v (err=%v)", got, tt.wantQuit, err)
			}
			if ctrl.starts != tt.wantStarts || ctrl.restarts != tt.wantRestarts {
				t.Errorf("starts=%d restarts=%d, want %d/%d", ctrl.starts, ctrl.restarts, tt.wantStarts, tt.wantRestarts)
			}
		})
	}
}

func TestInputSuspendedWhilePromptOpen(t *testing.T) {
	prompt, kb, _ := newTestBetPrompt()
	ctrl := &countingController{}
	input := NewInputSystem(kb, defaultBindings(t), ctrl, prompt)

	prompt.Open(nil)
	kb.press(ebiten.KeySpace, ebiten.KeyR, ebiten.KeyQ)

	if err := input.Update(); err != nil {
		t.Errorf("Update() = %v, want nil while prompt open", err)
	}
	if ctrl.starts != 0 || ctrl.restarts != 0 {
		t.Errorf("bindings should be suspended, got starts=%d restarts=%d", ctrl.starts, ctrl.restarts)
	}
}
