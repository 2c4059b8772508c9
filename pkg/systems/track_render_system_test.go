package systems

import (
	"testing"

	"github.com/decker502/turtlerace/pkg/config"
)

func TestBuildTrackLayout(t *testing.T) {
	layout := BuildTrackLayout()

	t.Run("边框", func(t *testing.T) {
		if layout.BorderX != 20 || layout.BorderY != 20 || layout.BorderW != 860 || layout.BorderH != 500 {
			t.Errorf("border = (%v,%v,%v,%v), want (20,20,860,500)",
				layout.BorderX, layout.BorderY, layout.BorderW, layout.BorderH)
		}
	})

	t.Run("赛道分隔线", func(t *testing.T) {
		if len(layout.Lanes) != config.Lanes+1 {
			t.Fatalf("lane lines = %d, want %d", len(layout.Lanes), config.Lanes+1)
		}
		first, last := layout.Lanes[0], layout.Lanes[len(layout.Lanes)-1]
		if first.Y1 != 60 || last.Y1 != 480 {
			t.Errorf("lane lines y from %v to %v, want 60 to 480", first.Y1, last.Y1)
		}
		for i, line := range layout.Lanes {
			if line.X1 != 50 || line.X2 != 850 || line.Y1 != line.Y2 {
				t.Errorf("lane line %d = %+v", i, line)
			}
		}
	})

	t.Run("起点终点", func(t *testing.T) {
		if len(layout.Posts) != 2 || len(layout.Labels) != 2 {
			t.Fatalf("posts=%d labels=%d, want 2/2", len(layout.Posts), len(layout.Labels))
		}
		start, finish := layout.Posts[0], layout.Posts[1]
		if start.X1 != config.StartX() || finish.X1 != config.FinishX() {
			t.Errorf("posts at %v/%v, want %v/%v", start.X1, finish.X1, config.StartX(), config.FinishX())
		}
		if start.Y1 != 50 || start.Y2 != 490 {
			t.Errorf("post spans %v..%v, want 50..490", start.Y1, start.Y2)
		}
		if start.Color != StartPostColor || finish.Color != FinishPostColor {
			t.Errorf("post colors = %v/%v", start.Color, finish.Color)
		}
		if layout.Labels[0].Text != "START" || layout.Labels[1].Text != "FINISH" {
			t.Errorf("labels = %q/%q", layout.Labels[0].Text, layout.Labels[1].Text)
		}
		if layout.Labels[0].Y != 40 {
			t.Errorf("label baseline = %v, want 40", layout.Labels[0].Y)
		}
	})

	t.Run("棋盘格", func(t *testing.T) {
		rows := config.CheckerRows()
		if len(layout.Checker) != rows*config.CheckerCols {
			t.Fatalf("checker cells = %d, want %d", len(layout.Checker), rows*config.CheckerCols)
		}
		first, second := layout.Checker[0], layout.Checker[1]
		if first.X != 808 || first.Y != 60 || !first.Dark {
			t.Errorf("first cell = %+v, want dark at (808,60)", first)
		}
		if second.X != 820 || second.Y != 60 || second.Dark {
			t.Errorf("second cell = %+v, want light at (820,60)", second)
		}
		for _, cell := range layout.Checker {
			r := int((cell.Y - config.TrackTop()) / config.CheckerCell)
			c := int((cell.X - (config.FinishX() - config.CheckerCell)) / config.CheckerCell)
			if cell.Dark != ((r+c)%2 == 0) {
				t.Errorf("cell (%d,%d) dark=%v", r, c, cell.Dark)
			}
		}
	})
}

func TestBuildTrackLayoutIsIdempotent(t *testing.T) {
	a := BuildTrackLayout()
	b := BuildTrackLayout()
	if len(a.Checker) != len(b.Checker) || len(a.Lanes) != len(b.Lanes) || a.Checker[5] != b.Checker[5] {
		t.Error("layout should be deterministic")
	}
}

func TestTrackRedrawCount(t *testing.T) {
	s := NewTrackRenderSystem(nil)
	s.Redraw()
	s.Redraw()
	if s.RedrawCount() != 2 {
		t.Errorf("RedrawCount() = %d, want 2", s.RedrawCount())
	}
}
