package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/powerup-arcade/internal/core"
	"github.com/vovakirdan/powerup-arcade/internal/storage"
)

func TestScoreboardListsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{GameID: "powerup", Score: 1200, Level: 3, Survived: 125})
	store.SaveRun(storage.Run{GameID: "powerup", Score: 90, Level: 1, Survived: 9})
	store.SaveRun(storage.Run{GameID: "other", Score: 5000, Level: 9})

	m := NewScoreboardModel(store, "powerup", "Power-Up Game", 100, 30)
	view := m.View()

	for _, want := range []string{"HIGH SCORES - Power-Up Game", "Level", "1200", "2:05", "90"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "5000") {
		t.Error("runs of other games should not be listed")
	}
}

func TestScoreboardEmptyStates(t *testing.T) {
	m := NewScoreboardModel(nil, "powerup", "Power-Up Game", 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("missing store should be reported")
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m = NewScoreboardModel(store, "powerup", "Power-Up Game", 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardBack(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		quits    bool
	}{
		{"standalone ends the program", false, true},
		{"embedded returns to the game", true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, "powerup", "Power-Up Game", 80, 24)
			m.embedded = tc.embedded

			next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
			board := next.(ScoreboardModel)

			if !board.IsGoingBack() || board.IsQuitting() {
				t.Errorf("back = %v, quitting = %v", board.IsGoingBack(), board.IsQuitting())
			}
			if (cmd != nil) != tc.quits {
				t.Errorf("quit command = %v, expected %v", cmd != nil, tc.quits)
			}
		})
	}
}

func TestFormatSurvived(t *testing.T) {
	tests := []struct {
		secs     float64
		expected string
	}{
		{0, "0:00"},
		{9.9, "0:09"},
		{61, "1:01"},
		{3600, "60:00"},
	}
	for _, tc := range tests {
		if got := formatSurvived(tc.secs); got != tc.expected {
			t.Errorf("formatSurvived(%g) = %q, expected %q", tc.secs, got, tc.expected)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "HP:", core.ColorWhite)
	s.DrawTextColor(4, 0, "10", core.ColorRed)
	s.SetColor(0, 1, '█', core.ColorBlue)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"HP:", "10", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
}
