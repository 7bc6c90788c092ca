// Package tui runs games in a terminal through Bubble Tea.
// It owns the frame clock, input mapping, score saving and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one frame of the game loop, stamped with its wall-clock time.
type TickMsg time.Time

// tickCmd schedules the next frame at the target rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDT returns the seconds between two ticks. The first frame, with no
// previous tick, has zero dt.
func frameDT(prev, now time.Time) float64 {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return now.Sub(prev).Seconds()
}
