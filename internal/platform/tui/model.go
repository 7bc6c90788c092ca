package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/powerup-arcade/internal/core"
	"github.com/vovakirdan/powerup-arcade/internal/registry"
	"github.com/vovakirdan/powerup-arcade/internal/storage"
)

// holdWindow is how long a movement key counts as held after its last
// press or auto-repeat. Terminals report no key releases.
const holdWindow = 250 * time.Millisecond

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	held       map[core.Action]time.Time // Movement action -> expiry
	lastTick   time.Time
	gameState  core.GameState
	scores     *ScoreboardModel // Non-nil while the scoreboard is open
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a model for game. store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]time.Time),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		return m.handleResize(wsm)
	}
	if tick, ok := msg.(TickMsg); ok {
		return m.handleTick(time.Time(tick))
	}

	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.inputFrame.SetPointer(msg.X)
	}
	return m, nil
}

// handleKey maps a key press onto the next frame's input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores) && m.gameState.Phase == "start":
		board := NewScoreboardModel(m.store, m.game.ID(), m.game.Title(), m.config.ScreenW, m.config.ScreenH)
		board.embedded = true
		m.scores = &board
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "phase", m.gameState.Phase)
		return m, tea.Quit
	case IsHeld(action):
		// Pressing one direction releases the other
		for a := range m.held {
			delete(m.held, a)
		}
		m.held[action] = m.keyTime().Add(holdWindow)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// keyTime is the clock used for key holds. Ticks are the only time source
// the model sees, so presses are stamped with the latest tick.
func (m Model) keyTime() time.Time {
	if m.lastTick.IsZero() {
		return time.Now()
	}
	return m.lastTick
}

func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.scores = nil
		return m, nil
	}
	m.scores = &board
	return m, cmd
}

// handleResize resizes the screen buffer. Games that implement
// registry.Resizer keep their run; others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	if m.scores != nil {
		next, _ := m.scores.Update(msg)
		if board, ok := next.(ScoreboardModel); ok {
			m.scores = &board
		}
	}
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one game frame with the dt measured since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.DT = frameDT(m.lastTick, now)
	m.lastTick = now

	if m.scores != nil {
		// The game stays on its title screen underneath
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	for a, until := range m.held {
		if now.Before(until) {
			m.inputFrame.Set(a)
		} else {
			delete(m.held, a)
		}
	}

	prev := m.gameState
	m.gameState = m.game.Step(m.inputFrame).State
	m.logTransitions(prev, m.gameState)
	m.recordRun()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransitions(prev, cur core.GameState) {
	if prev.Phase != cur.Phase && prev.Phase != "" {
		m.logger.Debug("phase changed", "from", prev.Phase, "to", cur.Phase)
	}
	if cur.Phase == "game" && prev.Level != 0 && cur.Level != prev.Level {
		m.logger.Info("level up", "level", cur.Level, "score", cur.Score)
	}
	if cur.GameOver && !prev.GameOver {
		m.logger.Info("game over", "score", cur.Score, "level", cur.Level,
			"survived", fmt.Sprintf("%.1fs", cur.Survived))
	}
}

// recordRun saves a finished run once per game over.
func (m *Model) recordRun() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Level:    m.gameState.Level,
		Survived: m.gameState.Survived,
	})
	if err != nil {
		m.logger.Error("could not save run", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text under
// ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.gameState.Phase != "start" || m.screen.Height() < 2 {
		return out
	}

	// Key help replaces the bottom row of the title screen
	lines := strings.Split(out, "\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	lines[len(lines)-1] = helpStyle.Render(m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer steering needs motion without a button held
	)

	_, err := p.Run()
	return err
}
