package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/detector-run/internal/core"
)

// footerHeight is the number of terminal rows taken by the help line.
const footerHeight = 1

// Game is the simulation the model drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(cols, rows int)
	Step(in core.InputFrame) core.StepResult
	Render(dst core.Surface)
	State() core.GameState
}

// CuePlayer plays the sound for a game event.
type CuePlayer interface {
	Play(e core.Event)
}

type silentCues struct{}

func (silentCues) Play(core.Event) {}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	cues       CuePlayer
	logger     *log.Logger
	runID      string
	shotDir    string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenH is the playfield height, without the footer.
func NewModel(game Game, cues CuePlayer, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cues == nil {
		cues = silentCues{}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		cues:       cues,
		logger:     logger,
		runID:      uuid.NewString(),
		shotDir:    defaultScreenshotDir(),
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".detector", "screenshots")
	}
	return filepath.Join(home, ".detector", "screenshots")
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("round started", "run", m.runID, "game", m.game.ID(), "seed", m.config.Seed)

	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case key.Matches(msg, m.keys.Jump):
		m.inputFrame.Set(core.ActionJump)
	case key.Matches(msg, m.keys.Restart):
		m.inputFrame.Set(core.ActionRestart)
	case key.Matches(msg, m.keys.Pause):
		m.inputFrame.Set(core.ActionPause)
	}

	return m, nil
}

// handleMouse treats a left click or tap like the jump key.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionJump)
	}
	return m, nil
}

// handleResize keeps the round running and only moves the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := max(msg.Height-footerHeight, 1)

	m.config.ScreenW = msg.Width
	m.config.ScreenH = rows
	m.screen.Resize(msg.Width, rows)
	m.game.Resize(msg.Width, rows)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one simulation step and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		m.cues.Play(e)

		switch e {
		case core.EventGameOver:
			m.logger.Info("round over", "run", m.runID, "score", result.State.Score)
		case core.EventRestart:
			m.runID = uuid.NewString()
			m.logger.Info("round started", "run", m.runID, "game", m.game.ID())
		}
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the playfield and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game Game, cues CuePlayer, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, cues, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // clicks jump
	)

	_, err := p.Run()
	return err
}
