package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/logging"
	"github.com/vovakirdan/coinfall/internal/registry"
	"github.com/vovakirdan/coinfall/internal/storage"
)

// DefaultMaxFrameStep caps the time fed to a single step, in seconds.
const DefaultMaxFrameStep = 0.25

const controlsHint = "WASD/arrows move  P pause  Esc menu  Q quit"

// roundInfo is implemented by games that report round details for the
// status line and the score records.
type roundInfo interface {
	Difficulty() config.DifficultyPreset
	ScoreFraction() float64
}

// Options configures a play model.
type Options struct {
	Store        *storage.Store // Optional; scores are not saved when nil
	Logger       *log.Logger
	MaxFrameStep float64 // Upper bound on dt, seconds; 0 means DefaultMaxFrameStep

	// Embedded models run inside a host model (SSH sessions): Esc sets
	// BackToMenu without quitting the program.
	Embedded bool

	// OnFrame, if set, is called after every step with the inputs used.
	OnFrame func(res core.StepResult, in core.InputFrame, dt float64)
	// OnRoundEnd, if set, is called once per round when it ends by game
	// over, restart, menu or quit.
	OnRoundEnd func(final core.GameState)
}

// Model is the Bubble Tea model for playing a round.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	config    core.RuntimeConfig
	keys      *KeyMapper
	bar       progress.Model
	theme     Theme
	gameState core.GameState
	last      time.Time
	gen       uint64

	restart     bool
	roundClosed bool
	quitting    bool
	backToMenu  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.MaxFrameStep <= 0 {
		opts.MaxFrameStep = DefaultMaxFrameStep
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = statusBarWidth(cfg.ScreenW)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		opts:   opts,
		config: cfg,
		keys:   NewKeyMapper(),
		bar:    bar,
		theme:  currentTheme(),
		gen:    nextTickGen(),
	}
}

// playHeight leaves the last terminal row to the status line.
func playHeight(h int) int {
	return max(1, h-1)
}

func statusBarWidth(w int) int {
	return core.Clamp(w/3, 10, 30)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("round started", "mode", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.gen, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.endRound()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionMenu:
		m.endRound()
		m.backToMenu = true
		if m.opts.Embedded {
			return m, nil
		}
		return m, tea.Quit

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.restart = true
		}
		return m, nil
	}

	m.keys.Press(action, time.Now())
	return m, nil
}

// handleResize processes window resize events. The world is independent
// of the terminal size, so the round carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.bar.Width = statusBarWidth(msg.Width)
	return m, nil
}

// handleTick advances the round by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := 0.0
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now
	if dt > m.opts.MaxFrameStep {
		dt = m.opts.MaxFrameStep
	}
	if dt < 0 {
		dt = 0
	}

	if m.restart {
		m.endRound()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.keys.Reset()
		m.restart = false
		m.roundClosed = false
		m.opts.Logger.Info("round restarted", "mode", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.gen, m.config.TickRate)
	}

	in := m.keys.Frame(now)
	res := m.game.Step(in, dt)
	m.gameState = res.State

	if res.Captured > 0 {
		m.opts.Logger.Debug("coin captured", "score", res.State.Score)
	}
	if res.Toggled {
		if res.State.Paused {
			m.opts.Logger.Info("paused", "score", res.State.Score)
		} else {
			m.opts.Logger.Info("resumed", "score", res.State.Score)
		}
	}
	if m.opts.OnFrame != nil {
		m.opts.OnFrame(res, in, dt)
	}

	if m.gameState.GameOver && !m.roundClosed {
		m.opts.Logger.Info("time up", "score", m.gameState.Score)
		m.endRound()
	}

	return m, tickCmd(m.gen, m.config.TickRate)
}

// endRound saves the score and notifies the host, once per round.
func (m *Model) endRound() {
	if m.roundClosed {
		return
	}
	m.roundClosed = true
	m.gameState = m.game.State()

	if m.gameState.Score > 0 && m.opts.Store != nil {
		run := storage.Run{
			GameID:   m.game.ID(),
			Score:    m.gameState.Score,
			Spawned:  m.gameState.Spawned,
			Missed:   m.gameState.Missed,
			Duration: time.Duration(m.gameState.Elapsed * float64(time.Second)),
		}
		if info, ok := m.game.(roundInfo); ok {
			run.Difficulty = string(info.Difficulty())
		}
		if _, err := m.opts.Store.SaveRun(run); err != nil {
			m.opts.Logger.Warn("could not save score", "error", err)
		} else {
			m.opts.Logger.Info("score saved", "mode", run.GameID, "score", run.Score)
		}
	}

	if m.opts.OnRoundEnd != nil {
		m.opts.OnRoundEnd(m.gameState)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".coinfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot: create directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot: write", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// statusLine is the bottom row: a score bar and the controls.
func (m Model) statusLine() string {
	var b strings.Builder
	if info, ok := m.game.(roundInfo); ok {
		b.WriteString(m.bar.ViewAs(info.ScoreFraction()))
		b.WriteString(" ")
	}
	b.WriteString(m.theme.Value.Render(fmt.Sprintf("%d ", m.gameState.Score)))

	hint := controlsHint
	if m.gameState.GameOver {
		hint = "R restart  Esc menu  Q quit"
	}
	room := m.config.ScreenW - m.bar.Width - 6
	if room > 0 {
		if len(hint) > room {
			hint = hint[:room]
		}
		b.WriteString(m.theme.Controls.Render(hint))
	}
	return b.String()
}

// State returns the latest game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player asked for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Result is the outcome of Run.
type Result struct {
	State      core.GameState
	BackToMenu bool
}

// Run plays game in the terminal until the player quits or leaves for the
// menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{State: m.State(), BackToMenu: m.BackToMenu()}, nil
}
