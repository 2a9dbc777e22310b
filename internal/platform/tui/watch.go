package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/game"
	"github.com/vovakirdan/coinfall/internal/spectate"
)

// FrameSource delivers a remote round. *spectate.Client implements it.
type FrameSource interface {
	Bootstrap() spectate.Bootstrap
	Next() (spectate.FrameMsg, error)
}

type watchFrameMsg spectate.FrameMsg

type watchErrMsg struct{ err error }

// WatchModel renders frames published by another player's round.
type WatchModel struct {
	src     FrameSource
	boot    spectate.Bootstrap
	screen  *core.Screen
	theme   Theme
	width   int
	last    spectate.FrameMsg
	frames  int
	err     error
	waiting bool
}

// NewWatchModel creates a spectator view for src.
func NewWatchModel(src FrameSource, width, height int) WatchModel {
	return WatchModel{
		src:     src,
		boot:    src.Bootstrap(),
		screen:  core.NewScreen(width, playHeight(height)),
		theme:   currentTheme(),
		width:   width,
		waiting: true,
	}
}

func (m WatchModel) nextFrame() tea.Cmd {
	src := m.src
	return func() tea.Msg {
		f, err := src.Next()
		if err != nil {
			return watchErrMsg{err: err}
		}
		return watchFrameMsg(f)
	}
}

// Init starts reading frames.
func (m WatchModel) Init() tea.Cmd {
	return m.nextFrame()
}

// Update handles messages.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.screen.Resize(msg.Width, playHeight(msg.Height))
	case watchFrameMsg:
		m.last = spectate.FrameMsg(msg)
		m.frames++
		m.waiting = false
		return m, m.nextFrame()
	case watchErrMsg:
		m.err = msg.err
	}
	return m, nil
}

// View draws the latest frame and a status line.
func (m WatchModel) View() string {
	if m.waiting && m.err == nil {
		return "\n" + centerText(m.theme.Subtitle.Render("Waiting for the first frame..."), m.width)
	}

	game.Draw(m.screen, m.boot.Config, m.last.Snapshot, game.Frame{
		Title:     m.boot.Title,
		Remaining: m.last.Remaining,
		GameOver:  m.last.GameOver,
	})

	status := m.theme.Description.Render(fmt.Sprintf("watching %s (%s)  frame %d  Q quit",
		m.boot.Title, m.boot.Difficulty, m.last.Snapshot.Frame))
	if m.err != nil {
		status = m.theme.Warning.Render(fmt.Sprintf("stream ended: %v  Q quit", m.err))
	}
	return RenderScreen(m.screen) + "\n" + status
}

// Frames returns how many frames were received.
func (m WatchModel) Frames() int {
	return m.frames
}

// Err returns the error that ended the stream, if any.
func (m WatchModel) Err() error {
	return m.err
}

// RunWatch shows src until the player quits.
func RunWatch(src FrameSource, width, height int) error {
	p := tea.NewProgram(NewWatchModel(src, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: watch: %w", err)
	}
	return nil
}
