package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwielgus/marquee"
	"github.com/mwielgus/marquee/term"
)

var _ tea.Model = Model{}

// Config carries the render context for a chat pane.
type Config struct {
	Theme     marquee.Theme
	Settings  marquee.Settings
	Tokenizer marquee.Tokenizer
	// Flags filters which element categories render. Zero means the
	// regular chat view.
	Flags marquee.ElementFlags
}

// Model is the Bubble Tea model for a read-only chat pane: a scrollable
// viewport over messages laid out at the current terminal width. New
// messages arrive as MessageMsg; input handling beyond scrolling and
// quitting belongs to the embedding application.
type Model struct {
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	messages  []*marquee.Message
	theme     marquee.Theme
	settings  marquee.Settings
	tokenizer marquee.Tokenizer
	flags     marquee.ElementFlags

	ready bool
}

// New creates a chat pane over the given messages.
func New(messages []*marquee.Message, cfg Config) Model {
	if cfg.Flags == marquee.FlagNone {
		cfg.Flags = marquee.FlagsDefault
	}
	return Model{
		messages:  messages,
		theme:     cfg.Theme,
		settings:  cfg.Settings,
		tokenizer: cfg.Tokenizer,
		flags:     cfg.Flags,
	}
}

// Messages returns the messages currently shown.
func (m Model) Messages() []*marquee.Message { return m.messages }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case MessageMsg:
		m.messages = append(m.messages, msg.Message)
		if m.ready {
			m.Viewport.SetContent(m.renderContent())
			m.Viewport.GotoBottom()
		}
		return m, nil

	case SettingsMsg:
		m.settings = msg.Settings
		if m.ready {
			m.Viewport.SetContent(m.renderContent())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.Viewport.View()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	if !m.ready {
		m.Viewport = viewport.New(msg.Width, max(msg.Height, 1))
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = max(msg.Height, 1)
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

// renderContent lays every message out at the viewport width and flushes
// the lines to styled strings.
func (m Model) renderContent() string {
	var b strings.Builder
	for i, msg := range m.messages {
		c := marquee.NewContainer(marquee.ContainerConfig{
			Width:     float64(m.Viewport.Width),
			Theme:     m.theme,
			Settings:  m.settings,
			Tokenizer: m.tokenizer,
		})
		msg.Layout(c, m.flags)
		for j, line := range term.Flush(c) {
			if i > 0 || j > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(line)
		}
	}
	return b.String()
}
