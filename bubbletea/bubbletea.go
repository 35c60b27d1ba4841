// Package bubbletea provides a Bubble Tea chat pane that renders
// messages through the layout pipeline.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwielgus/marquee"
)

// Run creates and runs the Bubble Tea program for the chat pane. It
// blocks until the program exits. The context is used for graceful
// shutdown — when cancelled, the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// MessageMsg delivers a new chat message to the pane.
type MessageMsg struct {
	Message *marquee.Message
}

// SettingsMsg delivers a fresh settings snapshot, typically after a
// config reload.
type SettingsMsg struct {
	Settings marquee.Settings
}
