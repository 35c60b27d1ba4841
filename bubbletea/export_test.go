package bubbletea

// RenderContent exposes the pane's content rendering for tests.
func (m Model) RenderContent() string { return m.renderContent() }
