// Package bubbletea provides a Bubble Tea viewer for documents with
// markdown link spans: links render colored inside a scrollable viewport,
// a mouse click on a link opens its URL with the configured opener, and
// Tab/Enter drive the same thing from the keyboard.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the Bubble Tea program for m. It blocks until the
// program exits. The context is used for graceful shutdown — when
// cancelled, the program quits.
func Run(ctx context.Context, m Model) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}
