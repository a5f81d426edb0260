// Package teaui provides the interactive terminal UI over the planner.
package teaui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/spina95/time-blocking/pkg/planner"
)

// Run launches the Bubble Tea UI.
func Run(p *planner.Planner) error {
	prog := tea.NewProgram(New(p), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
