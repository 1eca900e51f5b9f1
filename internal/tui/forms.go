package tui

import tea "github.com/charmbracelet/bubbletea"

// recordForm is a create-or-edit overlay for one of the catalog screens.
// The main loop owns its lifetime: esc discards it, a successful savedMsg
// closes it, a failed one is pushed back in through fail.
type recordForm interface {
	update(msg tea.Msg) (recordForm, tea.Cmd)
	view() string
	fail(msg string)
}
