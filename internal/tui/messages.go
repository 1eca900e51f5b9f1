package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savrasovpm/go-pantry-keeper/models"
)

// NavigateTo switches the login flow to another page. Payload, when set, is
// re-delivered to the new page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes an async login or register attempt.
type LoginResult struct {
	Err      error
	Identity models.Identity
}

// RegisterSuccessNotice is shown on the menu after a successful registration
// that did not end in an automatic login.
type RegisterSuccessNotice struct {
	Username string
}

type listLoadedMsg struct {
	tab tab
	err error
}

type savedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
