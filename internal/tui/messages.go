package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-xray-viewer/models"
)

// Page names of the login flow.
const (
	pageLogin    = "login"
	pageRegister = "register"
)

// toastDuration is how long a status notice stays on screen.
const toastDuration = 3 * time.Second

// NavigateTo asks [RootModel] to switch to Page. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult carries the outcome of a login attempt.
type LoginResult struct {
	Account models.Account
	Err     error
}

// RegisterResult carries the outcome of a registration attempt.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is delivered to the login page after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}

type sessionExpiredMsg struct{}

// clearStatusMsg clears the status notice it was scheduled for. A newer
// notice bumps the sequence, so stale clears are ignored.
type clearStatusMsg struct {
	seq int
}

type importDoneMsg struct {
	source string
	set    models.RecordSet
	err    error
}

type printDoneMsg struct {
	location string
	err      error
}

type exportDoneMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
