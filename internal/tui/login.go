package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-xray-viewer/internal/app"
	"github.com/MKhiriev/go-xray-viewer/internal/service"
	"github.com/MKhiriev/go-xray-viewer/internal/validators"
	"github.com/MKhiriev/go-xray-viewer/models"
)

// formValidator checks form input with the auth service's rules.
var formValidator = validators.NewAccountValidator()

// LoginModel is the Bubble Tea model for the login screen. It renders the
// username and password inputs and dispatches an async login command on
// submission. On success a [LoginResult] is produced and handled by
// [RootModel] to finish the login flow.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	status    string
	statusSeq int
	// toast statuses clear themselves; the registration notice stays.
	toast bool
}

// NewLoginModel creates a [LoginModel]. notice, if not empty, is shown as a
// toast when the page opens.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, notice string) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{usernameInput, passwordInput},
		status: notice,
		toast:  notice != "",
	}
}

// Init implements [tea.Model]. Starts the cursor blink and schedules the
// initial toast to clear.
func (m *LoginModel) Init() tea.Cmd {
	if m.toast && m.status != "" {
		return tea.Batch(textinput.Blink, cmdClearStatus(m.statusSeq))
	}
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]           - clears submitting state; on error, populates errMsg.
//   - [RegisterSuccessNotice] - shows the registration notice.
//   - ctrl+n                  - clears errors and switches to the register page.
//   - tab / shift+tab         - moves focus between inputs.
//   - enter                   - validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = userMessage(msg.Err)
			m.inputs[1].SetValue("")
		}
		return m, nil
	case RegisterSuccessNotice:
		m.errMsg = ""
		m.setStatus(app.MsgRegistered, false)
		return m, nil
	case clearStatusMsg:
		if m.toast && msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.toggleForm):
			m.submitting = false
			m.errMsg = ""
			m.setStatus("", false)
			return m, func() tea.Msg { return NavigateTo{Page: pageRegister} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := m.inputs[0].Value()
			pass := m.inputs[1].Value()
			if err := formValidator.Validate(m.ctx, models.Credentials{Username: username, Password: pass}); err != nil {
				m.errMsg = app.MsgAllFieldsRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Login]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOGIN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: login │ ctrl+n: register │ f1: about")
}

func (m *LoginModel) cmdLogin(username, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		account, err := auth.Login(ctx, models.Credentials{
			Username: username,
			Password: pass,
		})
		return LoginResult{Account: account, Err: err}
	}
}

func (m *LoginModel) setStatus(status string, toast bool) {
	m.status = status
	m.toast = toast
	m.statusSeq++
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
