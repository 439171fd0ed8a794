package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-xray-viewer/internal/app"
	"github.com/MKhiriev/go-xray-viewer/internal/service"
	"github.com/MKhiriev/go-xray-viewer/models"
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders the username and password inputs and, in hashed auth mode, a role
// selector. On success the form is reset and the user is sent back to the
// login page with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs    []textinput.Model
	withRoles bool
	roleIdx   int
	// focus == len(inputs) selects the role row.
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel]. The role selector is shown only
// when auth supports roles.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	fields := make([]textinput.Model, 2)

	fields[0] = textinput.New()
	fields[0].Placeholder = "username"
	fields[0].CharLimit = 64
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "password"
	fields[1].CharLimit = 256
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'
	fields[1].Width = 40

	return &RegisterModel{
		ctx:       ctx,
		auth:      auth,
		inputs:    fields,
		withRoles: auth.Mode() == models.AuthModeHashed,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] - on error, populates errMsg; on success, resets the
//     form and navigates to the login page.
//   - ctrl+n           - clears errors and switches to the login page.
//   - tab / shift+tab  - moves focus between fields.
//   - left / right     - changes the role while the role row is focused.
//   - enter            - validates inputs and dispatches the async registration.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = userMessage(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageLogin,
				Payload: RegisterSuccessNotice{Username: result.Username},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.toggleForm):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case m.roleFocused() && key.Matches(keyMsg, keys.left):
			m.roleIdx = (m.roleIdx - 1 + len(models.Roles)) % len(models.Roles)
			return m, nil
		case m.roleFocused() && key.Matches(keyMsg, keys.right):
			m.roleIdx = (m.roleIdx + 1) % len(models.Roles)
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

			account := models.Account{Username: username, Password: pass}
			if m.withRoles {
				account.Role = models.Roles[m.roleIdx]
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(account)
		}
	}

	if m.roleFocused() {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.withRoles {
		cursor := " "
		if m.roleFocused() {
			cursor = ">"
		}
		b.WriteString("Role     ")
		b.WriteString(cursor)
		b.WriteString("│ < ")
		b.WriteString(string(models.Roles[m.roleIdx]))
		b.WriteString(" >\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "tab: next field │ enter: register │ ctrl+n: login"
	if m.withRoles {
		hotKeys += " │ ←/→: role"
	}
	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *RegisterModel) cmdRegister(account models.Account) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.Register(ctx, account)
		return RegisterResult{
			Err:      err,
			Username: account.Username,
		}
	}
}

func (m *RegisterModel) fieldCount() int {
	if m.withRoles {
		return len(m.inputs) + 1
	}
	return len(m.inputs)
}

func (m *RegisterModel) roleFocused() bool {
	return m.withRoles && m.focus == len(m.inputs)
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.roleIdx = 0
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) setFocus(next int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = next
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *RegisterModel) focusNext() {
	m.setFocus((m.focus + 1) % m.fieldCount())
}

func (m *RegisterModel) focusPrev() {
	m.setFocus((m.focus - 1 + m.fieldCount()) % m.fieldCount())
}
