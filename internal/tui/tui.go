package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/service"
	"github.com/MKhiriev/go-xray-viewer/models"
)

var (
	ErrUserQuit = errors.New("user quit")

	errNoServices = errors.New("tui: services are not set")
	errNoMonitor  = errors.New("tui: activity monitor is not set")
)

// MainLoopResult tells the caller why the record viewer closed.
type MainLoopResult int

const (
	ResultQuit MainLoopResult = iota
	ResultLogout
	ResultExpired
)

func (r MainLoopResult) String() string {
	switch r {
	case ResultLogout:
		return "logout"
	case ResultExpired:
		return "expired"
	default:
		return "quit"
	}
}

// ActivityMonitor is the idle timer fed by user input in the record viewer.
type ActivityMonitor interface {
	Start(onExpire func())
	Touch()
	Stop()
}

// Options holds presentation settings of the terminal UI.
type Options struct {
	RowsPerPage int
	ImportDir   string
	BuildInfo   models.AppBuildInfo
}

// TUI runs the login flow and the record viewer as separate Bubble Tea
// programs.
type TUI struct {
	services *service.ClientServices
	monitor  ActivityMonitor
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, monitor ActivityMonitor, opts Options, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil {
		return nil, errNoServices
	}
	if monitor == nil {
		return nil, errNoMonitor
	}
	if opts.ImportDir == "" {
		opts.ImportDir = "."
	}
	return &TUI{services: services, monitor: monitor, opts: opts, logger: logger}, nil
}

// LoginFlow shows the login and registration forms until a user logs in.
// notice, if set, is shown on the login form for a few seconds.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.Account, error) {
	pages := map[string]tea.Model{
		pageLogin:    NewLoginModel(ctx, t.services.AuthService, notice),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageLogin, t.opts.BuildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Account{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Account{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Account{}, ErrUserQuit
	}

	return result.account, nil
}

// MainLoop runs the record viewer for account until the user quits, logs out
// or stays idle past the monitor's timeout.
func (t *TUI) MainLoop(ctx context.Context, account models.Account, notice string) (MainLoopResult, error) {
	model := newMainLoopModel(ctx, t.services, t.monitor, account, t.opts, notice)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	t.monitor.Start(func() { program.Send(sessionExpiredMsg{}) })
	defer t.monitor.Stop()

	finalModel, runErr := program.Run()
	if runErr != nil {
		return ResultQuit, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return ResultQuit, tea.ErrProgramKilled
	}

	t.logger.Debug().Str("result", result.result.String()).Msg("main loop finished")
	return result.result, nil
}
