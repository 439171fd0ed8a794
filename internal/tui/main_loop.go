package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-xray-viewer/internal/app"
	"github.com/MKhiriev/go-xray-viewer/internal/printer"
	"github.com/MKhiriev/go-xray-viewer/internal/service"
	"github.com/MKhiriev/go-xray-viewer/internal/spreadsheet"
	"github.com/MKhiriev/go-xray-viewer/internal/view"
	"github.com/MKhiriev/go-xray-viewer/models"
)

type loopMode int

const (
	modeBrowse loopMode = iota
	modeSearch
	modeSource
	modePicker
	modePrintRange
)

// activityTracker is the part of the idle monitor the viewer feeds.
type activityTracker interface {
	Touch()
}

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	activity activityTracker
	account  models.Account

	state   models.ViewState
	proj    view.Projection
	cursor  int
	sortCol int

	mode        loopMode
	search      textinput.Model
	source      textinput.Model
	picker      filepicker.Model
	rangeInputs []textinput.Model
	rangeFocus  int
	rangeErr    string

	busy         string
	status       string
	statusSeq    int
	showError    bool
	errorOverlay errorOverlayModel

	help          help.Model
	showHelp      bool
	dark          bool
	theme         theme
	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	result MainLoopResult
}

func newMainLoopModel(
	ctx context.Context,
	services *service.ClientServices,
	activity activityTracker,
	account models.Account,
	opts Options,
	notice string,
) mainLoopModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "patient or company"
	search.Width = 40

	source := textinput.New()
	source.Placeholder = "path/to/masterlist.xlsx or https://..."
	source.Width = 60

	picker := filepicker.New()
	picker.AllowedTypes = []string{spreadsheet.ExtXLSX, spreadsheet.ExtXLS}
	picker.CurrentDirectory = opts.ImportDir
	picker.AutoHeight = false
	picker.Height = 12

	m := mainLoopModel{
		ctx:       ctx,
		services:  services,
		activity:  activity,
		account:   account,
		state:     models.NewViewState(opts.RowsPerPage),
		search:    search,
		source:    source,
		picker:    picker,
		help:      help.New(),
		theme:     themeFor(false),
		buildInfo: opts.BuildInfo,
		status:    notice,
	}
	m.resetRangeInputs()
	m.refresh()

	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	if m.status != "" {
		return cmdClearStatus(m.statusSeq)
	}
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		m.activity.Touch()
	}

	switch msg := msg.(type) {
	case sessionExpiredMsg:
		m.result = ResultExpired
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case importDoneMsg:
		return m.onImportDone(msg)
	case printDoneMsg:
		return m.onPrintDone(msg)
	case exportDoneMsg:
		m.busy = ""
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		cmd := m.notify(fmt.Sprintf(app.MsgExportedFmt, msg.path))
		return m, cmd
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		cmd := m.notify(app.MsgCopied)
		return m, cmd
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		m.result = ResultQuit
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if isKey && (key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.about)) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.showError {
		if isKey && (key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc)) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	switch m.mode {
	case modeSearch:
		return m.updateSearch(msg)
	case modeSource:
		return m.updateSource(msg)
	case modePicker:
		return m.updatePicker(msg)
	case modePrintRange:
		return m.updatePrintRange(msg)
	}

	if !isKey {
		return m, nil
	}
	return m.updateBrowse(keyMsg)
}

func (m mainLoopModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.result = ResultQuit
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.result = ResultLogout
		return m, tea.Quit
	case key.Matches(msg, keys.about):
		m.showBuildInfo = true
	case key.Matches(msg, keys.help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.proj.Rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.left):
		if m.sortCol > 0 {
			m.sortCol--
		}
	case key.Matches(msg, keys.right):
		if m.sortCol < len(m.proj.Columns)-1 {
			m.sortCol++
		}
	case key.Matches(msg, keys.sort):
		if len(m.proj.Columns) == 0 {
			return m, nil
		}
		m.state = view.WithSort(m.state, m.proj.Columns[m.sortCol])
		m.refresh()

	case key.Matches(msg, keys.nextPage):
		m.state = view.WithPage(m.state, m.state.Page+1, m.proj.Total)
		m.cursor = 0
		m.refresh()
	case key.Matches(msg, keys.prevPage):
		m.state = view.WithPage(m.state, m.state.Page-1, m.proj.Total)
		m.cursor = 0
		m.refresh()
	case key.Matches(msg, keys.rowsPerPage):
		m.state = view.WithRowsPerPage(m.state, view.NextRowsPerPage(m.state.RowsPerPage))
		m.cursor = 0
		m.refresh()
	case key.Matches(msg, keys.printView):
		m.state = view.TogglePrintView(m.state)
		m.cursor = 0
		m.refresh()

	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		m.search.SetValue(m.state.SearchTerm)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, keys.openFile):
		if m.busy != "" {
			return m, nil
		}
		m.mode = modePicker
		return m, m.picker.Init()
	case key.Matches(msg, keys.openSource):
		if m.busy != "" {
			return m, nil
		}
		m.mode = modeSource
		m.source.SetValue("")
		return m, m.source.Focus()
	case key.Matches(msg, keys.print):
		if m.busy != "" {
			return m, nil
		}
		m.mode = modePrintRange
		m.resetRangeInputs()
		return m, m.rangeInputs[0].Focus()
	case key.Matches(msg, keys.export):
		if m.busy != "" {
			return m, nil
		}
		m.busy = "Exporting..."
		return m, m.cmdExport(m.proj)
	case key.Matches(msg, keys.copy):
		rec, ok := m.currentRecord()
		if !ok {
			cmd := m.notify(app.MsgNothingToCopy)
			return m, cmd
		}
		return m, cmdCopyToClipboard(formatRecord(m.proj.Columns, rec))
	case key.Matches(msg, keys.theme):
		m.dark = !m.dark
		m.theme = themeFor(m.dark)
	}

	return m, nil
}

func (m mainLoopModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.mode = modeBrowse
			m.search.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeBrowse
			m.search.Blur()
			m.search.SetValue("")
			m.state = view.WithSearchTerm(m.state, "")
			m.cursor = 0
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if term := m.search.Value(); term != m.state.SearchTerm {
		m.state = view.WithSearchTerm(m.state, term)
		m.cursor = 0
		m.refresh()
	}
	return m, cmd
}

func (m mainLoopModel) updateSource(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeBrowse
			m.source.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.mode = modeBrowse
			m.source.Blur()
			m.busy = "Importing..."
			return m, m.cmdImport(m.source.Value())
		}
	}

	var cmd tea.Cmd
	m.source, cmd = m.source.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.mode = modeBrowse
		m.busy = "Importing..."
		return m, tea.Batch(cmd, m.cmdImport(path))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		notice := m.notify(app.MsgUnsupportedFormat + ": " + filepath.Base(path))
		return m, tea.Batch(cmd, notice)
	}

	return m, cmd
}

func (m mainLoopModel) updatePrintRange(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeBrowse
			m.resetRangeInputs()
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.rangeInputs[m.rangeFocus].Blur()
			m.rangeFocus = 1 - m.rangeFocus
			return m, m.rangeInputs[m.rangeFocus].Focus()
		case key.Matches(keyMsg, keys.enter):
			if m.busy != "" {
				return m, nil
			}
			m.rangeErr = ""
			m.busy = "Preparing print page..."
			r := models.PrintRange{
				Start: m.rangeInputs[0].Value(),
				End:   m.rangeInputs[1].Value(),
			}
			return m, m.cmdPrint(m.proj.Filtered, r)
		}
	}

	var cmd tea.Cmd
	m.rangeInputs[m.rangeFocus], cmd = m.rangeInputs[m.rangeFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) onImportDone(msg importDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = ""
	if msg.err != nil {
		// a workbook without the clinic sheets is ignored
		if errors.Is(msg.err, spreadsheet.ErrSheetNotFound) {
			return m, nil
		}
		m.showErrorf(userMessage(msg.err))
		return m, nil
	}

	m.state.Page = 0
	m.cursor = 0
	m.sortCol = 0
	m.refresh()

	cmd := m.notify(fmt.Sprintf(app.MsgImportedFmt, msg.set.Len(), sourceName(msg.source)))
	return m, cmd
}

func (m mainLoopModel) onPrintDone(msg printDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = ""
	if msg.err != nil {
		switch {
		case m.mode == modePrintRange &&
			(errors.Is(msg.err, printer.ErrInvalidRange) || errors.Is(msg.err, printer.ErrNoRecordsInRange)):
			m.rangeErr = userMessage(msg.err)
		case msg.location != "":
			m.mode = modeBrowse
			m.resetRangeInputs()
			m.showErrorf(fmt.Sprintf(app.MsgPrintNotOpenedFmt, msg.location))
		default:
			m.showErrorf(userMessage(msg.err))
		}
		return m, nil
	}

	m.mode = modeBrowse
	m.resetRangeInputs()
	cmd := m.notify(fmt.Sprintf(app.MsgPrintOpenedFmt, msg.location))
	return m, cmd
}

// refresh re-derives the projection from the current view state.
func (m *mainLoopModel) refresh() {
	m.proj = m.services.ViewService.Project(m.state)

	if clamped := view.WithPage(m.state, m.state.Page, m.proj.Total); clamped.Page != m.state.Page {
		m.state = clamped
		m.proj = m.services.ViewService.Project(m.state)
	}

	m.cursor = max(0, min(m.cursor, len(m.proj.Rows)-1))
	m.sortCol = max(0, min(m.sortCol, len(m.proj.Columns)-1))
}

func (m *mainLoopModel) notify(status string) tea.Cmd {
	m.status = status
	m.statusSeq++
	return cmdClearStatus(m.statusSeq)
}

func (m *mainLoopModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *mainLoopModel) resetRangeInputs() {
	start := textinput.New()
	start.Placeholder = "from X-Ray No."
	start.Width = 20

	end := textinput.New()
	end.Placeholder = "to X-Ray No."
	end.Width = 20

	m.rangeInputs = []textinput.Model{start, end}
	m.rangeFocus = 0
	m.rangeErr = ""
}

func (m mainLoopModel) currentRecord() (models.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.proj.Rows) {
		return nil, false
	}
	return m.proj.Rows[m.cursor], true
}

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	if m.mode == modePicker {
		body := "Current directory: " + m.picker.CurrentDirectory + "\n\n" + m.picker.View()
		return renderPage("OPEN SPREADSHEET", body, "enter: open │ ←/backspace: up │ esc: cancel")
	}

	var b strings.Builder

	b.WriteString(m.theme.account.Render(accountLabel(m.account)))
	b.WriteString("\n")

	switch {
	case m.busy != "":
		b.WriteString(m.busy)
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(m.theme.toast.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.mode {
	case modeSearch:
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	case modeSource:
		b.WriteString("Open: ")
		b.WriteString(m.source.View())
		b.WriteString("\n\n")
	case modePrintRange:
		b.WriteString("Print X-Ray No. from [")
		b.WriteString(m.rangeInputs[0].View())
		b.WriteString("] to [")
		b.WriteString(m.rangeInputs[1].View())
		b.WriteString("]\n")
		if m.rangeErr != "" {
			b.WriteString(errorStyle.Render("Error: " + m.rangeErr))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	default:
		if m.state.SearchTerm != "" {
			b.WriteString("Search: ")
			b.WriteString(m.state.SearchTerm)
			b.WriteString("\n\n")
		}
	}

	b.WriteString(renderTable(m.proj, m.state, m.cursor, m.sortCol, m.theme))
	b.WriteString("\n\n")
	b.WriteString(pageSummary(m.proj, m.state))

	if m.showError {
		b.WriteString("\n\n")
		b.WriteString(m.errorOverlay.View())
	}

	title := "RECORDS"
	if m.state.PrintView {
		title = "RECORDS: PRINT VIEW"
	}

	var hotKeys string
	switch {
	case m.showHelp:
		hotKeys = m.help.FullHelpView(keys.FullHelp())
	case m.mode == modeSearch:
		hotKeys = "type to filter │ enter: done │ esc: clear"
	case m.mode == modeSource:
		hotKeys = "enter: import │ esc: cancel"
	case m.mode == modePrintRange:
		hotKeys = "tab: next field │ enter: print │ esc: cancel"
	default:
		hotKeys = m.help.ShortHelpView(keys.ShortHelp())
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) cmdImport(source string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ImportService

	return func() tea.Msg {
		set, err := svc.Import(ctx, source)
		return importDoneMsg{source: source, set: set, err: err}
	}
}

func (m mainLoopModel) cmdPrint(filtered []models.Record, r models.PrintRange) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PrintService
	records := append([]models.Record(nil), filtered...)

	return func() tea.Msg {
		location, err := svc.Print(ctx, records, r)
		return printDoneMsg{location: location, err: err}
	}
}

func (m mainLoopModel) cmdExport(p view.Projection) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ExportService

	return func() tea.Msg {
		path, err := svc.Export(ctx, p)
		return exportDoneMsg{path: path, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func accountLabel(a models.Account) string {
	if a.IsAdmin() {
		return "Admin: " + a.Username
	}
	return "User: " + a.Username
}

// sourceName shortens a path or URL to its file name.
func sourceName(source string) string {
	source = strings.TrimSpace(source)
	if i := strings.LastIndexAny(source, `/\`); i >= 0 && i < len(source)-1 {
		return source[i+1:]
	}
	return source
}

// formatRecord renders rec as two tab-separated lines: column names and
// values.
func formatRecord(columns []string, rec models.Record) string {
	values := make([]string, len(columns))
	for i, c := range columns {
		values[i] = rec.Get(c)
	}
	return strings.Join(columns, "\t") + "\n" + strings.Join(values, "\t")
}
