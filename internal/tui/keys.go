package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	about   key.Binding
	help    key.Binding

	toggleForm key.Binding

	openFile    key.Binding
	openSource  key.Binding
	search      key.Binding
	sort        key.Binding
	nextPage    key.Binding
	prevPage    key.Binding
	rowsPerPage key.Binding
	print       key.Binding
	printView   key.Binding
	export      key.Binding
	copy        key.Binding
	theme       key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev column")),
	right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next column")),
	enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	esc:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	backtab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	logout:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logout")),
	about:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
	help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),

	toggleForm: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "login/register")),

	openFile:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open file")),
	openSource:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "open path/URL")),
	search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
	nextPage:    key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
	prevPage:    key.NewBinding(key.WithKeys("b", "pgup"), key.WithHelp("b", "prev page")),
	rowsPerPage: key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "rows per page")),
	print:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "print range")),
	printView:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "print view")),
	export:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
	copy:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy row")),
	theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
}

// ShortHelp implements help.KeyMap for the record viewer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.openFile, k.search, k.sort, k.nextPage, k.print, k.export, k.help, k.quit}
}

// FullHelp implements help.KeyMap for the record viewer.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.openFile, k.openSource, k.search, k.export},
		{k.up, k.down, k.left, k.right, k.sort},
		{k.nextPage, k.prevPage, k.rowsPerPage, k.printView},
		{k.print, k.copy, k.theme, k.about},
		{k.logout, k.quit, k.help},
	}
}
