package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search    key.Binding
	Accept    key.Binding
	Cancel    key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	SortNext  key.Binding
	SortFlip  key.Binding
	SortClear key.Binding
	SortByCol key.Binding
	Bigger    key.Binding
	Smaller   key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep search")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		NextPage:  key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		FirstPage: key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first page")),
		LastPage:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page")),
		SortNext:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort next column")),
		SortFlip:  key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "flip direction")),
		SortClear: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear sort")),
		SortByCol: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "sort by column")),
		Bigger:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more rows")),
		Smaller:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer rows")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) all() []key.Binding {
	return []key.Binding{
		k.Search, k.Accept, k.Cancel, k.NextPage, k.PrevPage, k.FirstPage, k.LastPage,
		k.SortNext, k.SortFlip, k.SortClear, k.SortByCol, k.Bigger, k.Smaller, k.Reload, k.Help, k.Quit,
	}
}
