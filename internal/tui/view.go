package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tablekit/internal/database/repository"
	"github.com/jask/tablekit/widgets"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (a *App) View() string {
	tbl := a.dir.Table
	res := tbl.Result()

	empty := "No people yet. Press r to reload."
	if tbl.Query() != "" {
		empty = fmt.Sprintf("No people match %q", tbl.Query())
	}

	header := titleStyle.Render("People") + statusStyle.Render(fmt.Sprintf("  sort: %s  rows/page: %d", tbl.Sort(), tbl.ItemsPerPage()))
	body := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(header),
			widgets.Text(a.searchLine()),
			widgets.Table[repository.Person]{Columns: tbl.Columns(), Rows: res.Records, Sort: tbl.Sort(), Empty: empty},
			widgets.Pager{Nav: tbl.Navigator(), Summary: widgets.Summary(res.Start, res.End, res.TotalCount)},
			widgets.Text(statusStyle.Render(a.statusLine())),
		},
		Heights: []int{1, 1, 0, 1, 1},
	}.Render(a.width, a.height)

	if a.showHelp {
		return widgets.RenderPopup(body, a.helpText(), a.width, a.height)
	}
	return body
}

func (a *App) searchLine() string {
	if a.searching {
		return a.search.View()
	}
	if q := a.dir.Table.Query(); q != "" {
		return statusStyle.Render("filter: " + q)
	}
	return ""
}

func (a *App) statusLine() string {
	if a.status != "" {
		return a.status
	}
	return "? help  / search  s sort  ←/→ page  q quit"
}

func (a *App) helpText() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Keys"))
	for _, k := range a.keys.all() {
		h := k.Help()
		fmt.Fprintf(&b, "\n%-8s %s", h.Key, h.Desc)
	}
	return b.String()
}
