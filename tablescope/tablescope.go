/*
Package tablescope is an interactive, paging browser for list endpoints.

It renders one page of normalized rows at a time and lets the user walk pages,
re-sort, filter, and search without leaving the terminal. Every keybind that
alters the query kicks off a background fetch; the view keeps displaying the
current page until the new one lands.

Fetches are numbered. A result that comes back carrying a number other than the
latest one belongs to a query the user has since changed and is discarded, so a
slow page can never overwrite a newer one.
*/
package tablescope

import (
	"fmt"
	"strings"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/clilog"
	"github.com/Copysiter/O3GO-WA/stylesheet"
	"github.com/Copysiter/O3GO-WA/utilities/querysupport"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
)

const flexFactor = 5 // target ratio: data column width : index column width (1)

// indexKey is the synthetic column prefixed to every row.
const indexKey = "index"

//#region modes

// inputMode tracks which (if any) text input is currently capturing keys.
type inputMode uint

const (
	browsing inputMode = iota
	searching
	filtering
	sorting
)

func (m inputMode) prompt() string {
	switch m {
	case searching:
		return "search"
	case filtering:
		return "filter (column__op=value)"
	case sorting:
		return "sort column"
	}
	return ""
}

//#endregion modes

// fetchDone is the message delivered when a page fetch completes.
type fetchDone struct {
	seq uint64
	res tablequery.Result
	err error
}

// Run fetches the first page and hands the terminal over to the browser.
// It blocks until the user quits.
func Run(title string, columns []string, variants map[string]tablequery.Variant,
	fetch tablequery.FetchFunc, initial tablequery.Params) error {
	if fetch == nil {
		return fmt.Errorf("tablescope requires a fetch function")
	}
	if len(columns) == 0 {
		return fmt.Errorf("tablescope requires at least one column")
	}
	m := newModel(title, columns, variants, fetch, initial)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type model struct {
	title    string
	columns  []string
	variants map[string]tablequery.Variant
	fetch    tablequery.FetchFunc

	params  tablequery.Params
	seq     uint64 // number of the most recent fetch; older results are stale
	loading bool

	tbl   table.Model
	total int
	shown int // rows on the current page

	mode   inputMode
	ti     textinput.Model
	errStr string

	width int
	done  bool
}

func newModel(title string, columns []string, variants map[string]tablequery.Variant,
	fetch tablequery.FetchFunc, initial tablequery.Params) model {
	m := model{
		title:    title,
		columns:  columns,
		variants: variants,
		fetch:    fetch,
		params:   initial,
	}

	m.ti = textinput.New()
	m.ti.Prompt = stylesheet.TIPromptPrefix
	m.ti.Width = stylesheet.TIWidth

	m.tbl = table.New(buildColumns(columns)).
		Focused(true).
		WithStaticFooter("fetching...").
		WithRowStyleFunc(func(rsfi table.RowStyleFuncInput) lipgloss.Style {
			if rsfi.Index%2 == 0 {
				return stylesheet.Sheet.Table.EvenCells
			}
			return stylesheet.Sheet.Table.OddCells
		}).
		HeaderStyle(stylesheet.Sheet.Table.HeaderCells)
		// NOTE: As of evertras-table v0.16.1,
		// the borders cannot be styled (only their runes changed.)

	return m
}

func (m model) Init() tea.Cmd {
	return m.fetchCmd()
}

// fetchCmd dispatches a page fetch carrying the current sequence number.
func (m model) fetchCmd() tea.Cmd {
	seq, params, fetch := m.seq, m.params, m.fetch
	return func() tea.Msg {
		res, err := fetch(params)
		return fetchDone{seq: seq, res: res, err: err}
	}
}

// requery bumps the sequence number and kicks off a fetch for the current params.
func (m model) requery() (model, tea.Cmd) {
	m.seq++
	m.loading = true
	m.errStr = ""
	return m, m.fetchCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case fetchDone:
		return m.applyFetch(msg), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.tbl = m.tbl.WithMaxTotalWidth(msg.Width).WithTargetWidth(msg.Width).
			WithPageSize(max(msg.Height-8, 3))
		return m, nil
	case tea.KeyMsg:
		if m.mode != browsing {
			return m.updateInput(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

// applyFetch folds a completed fetch into the model, discarding stale results.
func (m model) applyFetch(msg fetchDone) model {
	if msg.seq != m.seq {
		// belongs to a query the user has since changed
		if clilog.Writer != nil {
			clilog.Writer.Debugf("discarding stale fetch %d (current %d)", msg.seq, m.seq)
		}
		return m
	}
	m.loading = false
	if msg.err != nil {
		m.errStr = msg.err.Error()
		return m
	}
	m.total = msg.res.Total
	m.shown = len(msg.res.Rows)
	m.tbl = m.tbl.WithRows(buildRows(m.columns, m.params.Skip, msg.res.Rows))
	return m
}

func (m model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.done = true
		return m, tea.Quit
	case "left", "h":
		if m.params.Skip > 0 {
			m.params = m.params.PrevPage()
			return m.requery()
		}
	case "right", "l":
		if m.hasNextPage() {
			m.params = m.params.NextPage()
			return m.requery()
		}
	case "r":
		return m.requery()
	case "c":
		m.params.Filters = nil
		m.params.Search = ""
		m.params.Skip = 0
		return m.requery()
	case "/":
		return m.enterInput(searching, m.params.Search), textinput.Blink
	case "f":
		return m.enterInput(filtering, ""), textinput.Blink
	case "s":
		return m.enterInput(sorting, ""), textinput.Blink
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.done = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = browsing
		m.ti.Blur()
		return m, nil
	case tea.KeyEnter:
		mdl, requery := m.applyInput(strings.TrimSpace(m.ti.Value()))
		mdl.mode = browsing
		mdl.ti.Blur()
		if requery {
			return mdl.requery()
		}
		return mdl, nil
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// enterInput raises the text input for the given mode.
func (m model) enterInput(mode inputMode, initial string) model {
	m.mode = mode
	m.ti.SetValue(initial)
	m.ti.CursorEnd()
	m.ti.Focus()
	return m
}

// applyInput folds a submitted input value into the query params.
// Returns whether a re-fetch is warranted.
func (m model) applyInput(val string) (model, bool) {
	switch m.mode {
	case searching:
		m.params.Search = val
		m.params.Skip = 0
		return m, true
	case filtering:
		if val == "" {
			return m, false
		}
		f, err := querysupport.ParseFilter(val, m.variants)
		if err != nil {
			m.errStr = err.Error()
			return m, false
		}
		m.params = m.params.WithFilter(f)
		return m, true
	case sorting:
		if val == "" {
			return m, false
		}
		if m.variants != nil {
			if _, known := m.variants[val]; !known {
				m.errStr = querysupport.ErrUnknownColumn(val).Error()
				return m, false
			}
		}
		m.params = m.params.ToggleSort(val)
		return m, true
	}
	return m, false
}

// hasNextPage reports whether another page of rows exists past the current one.
func (m model) hasNextPage() bool {
	return m.params.Skip+m.shown < m.total
}

func (m model) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(stylesheet.Sheet.PrimaryText.Render(m.title) + "\n")
	sb.WriteString(m.tbl.View() + "\n")
	sb.WriteString(m.footer())
	if m.mode != browsing {
		sb.WriteString("\n" + stylesheet.Prompt(m.mode.prompt()) + m.ti.View())
	}
	if m.errStr != "" {
		sb.WriteString("\n" + stylesheet.Sheet.ErrText.Render(m.errStr))
	}
	return sb.String()
}

// footer describes the current page and the available keybinds.
func (m model) footer() string {
	var status string
	if m.loading {
		status = "fetching..."
	} else if m.total == 0 {
		status = "no records"
	} else {
		first := m.params.Skip + 1
		last := m.params.Skip + m.shown
		status = fmt.Sprintf("records %d-%d of %d", first, last, m.total)
	}
	if qry := describeQuery(m.params); qry != "" {
		status += " • " + qry
	}

	help := stylesheet.LeftRight + " page • s sort • / search • f filter • c clear • r refresh • q quit"
	return stylesheet.Sheet.SecondaryText.Render(status) + "\n" +
		stylesheet.Sheet.DisabledText.Render(help)
}

// describeQuery renders the active constraints for the footer.
func describeQuery(p tablequery.Params) string {
	var parts []string
	for _, s := range p.Sorts {
		if s.Desc {
			parts = append(parts, "sort:-"+s.Field)
		} else {
			parts = append(parts, "sort:"+s.Field)
		}
	}
	for _, f := range p.Filters {
		parts = append(parts, f.Field+f.Op.Suffix()+"="+strings.Join(f.Values, ","))
	}
	if p.Search != "" {
		parts = append(parts, "search:"+p.Search)
	}
	return strings.Join(parts, " ")
}

// buildColumns prefixes an index column and maps each wire column to a flex column.
func buildColumns(columns []string) []table.Column {
	cols := make([]table.Column, len(columns)+1)
	cols[0] = table.NewFlexColumn(indexKey, "#", 1)
	for i, c := range columns {
		cols[i+1] = table.NewFlexColumn(c, c, flexFactor)
	}
	return cols
}

// buildRows maps normalized rows onto table rows, numbering them from skip+1.
func buildRows(columns []string, skip int, rows []map[string]any) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		rd := table.RowData{indexKey: fmt.Sprintf("%d", skip+i+1)}
		for _, c := range columns {
			if v, ok := r[c]; ok && v != nil {
				rd[c] = fmt.Sprintf("%v", v)
			} else {
				rd[c] = ""
			}
		}
		out[i] = table.NewRow(rd)
	}
	return out
}
