package main

import (
	"fmt"
	"sort"
	"strings"

	"blockvars/pkg/block"
	"blockvars/pkg/vars"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type appState int

const (
	stateList appState = iota
	stateRename
	stateConfirm
	stateResult
)

var (
	styleBase = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	styleOverlay = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 3).
			MarginLeft(2)

	styleOverlayTitle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	styleKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	styleOK = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Padding(0, 1)

	styleErr = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)
)

// panelEditor is the panel's own registration in the auxiliary editor
// list. Notifications land here and the view renders them, so propagation
// fan-out is visible live.
type panelEditor struct {
	open      bool
	notice    string
	refreshes int
}

func (p *panelEditor) IsOpen() bool { return p.open }
func (p *panelEditor) RenameParameter(oldName, newName string) {
	p.notice = fmt.Sprintf("rename %q → %q", oldName, newName)
}
func (p *panelEditor) RemoveParameter(name string) {
	p.notice = fmt.Sprintf("remove %q", name)
}
func (p *panelEditor) RefreshParams() { p.refreshes++ }

type model struct {
	env    *vars.Env
	scope  *block.Workspace
	editor *panelEditor

	table     table.Model
	input     textinput.Model
	names     []string
	state     appState
	resultMsg string
	resultErr error
}

func newModel(env *vars.Env, scope *block.Workspace) model {
	ed := &panelEditor{open: true}
	env.AttachEditor(ed)

	columns := []table.Column{
		{Title: "VARIABLE", Width: 24},
		{Title: "WORKSPACE", Width: 20},
	}

	names := currentNames(env)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(toRows(names, scope)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("99"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	in := textinput.New()
	in.Placeholder = "new name"
	in.CharLimit = 64

	return model{
		env:    env,
		scope:  scope,
		editor: ed,
		table:  t,
		input:  in,
		names:  names,
		state:  stateList,
	}
}

func currentNames(env *vars.Env) []string {
	names, err := env.UsedNames(vars.NameQuery{})
	if err != nil {
		return nil
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

func toRows(names []string, scope *block.Workspace) []table.Row {
	rows := make([]table.Row, len(names))
	for i, n := range names {
		rows[i] = table.Row{n, scope.Name()}
	}
	return rows
}

func (m model) selected() (string, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.names) {
		return "", false
	}
	return m.names[idx], true
}

func (m *model) reload() {
	m.names = currentNames(m.env)
	m.table.SetRows(toRows(m.names, m.scope))
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateRename:
		return m.updateRename(msg)
	case stateConfirm:
		return m.updateConfirm(msg)
	case stateResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if _, ok := m.selected(); ok {
				m.input.SetValue("")
				m.input.Focus()
				m.state = stateRename
				return m, textinput.Blink
			}
			return m, nil
		case "d":
			if _, ok := m.selected(); ok {
				m.state = stateConfirm
			}
			return m, nil
		case "n":
			name, err := m.env.GenerateName()
			m.resultErr = err
			if err == nil {
				m.resultMsg = fmt.Sprintf("next free name: %s", name)
			} else {
				m.resultMsg = fmt.Sprintf("generation failed: %v", err)
			}
			m.state = stateResult
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) updateRename(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.state = stateList
			return m, nil
		case "enter":
			oldName, ok := m.selected()
			if !ok {
				m.state = stateList
				return m, nil
			}
			newName := m.input.Value()
			err := m.env.Rename(oldName, newName, m.scope)
			m.resultErr = err
			switch {
			case err != nil:
				m.resultMsg = fmt.Sprintf("rename failed: %v", err)
			case newName == "" || newName == oldName:
				m.resultMsg = "nothing to do"
			default:
				m.resultMsg = fmt.Sprintf("renamed %q to %q", oldName, newName)
			}
			m.reload()
			m.state = stateResult
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "y":
			if name, ok := m.selected(); ok {
				err := m.env.Delete(name, m.scope)
				m.resultErr = err
				if err == nil {
					m.resultMsg = fmt.Sprintf("deleted %q", name)
				} else {
					m.resultMsg = fmt.Sprintf("delete failed: %v", err)
				}
				m.reload()
			}
			m.state = stateResult
			return m, nil
		case "n", "esc", "q":
			m.state = stateList
			return m, nil
		}
	}
	return m, nil
}

func (m model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "enter":
			m.reload()
			m.state = stateList
			return m, nil
		}
	}
	return m, nil
}

func (m model) View() string {
	title := styleTitle.Render("VARPANEL  [" + m.scope.Name() + "]  — variables in use")
	tableView := styleBase.Render(m.table.View())
	status := styleHelp.Render(fmt.Sprintf("editor notices: %d  last: %s", m.editor.refreshes, m.editor.notice))

	switch m.state {
	case stateRename:
		target, _ := m.selected()
		overlay := styleOverlay.Render(
			styleOverlayTitle.Render("Rename "+target) + "\n\n" +
				m.input.View() + "\n\n" +
				styleKey.Render("enter") + " apply    " +
				styleKey.Render("esc") + " cancel",
		)
		return title + "\n" + tableView + "\n" + overlay

	case stateConfirm:
		target, _ := m.selected()
		overlay := styleOverlay.Render(
			styleOverlayTitle.Render("Delete "+target+" ?") + "\n\n" +
				styleKey.Render("y") + " confirm    " +
				styleKey.Render("n") + " cancel",
		)
		return title + "\n" + tableView + "\n" + overlay

	case stateResult:
		var msg string
		if m.resultErr != nil {
			msg = styleErr.Render(m.resultMsg)
		} else {
			msg = styleOK.Render(m.resultMsg)
		}
		help := styleHelp.Render("enter  continue    q  quit")
		return title + "\n" + tableView + "\n" + msg + "\n" + status + "\n" + help

	default:
		var help string
		if len(m.names) == 0 {
			help = styleHelp.Render("no variables.  n  suggest name    q  quit")
		} else {
			help = styleHelp.Render("↑/↓  navigate    r  rename    d  delete    n  suggest name    q  quit")
		}
		return title + "\n" + tableView + "\n" + status + "\n" + help
	}
}
