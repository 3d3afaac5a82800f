// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ec2tui/ec2tui/internal/aws"
	"github.com/ec2tui/ec2tui/internal/oplog"
	"github.com/ec2tui/ec2tui/internal/registry"
)

const logPaneLines = 6

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	logStyle    = lipgloss.NewStyle().Faint(true).PaddingLeft(1)
	statusStyle = lipgloss.NewStyle().PaddingLeft(1)
)

// refreshedMsg carries the result of a background list call back to the
// UI-owning goroutine. Registry mutation happens in Update only.
type refreshedMsg struct {
	list []aws.Instance
	err  error
}

// actionDoneMsg carries the result of a background start/stop call.
type actionDoneMsg struct {
	action oplog.Action
	id     string
	err    error
}

// Run launches the interactive control panel and blocks until quit.
func Run(p *Panel) error {
	_, err := tea.NewProgram(newModel(p), tea.WithAltScreen()).Run()
	return err
}

// Model is the Bubble Tea model for the control panel.
type Model struct {
	panel   *Panel
	table   table.Model
	records []registry.Record
	busy    bool
	status  string
	failed  bool
}

func newModel(p *Panel) Model {
	columns := []table.Column{
		{Title: "ID", Width: 19},
		{Title: "Name", Width: 16},
		{Title: "Type", Width: 11},
		{Title: "State", Width: 13},
		{Title: "Public IP", Width: 15},
		{Title: "Private IP", Width: 15},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	s.Selected = s.Selected.Reverse(true)
	t.SetStyles(s)

	return Model{
		panel:  p,
		table:  t,
		busy:   true,
		status: "fetching instances...",
	}
}

// Init kicks off the first refresh.
func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

// refreshCmd runs the list call off the UI goroutine.
func (m Model) refreshCmd() tea.Cmd {
	client := m.panel.Client()
	return func() tea.Msg {
		list, err := client.ListInstances(context.Background())
		return refreshedMsg{list: list, err: err}
	}
}

// actionCmd runs a start/stop call off the UI goroutine.
func (m Model) actionCmd(action oplog.Action, id string) tea.Cmd {
	client := m.panel.Client()
	return func() tea.Msg {
		var err error
		if action == oplog.ActionStart {
			err = client.StartInstance(context.Background(), id)
		} else {
			err = client.StopInstance(context.Background(), id)
		}
		return actionDoneMsg{action: action, id: id, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := msg.Height - logPaneLines - 8
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
		return m, nil

	case refreshedMsg:
		m.busy = false
		records := m.panel.CompleteRefresh(msg.list, msg.err)
		if msg.err != nil {
			// Keep the previous rows on a failed refresh.
			m.status, m.failed = msg.err.Error(), true
			return m, nil
		}
		m.setRows(records)
		m.status, m.failed = fmt.Sprintf("%d instances", len(records)), false
		return m, nil

	case actionDoneMsg:
		m.panel.CompleteAction(msg.action, msg.id, msg.err)
		if msg.err != nil {
			// Selection and enablement stay put; the user decides on a retry.
			m.busy = false
			m.status, m.failed = msg.err.Error(), true
			return m, nil
		}
		m.status, m.failed = fmt.Sprintf("%s requested", msg.action), false
		return m, m.refreshCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "enter":
		if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.records) {
			m.panel.Select(m.records[cursor].ID)
		}
		return m, nil

	case "esc":
		m.panel.Deselect()
		return m, nil

	case "c", " ":
		m.panel.ToggleArm()
		return m, nil

	case "r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status, m.failed = "refreshing...", false
		return m, m.refreshCmd()

	case "s":
		return m.fire(oplog.ActionStart)

	case "x":
		return m.fire(oplog.ActionStop)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(key)
	return m, cmd
}

// fire dispatches an action when the gate allows it; everything else is a
// silent no-op.
func (m Model) fire(action oplog.Action) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	id, ok := m.panel.ArmedAction(action)
	if !ok {
		return m, nil
	}
	rec, _ := m.panel.Selected()
	m.busy = true
	m.status, m.failed = fmt.Sprintf("%s %s...", action, rec.DisplayID()), false
	return m, m.actionCmd(action, id)
}

// setRows rebuilds the masked table and keeps cursor/selection in sync with
// the refreshed registry view.
func (m *Model) setRows(records []registry.Record) {
	m.records = records
	rows := make([]table.Row, len(records))
	selectedRow := -1
	for i, r := range records {
		rows[i] = table.Row{
			r.DisplayID(), r.Name, r.Type, r.State,
			r.DisplayPublicIP(), r.DisplayPrivateIP(),
		}
		if r.ID == m.panel.SelectedID() {
			selectedRow = i
		}
	}
	m.table.SetRows(rows)
	// SetRows does not clamp the cursor; a shrinking list would leave it
	// pointing past the end. SetCursor clamps.
	m.table.SetCursor(m.table.Cursor())
	if m.panel.SelectedID() != "" {
		if selectedRow == -1 {
			// Selected instance vanished from the remote list.
			m.panel.Deselect()
		} else {
			m.table.SetCursor(selectedRow)
		}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("EC2 Instance Manager"))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	check := "[ ]"
	if m.panel.State() == SelectedEnabled {
		check = "[x]"
	}
	selected := "none"
	if rec, ok := m.panel.Selected(); ok {
		selected = fmt.Sprintf("%s (%s)", rec.DisplayID(), rec.State)
	}
	b.WriteString(fmt.Sprintf(" %s enable instance control    selected: %s\n", check, selected))

	style := okStyle
	if m.failed {
		style = errStyle
	}
	b.WriteString(statusStyle.Render(style.Render(m.status)))
	b.WriteString("\n\n")

	for _, line := range m.panel.Ops().Lines(logPaneLines) {
		b.WriteString(logStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(" ENTER select  ESC deselect  C arm  S start  X stop  R refresh  Q quit"))
	b.WriteString("\n")
	return b.String()
}
