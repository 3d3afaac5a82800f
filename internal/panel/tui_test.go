// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package panel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ec2tui/ec2tui/internal/aws"
	"github.com/ec2tui/ec2tui/internal/oplog"
	"github.com/ec2tui/ec2tui/internal/registry"
)

func keyMsg(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg(tea.Key{Type: tea.KeyEnter})
	case "down":
		return tea.KeyMsg(tea.Key{Type: tea.KeyDown})
	}
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func newTestModel(client *fakeClient) Model {
	return newModel(New(client, registry.New(client), oplog.New()))
}

func TestModelRefreshPopulatesMaskedRows(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	next, _ := m.Update(refreshedMsg{list: []aws.Instance{
		{ID: "i-0abc123def", Name: "web", Type: "t3.micro", State: "stopped", PublicIP: "54.12.33.201"},
	}})
	m = next.(Model)

	require.Len(t, m.records, 1)
	view := m.View()
	assert.Contains(t, view, "i-0******def")
	assert.NotContains(t, view, "i-0abc123def", "unmasked id never rendered")
	assert.Contains(t, view, "xx.xx.xx.xxx")
	assert.Contains(t, view, "1 instances")
	assert.False(t, m.busy)
}

func TestModelRefreshFailureKeepsRows(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	next, _ := m.Update(refreshedMsg{list: []aws.Instance{{ID: "i-0aaa", State: "running"}}})
	m = next.(Model)
	require.Len(t, m.records, 1)

	next, _ = m.Update(refreshedMsg{err: &aws.FetchError{Err: assert.AnError}})
	m = next.(Model)

	assert.Len(t, m.records, 1, "stale rows survive a failed refresh")
	assert.True(t, m.failed)
	assert.Contains(t, m.View(), "list instances")
}

func TestModelFireIsNoOpUntilArmed(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	next, _ := m.Update(refreshedMsg{list: []aws.Instance{{ID: "i-0aaa", State: "stopped"}}})
	m = next.(Model)

	// Not selected: "s" does nothing.
	next, cmd := m.Update(keyMsg("s"))
	m = next.(Model)
	assert.Nil(t, cmd)

	// Selected but disarmed: still nothing.
	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	next, cmd = m.Update(keyMsg("s"))
	m = next.(Model)
	assert.Nil(t, cmd)

	// Armed: the start command is dispatched.
	next, _ = m.Update(keyMsg("c"))
	m = next.(Model)
	next, cmd = m.Update(keyMsg("s"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	msg := cmd()
	done, ok := msg.(actionDoneMsg)
	require.True(t, ok)
	assert.Equal(t, oplog.ActionStart, done.action)
	assert.Equal(t, "i-0aaa", done.id)
	assert.Equal(t, []string{"i-0aaa"}, client.startCalls)
}

func TestModelActionFailureKeepsSelection(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	next, _ := m.Update(refreshedMsg{list: []aws.Instance{{ID: "i-0aaa", State: "stopped"}}})
	m = next.(Model)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("c"))
	m = next.(Model)

	logged := m.panel.Ops().Len()
	next, cmd := m.Update(actionDoneMsg{
		action: oplog.ActionStart,
		id:     "i-0aaa",
		err:    &aws.ActionError{Action: "start", InstanceID: "i-0aaa", Err: assert.AnError},
	})
	m = next.(Model)

	assert.Nil(t, cmd, "no automatic retry or refresh")
	assert.True(t, m.failed)
	assert.Equal(t, SelectedEnabled, m.panel.State())

	assert.Equal(t, logged+1, m.panel.Ops().Len(), "failure logged")
	entries := m.panel.Ops().Entries()
	assert.Equal(t, oplog.ActionStart, entries[0].Action)
	assert.Equal(t, oplog.OutcomeFailure, entries[0].Outcome)
}

func TestModelCursorClampedWhenListShrinks(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	next, _ := m.Update(refreshedMsg{list: []aws.Instance{
		{ID: "i-0aaa", State: "running"},
		{ID: "i-0bbb", State: "running"},
		{ID: "i-0ccc", State: "running"},
	}})
	m = next.(Model)

	next, _ = m.Update(keyMsg("down"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("down"))
	m = next.(Model)
	require.Equal(t, 2, m.table.Cursor())

	// The list shrinks under the cursor.
	next, _ = m.Update(refreshedMsg{list: []aws.Instance{{ID: "i-0aaa", State: "running"}}})
	m = next.(Model)

	assert.Less(t, m.table.Cursor(), len(m.records))

	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	assert.Equal(t, "i-0aaa", m.panel.SelectedID())
}

func TestModelDeselectOnVanishedInstance(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	next, _ := m.Update(refreshedMsg{list: []aws.Instance{{ID: "i-0aaa", State: "running"}}})
	m = next.(Model)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	require.Equal(t, SelectedDisabled, m.panel.State())

	next, _ = m.Update(refreshedMsg{list: nil})
	m = next.(Model)

	assert.Equal(t, NoSelection, m.panel.State())
}
