// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"context"

	"github.com/ec2tui/ec2tui/internal/aws"
	"github.com/ec2tui/ec2tui/internal/log"
	"github.com/ec2tui/ec2tui/internal/oplog"
	"github.com/ec2tui/ec2tui/internal/registry"
)

// Panel binds the selection state machine to the cloud client, the registry,
// and the operation log. All methods run on the UI-owning goroutine; the TUI
// dispatches the blocking cloud calls itself and feeds results back through
// the Complete hooks.
type Panel struct {
	client aws.Client
	reg    *registry.Registry
	ops    *oplog.Log
	sel    Selection
}

// New wires a panel. The registry and log are owned elsewhere; the panel
// holds references only.
func New(client aws.Client, reg *registry.Registry, ops *oplog.Log) *Panel {
	return &Panel{client: client, reg: reg, ops: ops}
}

// Select, Deselect, and ToggleArm forward to the state machine.
func (p *Panel) Select(id string)   { p.sel.Select(id) }
func (p *Panel) Deselect()          { p.sel.Deselect() }
func (p *Panel) ToggleArm() bool    { return p.sel.Toggle() }
func (p *Panel) State() State       { return p.sel.State() }
func (p *Panel) SelectedID() string { return p.sel.ID() }

// Selected returns the currently selected record from the registry.
func (p *Panel) Selected() (registry.Record, bool) {
	if p.sel.ID() == "" {
		return registry.Record{}, false
	}
	return p.reg.Find(p.sel.ID())
}

// ArmedAction decides whether the given action may fire right now and
// against which id. Outside SelectedEnabled it is a silent no-op: no cloud
// call, no log entry. With the gate armed, an action that the selected
// record's local state makes pointless (start while running, stop while
// stopped) is also suppressed.
func (p *Panel) ArmedAction(action oplog.Action) (string, bool) {
	if !p.sel.Armed() {
		log.Tracef("action %s suppressed: state=%s", action, p.sel.State())
		return "", false
	}
	rec, ok := p.reg.Find(p.sel.ID())
	if !ok {
		return "", false
	}
	if action == oplog.ActionStart && rec.State == "running" {
		return "", false
	}
	if action == oplog.ActionStop && rec.State == "stopped" {
		return "", false
	}
	return rec.ID, true
}

// CompleteAction records the outcome of a start/stop call. Selection and
// enablement are left exactly as they were: a failure is surfaced, never
// auto-retried, and the user may fire again deliberately.
func (p *Panel) CompleteAction(action oplog.Action, id string, err error) {
	entry := oplog.Entry{Action: action, InstanceID: id, Outcome: oplog.OutcomeSuccess}
	if err != nil {
		entry.Outcome = oplog.OutcomeFailure
		entry.Detail = err.Error()
	}
	p.ops.Record(entry)
}

// CompleteRefresh applies a fetched instance list to the registry (keeping
// the previous view on error) and logs the refresh outcome.
func (p *Panel) CompleteRefresh(list []aws.Instance, err error) []registry.Record {
	entry := oplog.Entry{Action: oplog.ActionRefresh, Outcome: oplog.OutcomeSuccess}
	if err != nil {
		entry.Outcome = oplog.OutcomeFailure
		entry.Detail = err.Error()
		p.ops.Record(entry)
		return p.reg.Records()
	}
	records := p.reg.Apply(list)
	p.ops.Record(entry)
	return records
}

// Refresh fetches and applies synchronously. The TUI splits this across a
// tea.Cmd; one-shot surfaces (ls, tests) use it directly.
func (p *Panel) Refresh(ctx context.Context) error {
	list, err := p.client.ListInstances(ctx)
	p.CompleteRefresh(list, err)
	return err
}

// Start fires the start action synchronously, honoring the gate, and
// refreshes on success.
func (p *Panel) Start(ctx context.Context) error {
	return p.run(ctx, oplog.ActionStart)
}

// Stop fires the stop action synchronously, honoring the gate, and
// refreshes on success.
func (p *Panel) Stop(ctx context.Context) error {
	return p.run(ctx, oplog.ActionStop)
}

func (p *Panel) run(ctx context.Context, action oplog.Action) error {
	id, ok := p.ArmedAction(action)
	if !ok {
		return nil
	}
	var err error
	switch action {
	case oplog.ActionStart:
		err = p.client.StartInstance(ctx, id)
	case oplog.ActionStop:
		err = p.client.StopInstance(ctx, id)
	}
	p.CompleteAction(action, id, err)
	if err != nil {
		return err
	}
	return p.Refresh(ctx)
}

// Records exposes the registry view for rendering.
func (p *Panel) Records() []registry.Record { return p.reg.Records() }

// Ops exposes the operation log for rendering.
func (p *Panel) Ops() *oplog.Log { return p.ops }

// Client exposes the cloud client for the TUI's background commands.
func (p *Panel) Client() aws.Client { return p.client }
