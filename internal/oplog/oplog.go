// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package oplog

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ec2tui/ec2tui/internal/log"
	"github.com/ec2tui/ec2tui/internal/mask"
)

// Action names a user-triggered operation.
type Action string

const (
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionRefresh Action = "refresh"
)

// Outcome is how an operation ended.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Entry is one appended operation record. InstanceID is stored unmasked for
// operator traceability; rendering masks it.
type Entry struct {
	Time       time.Time
	Action     Action
	InstanceID string
	Outcome    Outcome
	Detail     string
}

// Line renders the entry for the log pane: humanized age, action, masked
// id, outcome, and any detail.
func (e Entry) Line() string {
	id := ""
	if e.InstanceID != "" {
		id = " " + mask.ID(e.InstanceID)
	}
	detail := ""
	if e.Detail != "" {
		detail = ": " + e.Detail
	}
	return fmt.Sprintf("%s  %s%s %s%s", humanize.Time(e.Time), e.Action, id, e.Outcome, detail)
}

// Log is the append-only record of user-triggered actions and their
// outcomes for one session. Never mutated or trimmed once appended; bounded
// in practice by an interactive session's operation count.
type Log struct {
	entries []Entry
}

// New returns an empty log.
func New() *Log { return &Log{} }

// Record appends an entry. A zero Time is stamped with now. Entries are
// also mirrored to the debug log.
func (l *Log) Record(e Entry) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	l.entries = append(l.entries, e)
	log.Debugf("oplog: action=%s id=%s outcome=%s detail=%s", e.Action, e.InstanceID, e.Outcome, e.Detail)
}

// Entries returns a most-recent-first copy.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Lines renders up to n most-recent entries for display. n <= 0 renders
// everything.
func (l *Log) Lines(n int) []string {
	entries := l.Entries()
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line()
	}
	return lines
}

// Len reports how many entries have been recorded.
func (l *Log) Len() int { return len(l.entries) }
