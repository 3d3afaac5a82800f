// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package panel

// State is the control panel's selection/enablement state.
type State int

const (
	// NoSelection: no row selected, actions unavailable.
	NoSelection State = iota
	// SelectedDisabled: a row is selected but control is not armed.
	SelectedDisabled
	// SelectedEnabled: a row is selected and control is armed; Start/Stop
	// may fire.
	SelectedEnabled
)

func (s State) String() string {
	switch s {
	case SelectedDisabled:
		return "selected"
	case SelectedEnabled:
		return "armed"
	default:
		return "none"
	}
}

// Selection is the pure state machine over row selection and the enablement
// gate. Every new selection lands disarmed: switching rows while armed drops
// back to SelectedDisabled so an action can never carry over to a different
// instance.
type Selection struct {
	state State
	id    string
}

// Select picks the row with the given unmasked id. Re-selecting the current
// row keeps the state as-is; any other id resets to SelectedDisabled.
func (s *Selection) Select(id string) {
	if id == "" {
		s.Deselect()
		return
	}
	if s.id == id && s.state != NoSelection {
		return
	}
	s.id = id
	s.state = SelectedDisabled
}

// Deselect clears the selection and disarms.
func (s *Selection) Deselect() {
	s.id = ""
	s.state = NoSelection
}

// Toggle flips the enablement gate. Without a selection it does nothing.
// Returns whether the gate is now armed.
func (s *Selection) Toggle() bool {
	switch s.state {
	case SelectedDisabled:
		s.state = SelectedEnabled
	case SelectedEnabled:
		s.state = SelectedDisabled
	}
	return s.state == SelectedEnabled
}

// State returns the current state.
func (s *Selection) State() State { return s.state }

// ID returns the selected unmasked id, empty when nothing is selected.
func (s *Selection) ID() string { return s.id }

// Armed reports whether Start/Stop may fire.
func (s *Selection) Armed() bool { return s.state == SelectedEnabled }
