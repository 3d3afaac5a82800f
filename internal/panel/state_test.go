// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionTransitions(t *testing.T) {
	tests := []struct {
		name  string
		steps func(s *Selection)
		want  State
		id    string
	}{
		{
			name:  "initial state",
			steps: func(s *Selection) {},
			want:  NoSelection,
		},
		{
			name:  "select lands disarmed",
			steps: func(s *Selection) { s.Select("i-0aaa") },
			want:  SelectedDisabled,
			id:    "i-0aaa",
		},
		{
			name: "toggle arms",
			steps: func(s *Selection) {
				s.Select("i-0aaa")
				s.Toggle()
			},
			want: SelectedEnabled,
			id:   "i-0aaa",
		},
		{
			name: "toggle twice disarms",
			steps: func(s *Selection) {
				s.Select("i-0aaa")
				s.Toggle()
				s.Toggle()
			},
			want: SelectedDisabled,
			id:   "i-0aaa",
		},
		{
			name: "new selection resets arming",
			steps: func(s *Selection) {
				s.Select("i-0aaa")
				s.Toggle()
				s.Select("i-0bbb")
			},
			want: SelectedDisabled,
			id:   "i-0bbb",
		},
		{
			name: "reselect same row keeps arming",
			steps: func(s *Selection) {
				s.Select("i-0aaa")
				s.Toggle()
				s.Select("i-0aaa")
			},
			want: SelectedEnabled,
			id:   "i-0aaa",
		},
		{
			name: "deselect clears everything",
			steps: func(s *Selection) {
				s.Select("i-0aaa")
				s.Toggle()
				s.Deselect()
			},
			want: NoSelection,
		},
		{
			name:  "toggle without selection is a no-op",
			steps: func(s *Selection) { s.Toggle() },
			want:  NoSelection,
		},
		{
			name:  "empty id deselects",
			steps: func(s *Selection) { s.Select("i-0aaa"); s.Select("") },
			want:  NoSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Selection
			tt.steps(&s)
			assert.Equal(t, tt.want, s.State())
			assert.Equal(t, tt.id, s.ID())
			assert.Equal(t, tt.want == SelectedEnabled, s.Armed())
		})
	}
}
