// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mask

import (
	"strings"

	"github.com/ec2tui/ec2tui/internal/config"
)

// DefaultVisible is how many characters stay readable at each end of a
// masked identifier. Overridable via the mask.visible config key.
const DefaultVisible = 3

// ID redacts the middle of an identifier, keeping the configured number of
// characters at each end. The result always has the same length as the
// input and, for any non-empty input, never equals it. Deterministic, no
// inverse. Display-only: never feed a masked value back into an API call.
func ID(s string) string {
	visible, _ := config.GetInt("mask.visible", DefaultVisible)
	return IDN(s, visible)
}

// IDN is ID with an explicit visible-count.
func IDN(s string, visible int) string {
	if visible < 0 {
		visible = 0
	}
	r := []rune(s)
	if len(r) <= 2*visible {
		// Too short to keep both ends readable; redact everything.
		return strings.Repeat("*", len(r))
	}
	return string(r[:visible]) + strings.Repeat("*", len(r)-2*visible) + string(r[len(r)-visible:])
}

// IP redacts an IP address while keeping its shape: every digit or hex
// letter becomes "x", separators survive. Empty input stays empty so "no
// address" renders as such.
func IP(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9',
			c >= 'a' && c <= 'f',
			c >= 'A' && c <= 'F':
			b.WriteByte('x')
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
