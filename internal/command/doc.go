// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the CLI surface: the interactive tui command and
// the one-shot ls listing, both constructed over a single cloud client.
package command
