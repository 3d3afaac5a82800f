// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package panel implements the interactive control surface: the
// selection/enablement state machine gating start/stop actions, and the
// terminal UI binding the instance table, checkbox, and operation log pane.
package panel
