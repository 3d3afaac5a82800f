// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws contains the AWS SDK config loader, the EC2 client adapter,
// and the error taxonomy surfaced to the UI.
package aws
