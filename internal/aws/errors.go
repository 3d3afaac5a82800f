// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ConfigError indicates the AWS credential/config chain could not be loaded.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("aws config: %s", reason(e.Err))
}

func (e *ConfigError) Unwrap() error { return e.Err }

// FetchError indicates a DescribeInstances call failed (network, auth,
// throttling). The previous local view stays valid; nothing is retried here.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("list instances: %s", reason(e.Err))
}

func (e *FetchError) Unwrap() error { return e.Err }

// ActionError indicates a start/stop call was rejected by the provider,
// e.g. IncorrectInstanceState when starting an already-running instance.
type ActionError struct {
	Action     string
	InstanceID string
	Err        error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Action, e.InstanceID, reason(e.Err))
}

func (e *ActionError) Unwrap() error { return e.Err }

// reason extracts the provider's error code and message when the cause is a
// smithy API error, and falls back to the plain error text otherwise.
func reason(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err.Error()
}
