// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/ec2tui/ec2tui/internal/aws"
	"github.com/ec2tui/ec2tui/internal/log"
	"github.com/ec2tui/ec2tui/internal/meta"
	"github.com/ec2tui/ec2tui/internal/oplog"
	"github.com/ec2tui/ec2tui/internal/panel"
	"github.com/ec2tui/ec2tui/internal/registry"
)

func tuiCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Interactive instance control panel",
		Flags:  awsFlags(),
		Action: tuiCommandAction,
		Metadata: map[string]interface{}{
			"meta": m,
		},
	}
}

func tuiCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", meta.Args[1:])

	p, err := buildPanel(ctx, cmd)
	if err != nil {
		return err
	}

	return panel.Run(p)
}

// buildPanel constructs the single cloud client from flags/env and wires the
// registry, operation log, and control panel around it. Constructed once at
// startup and passed down explicitly; there is no ambient client state.
func buildPanel(ctx context.Context, cmd *cli.Command) (*panel.Panel, error) {
	var opts []aws.Option
	if region := cmd.String("region"); region != "" {
		opts = append(opts, aws.WithRegion(region))
	}
	if profile := cmd.String("profile"); profile != "" {
		opts = append(opts, aws.WithProfile(profile))
	}

	cfg, err := aws.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := aws.NewClient(aws.NewEC2(cfg))
	return panel.New(client, registry.New(client), oplog.New()), nil
}
