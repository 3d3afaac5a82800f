// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ec2tui/ec2tui/internal/config"
	"github.com/ec2tui/ec2tui/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// The arg[1] immediately following the binary (arg[0]) is the ec2tui
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load(ns) //nolint
	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:  "ec2tui",
		Usage: "EC2 instance control panel",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "ec2tui version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		tuiCommandBuilder(m),
		lsCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// awsFlags are the flags shared by every command that reaches the provider.
func awsFlags() []cli.Flag {
	region, _ := config.GetString("aws.region", "")
	profile, _ := config.GetString("aws.profile", "")
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region override",
			Value:   region,
			Sources: cli.EnvVars("AWS_REGION"),
		},
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS shared config profile",
			Value:   profile,
			Sources: cli.EnvVars("AWS_PROFILE"),
		},
	}
}
