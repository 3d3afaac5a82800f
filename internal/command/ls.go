// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/ec2tui/ec2tui/internal/log"
	"github.com/ec2tui/ec2tui/internal/meta"
	"github.com/ec2tui/ec2tui/internal/registry"
)

func lsCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:   "ls",
		Usage:  "One-shot masked instance listing",
		Flags:  awsFlags(),
		Action: lsCommandAction,
		Metadata: map[string]interface{}{
			"meta": m,
		},
	}
}

func lsCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", meta.Args[1:])

	p, err := buildPanel(ctx, cmd)
	if err != nil {
		return err
	}

	if err := p.Refresh(ctx); err != nil {
		return err
	}

	return spitRecords(os.Stdout, p.Records())
}

// spitRecords writes the masked table. Only display projections are
// printed; unmasked ids never leave the process on this path.
func spitRecords(w *os.File, records []registry.Record) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tSTATE\tPUBLIC IP\tPRIVATE IP")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.DisplayID(), r.Name, r.Type, r.State,
			r.DisplayPublicIP(), r.DisplayPrivateIP())
	}
	return tw.Flush()
}
