package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teflaherty67/DataQuery/internal/pipeline"
)

// NewExtractCommand creates the extract command: a dry run that assembles
// the plan record and prints it without touching the remote store.
func NewExtractCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <snapshot.json>",
		Short: "Assemble the plan record from a model snapshot (no sync)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSource(opts, args[0])
			if err != nil {
				return err
			}

			p := pipeline.New(snap, nil, opts.cfg.Model.ScheduleReport, opts.log)
			rec, err := p.Extract()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode plan record: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
