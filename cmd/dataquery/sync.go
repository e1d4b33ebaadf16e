package main

import (
	"github.com/spf13/cobra"

	"github.com/teflaherty67/DataQuery/internal/pipeline"
	"github.com/teflaherty67/DataQuery/internal/remote"
)

// NewSyncCommand creates the sync command: the full pipeline including the
// lookup-then-write against the remote store.
func NewSyncCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <snapshot.json>",
		Short: "Extract the plan record and synchronize it to the remote store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.cfg.ValidateRemote(); err != nil {
				return err
			}

			snap, err := loadSource(opts, args[0])
			if err != nil {
				return err
			}

			store := remote.NewClient(
				opts.cfg.Remote.BaseURL,
				opts.cfg.Remote.Token,
				opts.cfg.Remote.Table,
				opts.log,
			)

			p := pipeline.New(snap, store, opts.cfg.Model.ScheduleReport, opts.log)
			_, err = p.Run(cmd.Context())
			return err
		},
	}
}
