package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/teflaherty67/DataQuery/internal/config"
	"github.com/teflaherty67/DataQuery/internal/logger"
	"github.com/teflaherty67/DataQuery/internal/snapshot"
)

// RootOptions holds global flags and the objects built from them.
type RootOptions struct {
	ConfigPath string

	cfg *config.Config
	log *zap.Logger
}

// NewRootCommand creates the root command for the DataQuery CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dataquery",
		Short: "DataQuery - building-plan extraction and remote sync",
		Long: `DataQuery extracts a normalized building-plan record from a model
snapshot (wall geometry, levels, rooms, area schedule) and synchronizes it
to a remote tabular store without duplicating entries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			opts.cfg = cfg

			log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "dataquery")
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")

	cmd.AddCommand(NewExtractCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))

	return cmd
}

// loadSource reads the snapshot and attaches the configured schedule
// workbook, when one is set.
func loadSource(opts *RootOptions, snapshotPath string) (*snapshot.Snapshot, error) {
	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		return nil, err
	}

	if path := opts.cfg.Model.ScheduleWorkbook; path != "" {
		table, err := snapshot.LoadWorkbookSchedule(path, opts.cfg.Model.ScheduleReport)
		if err != nil {
			return nil, err
		}
		if table != nil {
			snap.AttachSchedule(table)
		}
	}

	return snap, nil
}
