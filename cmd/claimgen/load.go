package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimgen/internal/db"
	"github.com/gyeh/claimgen/internal/exitcode"
	"github.com/gyeh/claimgen/internal/load"
	"github.com/gyeh/claimgen/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate claims straight into the Postgres staging table",
	RunE:  runLoad,
}

func init() {
	addGenerationFlags(loadCmd)
	loadCmd.Flags().BoolVar(&cfg.KeepBatch, "keep-batch", false, "Keep partially staged rows when a load fails")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := load.Run(ctx, pool, log, &cfg)
	if err != nil {
		var pe *load.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
		} else {
			log.Error().Err(err).Msg("load failed")
		}
		pool.Close()
		os.Exit(exitcode.LoadError)
	}

	fmt.Printf("Load complete: %d rows staged (%d denied) in batch %s (%.1fs)\n",
		summary.RowsStaged, summary.RowsDenied, summary.LoadBatchID, summary.DurationTotal.Seconds())
	return nil
}
