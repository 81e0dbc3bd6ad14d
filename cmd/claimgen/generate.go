package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gyeh/claimgen/internal/exitcode"
	"github.com/gyeh/claimgen/internal/generate"
	"github.com/gyeh/claimgen/internal/logging"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the claims dataset to a file",
	RunE:  runGenerate,
}

func init() {
	addGenerationFlags(generateCmd)
	f := generateCmd.Flags()
	f.StringVar(&cfg.OutPath, "out", cfg.OutPath, "Output file")
	f.StringVar(&cfg.Format, "format", "", "Output format: csv, parquet or xlsx (default: from --out extension)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateGenerate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := generate.WriteFile(ctx, log, &cfg)
	if err != nil {
		log.Error().Err(err).Str("out", cfg.OutPath).Msg("generation failed")
		os.Exit(exitcode.WriteError)
	}

	payers := make([]string, 0, len(summary.PayerDays))
	for p := range summary.PayerDays {
		payers = append(payers, p)
	}
	sort.Strings(payers)
	for _, p := range payers {
		log.Debug().Str("payer", p).Int("allowed_days", summary.PayerDays[p]).Msg("payer submission window")
	}

	fmt.Printf("Done. Wrote %d records to %s (%s)\n",
		summary.RowsWritten, summary.OutPath, humanize.Bytes(uint64(summary.BytesWritten)))
	return nil
}
