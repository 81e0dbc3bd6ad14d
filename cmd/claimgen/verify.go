package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimgen/internal/exitcode"
	"github.com/gyeh/claimgen/internal/logging"
	"github.com/gyeh/claimgen/internal/model"
	"github.com/gyeh/claimgen/internal/verify"
)

const maxViolationsShown = 20

var checkReproducible bool

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a generated dataset against the denial and date rules (no writes)",
	RunE:  runVerify,
}

func init() {
	addGenerationFlags(verifyCmd)
	f := verifyCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to a generated CSV, Parquet or XLSX file (required)")
	f.BoolVar(&checkReproducible, "reproducible", false, "Also generate --rows/--seed twice and compare hashes")
	_ = verifyCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	report, err := verify.File(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read dataset")
		os.Exit(exitcode.ValidationError)
	}
	printReport(report)

	if checkReproducible {
		dir, err := os.MkdirTemp("", "claimgen-verify-")
		if err != nil {
			log.Error().Err(err).Msg("failed to create temp dir")
			os.Exit(exitcode.WriteError)
		}
		runCfg := cfg
		runCfg.Format = "csv"
		same, sha, err := verify.Reproducible(context.Background(), log, &runCfg, dir)
		os.RemoveAll(dir)
		if err != nil {
			log.Error().Err(err).Msg("reproducibility check failed")
			os.Exit(exitcode.WriteError)
		}
		fmt.Printf("Reproducible: %v (%s)\n", same, sha)
		if !same {
			os.Exit(exitcode.ValidationError)
		}
	}

	if !report.OK() {
		os.Exit(exitcode.ValidationError)
	}
	return nil
}

func printReport(r *model.VerifyReport) {
	fmt.Println("=== claimgen verify ===")
	fmt.Printf("File:       %s\n", r.FilePath)
	fmt.Printf("SHA-256:    %s\n", r.FileSHA256)
	fmt.Printf("Rows:       %d\n", r.Rows)
	fmt.Printf("Denied:     %d\n", r.RowsDenied)
	fmt.Println()
	fmt.Println("Denials by code:")
	for _, d := range model.Denials {
		if n := r.DenialCounts[d.Code]; n > 0 {
			fmt.Printf("  %-9s %6d  %s\n", d.Code, n, d.Reason)
		}
	}

	payers := make([]string, 0, len(r.PayerDays))
	for p := range r.PayerDays {
		payers = append(payers, p)
	}
	sort.Strings(payers)
	fmt.Println("Payer submission windows:")
	for _, p := range payers {
		fmt.Printf("  %-5s %d days\n", p, r.PayerDays[p])
	}
	fmt.Println()

	if r.OK() {
		fmt.Println("Consistency checks: OK")
		return
	}
	fmt.Printf("Consistency checks: %d violations\n", len(r.Violations))
	for i, v := range r.Violations {
		if i == maxViolationsShown {
			fmt.Printf("  ... %d more\n", len(r.Violations)-maxViolationsShown)
			break
		}
		fmt.Printf("  row %d %s [%s] %s\n", v.Row, v.ClaimID, v.Rule, v.Detail)
	}
}
