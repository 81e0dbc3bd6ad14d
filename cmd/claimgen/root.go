package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimgen/internal/config"
)

var cfg = config.Config{
	Rows:    config.DefaultRows,
	Seed:    config.DefaultSeed,
	OutPath: config.DefaultOutPath,
}

var rootCmd = &cobra.Command{
	Use:   "claimgen",
	Short: "Synthetic medical claims fixture generator",
	Long: "Generates a reproducible dataset of fictitious insurance claims whose dates, amounts " +
		"and denial details are consistent with a fixed set of denial rules.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.ConfigFile == "" {
			return nil
		}
		return cfg.LoadFromFile(cfg.ConfigFile, func(key string) bool {
			f := cmd.Flags().Lookup(key)
			return f != nil && f.Changed
		})
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.ConfigFile, "config", "", "YAML file with rows/seed/out/format/dsn overrides")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("CLAIMGEN_DB_URL"), "Postgres connection string (or set CLAIMGEN_DB_URL)")
}

// addGenerationFlags registers the flags that shape the generated dataset.
func addGenerationFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&cfg.Rows, "rows", config.DefaultRows, "Number of claims to generate")
	f.Uint64Var(&cfg.Seed, "seed", config.DefaultSeed, "Random seed")
}
