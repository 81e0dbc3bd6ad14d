package verify

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/gyeh/claimgen/internal/config"
	"github.com/gyeh/claimgen/internal/generate"
	"github.com/gyeh/claimgen/internal/normalize"
)

// Reproducible generates the configured dataset twice under dir and reports
// whether both files hash identically, along with the first run's hash.
func Reproducible(ctx context.Context, log zerolog.Logger, cfg *config.Config, dir string) (bool, string, error) {
	var hashes [2]string
	for run := range hashes {
		runCfg := *cfg
		runCfg.OutPath = filepath.Join(dir, fmt.Sprintf("run%d.%s", run+1, cfg.Format))
		if _, err := generate.WriteFile(ctx, log, &runCfg); err != nil {
			return false, "", fmt.Errorf("run %d: %w", run+1, err)
		}
		sha, err := normalize.FileHash(runCfg.OutPath)
		if err != nil {
			return false, "", err
		}
		hashes[run] = sha
	}
	return hashes[0] == hashes[1], hashes[0], nil
}
