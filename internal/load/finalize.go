package load

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/claimgen/internal/sql"
)

// Finalize refreshes planner statistics on the staging table.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) (time.Duration, error) {
	start := time.Now()
	if _, err := pool.Exec(ctx, embedsql.AnalyzeStaging); err != nil {
		return 0, fmt.Errorf("analyze staging: %w", err)
	}
	log.Info().Msg("ANALYZE complete")
	return time.Since(start), nil
}
