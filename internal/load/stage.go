package load

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/claimgen/internal/db"
	"github.com/gyeh/claimgen/internal/generate"
	"github.com/gyeh/claimgen/internal/model"
	"github.com/gyeh/claimgen/internal/normalize"
	embedsql "github.com/gyeh/claimgen/internal/sql"
)

const stageBufferSize = 1024

// StageResult holds metrics from the staging phase.
type StageResult struct {
	RowsGenerated int64
	RowsStaged    int64
	Duration      time.Duration
}

// Stage generates claims in index order and COPY-loads them into the
// staging table via a channel-backed CopyFromSource.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID, rows int, seed uint64) (*StageResult, error) {
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan *model.StagingRow, stageBufferSize)
	errCh := make(chan error, 1)
	var rowsGenerated int64

	// Producer goroutine: generate → normalize → push to channel
	go func() {
		defer close(ch)
		g := generate.New(seed)
		for i := 1; i <= rows; i++ {
			c := g.Claim(i)
			rowsGenerated++
			select {
			case ch <- normalize.ToStagingRow(c, batchID, seed, int64(i)):
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		errCh <- nil
	}()

	source := db.NewChannelSource(ch)
	rowsStaged, copyErr := pool.CopyFrom(ctx,
		pgx.Identifier{"claims", "stage_claims"},
		model.StagingColumns(),
		source,
	)
	// Unblock the producer if COPY stopped reading early.
	cancel()
	for range ch {
	}
	prodErr := <-errCh

	if copyErr != nil {
		return nil, fmt.Errorf("stage copy: %w", copyErr)
	}
	if prodErr != nil {
		return nil, fmt.Errorf("stage producer: %w", prodErr)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_generated", rowsGenerated).
		Int64("rows_staged", rowsStaged).
		Str("duration", dur.String()).
		Float64("rows_per_sec", float64(rowsStaged)/dur.Seconds()).
		Msg("staging complete")

	return &StageResult{
		RowsGenerated: rowsGenerated,
		RowsStaged:    rowsStaged,
		Duration:      dur,
	}, nil
}

// CountBatch returns the staged and denied row counts for a batch.
func CountBatch(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID) (staged, denied int64, err error) {
	err = pool.QueryRow(ctx, embedsql.CountBatch, batchID).Scan(&staged, &denied)
	if err != nil {
		return 0, 0, fmt.Errorf("count batch: %w", err)
	}
	return staged, denied, nil
}
