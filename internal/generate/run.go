package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/claimgen/internal/config"
	"github.com/gyeh/claimgen/internal/model"
	"github.com/gyeh/claimgen/internal/sink"
)

const progressEvery = 10000

// Run writes the header and claims 1..rows to w in index order.
// It stops early only when ctx is cancelled or w fails.
func Run(ctx context.Context, w sink.Writer, log zerolog.Logger, rows int, seed uint64) (*model.GenerateSummary, error) {
	start := time.Now()
	g := New(seed)

	summary := &model.GenerateSummary{
		Seed:         seed,
		DenialCounts: make(map[string]int64),
		PayerDays:    g.PayerDays(),
	}

	if err := w.WriteHeader(model.Columns()); err != nil {
		return nil, err
	}

	for i := 1; i <= rows; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation cancelled at claim %d: %w", i, err)
		}
		c := g.Claim(i)
		if err := w.Write(c); err != nil {
			return nil, err
		}
		summary.RowsWritten++
		if c.Denied {
			summary.RowsDenied++
			summary.DenialCounts[c.Denial.Code]++
		}
		if i%progressEvery == 0 {
			log.Debug().Int("rows", i).Msg("generation progress")
		}
	}

	summary.DurationTotal = time.Since(start)
	return summary, nil
}

// WriteFile generates cfg.Rows claims into cfg.OutPath. The output file is
// closed on every path; a close failure is reported like a write failure.
func WriteFile(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.GenerateSummary, error) {
	w, err := sink.Create(cfg.OutPath, cfg.Format)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("out", cfg.OutPath).
		Str("format", cfg.Format).
		Int("rows", cfg.Rows).
		Uint64("seed", cfg.Seed).
		Msg("generating claims")

	summary, runErr := Run(ctx, w, log, cfg.Rows, cfg.Seed)
	if err := errors.Join(runErr, w.Close()); err != nil {
		return nil, err
	}
	summary.OutPath = cfg.OutPath
	summary.Format = cfg.Format

	if st, err := os.Stat(cfg.OutPath); err == nil {
		summary.BytesWritten = st.Size()
	}

	log.Info().
		Int64("rows_written", summary.RowsWritten).
		Int64("rows_denied", summary.RowsDenied).
		Str("duration", summary.DurationTotal.String()).
		Msg("generation complete")

	return summary, nil
}
