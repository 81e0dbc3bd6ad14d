package load

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/claimgen/internal/config"
	"github.com/gyeh/claimgen/internal/db"
	"github.com/gyeh/claimgen/internal/model"
)

// Pipeline phases, reported on PipelineError.
const (
	PhaseSeed     = "seed"
	PhaseStage    = "stage"
	PhaseCount    = "count"
	PhaseFinalize = "finalize"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run generates cfg.Rows claims from cfg.Seed and loads them into
// claims.stage_claims under a fresh batch id: seed catalog → stage → count →
// finalize.
// A failed stage deletes the partial batch unless cfg.KeepBatch is set.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.LoadSummary, error) {
	totalStart := time.Now()
	batchID := uuid.New()
	log = log.With().Str("load_batch_id", batchID.String()).Logger()

	log.Info().Msg("seeding denial catalog")
	if err := db.SeedDenialCodes(ctx, pool); err != nil {
		return nil, &PipelineError{Phase: PhaseSeed, Err: err}
	}

	log.Info().Int("rows", cfg.Rows).Uint64("seed", cfg.Seed).Msg("starting staging")
	stageResult, err := Stage(ctx, pool, log, batchID, cfg.Rows, cfg.Seed)
	if err != nil {
		if !cfg.KeepBatch {
			if cerr := Cleanup(context.WithoutCancel(ctx), pool, log, batchID); cerr != nil {
				log.Warn().Err(cerr).Msg("batch cleanup failed (non-fatal)")
			}
		}
		return nil, &PipelineError{Phase: PhaseStage, Err: err}
	}

	staged, denied, err := CountBatch(ctx, pool, batchID)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseCount, Err: err}
	}
	if staged != stageResult.RowsStaged {
		return nil, &PipelineError{Phase: PhaseCount, Err: fmt.Errorf("copied %d rows but batch holds %d", stageResult.RowsStaged, staged)}
	}

	analyzeDur, err := Finalize(ctx, pool, log)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseFinalize, Err: err}
	}

	summary := &model.LoadSummary{
		LoadBatchID:   batchID.String(),
		Seed:          cfg.Seed,
		RowsGenerated: stageResult.RowsGenerated,
		RowsStaged:    staged,
		RowsDenied:    denied,
		DurationCopy:  stageResult.Duration,
		DurationStats: analyzeDur,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Int64("rows_generated", summary.RowsGenerated).
		Int64("rows_staged", summary.RowsStaged).
		Int64("rows_denied", summary.RowsDenied).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}
