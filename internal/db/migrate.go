package db

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/claimgen/internal/model"
	embedsql "github.com/gyeh/claimgen/internal/sql"
)

// ApplyMigrations runs all embedded SQL migrations in filename order, then
// upserts the denial catalog. All DDL uses IF NOT EXISTS so it is idempotent.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	entries, err := fs.ReadDir(embedsql.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		data, err := fs.ReadFile(embedsql.Migrations, "migrations/"+name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		log.Info().Str("migration", name).Msg("applying migration")
		if _, err := pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("execute migration %s: %w", name, err)
		}
	}

	if err := SeedDenialCodes(ctx, pool); err != nil {
		return err
	}
	log.Info().Int("count", len(entries)).Int("denial_codes", len(model.Denials)).Msg("all migrations applied")
	return nil
}

// SeedDenialCodes upserts every catalog entry into claims.denial_codes.
func SeedDenialCodes(ctx context.Context, pool *pgxpool.Pool) error {
	batch := &pgx.Batch{}
	for _, d := range model.Denials {
		batch.Queue(embedsql.UpsertDenialCode,
			d.Code, d.Reason, d.Category, d.AppealAllowed, d.AppealDays, d.Severity)
	}
	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed denial codes: %w", err)
	}
	return nil
}
