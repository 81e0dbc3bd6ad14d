package model

import "time"

// GenerateSummary captures metrics from a single generation run.
type GenerateSummary struct {
	OutPath       string
	Format        string
	Seed          uint64
	RowsWritten   int64
	RowsDenied    int64
	DenialCounts  map[string]int64
	PayerDays     map[string]int
	BytesWritten  int64
	DurationTotal time.Duration
}

// LoadSummary captures metrics from loading generated claims into Postgres.
type LoadSummary struct {
	LoadBatchID   string
	Seed          uint64
	RowsGenerated int64
	RowsStaged    int64
	RowsDenied    int64
	DurationCopy  time.Duration
	DurationStats time.Duration
	DurationTotal time.Duration
}

// Violation is a single consistency rule a claim failed.
type Violation struct {
	Row     int64
	ClaimID string
	Rule    string
	Detail  string
}

// VerifyReport is the result of checking a dataset against the derivation rules.
type VerifyReport struct {
	FilePath     string
	FileSHA256   string
	Rows         int64
	RowsDenied   int64
	DenialCounts map[string]int64
	PayerDays    map[string]int
	Violations   []Violation
}

// OK reports whether the dataset passed every check.
func (r *VerifyReport) OK() bool {
	return len(r.Violations) == 0
}
