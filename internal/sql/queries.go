package sql

import (
	"embed"
)

// Migrations holds the schema DDL, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/upsert_denial_code.sql
var UpsertDenialCode string

//go:embed queries/count_batch.sql
var CountBatch string

//go:embed queries/delete_staging_batch.sql
var DeleteStagingBatch string

//go:embed queries/analyze_staging.sql
var AnalyzeStaging string
