package model

import (
	"time"

	"github.com/google/uuid"
)

// StagingRow is the DB-ready representation of a generated claim.
// Money values are stored as int64 cents.
type StagingRow struct {
	LoadBatchID uuid.UUID
	Seed        int64

	RowNumber int64
	RowHash   int64

	ClaimID    string
	PatientID  string
	PayerID    string
	ProviderID string

	ClaimAmountCents   int64
	ReimbursementCents int64
	DenialStatus       int16

	ServiceDate    time.Time
	ContractedDate time.Time
	SubmissionDate time.Time
	ProcessedDate  time.Time

	ICD10Code string
	CPTCode   string
	HCPCSCode string
	Modifier  string
	DRGCode   string

	CoverageStartDate time.Time
	CoverageEndDate   time.Time
	PlanType          string
	BenefitLimit      int64

	PriorAuthObtained  bool
	ReferralRequired   bool
	ClearinghouseEdits int32

	DenialCode *string
}

// StagingColumns returns the ordered column names for COPY into claims.stage_claims.
func StagingColumns() []string {
	return []string{
		"load_batch_id",
		"seed",
		"row_number",
		"row_hash",
		"claim_id",
		"patient_id",
		"payer_id",
		"provider_id",
		"claim_amount_cents",
		"reimbursement_cents",
		"denial_status",
		"service_date",
		"contracted_submission_date",
		"submission_date",
		"processed_date",
		"icd10_code",
		"cpt_code",
		"hcpcs_code",
		"modifier",
		"drg_code",
		"coverage_start_date",
		"coverage_end_date",
		"plan_type",
		"benefit_limit",
		"prior_auth_obtained",
		"referral_required",
		"clearinghouse_edit_count",
		"denial_code",
	}
}

// CopyValues returns the row values in the same order as StagingColumns(),
// suitable for pgx CopyFromSource.
func (r *StagingRow) CopyValues() []any {
	return []any{
		r.LoadBatchID,
		r.Seed,
		r.RowNumber,
		r.RowHash,
		r.ClaimID,
		r.PatientID,
		r.PayerID,
		r.ProviderID,
		r.ClaimAmountCents,
		r.ReimbursementCents,
		r.DenialStatus,
		r.ServiceDate,
		r.ContractedDate,
		r.SubmissionDate,
		r.ProcessedDate,
		r.ICD10Code,
		r.CPTCode,
		r.HCPCSCode,
		r.Modifier,
		r.DRGCode,
		r.CoverageStartDate,
		r.CoverageEndDate,
		r.PlanType,
		r.BenefitLimit,
		r.PriorAuthObtained,
		r.ReferralRequired,
		r.ClearinghouseEdits,
		r.DenialCode,
	}
}
