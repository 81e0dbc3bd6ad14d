package model

// ClaimRow mirrors the Parquet schema for a single claim.
// Money fields are integer cents; dates are ISO-8601 strings.
type ClaimRow struct {
	ClaimID    string `parquet:"claim_id"`
	PatientID  string `parquet:"patient_id"`
	PayerID    string `parquet:"payer_id"`
	ProviderID string `parquet:"provider_id"`

	ClaimAmountCents   int64 `parquet:"claim_amount_cents"`
	ReimbursementCents int64 `parquet:"reimbursement_cents"`
	DenialStatus       int32 `parquet:"denial_status"`

	ServiceDate    string `parquet:"service_date"`
	ContractedDate string `parquet:"contracted_submission_date"`
	SubmissionDate string `parquet:"submission_date"`
	ProcessedDate  string `parquet:"processed_date"`

	ICD10Code string `parquet:"icd10_code"`
	CPTCode   string `parquet:"cpt_code"`
	HCPCSCode string `parquet:"hcpcs_code"`
	Modifier  string `parquet:"modifier"`
	DRGCode   string `parquet:"drg_code"`

	CoverageStartDate string `parquet:"coverage_start_date"`
	CoverageEndDate   string `parquet:"coverage_end_date"`
	PlanType          string `parquet:"plan_type"`
	BenefitLimit      int64  `parquet:"benefit_limit"`

	PriorAuthObtained  string `parquet:"prior_auth_obtained"`
	ReferralRequired   string `parquet:"referral_required"`
	ClearinghouseEdits int32  `parquet:"clearinghouse_edit_count"`

	DenialCode     string `parquet:"denial_code"`
	DenialReason   string `parquet:"denial_reason"`
	DenialCategory string `parquet:"denial_category"`
	AppealAllowed  string `parquet:"appeal_allowed"`
	DaysToAppeal   int32  `parquet:"days_to_appeal"`
	DenialSeverity string `parquet:"denial_severity"`
}

// ParquetRequiredColumns are the columns a claims Parquet file must carry.
var ParquetRequiredColumns = []string{
	"claim_id",
	"payer_id",
	"claim_amount_cents",
	"denial_status",
	"service_date",
	"contracted_submission_date",
	"submission_date",
	"processed_date",
	"coverage_end_date",
	"plan_type",
	"benefit_limit",
	"denial_code",
}
