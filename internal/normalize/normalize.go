package normalize

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gyeh/claimgen/internal/model"
)

// ToClaimRow flattens a Claim into its Parquet representation.
func ToClaimRow(c *model.Claim) model.ClaimRow {
	return model.ClaimRow{
		ClaimID:    c.ClaimID,
		PatientID:  c.PatientID,
		PayerID:    c.PayerID,
		ProviderID: c.ProviderID,

		ClaimAmountCents:   ToCents(c.ClaimAmount),
		ReimbursementCents: ToCents(c.Reimbursement),
		DenialStatus:       int32(c.DenialStatus()),

		ServiceDate:    c.ServiceDate.Format(model.DateLayout),
		ContractedDate: c.ContractedDate.Format(model.DateLayout),
		SubmissionDate: c.SubmissionDate.Format(model.DateLayout),
		ProcessedDate:  c.ProcessedDate.Format(model.DateLayout),

		ICD10Code: c.ICD10Code,
		CPTCode:   c.CPTCode,
		HCPCSCode: c.HCPCSCode,
		Modifier:  c.Modifier,
		DRGCode:   c.DRGCode,

		CoverageStartDate: c.Coverage.Start.Format(model.DateLayout),
		CoverageEndDate:   c.Coverage.End.Format(model.DateLayout),
		PlanType:          c.PlanType,
		BenefitLimit:      c.BenefitLimit,

		PriorAuthObtained:  model.YesNo(c.PriorAuthObtained),
		ReferralRequired:   model.YesNo(c.ReferralRequired),
		ClearinghouseEdits: int32(c.ClearinghouseEdits),

		DenialCode:     c.Denial.Code,
		DenialReason:   c.Denial.Reason,
		DenialCategory: c.Denial.Category,
		AppealAllowed:  model.YesNo(c.Denial.AppealAllowed),
		DaysToAppeal:   int32(c.Denial.AppealDays),
		DenialSeverity: c.Denial.Severity,
	}
}

// FromClaimRow rebuilds a Claim from a Parquet row.
func FromClaimRow(r *model.ClaimRow) (*model.Claim, error) {
	p := &fieldParser{}
	c := &model.Claim{
		ClaimID:    r.ClaimID,
		PatientID:  r.PatientID,
		PayerID:    r.PayerID,
		ProviderID: r.ProviderID,

		ClaimAmount:   FromCents(r.ClaimAmountCents),
		Reimbursement: FromCents(r.ReimbursementCents),
		Denied:        p.status(strconv.Itoa(int(r.DenialStatus))),

		ServiceDate:    p.date("service_date", r.ServiceDate),
		ContractedDate: p.date("contracted_submission_date", r.ContractedDate),
		SubmissionDate: p.date("submission_date", r.SubmissionDate),
		ProcessedDate:  p.date("processed_date", r.ProcessedDate),

		ICD10Code: r.ICD10Code,
		CPTCode:   r.CPTCode,
		HCPCSCode: r.HCPCSCode,
		Modifier:  r.Modifier,
		DRGCode:   r.DRGCode,

		Coverage: model.CoverageWindow{
			Start: p.date("coverage_start_date", r.CoverageStartDate),
			End:   p.date("coverage_end_date", r.CoverageEndDate),
		},
		PlanType:     r.PlanType,
		BenefitLimit: r.BenefitLimit,

		PriorAuthObtained:  p.flag("prior_auth_obtained", r.PriorAuthObtained),
		ReferralRequired:   p.flag("referral_required", r.ReferralRequired),
		ClearinghouseEdits: int(r.ClearinghouseEdits),

		Denial: model.Denial{
			Code:          r.DenialCode,
			Reason:        r.DenialReason,
			Category:      r.DenialCategory,
			AppealAllowed: p.flag("appeal_allowed", r.AppealAllowed),
			AppealDays:    int(r.DaysToAppeal),
			Severity:      r.DenialSeverity,
		},
	}
	if p.err != nil {
		return nil, fmt.Errorf("claim %s: %w", r.ClaimID, p.err)
	}
	return c, nil
}

// FromRecord rebuilds a Claim from a text record laid out as model.Columns().
func FromRecord(rec []string) (*model.Claim, error) {
	if want := len(model.Columns()); len(rec) != want {
		return nil, fmt.Errorf("record has %d fields, want %d", len(rec), want)
	}
	p := &fieldParser{}
	c := &model.Claim{
		ClaimID:    rec[0],
		PatientID:  rec[1],
		PayerID:    rec[2],
		ProviderID: rec[3],

		ClaimAmount:   p.money("ClaimAmount", rec[4]),
		Reimbursement: p.money("Reimbursement", rec[5]),
		Denied:        p.status(rec[6]),

		ServiceDate:    p.date("ServiceDate", rec[7]),
		ContractedDate: p.date("Contracted_Submission_Date", rec[8]),
		SubmissionDate: p.date("SubmissionDate", rec[9]),
		ProcessedDate:  p.date("ProcessedDate", rec[10]),

		ICD10Code: rec[11],
		CPTCode:   rec[12],
		HCPCSCode: rec[13],
		Modifier:  rec[14],
		DRGCode:   rec[15],

		Coverage: model.CoverageWindow{
			Start: p.date("Coverage_Start_Date", rec[16]),
			End:   p.date("Coverage_End_Date", rec[17]),
		},
		PlanType:     rec[18],
		BenefitLimit: int64(p.integer("Benefit_Limit", rec[19])),

		PriorAuthObtained:  p.flag("PriorAuth_Obtained", rec[20]),
		ReferralRequired:   p.flag("Referral_Required", rec[21]),
		ClearinghouseEdits: p.integer("Clearinghouse_Edit_Count", rec[22]),

		Denial: model.Denial{
			Code:          rec[23],
			Reason:        rec[24],
			Category:      rec[25],
			AppealAllowed: p.flag("Appeal_Allowed", rec[26]),
			AppealDays:    p.integer("Days_To_Appeal", rec[27]),
			Severity:      rec[28],
		},
	}
	if p.err != nil {
		return nil, fmt.Errorf("claim %s: %w", rec[0], p.err)
	}
	return c, nil
}

// ToStagingRow converts a generated Claim into a StagingRow for COPY.
func ToStagingRow(c *model.Claim, batchID uuid.UUID, seed uint64, rowNum int64) *model.StagingRow {
	s := &model.StagingRow{
		LoadBatchID: batchID,
		Seed:        int64(seed),
		RowNumber:   rowNum,
		RowHash:     RowHash(c.Values()),

		ClaimID:    c.ClaimID,
		PatientID:  c.PatientID,
		PayerID:    c.PayerID,
		ProviderID: c.ProviderID,

		ClaimAmountCents:   ToCents(c.ClaimAmount),
		ReimbursementCents: ToCents(c.Reimbursement),
		DenialStatus:       int16(c.DenialStatus()),

		ServiceDate:    c.ServiceDate,
		ContractedDate: c.ContractedDate,
		SubmissionDate: c.SubmissionDate,
		ProcessedDate:  c.ProcessedDate,

		ICD10Code: c.ICD10Code,
		CPTCode:   c.CPTCode,
		HCPCSCode: c.HCPCSCode,
		Modifier:  c.Modifier,
		DRGCode:   c.DRGCode,

		CoverageStartDate: c.Coverage.Start,
		CoverageEndDate:   c.Coverage.End,
		PlanType:          c.PlanType,
		BenefitLimit:      c.BenefitLimit,

		PriorAuthObtained:  c.PriorAuthObtained,
		ReferralRequired:   c.ReferralRequired,
		ClearinghouseEdits: int32(c.ClearinghouseEdits),
	}
	// Paid claims carry no denial_code; the FK only covers catalog entries.
	if c.Denied {
		code := c.Denial.Code
		s.DenialCode = &code
	}
	return s
}

// fieldParser keeps the first parse error so a record can be decoded in one expression.
type fieldParser struct {
	err error
}

func (p *fieldParser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *fieldParser) date(field, s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		p.fail(fmt.Errorf("%s: %w", field, err))
	}
	return t
}

func (p *fieldParser) money(field, s string) decimal.Decimal {
	d, err := ParseMoney(s)
	if err != nil {
		p.fail(fmt.Errorf("%s: %w", field, err))
	}
	return d
}

func (p *fieldParser) integer(field, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		p.fail(fmt.Errorf("%s: %w", field, err))
	}
	return n
}

func (p *fieldParser) flag(field, s string) bool {
	switch s {
	case "Y":
		return true
	case "N":
		return false
	}
	p.fail(fmt.Errorf("%s: flag %q is not Y or N", field, s))
	return false
}

func (p *fieldParser) status(s string) bool {
	switch s {
	case "1":
		return true
	case "0":
		return false
	}
	p.fail(fmt.Errorf("DenialStatus: %q is not 0 or 1", s))
	return false
}
