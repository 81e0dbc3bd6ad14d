package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO-8601 calendar date format used for every date column.
const DateLayout = "2006-01-02"

// Claim is one fully derived claim record.
type Claim struct {
	ClaimID    string
	PatientID  string
	PayerID    string
	ProviderID string

	ClaimAmount   decimal.Decimal
	Reimbursement decimal.Decimal
	Denied        bool

	ServiceDate    time.Time
	ContractedDate time.Time
	SubmissionDate time.Time
	ProcessedDate  time.Time

	ICD10Code string
	CPTCode   string
	HCPCSCode string
	Modifier  string
	DRGCode   string

	Coverage     CoverageWindow
	PlanType     string
	BenefitLimit int64

	PriorAuthObtained  bool
	ReferralRequired   bool
	ClearinghouseEdits int

	Denial Denial
}

// DenialStatus is 1 for denied claims, 0 for paid.
func (c *Claim) DenialStatus() int {
	if c.Denied {
		return 1
	}
	return 0
}

// Codes returns the coding fields in AllCodeTypes order.
func (c *Claim) Codes() []string {
	return []string{c.ICD10Code, c.CPTCode, c.HCPCSCode, c.Modifier, c.DRGCode}
}

// SetCode assigns the coding field named by a CodeType.
func (c *Claim) SetCode(name, value string) {
	switch name {
	case "ICD10":
		c.ICD10Code = value
	case "CPT":
		c.CPTCode = value
	case "HCPCS":
		c.HCPCSCode = value
	case "Modifier":
		c.Modifier = value
	case "DRG":
		c.DRGCode = value
	}
}

// Columns returns the header row, in serialized column order.
func Columns() []string {
	cols := []string{
		"ClaimID",
		"PatientID",
		"PayerID",
		"ProviderID",
		"ClaimAmount",
		"Reimbursement",
		"DenialStatus",
		"ServiceDate",
		"Contracted_Submission_Date",
		"SubmissionDate",
		"ProcessedDate",
	}
	for _, ct := range AllCodeTypes {
		cols = append(cols, ct.Header)
	}
	return append(cols,
		"Coverage_Start_Date",
		"Coverage_End_Date",
		"Plan_Type",
		"Benefit_Limit",
		"PriorAuth_Obtained",
		"Referral_Required",
		"Clearinghouse_Edit_Count",
		"Denial_Code",
		"Denial_Reason",
		"Denial_Category",
		"Appeal_Allowed",
		"Days_To_Appeal",
		"Denial_Severity",
	)
}

// Values returns the claim's fields as text in the same order as Columns().
func (c *Claim) Values() []string {
	vals := []string{
		c.ClaimID,
		c.PatientID,
		c.PayerID,
		c.ProviderID,
		c.ClaimAmount.StringFixed(2),
		c.Reimbursement.StringFixed(2),
		strconv.Itoa(c.DenialStatus()),
		c.ServiceDate.Format(DateLayout),
		c.ContractedDate.Format(DateLayout),
		c.SubmissionDate.Format(DateLayout),
		c.ProcessedDate.Format(DateLayout),
	}
	vals = append(vals, c.Codes()...)
	return append(vals,
		c.Coverage.Start.Format(DateLayout),
		c.Coverage.End.Format(DateLayout),
		c.PlanType,
		strconv.FormatInt(c.BenefitLimit, 10),
		YesNo(c.PriorAuthObtained),
		YesNo(c.ReferralRequired),
		strconv.Itoa(c.ClearinghouseEdits),
		c.Denial.Code,
		c.Denial.Reason,
		c.Denial.Category,
		YesNo(c.Denial.AppealAllowed),
		strconv.Itoa(c.Denial.AppealDays),
		c.Denial.Severity,
	)
}

// YesNo renders a flag as "Y" or "N".
func YesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
