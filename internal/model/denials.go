package model

// Claim adjustment reason codes that drive field derivation.
const (
	CodeMissingPriorAuth  = "CARC 16"
	CodePrecertAbsent     = "CARC 197"
	CodeFilingExpired     = "CARC 29"
	CodeBenefitMaximum    = "CARC 109"
	CodeNotCoveredPerPlan = "CARC 204"
	CodeSubmissionError   = "CARC 125"
)

// CategoryTechnical denials reimburse half the claim on even indices.
const CategoryTechnical = "Technical"

const none = "None"

// Denial is one entry of the denial catalog.
type Denial struct {
	Code          string
	Reason        string
	Category      string
	AppealAllowed bool
	AppealDays    int
	Severity      string
}

// Denials is the fixed catalog, looked up by index mod len(Denials).
var Denials = []Denial{
	{Code: CodeMissingPriorAuth, Reason: "Missing prior authorization", Category: "Eligibility", AppealAllowed: true, AppealDays: 30, Severity: "High"},
	{Code: CodePrecertAbsent, Reason: "Precertification absent", Category: "Eligibility", AppealAllowed: true, AppealDays: 30, Severity: "High"},
	{Code: "CARC 18", Reason: "Duplicate claim/service", Category: CategoryTechnical, AppealAllowed: true, AppealDays: 60, Severity: "Low"},
	{Code: "CARC 96", Reason: "Non-covered service", Category: "Clinical", AppealAllowed: false, AppealDays: 0, Severity: "Medium"},
	{Code: CodeFilingExpired, Reason: "Time limit for filing expired", Category: "Administrative", AppealAllowed: false, AppealDays: 0, Severity: "Medium"},
	{Code: CodeBenefitMaximum, Reason: "Benefit maximum reached", Category: "Eligibility", AppealAllowed: true, AppealDays: 45, Severity: "High"},
	{Code: CodeNotCoveredPerPlan, Reason: "Service not covered per plan", Category: "Eligibility", AppealAllowed: false, AppealDays: 0, Severity: "High"},
	{Code: CodeSubmissionError, Reason: "Submission/billing error", Category: CategoryTechnical, AppealAllowed: true, AppealDays: 45, Severity: "Medium"},
	{Code: "CARC 23", Reason: "Impact of prior payer adjudication", Category: "Administrative", AppealAllowed: true, AppealDays: 30, Severity: "Low"},
}

// PaidInFull is the denial detail carried by claims that were not denied.
var PaidInFull = Denial{
	Code:     none,
	Reason:   "Paid in full",
	Category: none,
	Severity: none,
}

// DenialByCode returns the catalog entry for code, or ok=false.
func DenialByCode(code string) (Denial, bool) {
	for _, d := range Denials {
		if d.Code == code {
			return d, true
		}
	}
	return Denial{}, false
}

// IsDenied reports whether the claim at 1-based index i is denied.
func IsDenied(i int) bool {
	return i%4 == 0 || i%9 == 0
}

// DenialFor returns the denial detail for index i and whether it is a denial.
func DenialFor(i int) (Denial, bool) {
	if !IsDenied(i) {
		return PaidInFull, false
	}
	return Denials[i%len(Denials)], true
}

// RequiresPriorAuthMissing reports whether the denial forces PriorAuth_Obtained to N.
func (d Denial) RequiresPriorAuthMissing() bool {
	return d.Code == CodeMissingPriorAuth || d.Code == CodePrecertAbsent
}
