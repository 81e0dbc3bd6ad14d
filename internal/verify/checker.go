// Package verify checks a claims dataset against the derivation rules the
// generator guarantees.
package verify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gyeh/claimgen/internal/model"
	"github.com/gyeh/claimgen/internal/normalize"
)

// Rule names reported in violations.
const (
	RuleDenialRule      = "denial_rule"
	RuleCatalog         = "denial_catalog"
	RuleBenefitMaximum  = "benefit_maximum"
	RuleFilingExpired   = "filing_expired"
	RuleCoverageLapse   = "coverage_lapse"
	RuleDateOrder       = "date_order"
	RulePayerWindow     = "payer_window"
	RuleReimbursement   = "reimbursement"
	RulePriorAuth       = "prior_auth"
	RuleEditCount       = "edit_count"
	RuleCodePool        = "code_pool"
	RulePlan            = "plan"
	RuleClaimIdentifier = "claim_id"
)

// Checker accumulates per-claim results into a VerifyReport.
type Checker struct {
	report    model.VerifyReport
	lastIndex int
}

// NewChecker returns an empty Checker.
func NewChecker() *Checker {
	return &Checker{report: model.VerifyReport{
		DenialCounts: make(map[string]int64),
		PayerDays:    make(map[string]int),
	}}
}

// Report returns the accumulated report.
func (k *Checker) Report() *model.VerifyReport {
	r := k.report
	return &r
}

func (k *Checker) fail(row int64, c *model.Claim, rule, format string, args ...any) {
	k.report.Violations = append(k.report.Violations, model.Violation{
		Row:     row,
		ClaimID: c.ClaimID,
		Rule:    rule,
		Detail:  fmt.Sprintf(format, args...),
	})
}

// Check validates one claim. row is its 1-based position in the dataset.
func (k *Checker) Check(row int64, c *model.Claim) {
	k.report.Rows++
	if c.Denied {
		k.report.RowsDenied++
		k.report.DenialCounts[c.Denial.Code]++
	}

	i, ok := k.checkIndex(row, c)
	if ok {
		k.checkDenial(row, i, c)
		k.checkReimbursement(row, i, c)
	}
	k.checkDates(row, c)
	k.checkAmounts(row, c)
	k.checkFlags(row, c)
	k.checkCodes(row, c)
}

// checkIndex decodes the claim index from its id. Indices must strictly
// increase through the dataset.
func (k *Checker) checkIndex(row int64, c *model.Claim) (int, bool) {
	i, err := strconv.Atoi(strings.TrimPrefix(c.ClaimID, "C"))
	if err != nil || i < 1 || !strings.HasPrefix(c.ClaimID, "C") {
		k.fail(row, c, RuleClaimIdentifier, "claim id %q does not encode an index", c.ClaimID)
		return 0, false
	}
	if i <= k.lastIndex {
		k.fail(row, c, RuleClaimIdentifier, "claim index %d follows index %d", i, k.lastIndex)
	}
	k.lastIndex = i
	return i, true
}

func (k *Checker) checkDenial(row int64, i int, c *model.Claim) {
	if c.Denied {
		d, ok := model.DenialByCode(c.Denial.Code)
		if !ok || d != c.Denial {
			k.fail(row, c, RuleCatalog, "denied claim carries %+v, not a catalog entry", c.Denial)
		}
	} else if c.Denial != model.PaidInFull {
		k.fail(row, c, RuleCatalog, "paid claim carries denial detail %+v", c.Denial)
	}

	want, denied := model.DenialFor(i)
	if denied != c.Denied || want.Code != c.Denial.Code {
		k.fail(row, c, RuleDenialRule, "index %d expects denied=%v code %s, got denied=%v code %s",
			i, denied, want.Code, c.Denied, c.Denial.Code)
	}
}

func (k *Checker) checkReimbursement(row int64, i int, c *model.Claim) {
	var want decimal.Decimal
	switch {
	case !c.Denied:
		want = c.ClaimAmount
	case c.Denial.Category == model.CategoryTechnical && i%2 == 0:
		want = c.ClaimAmount.Div(decimal.NewFromInt(2)).Round(2)
	default:
		want = decimal.Zero
	}
	if !c.Reimbursement.Equal(want) {
		k.fail(row, c, RuleReimbursement, "reimbursement %s, want %s",
			c.Reimbursement.StringFixed(2), want.StringFixed(2))
	}
}

func (k *Checker) checkDates(row int64, c *model.Claim) {
	days := normalize.DaysBetween(c.ServiceDate, c.ContractedDate)
	if !model.IsSubmissionWindow(days) {
		k.fail(row, c, RulePayerWindow, "contracted deadline is %d days after service", days)
	} else if prev, ok := k.report.PayerDays[c.PayerID]; ok && prev != days {
		k.fail(row, c, RulePayerWindow, "payer %s window %d days, earlier rows used %d", c.PayerID, days, prev)
	} else if !ok {
		k.report.PayerDays[c.PayerID] = days
	}

	if !c.ProcessedDate.After(c.SubmissionDate) {
		k.fail(row, c, RuleDateOrder, "processed %s not after submission %s",
			c.ProcessedDate.Format(model.DateLayout), c.SubmissionDate.Format(model.DateLayout))
	}
	if c.SubmissionDate.Before(c.ServiceDate) {
		k.fail(row, c, RuleDateOrder, "submission %s before service %s",
			c.SubmissionDate.Format(model.DateLayout), c.ServiceDate.Format(model.DateLayout))
	}

	switch c.Denial.Code {
	case model.CodeFilingExpired:
		if !c.SubmissionDate.After(c.ContractedDate) {
			k.fail(row, c, RuleFilingExpired, "submission %s not after contracted %s",
				c.SubmissionDate.Format(model.DateLayout), c.ContractedDate.Format(model.DateLayout))
		}
	case model.CodeNotCoveredPerPlan:
		if !c.Coverage.End.Before(c.ServiceDate) {
			k.fail(row, c, RuleCoverageLapse, "coverage end %s not before service %s",
				c.Coverage.End.Format(model.DateLayout), c.ServiceDate.Format(model.DateLayout))
		}
	}
}

func (k *Checker) checkAmounts(row int64, c *model.Claim) {
	plan, ok := model.PlanByType(c.PlanType)
	if !ok || plan.BenefitLimit != c.BenefitLimit {
		k.fail(row, c, RulePlan, "plan %s with benefit limit %d", c.PlanType, c.BenefitLimit)
	}

	if c.Denial.Code == model.CodeBenefitMaximum && !c.ClaimAmount.GreaterThan(decimal.NewFromInt(c.BenefitLimit)) {
		k.fail(row, c, RuleBenefitMaximum, "amount %s does not exceed benefit limit %d",
			c.ClaimAmount.StringFixed(2), c.BenefitLimit)
	}
}

func (k *Checker) checkFlags(row int64, c *model.Claim) {
	if c.Denial.RequiresPriorAuthMissing() && c.PriorAuthObtained {
		k.fail(row, c, RulePriorAuth, "%s denial with prior auth obtained", c.Denial.Code)
	}

	lo, hi := 0, 4
	if c.Denial.Code == model.CodeSubmissionError {
		lo, hi = 5, 12
	}
	if c.ClearinghouseEdits < lo || c.ClearinghouseEdits > hi {
		k.fail(row, c, RuleEditCount, "%d clearinghouse edits, want %d..%d", c.ClearinghouseEdits, lo, hi)
	}
}

func (k *Checker) checkCodes(row int64, c *model.Claim) {
	for i, v := range c.Codes() {
		if ct := model.AllCodeTypes[i]; !ct.InPool(v) {
			k.fail(row, c, RuleCodePool, "%s %q is not a known code", ct.Name, v)
		}
	}
}
