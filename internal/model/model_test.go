package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestColumnsMatchValues(t *testing.T) {
	c := &Claim{
		ClaimAmount:   decimal.RequireFromString("150.5"),
		Reimbursement: decimal.Zero,
		ServiceDate:   ServiceEpoch,
		Denial:        PaidInFull,
	}
	cols := Columns()
	if len(cols) != 29 {
		t.Fatalf("expected 29 columns, got %d", len(cols))
	}
	vals := c.Values()
	if len(vals) != len(cols) {
		t.Fatalf("Values has %d fields, Columns has %d", len(vals), len(cols))
	}
	if vals[4] != "150.50" || vals[5] != "0.00" {
		t.Errorf("money not fixed to two places: %q %q", vals[4], vals[5])
	}
	if vals[7] != "2024-01-01" {
		t.Errorf("service date = %q", vals[7])
	}
	if cols[11] != "ICD10_Code" || cols[15] != "DRG_Code" {
		t.Errorf("code columns out of place: %v", cols[11:16])
	}
}

func TestDenialFor(t *testing.T) {
	tests := []struct {
		i      int
		denied bool
		code   string
	}{
		{1, false, "None"},
		{4, true, CodeFilingExpired},
		{8, true, "CARC 23"},
		{12, true, "CARC 96"},
		{9, true, CodeMissingPriorAuth},
		{16, true, CodeSubmissionError},
		{18, true, CodeMissingPriorAuth},
		{27, true, CodeMissingPriorAuth},
		{32, true, CodeBenefitMaximum},
		{33, false, "None"},
		{24, true, CodeNotCoveredPerPlan},
	}
	for _, tt := range tests {
		d, denied := DenialFor(tt.i)
		if denied != tt.denied || d.Code != tt.code {
			t.Errorf("DenialFor(%d) = %s/%v, want %s/%v", tt.i, d.Code, denied, tt.code, tt.denied)
		}
	}
}

func TestPaidInFullSentinel(t *testing.T) {
	d, denied := DenialFor(1)
	if denied {
		t.Fatal("claim 1 should be paid")
	}
	if d.Code != "None" || d.Reason != "Paid in full" || d.Category != "None" ||
		d.AppealAllowed || d.AppealDays != 0 || d.Severity != "None" {
		t.Errorf("unexpected sentinel %+v", d)
	}
}

func TestCoverageFor(t *testing.T) {
	if got := CoverageFor(5); got != CoverageMidYear {
		t.Errorf("CoverageFor(5) = %v", got)
	}
	if got := CoverageFor(15); got != CoverageMidYear {
		t.Errorf("CoverageFor(15) = %v, mod 5 takes precedence", got)
	}
	if got := CoverageFor(6); got != CoverageFebruary {
		t.Errorf("CoverageFor(6) = %v", got)
	}
	if got := CoverageFor(7); got.Start != time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("CoverageFor(7) = %v", got)
	}
}

func TestCatalogLookups(t *testing.T) {
	if len(Denials) != 9 {
		t.Fatalf("expected 9 denials, got %d", len(Denials))
	}
	if d, ok := DenialByCode("CARC 109"); !ok || d.Reason != "Benefit maximum reached" {
		t.Errorf("DenialByCode(CARC 109) = %+v, %v", d, ok)
	}
	if _, ok := DenialByCode("None"); ok {
		t.Error("sentinel code must not be in the catalog")
	}
	if p, ok := PlanByType("EPO"); !ok || p.BenefitLimit != 500_000 {
		t.Errorf("PlanByType(EPO) = %+v, %v", p, ok)
	}
	if ct, ok := CodeTypeByName("HCPCS"); !ok || !ct.InPool("J3420") || ct.InPool("99213") {
		t.Errorf("HCPCS code type lookup wrong: %+v", ct.Name)
	}
}
