package model

import (
	"fmt"
	"time"
)

// Plan is a plan type and the benefit ceiling it reimburses in aggregate.
type Plan struct {
	Type         string
	BenefitLimit int64 // whole dollars
}

// Plans in sampling order.
var Plans = []Plan{
	{Type: "PPO", BenefitLimit: 1_000_000},
	{Type: "HMO", BenefitLimit: 750_000},
	{Type: "EPO", BenefitLimit: 500_000},
	{Type: "POS", BenefitLimit: 250_000},
}

// PlanByType returns the plan for the given type, or ok=false.
func PlanByType(planType string) (Plan, bool) {
	for _, p := range Plans {
		if p.Type == planType {
			return p, true
		}
	}
	return Plan{}, false
}

// PayerCount is the number of distinct payers, PY01..PY08.
const PayerCount = 8

// SubmissionWindows are the allowed service-to-deadline spans a payer can be assigned.
var SubmissionWindows = []int{30, 45, 60}

// PayerID formats the 1-based payer number.
func PayerID(n int) string {
	return fmt.Sprintf("PY%02d", n)
}

// IsSubmissionWindow reports whether days is one of SubmissionWindows.
func IsSubmissionWindow(days int) bool {
	for _, w := range SubmissionWindows {
		if w == days {
			return true
		}
	}
	return false
}

// CoverageWindow is a plan's effective date range.
type CoverageWindow struct {
	Start time.Time
	End   time.Time
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ServiceEpoch is the first possible service date; service dates cycle over ServiceSpanDays.
var ServiceEpoch = date(2024, time.January, 1)

const ServiceSpanDays = 334

// Coverage windows, selected by index.
var (
	CoverageMidYear  = CoverageWindow{Start: date(2023, time.June, 1), End: date(2024, time.May, 31)}
	CoverageFebruary = CoverageWindow{Start: date(2024, time.February, 1), End: date(2025, time.January, 31)}
	CoverageCalendar = CoverageWindow{Start: date(2024, time.January, 1), End: date(2024, time.December, 31)}
)

// CoverageFor returns the base coverage window for 1-based index i.
func CoverageFor(i int) CoverageWindow {
	switch {
	case i%5 == 0:
		return CoverageMidYear
	case i%3 == 0:
		return CoverageFebruary
	default:
		return CoverageCalendar
	}
}
