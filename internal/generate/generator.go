// Package generate derives synthetic claims from an index and a single
// seeded random stream.
package generate

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/gyeh/claimgen/internal/model"
	"github.com/gyeh/claimgen/internal/normalize"
)

var amountCents = []int64{0, 50, 99}

// Generator holds the seeded random stream and the payer submission windows
// drawn from it. Claims must be requested in increasing index order for a
// given seed to reproduce the same dataset.
type Generator struct {
	seed      uint64
	rng       *rand.Rand
	payerDays map[string]int
}

// New seeds the stream and assigns every payer its submission window.
func New(seed uint64) *Generator {
	g := &Generator{
		seed:      seed,
		rng:       rand.New(rand.NewPCG(seed, seed)),
		payerDays: make(map[string]int, model.PayerCount),
	}
	for p := 1; p <= model.PayerCount; p++ {
		g.payerDays[model.PayerID(p)] = model.SubmissionWindows[g.rng.IntN(len(model.SubmissionWindows))]
	}
	return g
}

// Seed returns the seed the stream was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// PayerDays returns a copy of the payer → allowed submission days mapping.
func (g *Generator) PayerDays() map[string]int {
	out := make(map[string]int, len(g.payerDays))
	for k, v := range g.payerDays {
		out[k] = v
	}
	return out
}

// Claim derives the claim at 1-based index i.
func (g *Generator) Claim(i int) *model.Claim {
	denial, denied := model.DenialFor(i)
	c := &model.Claim{
		ClaimID:     fmt.Sprintf("C%04d", i),
		PatientID:   fmt.Sprintf("P%03d", i%200+1),
		PayerID:     model.PayerID(i%model.PayerCount + 1),
		ProviderID:  fmt.Sprintf("PR%02d", (i*3)%12+1),
		Denied:      denied,
		Denial:      denial,
		ServiceDate: normalize.AddDays(model.ServiceEpoch, i%model.ServiceSpanDays),
		Coverage:    model.CoverageFor(i),
	}

	// The draw order below is part of the output contract.
	if denial.Code == model.CodeNotCoveredPerPlan {
		c.Coverage.End = normalize.AddDays(c.ServiceDate, -g.between(1, 30))
	}

	plan := model.Plans[g.rng.IntN(len(model.Plans))]
	c.PlanType = plan.Type
	c.BenefitLimit = plan.BenefitLimit

	g.fillDates(c)
	c.ClaimAmount = g.amount(i, plan, denial)
	c.Reimbursement = reimbursement(i, c.ClaimAmount, denial, denied)

	if denial.RequiresPriorAuthMissing() {
		c.PriorAuthObtained = false
	} else {
		c.PriorAuthObtained = g.coin()
	}
	c.ReferralRequired = g.coin()

	if denial.Code == model.CodeSubmissionError {
		c.ClearinghouseEdits = g.between(5, 12)
	} else {
		c.ClearinghouseEdits = g.between(0, 4)
	}

	for _, ct := range model.AllCodeTypes {
		c.SetCode(ct.Name, ct.Pool[g.rng.IntN(len(ct.Pool))])
	}
	return c
}

// fillDates sets the contracted deadline, submission and processed dates.
func (g *Generator) fillDates(c *model.Claim) {
	allowed := g.payerDays[c.PayerID]
	c.ContractedDate = normalize.AddDays(c.ServiceDate, allowed)

	if c.Denial.Code == model.CodeFilingExpired {
		c.SubmissionDate = normalize.AddDays(c.ContractedDate, g.between(1, 15))
	} else {
		c.SubmissionDate = normalize.AddDays(c.ServiceDate, g.between(0, max(allowed, 1)))
	}
	c.ProcessedDate = normalize.AddDays(c.SubmissionDate, g.between(1, 10))
}

func (g *Generator) amount(i int, plan model.Plan, denial model.Denial) decimal.Decimal {
	if denial.Code == model.CodeBenefitMaximum {
		surcharge := g.between(1000, 50000) // cents
		return decimal.NewFromInt(plan.BenefitLimit).Add(normalize.FromCents(int64(surcharge)))
	}
	cents := 15000 + int64(i%50)*2500 + amountCents[i%3]
	return normalize.FromCents(cents)
}

func reimbursement(i int, amount decimal.Decimal, denial model.Denial, denied bool) decimal.Decimal {
	switch {
	case !denied:
		return amount
	case denial.Category == model.CategoryTechnical && i%2 == 0:
		return amount.Div(decimal.NewFromInt(2)).Round(2)
	default:
		return decimal.Zero
	}
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) coin() bool {
	return g.rng.IntN(2) == 1
}
