package generate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gyeh/claimgen/internal/config"
	"github.com/gyeh/claimgen/internal/model"
	"github.com/gyeh/claimgen/internal/normalize"
)

const propertyRows = 3000

func generateAll(seed uint64, n int) (*Generator, []*model.Claim) {
	g := New(seed)
	claims := make([]*model.Claim, n)
	for i := 1; i <= n; i++ {
		claims[i-1] = g.Claim(i)
	}
	return g, claims
}

func TestPayerDays(t *testing.T) {
	g := New(42)
	days := g.PayerDays()
	if len(days) != model.PayerCount {
		t.Fatalf("expected %d payers, got %d", model.PayerCount, len(days))
	}
	for p := 1; p <= model.PayerCount; p++ {
		d, ok := days[model.PayerID(p)]
		if !ok || !model.IsSubmissionWindow(d) {
			t.Errorf("payer %s window = %d, %v", model.PayerID(p), d, ok)
		}
	}
	days["PY01"] = -1
	if g.PayerDays()["PY01"] == -1 {
		t.Error("PayerDays must return a copy")
	}
}

func TestIdentifiers(t *testing.T) {
	_, claims := generateAll(42, 250)
	c := claims[0]
	if c.ClaimID != "C0001" || c.PatientID != "P002" || c.PayerID != "PY02" || c.ProviderID != "PR04" {
		t.Errorf("claim 1 identifiers: %s %s %s %s", c.ClaimID, c.PatientID, c.PayerID, c.ProviderID)
	}
	c = claims[199]
	if c.ClaimID != "C0200" || c.PatientID != "P001" || c.PayerID != "PY01" || c.ProviderID != "PR01" {
		t.Errorf("claim 200 identifiers: %s %s %s %s", c.ClaimID, c.PatientID, c.PayerID, c.ProviderID)
	}
}

func TestFirstClaimIsPaid(t *testing.T) {
	_, claims := generateAll(42, 1)
	c := claims[0]
	if c.Denied || c.DenialStatus() != 0 {
		t.Fatal("claim 1 must not be denied")
	}
	if c.Denial != model.PaidInFull {
		t.Errorf("claim 1 denial = %+v", c.Denial)
	}
	if !c.Reimbursement.Equal(c.ClaimAmount) {
		t.Errorf("reimbursement %s != amount %s", c.Reimbursement, c.ClaimAmount)
	}
	// 150 + 1*25 + 0.50
	if got := c.ClaimAmount.StringFixed(2); got != "175.50" {
		t.Errorf("claim 1 amount = %s", got)
	}
	if got := c.ServiceDate.Format(model.DateLayout); got != "2024-01-02" {
		t.Errorf("claim 1 service date = %s", got)
	}
}

func TestFourthClaimFilingExpired(t *testing.T) {
	_, claims := generateAll(42, 4)
	c := claims[3]
	if !c.Denied || c.Denial.Code != model.CodeFilingExpired || c.Denial.Reason != "Time limit for filing expired" {
		t.Fatalf("claim 4 denial = %+v", c.Denial)
	}
	if !c.SubmissionDate.After(c.ContractedDate) {
		t.Errorf("submission %v not after contracted %v", c.SubmissionDate, c.ContractedDate)
	}
	if !c.Reimbursement.IsZero() {
		t.Errorf("denied administrative claim reimbursed %s", c.Reimbursement)
	}
}

func TestDerivationProperties(t *testing.T) {
	for _, seed := range []uint64{1, 42, 20240101} {
		g, claims := generateAll(seed, propertyRows)
		days := g.PayerDays()

		for idx, c := range claims {
			i := idx + 1

			wantDenial, denied := model.DenialFor(i)
			if c.Denied != denied || c.Denial != wantDenial {
				t.Fatalf("seed %d claim %d: denial %+v/%v, want %+v/%v", seed, i, c.Denial, c.Denied, wantDenial, denied)
			}
			if denied {
				if d, ok := model.DenialByCode(c.Denial.Code); !ok || d != c.Denial {
					t.Fatalf("seed %d claim %d: denial not from catalog", seed, i)
				}
			}

			if got := normalize.DaysBetween(c.ServiceDate, c.ContractedDate); got != days[c.PayerID] {
				t.Fatalf("seed %d claim %d: contracted %d days after service, payer allows %d", seed, i, got, days[c.PayerID])
			}
			if c.SubmissionDate.Before(c.ServiceDate) {
				t.Fatalf("seed %d claim %d: submission before service", seed, i)
			}
			if !c.ProcessedDate.After(c.SubmissionDate) {
				t.Fatalf("seed %d claim %d: processed not after submission", seed, i)
			}
			if gap := normalize.DaysBetween(c.SubmissionDate, c.ProcessedDate); gap < 1 || gap > 10 {
				t.Fatalf("seed %d claim %d: processed %d days after submission", seed, i, gap)
			}

			plan, ok := model.PlanByType(c.PlanType)
			if !ok || plan.BenefitLimit != c.BenefitLimit {
				t.Fatalf("seed %d claim %d: plan %s limit %d", seed, i, c.PlanType, c.BenefitLimit)
			}

			switch c.Denial.Code {
			case model.CodeBenefitMaximum:
				limit := decimal.NewFromInt(c.BenefitLimit)
				if !c.ClaimAmount.GreaterThan(limit) || c.ClaimAmount.GreaterThan(limit.Add(decimal.NewFromInt(500))) {
					t.Fatalf("seed %d claim %d: amount %s outside limit+[10,500]", seed, i, c.ClaimAmount)
				}
			case model.CodeFilingExpired:
				if gap := normalize.DaysBetween(c.ContractedDate, c.SubmissionDate); gap < 1 || gap > 15 {
					t.Fatalf("seed %d claim %d: submitted %d days past deadline", seed, i, gap)
				}
			case model.CodeNotCoveredPerPlan:
				if gap := normalize.DaysBetween(c.Coverage.End, c.ServiceDate); gap < 1 || gap > 30 {
					t.Fatalf("seed %d claim %d: coverage ended %d days before service", seed, i, gap)
				}
			default:
				if c.SubmissionDate.After(c.ContractedDate) {
					t.Fatalf("seed %d claim %d: timely claim submitted after deadline", seed, i)
				}
				if c.Coverage != model.CoverageFor(i) {
					t.Fatalf("seed %d claim %d: coverage %v", seed, i, c.Coverage)
				}
			}

			switch {
			case !denied:
				if !c.Reimbursement.Equal(c.ClaimAmount) {
					t.Fatalf("seed %d claim %d: paid claim reimbursed %s of %s", seed, i, c.Reimbursement, c.ClaimAmount)
				}
			case c.Denial.Category == model.CategoryTechnical && i%2 == 0:
				if !c.Reimbursement.Equal(c.ClaimAmount.Div(decimal.NewFromInt(2)).Round(2)) {
					t.Fatalf("seed %d claim %d: technical claim reimbursed %s of %s", seed, i, c.Reimbursement, c.ClaimAmount)
				}
			default:
				if !c.Reimbursement.IsZero() {
					t.Fatalf("seed %d claim %d: denied claim reimbursed %s", seed, i, c.Reimbursement)
				}
			}

			if c.Denial.RequiresPriorAuthMissing() && c.PriorAuthObtained {
				t.Fatalf("seed %d claim %d: %s with prior auth", seed, i, c.Denial.Code)
			}
			lo, hi := 0, 4
			if c.Denial.Code == model.CodeSubmissionError {
				lo, hi = 5, 12
			}
			if c.ClearinghouseEdits < lo || c.ClearinghouseEdits > hi {
				t.Fatalf("seed %d claim %d: %d edits", seed, i, c.ClearinghouseEdits)
			}

			for n, v := range c.Codes() {
				if !model.AllCodeTypes[n].InPool(v) {
					t.Fatalf("seed %d claim %d: %s %q not in pool", seed, i, model.AllCodeTypes[n].Name, v)
				}
			}
		}
	}
}

func TestBaseAmounts(t *testing.T) {
	_, claims := generateAll(42, 60)
	tests := map[int]string{
		2:  "200.99", // 150 + 2*25 + 0.99
		3:  "225.00",
		50: "150.99", // 50 mod 50 = 0, 50 mod 3 = 2
		51: "175.00",
	}
	for i, want := range tests {
		if got := claims[i-1].ClaimAmount.StringFixed(2); got != want {
			t.Errorf("claim %d amount = %s, want %s", i, got, want)
		}
	}
}

func TestDenialsCoverEveryCode(t *testing.T) {
	_, claims := generateAll(42, 1000)
	seen := make(map[string]int)
	denied := 0
	for _, c := range claims {
		if c.Denied {
			denied++
			seen[c.Denial.Code]++
		}
	}
	// 250 multiples of 4 + 111 of 9 - 27 of 36
	if denied != 334 {
		t.Errorf("denied = %d, want 334", denied)
	}
	for _, d := range model.Denials {
		if seen[d.Code] == 0 {
			t.Errorf("no claims denied with %s", d.Code)
		}
	}
}

func TestReproducible(t *testing.T) {
	_, a := generateAll(42, 500)
	_, b := generateAll(42, 500)
	for i := range a {
		if !slices.Equal(a[i].Values(), b[i].Values()) {
			t.Fatalf("claim %d differs between runs", i+1)
		}
	}

	_, other := generateAll(43, 500)
	same := true
	for i := range a {
		if !slices.Equal(a[i].Values(), other[i].Values()) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical datasets")
	}
}

// recordingWriter captures rows in memory.
type recordingWriter struct {
	header []string
	rows   []*model.Claim
	failAt int
}

func (w *recordingWriter) WriteHeader(cols []string) error {
	w.header = cols
	return nil
}

func (w *recordingWriter) Write(c *model.Claim) error {
	if w.failAt > 0 && len(w.rows)+1 == w.failAt {
		return os.ErrClosed
	}
	w.rows = append(w.rows, c)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestRun(t *testing.T) {
	ctx := context.Background()
	log := zerolog.Nop()

	t.Run("zero_rows_header_only", func(t *testing.T) {
		w := &recordingWriter{}
		summary, err := Run(ctx, w, log, 0, 42)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(w.header) != len(model.Columns()) || len(w.rows) != 0 || summary.RowsWritten != 0 {
			t.Errorf("header=%d rows=%d summary=%+v", len(w.header), len(w.rows), summary)
		}
	})

	t.Run("summary_counts", func(t *testing.T) {
		w := &recordingWriter{}
		summary, err := Run(ctx, w, log, 36, 42)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if summary.RowsWritten != 36 || summary.RowsDenied != 12 {
			t.Errorf("written=%d denied=%d", summary.RowsWritten, summary.RowsDenied)
		}
		if summary.DenialCounts[model.CodeFilingExpired] == 0 {
			t.Errorf("denial counts missing CARC 29: %v", summary.DenialCounts)
		}
		for i, c := range w.rows {
			if want := normalize.AddDays(model.ServiceEpoch, (i+1)%model.ServiceSpanDays); !c.ServiceDate.Equal(want) {
				t.Fatalf("row %d out of order", i+1)
			}
		}
	})

	t.Run("writer_error_aborts", func(t *testing.T) {
		w := &recordingWriter{failAt: 5}
		if _, err := Run(ctx, w, log, 10, 42); err == nil {
			t.Fatal("expected write error")
		}
		if len(w.rows) != 4 {
			t.Errorf("wrote %d rows before failing", len(w.rows))
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := Run(cctx, &recordingWriter{}, log, 10, 42); err == nil {
			t.Fatal("expected cancellation error")
		}
	})
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	log := zerolog.Nop()

	write := func(name string, rows int) []byte {
		t.Helper()
		cfg := &config.Config{Rows: rows, Seed: 42, OutPath: filepath.Join(dir, name)}
		if err := cfg.ValidateGenerate(); err != nil {
			t.Fatal(err)
		}
		summary, err := WriteFile(context.Background(), log, cfg)
		if err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		data, err := os.ReadFile(cfg.OutPath)
		if err != nil {
			t.Fatal(err)
		}
		if summary.BytesWritten != int64(len(data)) {
			t.Errorf("BytesWritten = %d, file has %d", summary.BytesWritten, len(data))
		}
		return data
	}

	a := write("a.csv", 1000)
	b := write("b.csv", 1000)
	if !bytes.Equal(a, b) {
		t.Fatal("same seed and row count produced different files")
	}

	lines := strings.Split(strings.TrimSuffix(string(a), "\n"), "\n")
	if len(lines) != 1001 {
		t.Fatalf("expected header + 1000 rows, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(model.Columns(), ",") {
		t.Errorf("header = %q", lines[0])
	}
	if bytes.Contains(a, []byte("\r\n")) {
		t.Error("rows must be newline-delimited without CR")
	}

	empty := write("empty.csv", 0)
	if string(empty) != strings.Join(model.Columns(), ",")+"\n" {
		t.Errorf("zero-row file = %q", empty)
	}

	t.Run("unwritable_path", func(t *testing.T) {
		cfg := &config.Config{Rows: 1, Seed: 42, OutPath: filepath.Join(dir, "missing", "x.csv"), Format: "csv"}
		if _, err := WriteFile(context.Background(), log, cfg); err == nil {
			t.Fatal("expected error for missing directory")
		}
	})
}
