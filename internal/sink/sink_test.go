package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/gyeh/claimgen/internal/model"
	"github.com/gyeh/claimgen/internal/normalize"
	"github.com/gyeh/claimgen/internal/parquetread"
)

func testClaims() []*model.Claim {
	svc := normalize.AddDays(model.ServiceEpoch, 1)
	paid := &model.Claim{
		ClaimID: "C0001", PatientID: "P002", PayerID: "PY02", ProviderID: "PR04",
		ClaimAmount:    decimal.RequireFromString("175.50"),
		Reimbursement:  decimal.RequireFromString("175.50"),
		ServiceDate:    svc,
		ContractedDate: normalize.AddDays(svc, 45),
		SubmissionDate: normalize.AddDays(svc, 10),
		ProcessedDate:  normalize.AddDays(svc, 13),
		ICD10Code:      "E11.9", CPTCode: "99213", HCPCSCode: "J3420", Modifier: "25", DRGCode: "470",
		Coverage:          model.CoverageFor(1),
		PlanType:          "PPO",
		BenefitLimit:      1_000_000,
		PriorAuthObtained: true,
		Denial:            model.PaidInFull,
	}
	denied := *paid
	denied.ClaimID = "C0004"
	denied.Denied = true
	denied.Denial = model.Denials[4]
	denied.Reimbursement = decimal.Zero
	denied.SubmissionDate = normalize.AddDays(svc, 50)
	denied.ProcessedDate = normalize.AddDays(svc, 52)
	return []*model.Claim{paid, &denied}
}

func writeAll(t *testing.T, path string) {
	t.Helper()
	w, err := Create(path, "")
	if err != nil {
		t.Fatalf("Create(%s): %v", path, err)
	}
	if err := w.WriteHeader(model.Columns()); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	for _, c := range testClaims() {
		if err := w.Write(c); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"out.csv":         FormatCSV,
		"out.parquet":     FormatParquet,
		"OUT.XLSX":        FormatXLSX,
		"out":             FormatCSV,
		"dir/claims.json": FormatCSV,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
	if ValidFormat("json") || !ValidFormat(FormatXLSX) {
		t.Error("ValidFormat mismatch")
	}
	if _, err := Create(filepath.Join(t.TempDir(), "x"), "json"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.csv")
	writeAll(t, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "\r") {
		t.Error("csv output contains carriage returns")
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("csv output must end with a newline")
	}

	recs, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if !slices.Equal(recs[0], model.Columns()) {
		t.Errorf("header = %v", recs[0])
	}
	want := testClaims()
	for i, rec := range recs[1:] {
		if !slices.Equal(rec, want[i].Values()) {
			t.Errorf("row %d = %v, want %v", i+1, rec, want[i].Values())
		}
	}
	if recs[2][6] != "1" || recs[2][23] != model.CodeFilingExpired {
		t.Errorf("denied row status=%s code=%s", recs[2][6], recs[2][23])
	}
}

func TestParquetWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.parquet")
	writeAll(t, path)

	r, err := parquetread.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if r.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", r.NumRows())
	}
	want := testClaims()
	var n int
	err = r.Each(func(rowNum int64, c *model.Claim) error {
		if !slices.Equal(c.Values(), want[rowNum-1].Values()) {
			t.Errorf("row %d = %v, want %v", rowNum, c.Values(), want[rowNum-1].Values())
		}
		n++
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	if n != 2 {
		t.Errorf("visited %d rows", n)
	}
}

func TestXLSXWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.xlsx")
	writeAll(t, path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != SheetName {
		t.Errorf("sheets = %v", sheets)
	}
	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !slices.Equal(rows[0], model.Columns()) {
		t.Errorf("header = %v", rows[0])
	}
	want := testClaims()
	for i, row := range rows[1:] {
		if !slices.Equal(row, want[i].Values()) {
			t.Errorf("row %d = %v, want %v", i+1, row, want[i].Values())
		}
	}
}
