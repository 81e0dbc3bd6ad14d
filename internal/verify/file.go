package verify

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/claimgen/internal/model"
	"github.com/gyeh/claimgen/internal/normalize"
	"github.com/gyeh/claimgen/internal/parquetread"
	"github.com/gyeh/claimgen/internal/sink"
)

// File reads the dataset at path, in the format implied by its extension,
// and checks every claim. A non-nil error means the file could not be read
// or decoded; rule failures are reported as violations.
func File(path string) (*model.VerifyReport, error) {
	sha, err := normalize.FileHash(path)
	if err != nil {
		return nil, err
	}

	k := NewChecker()
	switch sink.FormatFromPath(path) {
	case sink.FormatParquet:
		err = checkParquet(path, k)
	case sink.FormatXLSX:
		err = checkXLSX(path, k)
	default:
		err = checkCSV(path, k)
	}
	if err != nil {
		return nil, err
	}

	report := k.Report()
	report.FilePath = path
	report.FileSHA256 = sha
	return report, nil
}

func checkHeader(header []string) error {
	if want := model.Columns(); !slices.Equal(header, want) {
		return fmt.Errorf("unexpected header %v", header)
	}
	return nil
}

func checkCSV(path string, k *Checker) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read csv header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return err
	}

	var row int64
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read csv row %d: %w", row+1, err)
		}
		row++
		c, err := normalize.FromRecord(rec)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		k.Check(row, c)
	}
}

func checkParquet(path string, k *Checker) error {
	r, err := parquetread.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	return r.Each(func(row int64, c *model.Claim) error {
		k.Check(row, c)
		return nil
	})
}

func checkXLSX(path string, k *Checker) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	rows, err := f.Rows(sink.SheetName)
	if err != nil {
		return fmt.Errorf("open sheet %s: %w", sink.SheetName, err)
	}
	defer rows.Close()

	var row int64
	for rows.Next() {
		rec, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("read xlsx row %d: %w", row+1, err)
		}
		if row == 0 {
			if err := checkHeader(rec); err != nil {
				return err
			}
			row++
			continue
		}
		c, err := normalize.FromRecord(rec)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		k.Check(row, c)
		row++
	}
	return rows.Error()
}
