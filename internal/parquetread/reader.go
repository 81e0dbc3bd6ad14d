package parquetread

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/claimgen/internal/model"
	"github.com/gyeh/claimgen/internal/normalize"
)

const readBatchSize = 1024

// Reader streams claim rows out of a claims Parquet file.
type Reader struct {
	file   *os.File
	reader *parquet.GenericReader[model.ClaimRow]
}

// Open opens a claims Parquet file and checks its schema.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	if err := ValidateSchema(pf.Schema()); err != nil {
		f.Close()
		return nil, err
	}

	return &Reader{file: f, reader: parquet.NewGenericReader[model.ClaimRow](pf)}, nil
}

// NumRows returns the row count from the file metadata.
func (r *Reader) NumRows() int64 {
	return r.reader.NumRows()
}

// Rows reads every remaining raw row.
func (r *Reader) Rows() ([]model.ClaimRow, error) {
	var all []model.ClaimRow
	buf := make([]model.ClaimRow, readBatchSize)
	for {
		n, err := r.reader.Read(buf)
		all = append(all, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return all, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read parquet rows: %w", err)
		}
	}
}

// Each decodes every remaining row into a Claim and passes it to fn with its
// 1-based row number. Iteration stops at the first error.
func (r *Reader) Each(fn func(rowNum int64, c *model.Claim) error) error {
	buf := make([]model.ClaimRow, readBatchSize)
	var rowNum int64
	for {
		n, readErr := r.reader.Read(buf)
		for i := 0; i < n; i++ {
			rowNum++
			c, err := normalize.FromClaimRow(&buf[i])
			if err != nil {
				return fmt.Errorf("row %d: %w", rowNum, err)
			}
			if err := fn(rowNum, c); err != nil {
				return err
			}
		}
		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read parquet at row %d: %w", rowNum, readErr)
		}
	}
}

// Close releases all resources.
func (r *Reader) Close() error {
	return errors.Join(r.reader.Close(), r.file.Close())
}
