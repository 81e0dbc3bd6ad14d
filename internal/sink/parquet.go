package sink

import (
	"errors"
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/claimgen/internal/model"
	"github.com/gyeh/claimgen/internal/normalize"
)

const parquetBatchSize = 1024

// ParquetWriter writes model.ClaimRow records. The schema stands in for the
// header row, so WriteHeader is a no-op.
type ParquetWriter struct {
	file   *os.File
	writer *parquet.GenericWriter[model.ClaimRow]
	batch  []model.ClaimRow
}

// NewParquetWriter creates (or truncates) the file at path.
func NewParquetWriter(path string) (*ParquetWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create parquet output: %w", err)
	}
	return &ParquetWriter{
		file:   f,
		writer: parquet.NewGenericWriter[model.ClaimRow](f),
		batch:  make([]model.ClaimRow, 0, parquetBatchSize),
	}, nil
}

func (w *ParquetWriter) WriteHeader([]string) error { return nil }

func (w *ParquetWriter) Write(c *model.Claim) error {
	w.batch = append(w.batch, normalize.ToClaimRow(c))
	if len(w.batch) >= parquetBatchSize {
		return w.flush()
	}
	return nil
}

func (w *ParquetWriter) flush() error {
	if len(w.batch) == 0 {
		return nil
	}
	if _, err := w.writer.Write(w.batch); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	w.batch = w.batch[:0]
	return nil
}

// Close writes any pending rows and the file footer.
func (w *ParquetWriter) Close() error {
	err := w.flush()
	if cerr := w.writer.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close parquet writer: %w", cerr)
	}
	return errors.Join(err, w.file.Close())
}
