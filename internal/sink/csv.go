package sink

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/gyeh/claimgen/internal/model"
)

// CSVWriter writes comma-separated, newline-terminated UTF-8 rows.
type CSVWriter struct {
	file *os.File
	buf  *bufio.Writer
	w    *csv.Writer
}

// NewCSVWriter creates (or truncates) the file at path.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create csv output: %w", err)
	}
	buf := bufio.NewWriter(f)
	return &CSVWriter{file: f, buf: buf, w: csv.NewWriter(buf)}, nil
}

func (w *CSVWriter) WriteHeader(cols []string) error {
	if err := w.w.Write(cols); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	return nil
}

func (w *CSVWriter) Write(c *model.Claim) error {
	if err := w.w.Write(c.Values()); err != nil {
		return fmt.Errorf("write csv row %s: %w", c.ClaimID, err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (w *CSVWriter) Close() error {
	w.w.Flush()
	err := w.w.Error()
	if ferr := w.buf.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		err = fmt.Errorf("flush csv output: %w", err)
	}
	return errors.Join(err, w.file.Close())
}
