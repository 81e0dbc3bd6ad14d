package sink

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/claimgen/internal/model"
)

// SheetName is the worksheet claims are written to.
const SheetName = "Claims"

// XLSXWriter streams rows into a single worksheet and writes the workbook on Close.
type XLSXWriter struct {
	file   *os.File
	book   *excelize.File
	stream *excelize.StreamWriter
	row    int
}

// NewXLSXWriter creates (or truncates) the file at path.
func NewXLSXWriter(path string) (*XLSXWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create xlsx output: %w", err)
	}
	book := excelize.NewFile()
	if err := book.SetSheetName("Sheet1", SheetName); err != nil {
		book.Close()
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	sw, err := book.NewStreamWriter(SheetName)
	if err != nil {
		book.Close()
		f.Close()
		return nil, fmt.Errorf("open sheet stream: %w", err)
	}
	return &XLSXWriter{file: f, book: book, stream: sw}, nil
}

func (w *XLSXWriter) WriteHeader(cols []string) error {
	return w.writeRow(cols)
}

func (w *XLSXWriter) Write(c *model.Claim) error {
	if err := w.writeRow(c.Values()); err != nil {
		return fmt.Errorf("claim %s: %w", c.ClaimID, err)
	}
	return nil
}

func (w *XLSXWriter) writeRow(vals []string) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(vals))
	for i, v := range vals {
		row[i] = v
	}
	if err := w.stream.SetRow(cell, row); err != nil {
		return fmt.Errorf("write xlsx row %d: %w", w.row, err)
	}
	return nil
}

// Close flushes the sheet, writes the workbook and closes the file.
func (w *XLSXWriter) Close() error {
	err := w.stream.Flush()
	if err == nil {
		err = w.book.Write(w.file)
	}
	if err != nil {
		err = fmt.Errorf("write xlsx output: %w", err)
	}
	return errors.Join(err, w.book.Close(), w.file.Close())
}
