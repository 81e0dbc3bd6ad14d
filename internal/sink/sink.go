// Package sink serializes generated claims to a file, one row per claim in
// the order they are written.
package sink

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gyeh/claimgen/internal/model"
)

// Supported output formats.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
	FormatXLSX    = "xlsx"
)

// Formats lists every supported output format.
var Formats = []string{FormatCSV, FormatParquet, FormatXLSX}

// Writer receives the header once, then claims in index order.
// Close must be called exactly once, whether or not a write failed.
type Writer interface {
	WriteHeader(cols []string) error
	Write(c *model.Claim) error
	Close() error
}

// FormatFromPath infers the output format from the file extension,
// falling back to CSV.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return FormatParquet
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Create opens path for writing in the given format. An empty format is
// inferred from the path.
func Create(path, format string) (Writer, error) {
	if format == "" {
		format = FormatFromPath(path)
	}
	switch format {
	case FormatCSV:
		return NewCSVWriter(path)
	case FormatParquet:
		return NewParquetWriter(path)
	case FormatXLSX:
		return NewXLSXWriter(path)
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
