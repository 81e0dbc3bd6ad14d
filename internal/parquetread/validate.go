package parquetread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/claimgen/internal/model"
)

// ValidateSchema checks that the Parquet schema carries every column the
// consistency checks read.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	var missing []string
	for _, col := range model.ParquetRequiredColumns {
		if !columns[col] {
			missing = append(missing, col)
		}
	}
	for _, ct := range model.AllCodeTypes {
		if !columns[ct.Column] {
			missing = append(missing, ct.Column)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
