package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"aioverview-analytics/models"
)

// ReadTable parses a Search Console CSV export from r. The first row
// becomes the column header; column casing is preserved here and only
// normalized by the validation and enrichment steps.
func ReadTable(r io.Reader) (models.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return models.Table{}, fmt.Errorf("csv: read: %w", err)
	}
	if len(rows) == 0 {
		return models.Table{}, fmt.Errorf("csv: input contains no header row")
	}

	return models.Table{Columns: rows[0], Rows: rows[1:]}, nil
}

// ReadFile reads and parses the CSV export at path.
func ReadFile(path string) (models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Table{}, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	return ReadTable(f)
}
