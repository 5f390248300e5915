package services

import (
	"fmt"
	"strconv"
	"strings"

	"aioverview-analytics/models"
	"aioverview-analytics/utils"
)

// requiredColumns are the Search Console export columns a dataset must
// carry, in the order missing ones are reported.
var requiredColumns = []string{"query", "clicks", "impressions", "ctr", "position"}

// validMessage is returned when a table passes every check.
const validMessage = "CSV file is valid"

// SchemaError reports required columns absent from an export.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "Missing required columns: " + strings.Join(e.Missing, ", ")
}

// CoercionError reports a column whose values cannot be converted to
// their required numeric type.
type CoercionError struct {
	Column string
	Err    error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("Error converting data types: %v", e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// Validator checks that an ingested table is a usable Search Console
// export before enrichment runs.
type Validator struct {
	logger *utils.Logger
}

// NewValidator creates a Validator with the given logger.
func NewValidator(logger *utils.Logger) *Validator {
	return &Validator{logger: logger}
}

// Validate reports whether the table is a valid Search Console export,
// with a human-readable reason on rejection. The caller's table is
// never modified.
func (v *Validator) Validate(t models.Table) (bool, string) {
	if err := v.Check(t); err != nil {
		v.logger.Warn("[validator] Rejected table: %v", err)
		return false, err.Error()
	}
	return true, validMessage
}

// Check runs the schema and type checks, returning a *SchemaError or
// *CoercionError on failure.
func (v *Validator) Check(t models.Table) error {
	nt := models.Normalize(t)

	var missing []string
	for _, col := range requiredColumns {
		if nt.Column(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}

	for _, col := range []string{"clicks", "impressions", "position"} {
		if err := checkNumericColumn(nt, col, parseNumber); err != nil {
			return err
		}
	}
	// CTR may arrive as a percentage string like "10.5%".
	return checkNumericColumn(nt, "ctr", parseCTR)
}

func checkNumericColumn(t models.Table, col string, parse func(string) (float64, error)) error {
	idx := t.Column(col)
	for _, row := range t.Rows {
		if _, err := parse(row[idx]); err != nil {
			return &CoercionError{Column: col, Err: err}
		}
	}
	return nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseCTR(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	return strconv.ParseFloat(s, 64)
}
