package services

import (
	"errors"
	"strings"
	"testing"

	"aioverview-analytics/models"
	"aioverview-analytics/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger() }

func makeTable(cols []string, rows ...[]string) models.Table {
	return models.Table{Columns: cols, Rows: rows}
}

func TestValidateMissingColumns(t *testing.T) {
	v := NewValidator(newTestLogger())

	tests := []struct {
		name string
		cols []string
		want string
	}{
		{
			"no columns at all",
			[]string{},
			"Missing required columns: query, clicks, impressions, ctr, position",
		},
		{
			"one missing",
			[]string{"query", "clicks", "impressions", "ctr"},
			"Missing required columns: position",
		},
		{
			"two missing reported in required order",
			[]string{"position", "query", "ctr"},
			"Missing required columns: clicks, impressions",
		},
	}

	for _, tt := range tests {
		ok, msg := v.Validate(makeTable(tt.cols))
		if ok {
			t.Errorf("%s: Validate = true; want false", tt.name)
		}
		if msg != tt.want {
			t.Errorf("%s: message = %q; want %q", tt.name, msg, tt.want)
		}
	}
}

func TestValidateCaseInsensitiveColumns(t *testing.T) {
	v := NewValidator(newTestLogger())
	table := makeTable(
		[]string{"Query", "CLICKS", "Impressions", "CTR", "Position"},
		[]string{"shoes", "100", "1000", "10%", "3"},
	)

	ok, msg := v.Validate(table)
	if !ok {
		t.Fatalf("Validate = false (%q); want true", msg)
	}
	if msg != "CSV file is valid" {
		t.Errorf("message = %q; want %q", msg, "CSV file is valid")
	}
}

func TestValidateDoesNotMutateCaller(t *testing.T) {
	v := NewValidator(newTestLogger())
	table := makeTable(
		[]string{"Query", "Clicks", "Impressions", "CTR", "Position"},
		[]string{"shoes", "100", "1000", "10%", "3"},
	)

	v.Validate(table)

	if table.Columns[0] != "Query" {
		t.Errorf("caller's column casing changed: got %q, want %q", table.Columns[0], "Query")
	}
}

func TestValidateCoercionFailure(t *testing.T) {
	v := NewValidator(newTestLogger())

	tests := []struct {
		name string
		row  []string
	}{
		{"clicks not numeric", []string{"shoes", "lots", "1000", "10%", "3"}},
		{"impressions not numeric", []string{"shoes", "100", "many", "10%", "3"}},
		{"ctr garbage", []string{"shoes", "100", "1000", "n/a", "3"}},
		{"position not numeric", []string{"shoes", "100", "1000", "10%", "top"}},
	}

	for _, tt := range tests {
		ok, msg := v.Validate(makeTable(
			[]string{"query", "clicks", "impressions", "ctr", "position"}, tt.row))
		if ok {
			t.Errorf("%s: Validate = true; want false", tt.name)
		}
		if !strings.HasPrefix(msg, "Error converting data types: ") {
			t.Errorf("%s: message = %q; want conversion error prefix", tt.name, msg)
		}
	}
}

func TestValidateCTRVariants(t *testing.T) {
	v := NewValidator(newTestLogger())

	tests := []struct {
		ctr string
		ok  bool
	}{
		{"10%", true},
		{"10.5%", true},
		{"0.105", true},
		{"", false},
		{"abc%", false},
	}

	for _, tt := range tests {
		ok, _ := v.Validate(makeTable(
			[]string{"query", "clicks", "impressions", "ctr", "position"},
			[]string{"shoes", "100", "1000", tt.ctr, "3"},
		))
		if ok != tt.ok {
			t.Errorf("ctr %q: Validate = %v; want %v", tt.ctr, ok, tt.ok)
		}
	}
}

func TestCheckReturnsTypedErrors(t *testing.T) {
	v := NewValidator(newTestLogger())

	err := v.Check(makeTable([]string{"query", "clicks"}))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Check = %T; want *SchemaError", err)
	}
	if len(schemaErr.Missing) != 3 {
		t.Errorf("missing columns: got %v, want 3 entries", schemaErr.Missing)
	}

	err = v.Check(makeTable(
		[]string{"query", "clicks", "impressions", "ctr", "position"},
		[]string{"shoes", "bad", "1000", "10%", "3"},
	))
	var coercionErr *CoercionError
	if !errors.As(err, &coercionErr) {
		t.Fatalf("Check = %T; want *CoercionError", err)
	}
	if coercionErr.Column != "clicks" {
		t.Errorf("column: got %q, want %q", coercionErr.Column, "clicks")
	}
}
