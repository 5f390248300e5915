package models

import "strings"

// Table is a parsed tabular dataset: a header row plus data rows, all
// values still raw strings exactly as they appeared in the CSV export.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Normalize returns a copy of t with every column name lowercased,
// trimmed, and with spaces replaced by underscores, so an exported
// header like "AI Overview Clicks" matches the internal
// ai_overview_clicks name. The input table is never modified, so
// callers keep their original casing.
func Normalize(t Table) Table {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		c = strings.ToLower(strings.TrimSpace(c))
		cols[i] = strings.ReplaceAll(c, " ", "_")
	}
	return Table{Columns: cols, Rows: t.Rows}
}

// Column returns the index of the named column, or -1 if absent.
func (t Table) Column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Record is one enriched Search Console row: the coerced export metrics
// plus the derived AI Overview attribution.
type Record struct {
	Query       string
	Page        string
	Date        string
	Clicks      float64
	Impressions float64
	CTR         float64
	Position    float64

	AIOverviewClicks     int
	AIOverviewPercentage float64
	// Estimated is true when AIOverviewClicks was drawn from the binomial
	// placeholder heuristic instead of being supplied by the export.
	Estimated bool
}

// Dataset is the enriched record set derived from one ingested file,
// bound to the domain extracted from its page URLs.
type Dataset struct {
	Name    string
	Domain  string
	Records []Record
}

// DomainMetrics aggregates one domain's rows for the comparison view.
type DomainMetrics struct {
	Domain               string
	TotalClicks          int
	TotalImpressions     int
	AIOverviewClicks     int
	AIOverviewPercentage float64
	AveragePosition      float64
}

// QueryMetrics aggregates one (domain, query) pair for the common-query
// comparison.
type QueryMetrics struct {
	Domain               string
	Query                string
	Clicks               int
	Impressions          int
	AIOverviewClicks     int
	AIOverviewPercentage float64
	Position             float64
}

// ComparisonResult is the output of comparing two or more domains.
type ComparisonResult struct {
	OverallMetrics []DomainMetrics
	CommonQueries  []QueryMetrics
}

// AggregateMetrics summarises an arbitrary set of records.
type AggregateMetrics struct {
	TotalQueries         int
	TotalClicks          int
	TotalImpressions     int
	AIOverviewClicks     int
	AIOverviewPercentage float64
}

// DateMetrics is one point of a per-date trend aggregation.
type DateMetrics struct {
	Date                 string
	Clicks               int
	Impressions          int
	AIOverviewClicks     int
	AIOverviewPercentage float64
}

// PageMetrics aggregates all rows of a single page URL.
type PageMetrics struct {
	Page                 string
	Clicks               int
	Impressions          int
	AIOverviewClicks     int
	AIOverviewPercentage float64
}

// KeywordMatch is one record matching a keyword lookup, tagged with the
// domain it came from.
type KeywordMatch struct {
	Domain string
	Record Record
}
