package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"aioverview-analytics/models"
)

// ReportWriter exports a domain comparison to a CSV file.
type ReportWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewReportWriter creates (or truncates) the CSV file at the given
// path. Intermediate directories are created automatically.
func NewReportWriter(path string) (*ReportWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	return &ReportWriter{file: f, writer: csv.NewWriter(f)}, nil
}

// WriteComparison writes the overall-metrics section followed by the
// common-queries section, separated by a blank row.
func (w *ReportWriter) WriteComparison(result *models.ComparisonResult) error {
	if err := w.writer.Write([]string{
		"domain", "total_clicks", "total_impressions",
		"ai_overview_clicks", "ai_overview_percentage", "average_position",
	}); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, m := range result.OverallMetrics {
		row := []string{
			m.Domain,
			strconv.Itoa(m.TotalClicks),
			strconv.Itoa(m.TotalImpressions),
			strconv.Itoa(m.AIOverviewClicks),
			formatFloat(m.AIOverviewPercentage),
			formatFloat(m.AveragePosition),
		}
		if err := w.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	if err := w.writer.Write([]string{""}); err != nil {
		return fmt.Errorf("csv: write separator: %w", err)
	}

	if err := w.writer.Write([]string{
		"domain", "query", "clicks", "impressions",
		"ai_overview_clicks", "ai_overview_percentage", "position",
	}); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, q := range result.CommonQueries {
		row := []string{
			q.Domain,
			q.Query,
			strconv.Itoa(q.Clicks),
			strconv.Itoa(q.Impressions),
			strconv.Itoa(q.AIOverviewClicks),
			formatFloat(q.AIOverviewPercentage),
			formatFloat(q.Position),
		}
		if err := w.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.writer.Flush()
	return w.writer.Error()
}

// Close flushes and closes the underlying file.
func (w *ReportWriter) Close() error {
	w.writer.Flush()
	return w.file.Close()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
