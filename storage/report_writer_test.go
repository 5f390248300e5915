package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"aioverview-analytics/models"
)

func TestReportWriterWritesBothSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "comparison.csv")

	w, err := NewReportWriter(path)
	if err != nil {
		t.Fatalf("NewReportWriter: %v", err)
	}

	result := &models.ComparisonResult{
		OverallMetrics: []models.DomainMetrics{
			{Domain: "a.com", TotalClicks: 100, TotalImpressions: 1000,
				AIOverviewClicks: 20, AIOverviewPercentage: 20, AveragePosition: 3},
			{Domain: "b.com", TotalClicks: 200, TotalImpressions: 1500,
				AIOverviewClicks: 20, AIOverviewPercentage: 10, AveragePosition: 5},
		},
		CommonQueries: []models.QueryMetrics{
			{Domain: "a.com", Query: "shoes", Clicks: 100, Impressions: 1000,
				AIOverviewClicks: 20, AIOverviewPercentage: 20, Position: 3},
		},
	}

	if err := w.WriteComparison(result); err != nil {
		t.Fatalf("WriteComparison: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	// header + 2 metric rows + separator + header + 1 query row
	if len(rows) != 6 {
		t.Fatalf("rows: got %d, want 6 (%v)", len(rows), rows)
	}
	if rows[0][0] != "domain" || rows[0][1] != "total_clicks" {
		t.Errorf("metrics header: got %v", rows[0])
	}
	if rows[1][0] != "a.com" || rows[1][4] != "20.00" {
		t.Errorf("a.com row: got %v", rows[1])
	}
	if rows[4][1] != "query" {
		t.Errorf("query header: got %v", rows[4])
	}
	if rows[5][1] != "shoes" || rows[5][2] != "100" {
		t.Errorf("query row: got %v", rows[5])
	}
}

func TestReportWriterBadPath(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes file creation fail.
	if _, err := NewReportWriter(dir); err == nil {
		t.Error("expected error when target path is a directory, got nil")
	}
}
