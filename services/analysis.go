package services

import (
	"sort"
	"strings"

	"aioverview-analytics/models"
	"aioverview-analytics/store"
	"aioverview-analytics/utils"
)

// AnalysisService answers the single-dataset and cross-dataset lookup
// questions the dashboard asks: summaries, keyword lookups, domain and
// page filtering, and trend groupings.
type AnalysisService struct {
	logger *utils.Logger
}

// NewAnalysisService creates an AnalysisService with the given logger.
func NewAnalysisService(logger *utils.Logger) *AnalysisService {
	return &AnalysisService{logger: logger}
}

// Summary aggregates an arbitrary record set into headline metrics.
func (s *AnalysisService) Summary(records []models.Record) models.AggregateMetrics {
	m := aggregate(records)
	return models.AggregateMetrics{
		TotalQueries:         len(records),
		TotalClicks:          m.clicks,
		TotalImpressions:     m.impressions,
		AIOverviewClicks:     m.aiClicks,
		AIOverviewPercentage: m.aiPercentage,
	}
}

// TopQueries returns the first n records. Enriched datasets are already
// sorted descending by AI Overview clicks, so this is the top-n view.
func (s *AnalysisService) TopQueries(records []models.Record, n int) []models.Record {
	if n > len(records) {
		n = len(records)
	}
	if n < 0 {
		n = 0
	}
	return records[:n]
}

// KeywordMatches finds every record whose query equals the keyword,
// ignoring case, across all stored datasets. An empty result means "no
// data found" and is not an error.
func (s *AnalysisService) KeywordMatches(st *store.Store, keyword string) []models.KeywordMatch {
	var out []models.KeywordMatch
	for _, ds := range st.Datasets() {
		for _, rec := range ds.Records {
			if strings.EqualFold(rec.Query, keyword) {
				out = append(out, models.KeywordMatch{Domain: ds.Domain, Record: rec})
			}
		}
	}

	s.logger.Info("[analysis] Keyword %q matched %d records", keyword, len(out))
	return out
}

// FilterRecords collects records for one domain (or all domains when
// domain is empty), optionally keeping only pages containing urlPath,
// ignoring case. Dataset insertion order is preserved.
func (s *AnalysisService) FilterRecords(st *store.Store, domain, urlPath string) []models.Record {
	needle := strings.ToLower(urlPath)

	var out []models.Record
	for _, ds := range st.Datasets() {
		if domain != "" && !strings.EqualFold(ds.Domain, domain) {
			continue
		}
		for _, rec := range ds.Records {
			if needle != "" && !strings.Contains(strings.ToLower(rec.Page), needle) {
				continue
			}
			out = append(out, rec)
		}
	}
	return out
}

// DateTrend groups records by date, summing the click metrics per day.
// Records without a date are skipped; output is sorted by date string,
// which orders ISO dates chronologically.
func (s *AnalysisService) DateTrend(records []models.Record) []models.DateMetrics {
	byDate := make(map[string][]models.Record)
	var dates []string
	for _, rec := range records {
		if rec.Date == "" {
			continue
		}
		if _, ok := byDate[rec.Date]; !ok {
			dates = append(dates, rec.Date)
		}
		byDate[rec.Date] = append(byDate[rec.Date], rec)
	}
	sort.Strings(dates)

	out := make([]models.DateMetrics, 0, len(dates))
	for _, d := range dates {
		m := aggregate(byDate[d])
		out = append(out, models.DateMetrics{
			Date:                 d,
			Clicks:               m.clicks,
			Impressions:          m.impressions,
			AIOverviewClicks:     m.aiClicks,
			AIOverviewPercentage: m.aiPercentage,
		})
	}
	return out
}

// TopPages groups records by page URL and returns the n pages with the
// most AI Overview clicks. Records without a page are skipped; ties
// keep first-seen order.
func (s *AnalysisService) TopPages(records []models.Record, n int) []models.PageMetrics {
	byPage := make(map[string][]models.Record)
	var pages []string
	for _, rec := range records {
		if rec.Page == "" {
			continue
		}
		if _, ok := byPage[rec.Page]; !ok {
			pages = append(pages, rec.Page)
		}
		byPage[rec.Page] = append(byPage[rec.Page], rec)
	}

	out := make([]models.PageMetrics, 0, len(pages))
	for _, p := range pages {
		m := aggregate(byPage[p])
		out = append(out, models.PageMetrics{
			Page:                 p,
			Clicks:               m.clicks,
			Impressions:          m.impressions,
			AIOverviewClicks:     m.aiClicks,
			AIOverviewPercentage: m.aiPercentage,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AIOverviewClicks > out[j].AIOverviewClicks
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
