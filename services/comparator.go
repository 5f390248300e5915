package services

import (
	"sort"
	"strings"

	"aioverview-analytics/models"
	"aioverview-analytics/store"
	"aioverview-analytics/utils"
)

// Comparator aggregates enriched datasets by domain and by query across
// two or more domains.
type Comparator struct {
	logger *utils.Logger
}

// NewComparator creates a Comparator with the given logger.
func NewComparator(logger *utils.Logger) *Comparator {
	return &Comparator{logger: logger}
}

// Compare aggregates the stored datasets for the requested domains.
// It returns nil when fewer than two distinct domains are requested —
// that is the expected "not enough input" signal, not an error.
// Requested domains with no stored rows are simply absent from the
// output.
func (c *Comparator) Compare(st *store.Store, domains []string) *models.ComparisonResult {
	domains = dedupeFold(domains)
	if len(domains) < 2 {
		c.logger.Debug("[comparator] Need at least 2 distinct domains, got %d", len(domains))
		return nil
	}

	grouped := make(map[string][]models.Record, len(domains))
	for _, d := range domains {
		if recs := st.RecordsForDomain(d); len(recs) > 0 {
			grouped[d] = recs
		}
	}

	result := &models.ComparisonResult{}
	for _, d := range domains {
		recs, ok := grouped[d]
		if !ok {
			continue
		}
		m := aggregate(recs)
		result.OverallMetrics = append(result.OverallMetrics, models.DomainMetrics{
			Domain:               d,
			TotalClicks:          m.clicks,
			TotalImpressions:     m.impressions,
			AIOverviewClicks:     m.aiClicks,
			AIOverviewPercentage: m.aiPercentage,
			AveragePosition:      m.avgPosition,
		})
	}

	result.CommonQueries = commonQueries(domains, grouped)

	c.logger.Info("[comparator] Compared %d domains — %d metric rows, %d common-query rows",
		len(domains), len(result.OverallMetrics), len(result.CommonQueries))
	return result
}

// commonQueries emits one aggregated entry per (domain, query) pair for
// every query appearing in at least two of the grouped domains. Query
// matching is deliberately exact-string, unlike the case-insensitive
// domain and column matching. Output is sorted by query, then by the
// requested-domain order, so identical input yields identical output.
func commonQueries(domains []string, grouped map[string][]models.Record) []models.QueryMetrics {
	// query → domain → that domain's rows for the query
	byQuery := make(map[string]map[string][]models.Record)
	for _, d := range domains {
		for _, rec := range grouped[d] {
			perDomain, ok := byQuery[rec.Query]
			if !ok {
				perDomain = make(map[string][]models.Record)
				byQuery[rec.Query] = perDomain
			}
			perDomain[d] = append(perDomain[d], rec)
		}
	}

	queries := make([]string, 0, len(byQuery))
	for q, perDomain := range byQuery {
		if len(perDomain) >= 2 {
			queries = append(queries, q)
		}
	}
	sort.Strings(queries)

	var out []models.QueryMetrics
	for _, q := range queries {
		for _, d := range domains {
			recs, ok := byQuery[q][d]
			if !ok {
				continue
			}
			m := aggregate(recs)
			out = append(out, models.QueryMetrics{
				Domain:               d,
				Query:                q,
				Clicks:               m.clicks,
				Impressions:          m.impressions,
				AIOverviewClicks:     m.aiClicks,
				AIOverviewPercentage: m.aiPercentage,
				Position:             m.avgPosition,
			})
		}
	}
	return out
}

// sums holds the shared aggregation formulas used for both the overall
// and the per-query metrics.
type sums struct {
	clicks       int
	impressions  int
	aiClicks     int
	aiPercentage float64
	avgPosition  float64
}

func aggregate(recs []models.Record) sums {
	var clicks, impressions, position float64
	var aiClicks int
	for _, r := range recs {
		clicks += r.Clicks
		impressions += r.Impressions
		position += r.Position
		aiClicks += r.AIOverviewClicks
	}

	m := sums{
		clicks:      int(clicks),
		impressions: int(impressions),
		aiClicks:    aiClicks,
	}
	if clicks > 0 {
		m.aiPercentage = float64(aiClicks) / clicks * 100
	}
	if len(recs) > 0 {
		m.avgPosition = position / float64(len(recs))
	}
	return m
}

// dedupeFold drops case-insensitive duplicates, keeping first-seen
// order and casing.
func dedupeFold(domains []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		key := strings.ToLower(d)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}
