package services

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"aioverview-analytics/models"
)

// Reporter renders the analysis output as a terminal report. How many
// top-query and top-page rows appear is the caller's choice: each Print
// method renders exactly the rows it is given.
type Reporter struct{}

// NewReporter creates a Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// PrintDataset renders one dataset's headline metrics and its queries
// most affected by AI Overview.
func (r *Reporter) PrintDataset(ds *models.Dataset, summary models.AggregateMetrics, top []models.Record) {
	sep := strings.Repeat("═", 62)
	thin := strings.Repeat("─", 62)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 DATASET %s — %s\033[0m\n", ds.Name, ds.Domain)
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total queries      : \033[1m%d\033[0m\n", summary.TotalQueries)
	fmt.Printf("  Total clicks       : \033[1m%d\033[0m\n", summary.TotalClicks)
	fmt.Printf("  Total impressions  : \033[1m%d\033[0m\n", summary.TotalImpressions)
	fmt.Printf("  AI Overview clicks : \033[1m%d\033[0m\n", summary.AIOverviewClicks)
	fmt.Printf("  AI Overview %%      : \033[1;32m%.2f%%\033[0m\n", summary.AIOverviewPercentage)
	fmt.Println()

	fmt.Printf("\033[1;33m  Top Queries by AI Overview Clicks\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(top) == 0 {
		fmt.Printf("  No AI Overview click data\n")
	}
	for i, rec := range top {
		marker := ""
		if rec.Estimated {
			marker = " \033[2m(est.)\033[0m"
		}
		fmt.Printf("  \033[1m%2d.\033[0m %s \033[1;31m%d\033[0m (%.2f%%)%s\n",
			i+1, pad(rec.Query, 34), rec.AIOverviewClicks, rec.AIOverviewPercentage, marker)
	}
	fmt.Println()
}

// PrintKeyword renders a keyword lookup across all stored datasets.
func (r *Reporter) PrintKeyword(keyword string, matches []models.KeywordMatch) {
	thin := strings.Repeat("─", 62)

	fmt.Printf("\033[1;33m  Keyword Lookup: %q\033[0m\n", keyword)
	fmt.Printf("  %s\n", thin)
	if len(matches) == 0 {
		fmt.Printf("  No data found for this keyword\n\n")
		return
	}
	for _, m := range matches {
		fmt.Printf("  %s clicks: \033[1m%-6.0f\033[0m AI: \033[1;31m%-5d\033[0m pos: %.1f  ctr: %.2f%%\n",
			pad(m.Domain, 26), m.Record.Clicks, m.Record.AIOverviewClicks,
			m.Record.Position, m.Record.CTR)
	}
	fmt.Println()
}

// PrintFilter renders a domain/page filtered view: headline metrics
// plus the date trend and top pages when the data carries them.
func (r *Reporter) PrintFilter(domain, urlPath string, summary models.AggregateMetrics,
	trend []models.DateMetrics, pages []models.PageMetrics) {
	thin := strings.Repeat("─", 62)

	scope := domain
	if scope == "" {
		scope = "All Domains"
	}
	if urlPath != "" {
		scope += " · path ~ " + urlPath
	}

	fmt.Printf("\033[1;33m  Filtered View: %s\033[0m\n", scope)
	fmt.Printf("  %s\n", thin)
	if summary.TotalQueries == 0 {
		fmt.Printf("  No data found for this filter\n\n")
		return
	}
	fmt.Printf("  Queries: \033[1m%d\033[0m  Clicks: \033[1m%d\033[0m  AI Overview: \033[1;31m%d\033[0m (%.2f%%)\n",
		summary.TotalQueries, summary.TotalClicks, summary.AIOverviewClicks, summary.AIOverviewPercentage)
	fmt.Println()

	if len(trend) > 0 {
		fmt.Printf("\033[1;33m  AI Overview Trend\033[0m\n")
		fmt.Printf("  %s\n", thin)
		for _, d := range trend {
			bar := strings.Repeat("█", scaleBar(d.AIOverviewClicks, trend))
			fmt.Printf("  %s %s %d/%d clicks (%.2f%%)\n",
				d.Date, bar, d.AIOverviewClicks, d.Clicks, d.AIOverviewPercentage)
		}
		fmt.Println()
	}

	if len(pages) > 0 {
		fmt.Printf("\033[1;33m  Top Pages by AI Overview Clicks\033[0m\n")
		fmt.Printf("  %s\n", thin)
		for i, p := range pages {
			fmt.Printf("  \033[1m%2d.\033[0m %s \033[1;31m%d\033[0m (%.2f%%)\n",
				i+1, pad(p.Page, 40), p.AIOverviewClicks, p.AIOverviewPercentage)
		}
		fmt.Println()
	}
}

// PrintComparison renders the cross-domain comparison tables.
func (r *Reporter) PrintComparison(result *models.ComparisonResult) {
	sep := strings.Repeat("═", 62)
	thin := strings.Repeat("─", 62)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  ⚖️  DOMAIN COMPARISON\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overall Metrics\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, m := range result.OverallMetrics {
		fmt.Printf("  %s clicks: \033[1m%-7d\033[0m impressions: \033[1m%-8d\033[0m AI: \033[1;31m%-6d\033[0m (\033[1;32m%.2f%%\033[0m) avg pos: %.2f\n",
			pad(m.Domain, 24), m.TotalClicks, m.TotalImpressions,
			m.AIOverviewClicks, m.AIOverviewPercentage, m.AveragePosition)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Common Queries\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(result.CommonQueries) == 0 {
		fmt.Printf("  No queries shared between the compared domains\n")
	}
	lastQuery := ""
	for _, q := range result.CommonQueries {
		if q.Query != lastQuery {
			fmt.Printf("  \033[1m%s\033[0m\n", truncate(q.Query, 56))
			lastQuery = q.Query
		}
		fmt.Printf("    %s clicks: \033[1m%-6d\033[0m AI: \033[1;31m%-5d\033[0m (%.2f%%) pos: %.2f\n",
			pad(q.Domain, 24), q.Clicks, q.AIOverviewClicks,
			q.AIOverviewPercentage, q.Position)
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// scaleBar maps a value onto a 0–30 cell bar relative to the trend's
// maximum.
func scaleBar(v int, trend []models.DateMetrics) int {
	max := 0
	for _, d := range trend {
		if d.AIOverviewClicks > max {
			max = d.AIOverviewClicks
		}
	}
	if max == 0 {
		return 0
	}
	return v * 30 / max
}

// pad truncates to max display cells and right-pads to a fixed width so
// wide runes in queries and URLs keep the columns aligned.
func pad(s string, max int) string {
	return runewidth.FillRight(truncate(s, max), max)
}

func truncate(s string, max int) string {
	return runewidth.Truncate(s, max, "...")
}
