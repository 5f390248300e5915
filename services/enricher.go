package services

import (
	"math/rand"
	"net/url"
	"sort"
	"strings"
	"time"

	"aioverview-analytics/models"
	"aioverview-analytics/utils"
)

// unknownDomain is used when no page URL yields a host.
const unknownDomain = "Unknown"

// Enricher turns a validated table into enriched records: coerced
// numeric columns, a derived domain, and the AI Overview attribution
// metric — estimated when the export does not carry it.
type Enricher struct {
	logger *utils.Logger
	rng    *rand.Rand
}

// NewEnricher creates an Enricher. A non-zero seed makes the AI
// Overview estimation heuristic reproducible; seed 0 draws from the
// clock.
func NewEnricher(logger *utils.Logger, seed int64) *Enricher {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Enricher{logger: logger, rng: rand.New(rand.NewSource(seed))}
}

// Enrich processes a validated table and returns the derived domain and
// the enriched records, sorted descending by AI Overview clicks. A
// coercion failure is a hard error: no partial output is ever returned.
func (e *Enricher) Enrich(t models.Table) (string, []models.Record, error) {
	nt := models.Normalize(t)

	var missing []string
	for _, col := range requiredColumns {
		if nt.Column(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return "", nil, &SchemaError{Missing: missing}
	}

	domain := e.deriveDomain(nt)

	queryIdx := nt.Column("query")
	clicksIdx := nt.Column("clicks")
	imprIdx := nt.Column("impressions")
	ctrIdx := nt.Column("ctr")
	posIdx := nt.Column("position")

	pageIdx := nt.Column("page")
	dateIdx := nt.Column("date")
	aiIdx := nt.Column("ai_overview_clicks")

	records := make([]models.Record, 0, len(nt.Rows))
	estimated := 0

	for _, row := range nt.Rows {
		rec := models.Record{Query: row[queryIdx]}
		if pageIdx >= 0 {
			rec.Page = row[pageIdx]
		}
		if dateIdx >= 0 {
			rec.Date = row[dateIdx]
		}

		var err error
		if rec.Clicks, err = parseNumber(row[clicksIdx]); err != nil {
			return "", nil, &CoercionError{Column: "clicks", Err: err}
		}
		if rec.Impressions, err = parseNumber(row[imprIdx]); err != nil {
			return "", nil, &CoercionError{Column: "impressions", Err: err}
		}
		if rec.Position, err = parseNumber(row[posIdx]); err != nil {
			return "", nil, &CoercionError{Column: "position", Err: err}
		}
		if rec.CTR, err = parseCTR(row[ctrIdx]); err != nil {
			return "", nil, &CoercionError{Column: "ctr", Err: err}
		}

		if aiIdx >= 0 {
			ai, err := parseNumber(row[aiIdx])
			if err != nil {
				return "", nil, &CoercionError{Column: "ai_overview_clicks", Err: err}
			}
			rec.AIOverviewClicks = int(ai)
		} else {
			// Placeholder heuristic: the export does not carry AI Overview
			// attribution, so simulate it as a binomial share of clicks that
			// shrinks with worse positions. Flagged via Estimated.
			p := utils.Clamp(1.0/(rec.Position+1), 0, 0.5)
			rec.AIOverviewClicks = utils.Binomial(e.rng, int(rec.Clicks), p)
			rec.Estimated = true
			estimated++
		}

		if rec.Clicks > 0 {
			rec.AIOverviewPercentage = float64(rec.AIOverviewClicks) / rec.Clicks * 100
		}

		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AIOverviewClicks > records[j].AIOverviewClicks
	})

	if estimated > 0 {
		e.logger.Warn("[enricher] No ai_overview_clicks column — estimated %d synthetic values (domain: %s)",
			estimated, domain)
	}
	e.logger.Info("[enricher] Enriched %d records for domain %s", len(records), domain)

	return domain, records, nil
}

// deriveDomain takes the host of the first page URL, or "Unknown" when
// the column is absent, empty, or unparseable.
func (e *Enricher) deriveDomain(t models.Table) string {
	pageIdx := t.Column("page")
	if pageIdx < 0 || len(t.Rows) == 0 {
		return unknownDomain
	}

	first := strings.TrimSpace(t.Rows[0][pageIdx])
	if first == "" {
		return unknownDomain
	}

	u, err := url.Parse(first)
	if err != nil || u.Host == "" {
		e.logger.Debug("[enricher] Could not extract host from %q — using %s", first, unknownDomain)
		return unknownDomain
	}
	return u.Host
}
