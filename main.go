package main

import (
	"fmt"
	"os"
	"path/filepath"

	"aioverview-analytics/config"
	"aioverview-analytics/ingest"
	"aioverview-analytics/models"
	"aioverview-analytics/services"
	"aioverview-analytics/storage"
	"aioverview-analytics/store"
	"aioverview-analytics/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== AI Overview Analytics starting ===")
	logger.Info("Config — top queries: %d | seed: %d | report: %s",
		cfg.TopQueries, cfg.RandomSeed, cfg.ReportOutputPath)

	paths := os.Args[1:]
	if len(paths) == 0 {
		logger.Info("No input files given — loading sample data for demonstration")
		paths = cfg.SampleDataPaths
	}

	st := store.New()
	validator := services.NewValidator(logger)
	enricher := services.NewEnricher(logger, cfg.RandomSeed)

	for _, path := range paths {
		table, err := ingest.ReadFile(path)
		if err != nil {
			logger.Error("Failed to read %s: %v", path, err)
			continue
		}

		ok, msg := validator.Validate(table)
		if !ok {
			logger.Error("Rejected %s: %s", path, msg)
			continue
		}

		domain, records, err := enricher.Enrich(table)
		if err != nil {
			logger.Error("Failed to enrich %s: %v", path, err)
			continue
		}

		st.Add(&models.Dataset{
			Name:    filepath.Base(path),
			Domain:  domain,
			Records: records,
		})
		logger.Info("Processed %s — domain: %s (%d rows)", path, domain, len(records))
	}

	if st.Len() == 0 {
		logger.Error("No datasets could be loaded. Exiting.")
		os.Exit(1)
	}

	analysis := services.NewAnalysisService(logger)
	reporter := services.NewReporter()

	for _, ds := range st.Datasets() {
		summary := analysis.Summary(ds.Records)
		reporter.PrintDataset(ds, summary, analysis.TopQueries(ds.Records, cfg.TopQueries))
	}

	if cfg.AnalyzeKeyword != "" {
		matches := analysis.KeywordMatches(st, cfg.AnalyzeKeyword)
		reporter.PrintKeyword(cfg.AnalyzeKeyword, matches)
	}

	if cfg.DomainFilter != "" || cfg.URLPathFilter != "" {
		records := analysis.FilterRecords(st, cfg.DomainFilter, cfg.URLPathFilter)
		reporter.PrintFilter(cfg.DomainFilter, cfg.URLPathFilter,
			analysis.Summary(records),
			analysis.DateTrend(records),
			analysis.TopPages(records, cfg.TopQueries))
	}

	comparator := services.NewComparator(logger)
	result := comparator.Compare(st, st.Domains())
	if result == nil {
		logger.Warn("Need data from at least two domains to compare — skipping comparison")
		return
	}

	reporter.PrintComparison(result)

	writer, err := storage.NewReportWriter(cfg.ReportOutputPath)
	if err != nil {
		logger.Error("Failed to create report writer: %v", err)
		os.Exit(1)
	}
	defer writer.Close()

	if err := writer.WriteComparison(result); err != nil {
		logger.Error("Report export failed: %v", err)
	} else {
		logger.Info("Comparison report saved to %s", cfg.ReportOutputPath)
	}

	fmt.Printf("  Done. %d datasets across %d domains | report → %s\n\n",
		st.Len(), len(st.Domains()), cfg.ReportOutputPath)
}
