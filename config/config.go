package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// RandomSeed drives the AI Overview estimation heuristic. 0 means
	// seed from the clock; any other value makes runs reproducible.
	RandomSeed int64
	// TopQueries limits the top-query and top-page report sections.
	TopQueries int

	// AnalyzeKeyword, when set, runs a keyword lookup across all datasets.
	AnalyzeKeyword string
	// DomainFilter/URLPathFilter, when set, run a filtered domain/page view.
	DomainFilter  string
	URLPathFilter string

	ReportOutputPath string
	SampleDataPaths  []string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		RandomSeed: getEnvInt64("RANDOM_SEED", 0),
		TopQueries: getEnvInt("TOP_QUERIES", 10),

		AnalyzeKeyword: getEnv("ANALYZE_KEYWORD", ""),
		DomainFilter:   getEnv("DOMAIN_FILTER", ""),
		URLPathFilter:  getEnv("URL_PATH_FILTER", ""),

		ReportOutputPath: getEnv("REPORT_OUTPUT_PATH", "./output/comparison.csv"),
		SampleDataPaths: getEnvList("SAMPLE_DATA_PATHS",
			"./data/sample_data.csv,./data/sample_data_domain2.csv"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.ParseInt(val, 10, 64)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
