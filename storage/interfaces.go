package storage

import "aioverview-analytics/models"

// ComparisonWriter is the interface any comparison export sink must
// satisfy.
type ComparisonWriter interface {
	WriteComparison(result *models.ComparisonResult) error
	Close() error
}
