// Package store holds the in-memory collection of enriched datasets.
// The store is an explicit value owned by the caller — there is no
// process-wide instance — and it is never persisted.
package store

import (
	"strings"

	"aioverview-analytics/models"
)

// Store maps dataset names (originating file names) to their enriched
// datasets, preserving insertion order.
type Store struct {
	names    []string
	datasets map[string]*models.Dataset
}

// New creates an empty Store.
func New() *Store {
	return &Store{datasets: make(map[string]*models.Dataset)}
}

// Add stores a dataset keyed by its name. Re-adding a name replaces the
// dataset but keeps its original position.
func (s *Store) Add(ds *models.Dataset) {
	if _, exists := s.datasets[ds.Name]; !exists {
		s.names = append(s.names, ds.Name)
	}
	s.datasets[ds.Name] = ds
}

// Get returns the dataset stored under name.
func (s *Store) Get(name string) (*models.Dataset, bool) {
	ds, ok := s.datasets[name]
	return ds, ok
}

// Names returns the stored dataset names in insertion order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of stored datasets.
func (s *Store) Len() int { return len(s.datasets) }

// Reset drops every stored dataset.
func (s *Store) Reset() {
	s.names = nil
	s.datasets = make(map[string]*models.Dataset)
}

// Datasets returns all datasets in insertion order.
func (s *Store) Datasets() []*models.Dataset {
	out := make([]*models.Dataset, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.datasets[name])
	}
	return out
}

// Domains returns the distinct domains seen so far, in first-seen order.
func (s *Store) Domains() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, name := range s.names {
		d := s.datasets[name].Domain
		key := strings.ToLower(d)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}

// DatasetsForDomain returns the datasets whose domain matches, ignoring
// case, in insertion order.
func (s *Store) DatasetsForDomain(domain string) []*models.Dataset {
	var out []*models.Dataset
	for _, name := range s.names {
		if ds := s.datasets[name]; strings.EqualFold(ds.Domain, domain) {
			out = append(out, ds)
		}
	}
	return out
}

// RecordsForDomain concatenates the records of every dataset matching
// the domain: dataset insertion order first, then each dataset's own
// sort order.
func (s *Store) RecordsForDomain(domain string) []models.Record {
	var out []models.Record
	for _, ds := range s.DatasetsForDomain(domain) {
		out = append(out, ds.Records...)
	}
	return out
}
