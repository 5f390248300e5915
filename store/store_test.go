package store

import (
	"testing"

	"aioverview-analytics/models"
)

func dataset(name, domain string, queries ...string) *models.Dataset {
	ds := &models.Dataset{Name: name, Domain: domain}
	for _, q := range queries {
		ds.Records = append(ds.Records, models.Record{Query: q, Clicks: 1})
	}
	return ds
}

func TestStoreAddAndGet(t *testing.T) {
	st := New()
	st.Add(dataset("a.csv", "a.com", "shoes"))

	ds, ok := st.Get("a.csv")
	if !ok {
		t.Fatal("Get(a.csv) not found")
	}
	if ds.Domain != "a.com" {
		t.Errorf("domain: got %q, want %q", ds.Domain, "a.com")
	}
	if _, ok := st.Get("missing.csv"); ok {
		t.Error("Get(missing.csv) found; want absent")
	}
	if st.Len() != 1 {
		t.Errorf("Len: got %d, want 1", st.Len())
	}
}

func TestStoreReplaceKeepsOrder(t *testing.T) {
	st := New()
	st.Add(dataset("a.csv", "a.com"))
	st.Add(dataset("b.csv", "b.com"))
	st.Add(dataset("a.csv", "other.com"))

	names := st.Names()
	if len(names) != 2 || names[0] != "a.csv" || names[1] != "b.csv" {
		t.Errorf("Names: got %v, want [a.csv b.csv]", names)
	}
	ds, _ := st.Get("a.csv")
	if ds.Domain != "other.com" {
		t.Errorf("replaced dataset domain: got %q, want %q", ds.Domain, "other.com")
	}
}

func TestStoreDomainsDistinctFirstSeen(t *testing.T) {
	st := New()
	st.Add(dataset("a1.csv", "a.com"))
	st.Add(dataset("b.csv", "b.com"))
	st.Add(dataset("a2.csv", "A.COM"))

	domains := st.Domains()
	if len(domains) != 2 {
		t.Fatalf("Domains: got %v, want 2 distinct entries", domains)
	}
	if domains[0] != "a.com" || domains[1] != "b.com" {
		t.Errorf("Domains order: got %v, want [a.com b.com]", domains)
	}
}

func TestStoreRecordsForDomain(t *testing.T) {
	st := New()
	st.Add(dataset("a1.csv", "a.com", "one", "two"))
	st.Add(dataset("b.csv", "b.com", "three"))
	st.Add(dataset("a2.csv", "A.com", "four"))

	recs := st.RecordsForDomain("a.com")
	if len(recs) != 3 {
		t.Fatalf("records: got %d, want 3", len(recs))
	}
	// Dataset insertion order, then each dataset's internal order.
	wantQueries := []string{"one", "two", "four"}
	for i, w := range wantQueries {
		if recs[i].Query != w {
			t.Errorf("record %d: got %q, want %q", i, recs[i].Query, w)
		}
	}

	if got := st.RecordsForDomain("missing.com"); len(got) != 0 {
		t.Errorf("unknown domain: got %d records, want 0", len(got))
	}
}

func TestStoreReset(t *testing.T) {
	st := New()
	st.Add(dataset("a.csv", "a.com"))
	st.Reset()

	if st.Len() != 0 {
		t.Errorf("Len after Reset: got %d, want 0", st.Len())
	}
	if len(st.Domains()) != 0 {
		t.Errorf("Domains after Reset: got %v, want none", st.Domains())
	}

	// The store stays usable after a reset.
	st.Add(dataset("b.csv", "b.com"))
	if st.Len() != 1 {
		t.Errorf("Len after re-add: got %d, want 1", st.Len())
	}
}
