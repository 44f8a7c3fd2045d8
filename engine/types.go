// Package engine is an in-memory sequence-processing toolkit for trip
// records: stable exchange sorting, top-N selection, grouping, and group
// averaging over heterogeneous field-to-value mappings.
//
// The engine never touches storage. Callers fetch a bounded record sequence
// from the store, run it through one of the operations here, and hand the
// result to the response layer. Input sequences are borrowed for the
// duration of a call and never mutated; every operation returns a fresh
// slice.
//
// The sort is a deliberate bubble sort and the aggregation a deliberate
// linear pass — the service exists to demonstrate these algorithms instead
// of the SQL ORDER BY / GROUP BY that would normally do the work. Callers
// are expected to bound input size (the store caps reads at a few thousand
// rows); nothing here enforces it.
package engine

// Record is one row of trip or zone data: a mapping from field name to
// value. Values are nil, float64, or string — the store normalizes integer
// and byte-slice columns on read. Records in one sequence need not share
// identical field sets.
type Record map[string]any

// Group is one bucket produced by GroupBy: the shared key value and the
// member records in input order. A nil Key is the bucket for records where
// the grouping field is missing or null.
type Group struct {
	Key     any
	Records []Record
}

// GroupAverage pairs a grouping key with the arithmetic mean of a numeric
// field across the group's eligible records.
type GroupAverage struct {
	Key     any
	Average float64
	Count   int // eligible records that contributed to the mean
}
