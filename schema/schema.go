// Package schema describes the field catalog of a record collection: which
// field names exist and whether each holds numbers or text. The API layer
// checks caller-supplied field names (sort_by, grouping keys) against a
// catalog before running the engine, so a typo surfaces as an
// UnknownFieldError instead of a silently empty sort.
package schema

import (
	"sort"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/engine"
)

// Kind classifies a field's value type.
type Kind string

const (
	KindNumber Kind = "number"
	KindText   Kind = "text"
)

// Field is one catalog entry.
type Field struct {
	Key  string `json:"key"`
	Kind Kind   `json:"kind"`
}

// Config is the catalog for one record collection.
type Config struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Lookup finds a field by key.
func (c Config) Lookup(key string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// FieldKeys returns the catalog's keys in declaration order.
func (c Config) FieldKeys() []string {
	keys := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Validate checks a caller-supplied field name against the catalog and
// returns the engine's typed error when it is absent.
func (c Config) Validate(key string) error {
	if _, ok := c.Lookup(key); !ok {
		return &engine.UnknownFieldError{Field: key}
	}
	return nil
}

// Infer builds a catalog from a sample of records. A field that ever
// carries a numeric value is a number; everything else is text. Null-only
// fields default to text. Keys are sorted so the catalog is deterministic
// regardless of record map iteration order.
func Infer(name string, records []engine.Record) Config {
	kinds := make(map[string]Kind)

	for _, rec := range records {
		for key, val := range rec {
			if _, seen := kinds[key]; !seen {
				kinds[key] = KindText
			}
			switch val.(type) {
			case float64, int, int64:
				kinds[key] = KindNumber
			}
		}
	}

	keys := make([]string, 0, len(kinds))
	for key := range kinds {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cfg := Config{Name: name, Fields: make([]Field, 0, len(keys))}
	for _, key := range keys {
		cfg.Fields = append(cfg.Fields, Field{Key: key, Kind: kinds[key]})
	}
	return cfg
}
