package api

import (
	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/schema"
	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/store"
)

// Option configures the server via functional options.
type Option func(*options)

type options struct {
	rejectionLog string        // path to the ingest rejection log
	tripFields   schema.Config // sortable-field catalog for custom-sort
	corsOrigins  []string      // empty = allow all
}

// WithRejectionLog sets the rejection-log path the quality endpoint reads.
func WithRejectionLog(path string) Option {
	return func(o *options) {
		o.rejectionLog = path
	}
}

// WithTripFields overrides the sortable-field catalog.
func WithTripFields(cfg schema.Config) Option {
	return func(o *options) {
		o.tripFields = cfg
	}
}

// WithCORSOrigins restricts CORS to the given origins instead of allowing
// every origin.
func WithCORSOrigins(origins ...string) Option {
	return func(o *options) {
		o.corsOrigins = origins
	}
}

func applyOptions(opts []Option) options {
	o := options{
		rejectionLog: "output/suspicious_records.log",
		tripFields:   store.TripFields,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
