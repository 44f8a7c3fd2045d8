package store

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/engine"
	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/schema"
)

// ============================================================================
// TRIP READS — unsorted, bounded fetches for the custom-algorithm endpoints
// ============================================================================
// No ORDER BY and no GROUP BY here on purpose: ordering and aggregation are
// the engine's job on these paths.
// ============================================================================

// TripFields is the catalog of fields the custom-sort endpoint exposes.
// sort_by values are validated against it before the engine runs.
var TripFields = schema.Config{
	Name: "trips",
	Fields: []schema.Field{
		{Key: "trip_id", Kind: schema.KindNumber},
		{Key: "total_amount", Kind: schema.KindNumber},
		{Key: "trip_distance", Kind: schema.KindNumber},
		{Key: "pickup_time", Kind: schema.KindText},
		{Key: "pickup_location", Kind: schema.KindNumber},
		{Key: "dropoff_location", Kind: schema.KindNumber},
		{Key: "speed", Kind: schema.KindNumber},
	},
}

// TripsForSort fetches up to MaxSortRows trips, unsorted, with the field
// names the dashboard expects.
func (s *Store) TripsForSort(ctx context.Context) ([]engine.Record, error) {
	const q = `
SELECT trip_id, total_amount, trip_distance,
       tpep_pickup_datetime AS pickup_time,
       PULocationID AS pickup_location,
       DOLocationID AS dropoff_location,
       average_speed_mph AS speed
FROM trips
LIMIT ?`
	return s.queryRecords(ctx, "trips for sort", q, MaxSortRows)
}

// TripsForTopN fetches up to MaxTopRows trips with the slimmer field set of
// the top-expensive endpoint.
func (s *Store) TripsForTopN(ctx context.Context) ([]engine.Record, error) {
	const q = `
SELECT trip_id, total_amount, trip_distance,
       tpep_pickup_datetime AS pickup_time
FROM trips
LIMIT ?`
	return s.queryRecords(ctx, "trips for top-n", q, MaxTopRows)
}

// BoroughAmounts fetches up to MaxGroupRows (borough, total_amount) pairs,
// ungrouped, for the custom borough aggregation.
func (s *Store) BoroughAmounts(ctx context.Context) ([]engine.Record, error) {
	const q = `
SELECT z.Borough AS borough, t.total_amount
FROM trips t
JOIN zones z ON t.PULocationID = z.LocationID
LIMIT ?`
	return s.queryRecords(ctx, "borough amounts", q, MaxGroupRows)
}

// Trips returns joined trip rows with pickup/dropoff borough names, with
// optional borough filtering and limit/offset pagination. This path keeps
// filtering in SQL — it serves the raw-data table, not the algorithm demos.
func (s *Store) Trips(ctx context.Context, limit, offset int, borough string) ([]engine.Record, error) {
	q := `
SELECT t.*, p.Borough AS Pickup_Borough, d.Borough AS Dropoff_Borough
FROM trips t
JOIN zones p ON t.PULocationID = p.LocationID
JOIN zones d ON t.DOLocationID = d.LocationID`
	args := []any{}
	if borough != "" {
		q += `
WHERE p.Borough = ?`
		args = append(args, borough)
	}
	q += `
LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	return s.queryRecords(ctx, "trips page", q, args...)
}

func (s *Store) queryRecords(ctx context.Context, what, q string, args ...any) ([]engine.Record, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s", what)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", what)
	}
	s.log.Debug("fetched records", zap.String("query", what), zap.Int("rows", len(records)))
	return records, nil
}
