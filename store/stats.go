package store

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
)

// ============================================================================
// DASHBOARD STATS — SQL-side aggregation for the non-algorithm endpoints
// ============================================================================

// Zone is one row of spatial metadata.
type Zone struct {
	Borough string `json:"Borough"`
	Zone    string `json:"Zone"`
}

// Summary holds the dashboard header KPIs.
type Summary struct {
	TotalTrips int64   `json:"total_trips"`
	AvgFare    float64 `json:"avg_fare"`
}

// BoroughCount is one bar of the borough distribution chart.
type BoroughCount struct {
	Borough   string `json:"Borough"`
	TripCount int64  `json:"trip_count"`
}

// SpeedByTime is one point of the time-efficiency line chart.
type SpeedByTime struct {
	TimeOfDay string  `json:"time_of_day"`
	AvgSpeed  float64 `json:"avg_speed"`
}

// HourlyTrips is one point of the peak-hours chart.
type HourlyTrips struct {
	Hour  string
	Count int64
}

// RevenueDuration holds the analytics-summary KPI inputs, at full precision.
type RevenueDuration struct {
	TotalRevenue   float64 // sum of total_amount; 0 when the table is empty
	AvgDurationMin float64 // mean trip duration in minutes; 0 when unknown
}

// Zones returns LocationID → zone metadata for O(1) lookup on the frontend.
func (s *Store) Zones(ctx context.Context) (map[int64]Zone, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT LocationID, Borough, Zone FROM zones`)
	if err != nil {
		return nil, errors.Wrap(err, "querying zones")
	}
	defer rows.Close()

	zones := make(map[int64]Zone)
	for rows.Next() {
		var id int64
		var z Zone
		if err := rows.Scan(&id, &z.Borough, &z.Zone); err != nil {
			return nil, errors.Wrap(err, "scanning zone")
		}
		zones[id] = z
	}
	return zones, errors.Wrap(rows.Err(), "iterating zones")
}

// Summary returns the trip count and average fare, fare rounded to 2
// decimals in SQL to match the dashboard header contract.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	const q = `
SELECT COUNT(*)                    AS total_trips,
       ROUND(AVG(total_amount), 2) AS avg_fare
FROM trips`
	var out Summary
	var avg sql.NullFloat64
	if err := s.db.QueryRowContext(ctx, q).Scan(&out.TotalTrips, &avg); err != nil {
		return Summary{}, errors.Wrap(err, "querying summary")
	}
	out.AvgFare = avg.Float64
	return out, nil
}

// BoroughCounts returns trip counts per borough, busiest first.
func (s *Store) BoroughCounts(ctx context.Context) ([]BoroughCount, error) {
	const q = `
SELECT z.Borough, COUNT(*) AS trip_count
FROM trips t
JOIN zones z ON t.PULocationID = z.LocationID
GROUP BY z.Borough
ORDER BY trip_count DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "querying borough counts")
	}
	defer rows.Close()

	var out []BoroughCount
	for rows.Next() {
		var bc BoroughCount
		if err := rows.Scan(&bc.Borough, &bc.TripCount); err != nil {
			return nil, errors.Wrap(err, "scanning borough count")
		}
		out = append(out, bc)
	}
	return out, errors.Wrap(rows.Err(), "iterating borough counts")
}

// TimeEfficiency returns the average speed per time-of-day bucket.
func (s *Store) TimeEfficiency(ctx context.Context) ([]SpeedByTime, error) {
	const q = `
SELECT time_of_day, ROUND(AVG(average_speed_mph), 2) AS avg_speed
FROM trips
GROUP BY time_of_day`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "querying time efficiency")
	}
	defer rows.Close()

	var out []SpeedByTime
	for rows.Next() {
		var st SpeedByTime
		if err := rows.Scan(&st.TimeOfDay, &st.AvgSpeed); err != nil {
			return nil, errors.Wrap(err, "scanning time efficiency")
		}
		out = append(out, st)
	}
	return out, errors.Wrap(rows.Err(), "iterating time efficiency")
}

// RevenueAndDuration computes total revenue and mean trip duration. Duration
// is derived from distance over speed, skipping zero-speed rows.
func (s *Store) RevenueAndDuration(ctx context.Context) (RevenueDuration, error) {
	const q = `
SELECT SUM(total_amount)                                               AS total_rev,
       AVG(trip_distance / (NULLIF(average_speed_mph, 0) / 60.0))      AS avg_dur
FROM trips`
	var rev, dur sql.NullFloat64
	if err := s.db.QueryRowContext(ctx, q).Scan(&rev, &dur); err != nil {
		return RevenueDuration{}, errors.Wrap(err, "querying revenue and duration")
	}
	return RevenueDuration{TotalRevenue: rev.Float64, AvgDurationMin: dur.Float64}, nil
}

// TripsByHour returns trip counts per pickup hour, ascending by hour.
func (s *Store) TripsByHour(ctx context.Context) ([]HourlyTrips, error) {
	const q = `
SELECT strftime('%H', tpep_pickup_datetime) AS hr, COUNT(*) AS count
FROM trips
GROUP BY hr
ORDER BY hr ASC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "querying hourly trips")
	}
	defer rows.Close()

	var out []HourlyTrips
	for rows.Next() {
		var ht HourlyTrips
		if err := rows.Scan(&ht.Hour, &ht.Count); err != nil {
			return nil, errors.Wrap(err, "scanning hourly trips")
		}
		out = append(out, ht)
	}
	return out, errors.Wrap(rows.Err(), "iterating hourly trips")
}

// ValidTripCount returns the number of rows that survived ingest validation,
// i.e. everything in the trips table.
func (s *Store) ValidTripCount(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trips`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "counting trips")
	}
	return n, nil
}
