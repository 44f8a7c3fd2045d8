package store

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ============================================================================
// LOADER WRITES
// ============================================================================

// ZoneRow is one zone as the loader inserts it.
type ZoneRow struct {
	LocationID int64
	Borough    string
	Zone       string
}

// TripRow is one validated trip as the loader inserts it.
type TripRow struct {
	PickupTime   string // "2006-01-02 15:04:05"
	DropoffTime  string
	PULocationID int64
	DOLocationID int64
	Distance     float64
	TotalAmount  float64
	SpeedMPH     float64
	TimeOfDay    string
}

// InsertZones writes zone metadata in one transaction.
func (s *Store) InsertZones(ctx context.Context, zones []ZoneRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning zones transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO zones (LocationID, Borough, Zone) VALUES (?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "preparing zone insert")
	}
	defer stmt.Close()

	for _, z := range zones {
		if _, err := stmt.ExecContext(ctx, z.LocationID, z.Borough, z.Zone); err != nil {
			return errors.Wrapf(err, "inserting zone %d", z.LocationID)
		}
	}
	return errors.Wrap(tx.Commit(), "committing zones")
}

// InsertTrips writes validated trips in one transaction and returns the
// number inserted.
func (s *Store) InsertTrips(ctx context.Context, trips []TripRow) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "beginning trips transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO trips (tpep_pickup_datetime, tpep_dropoff_datetime,
                   PULocationID, DOLocationID,
                   trip_distance, total_amount, average_speed_mph, time_of_day)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, errors.Wrap(err, "preparing trip insert")
	}
	defer stmt.Close()

	for i, t := range trips {
		_, err := stmt.ExecContext(ctx,
			t.PickupTime, t.DropoffTime,
			t.PULocationID, t.DOLocationID,
			t.Distance, t.TotalAmount, t.SpeedMPH, t.TimeOfDay)
		if err != nil {
			return 0, errors.Wrapf(err, "inserting trip %d", i)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "committing trips")
	}
	return len(trips), nil
}
