// Command triploader imports taxi CSV exports into the SQLite database,
// writing rows that fail validation to the rejection log instead.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/config"
	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/ingest"
	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("TRIPS", os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.ZonesCSV == "" || cfg.TripsCSV == "" {
		return fmt.Errorf("both --zones-csv and --trips-csv are required")
	}

	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := zcfg.Build()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()

	st, err := store.Open(ctx, cfg.DBPath, log)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}

	// Zones first — trip validation needs the zone lookup.
	zf, err := os.Open(cfg.ZonesCSV)
	if err != nil {
		return err
	}
	zones, err := ingest.ParseZonesCSV(zf)
	zf.Close()
	if err != nil {
		return err
	}
	if err := st.InsertZones(ctx, zones); err != nil {
		return err
	}
	log.Info("zones loaded", zap.Int("count", len(zones)))

	tf, err := os.Open(cfg.TripsCSV)
	if err != nil {
		return err
	}
	raw, err := ingest.ParseTripsCSV(tf)
	tf.Close()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.RejectionLog), 0o755); err != nil {
		return err
	}
	rf, err := os.Create(cfg.RejectionLog)
	if err != nil {
		return err
	}
	defer rf.Close()
	rejections := ingest.NewRejectionLog(rf)

	zoneIDs := make([]int64, len(zones))
	for i, z := range zones {
		zoneIDs[i] = z.LocationID
	}
	validator := ingest.NewValidator(zoneIDs)

	var valid []store.TripRow
	rejected := 0
	for i, trip := range raw {
		row, issue, ok := validator.Check(trip)
		if !ok {
			rejected++
			if err := rejections.Log(issue, fmt.Sprintf("row %d", i+1)); err != nil {
				return err
			}
			continue
		}
		valid = append(valid, row)
	}

	inserted, err := st.InsertTrips(ctx, valid)
	if err != nil {
		return err
	}

	log.Info("load complete",
		zap.Int("parsed", len(raw)),
		zap.Int("inserted", inserted),
		zap.Int("rejected", rejected),
		zap.String("rejection_log", cfg.RejectionLog),
	)
	return nil
}
