// Package ingest loads raw taxi CSV exports into the store. Rows pass a
// validation gate first: negative fares, time reversals, extreme speeds and
// unknown zones are written to a rejection log instead of the database, and
// the quality endpoint reports totals counted back out of that log.
package ingest

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/store"
)

// RawTrip is one trip row as it appears in the CSV, before validation.
type RawTrip struct {
	PickupTime   string
	DropoffTime  string
	PULocationID int64
	DOLocationID int64
	Distance     float64
	TotalAmount  float64
}

// tripColumns maps the CSV headers the parser understands. Extra columns in
// the export are skipped.
var tripColumns = []string{
	"tpep_pickup_datetime",
	"tpep_dropoff_datetime",
	"PULocationID",
	"DOLocationID",
	"trip_distance",
	"total_amount",
}

// ParseTripsCSV reads a trip export. Rows with unparseable numeric columns
// are dropped silently — they carry no usable signal, unlike the validation
// failures the loader logs.
func ParseTripsCSV(r io.Reader) ([]RawTrip, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading trip CSV header")
	}
	idx, err := indexColumns(headers, tripColumns)
	if err != nil {
		return nil, err
	}

	var trips []RawTrip
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		pu, err1 := strconv.ParseInt(field(row, idx["PULocationID"]), 10, 64)
		do, err2 := strconv.ParseInt(field(row, idx["DOLocationID"]), 10, 64)
		dist, err3 := strconv.ParseFloat(field(row, idx["trip_distance"]), 64)
		amt, err4 := strconv.ParseFloat(field(row, idx["total_amount"]), 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}

		trips = append(trips, RawTrip{
			PickupTime:   field(row, idx["tpep_pickup_datetime"]),
			DropoffTime:  field(row, idx["tpep_dropoff_datetime"]),
			PULocationID: pu,
			DOLocationID: do,
			Distance:     dist,
			TotalAmount:  amt,
		})
	}
	return trips, nil
}

// ParseZonesCSV reads the zone lookup export (LocationID, Borough, Zone).
func ParseZonesCSV(r io.Reader) ([]store.ZoneRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading zone CSV header")
	}
	idx, err := indexColumns(headers, []string{"LocationID", "Borough", "Zone"})
	if err != nil {
		return nil, err
	}

	var zones []store.ZoneRow
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		id, err := strconv.ParseInt(field(row, idx["LocationID"]), 10, 64)
		if err != nil {
			continue
		}
		zones = append(zones, store.ZoneRow{
			LocationID: id,
			Borough:    field(row, idx["Borough"]),
			Zone:       field(row, idx["Zone"]),
		})
	}
	return zones, nil
}

// indexColumns locates each wanted header, failing when one is absent.
func indexColumns(headers, wanted []string) (map[string]int, error) {
	pos := make(map[string]int, len(headers))
	for i, h := range headers {
		pos[strings.TrimSpace(h)] = i
	}

	idx := make(map[string]int, len(wanted))
	for _, w := range wanted {
		i, ok := pos[w]
		if !ok {
			return nil, errors.Newf("CSV missing required column %q", w)
		}
		idx[w] = i
	}
	return idx, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
