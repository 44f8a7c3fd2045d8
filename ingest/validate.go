package ingest

import (
	"time"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/store"
)

// ============================================================================
// VALIDATION — the quality gate between CSV and database
// ============================================================================

// Rejection issue labels. These are the log-line prefixes the counter keys
// on, so they must stay stable.
const (
	IssueNegativeFare = "Negative fare"
	IssueUnknownZone  = "Unknown zone"
	IssueTimeReversal = "Time reversal"
	IssueExtremeSpeed = "Extreme speed"
)

// MaxPlausibleSpeedMPH rejects trips faster than any taxi gets in the city.
const MaxPlausibleSpeedMPH = 100.0

const timeLayout = "2006-01-02 15:04:05"

// Validator checks raw trips against the zone lookup and physical sanity.
type Validator struct {
	zones map[int64]bool
}

// NewValidator builds a validator from the known zone IDs.
func NewValidator(zoneIDs []int64) *Validator {
	zones := make(map[int64]bool, len(zoneIDs))
	for _, id := range zoneIDs {
		zones[id] = true
	}
	return &Validator{zones: zones}
}

// Check validates one raw trip. On success it returns the enriched row for
// insertion (speed and time-of-day derived). On failure it returns the issue
// label for the rejection log. A row failing several checks reports only the
// first, in this order: negative fare, unknown zone, time reversal, extreme
// speed.
func (v *Validator) Check(raw RawTrip) (store.TripRow, string, bool) {
	if raw.TotalAmount < 0 {
		return store.TripRow{}, IssueNegativeFare, false
	}
	if !v.zones[raw.PULocationID] || !v.zones[raw.DOLocationID] {
		return store.TripRow{}, IssueUnknownZone, false
	}

	pickup, err := time.Parse(timeLayout, raw.PickupTime)
	if err != nil {
		return store.TripRow{}, IssueTimeReversal, false
	}
	dropoff, err := time.Parse(timeLayout, raw.DropoffTime)
	if err != nil {
		return store.TripRow{}, IssueTimeReversal, false
	}
	duration := dropoff.Sub(pickup)
	if duration <= 0 {
		return store.TripRow{}, IssueTimeReversal, false
	}

	speed := raw.Distance / duration.Hours()
	if speed > MaxPlausibleSpeedMPH {
		return store.TripRow{}, IssueExtremeSpeed, false
	}

	return store.TripRow{
		PickupTime:   raw.PickupTime,
		DropoffTime:  raw.DropoffTime,
		PULocationID: raw.PULocationID,
		DOLocationID: raw.DOLocationID,
		Distance:     raw.Distance,
		TotalAmount:  raw.TotalAmount,
		SpeedMPH:     speed,
		TimeOfDay:    timeOfDay(pickup.Hour()),
	}, "", true
}

// timeOfDay buckets a pickup hour for the efficiency chart.
func timeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Morning"
	case hour >= 12 && hour < 17:
		return "Afternoon"
	case hour >= 17 && hour < 21:
		return "Evening"
	default:
		return "Night"
	}
}
