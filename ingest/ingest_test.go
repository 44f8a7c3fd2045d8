package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var tripCSV = `VendorID,tpep_pickup_datetime,tpep_dropoff_datetime,passenger_count,trip_distance,PULocationID,DOLocationID,total_amount
1,2024-01-15 08:30:00,2024-01-15 08:50:00,1,5.0,1,2,22.50
2,2024-01-15 18:10:00,2024-01-15 18:40:00,2,8.0,2,1,35.00
1,2024-01-15 09:00:00,2024-01-15 08:00:00,1,3.0,1,1,10.00
2,2024-01-15 10:00:00,2024-01-15 10:05:00,1,12.0,1,2,18.00
1,2024-01-15 11:00:00,2024-01-15 11:20:00,1,2.0,9,1,-5.00
1,2024-01-15 12:00:00,2024-01-15 12:30:00,1,4.0,99,1,15.00
`

func TestParseTripsCSV(t *testing.T) {
	trips, err := ParseTripsCSV(strings.NewReader(tripCSV))
	require.NoError(t, err)
	require.Len(t, trips, 6)

	first := trips[0]
	require.Equal(t, "2024-01-15 08:30:00", first.PickupTime)
	require.EqualValues(t, 1, first.PULocationID)
	require.EqualValues(t, 2, first.DOLocationID)
	require.Equal(t, 5.0, first.Distance)
	require.Equal(t, 22.5, first.TotalAmount)
}

func TestParseTripsCSVMissingColumn(t *testing.T) {
	_, err := ParseTripsCSV(strings.NewReader("a,b,c\n1,2,3\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing required column")
}

func TestParseZonesCSV(t *testing.T) {
	zones, err := ParseZonesCSV(strings.NewReader(
		"LocationID,Borough,Zone\n1,Queens,Astoria\n2,Brooklyn,Williamsburg\n"))
	require.NoError(t, err)
	require.Len(t, zones, 2)
	require.Equal(t, "Queens", zones[0].Borough)
	require.EqualValues(t, 2, zones[1].LocationID)
}

func TestValidatorCheck(t *testing.T) {
	v := NewValidator([]int64{1, 2})
	trips, err := ParseTripsCSV(strings.NewReader(tripCSV))
	require.NoError(t, err)

	wantIssues := []string{
		"",                 // valid: 5mi in 20min = 15mph
		"",                 // valid: 8mi in 30min = 16mph
		IssueTimeReversal,  // dropoff before pickup
		IssueExtremeSpeed,  // 12mi in 5min = 144mph
		IssueNegativeFare,  // fare precedes the zone check on location 9
		IssueUnknownZone,   // pickup zone 99 not in lookup
	}

	for i, raw := range trips {
		row, issue, ok := v.Check(raw)
		require.Equal(t, wantIssues[i], issue, "trip %d", i)
		require.Equal(t, wantIssues[i] == "", ok, "trip %d", i)
		if ok {
			require.Greater(t, row.SpeedMPH, 0.0)
			require.NotEmpty(t, row.TimeOfDay)
		}
	}
}

func TestValidatorDerivedFields(t *testing.T) {
	v := NewValidator([]int64{1, 2})
	row, issue, ok := v.Check(RawTrip{
		PickupTime:  "2024-01-15 08:30:00",
		DropoffTime: "2024-01-15 08:50:00",
		PULocationID: 1, DOLocationID: 2,
		Distance: 5.0, TotalAmount: 22.5,
	})
	require.True(t, ok)
	require.Empty(t, issue)
	require.InDelta(t, 15.0, row.SpeedMPH, 0.001)
	require.Equal(t, "Morning", row.TimeOfDay)
}

func TestTimeOfDayBuckets(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, "Morning"}, {11, "Morning"},
		{12, "Afternoon"}, {16, "Afternoon"},
		{17, "Evening"}, {20, "Evening"},
		{21, "Night"}, {2, "Night"}, {4, "Night"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, timeOfDay(tt.hour), "hour %d", tt.hour)
	}
}

func TestRejectionLogRoundTrip(t *testing.T) {
	var buf strings.Builder
	log := NewRejectionLog(&buf)
	require.NoError(t, log.Log(IssueNegativeFare, "trip 5"))
	require.NoError(t, log.Log(IssueTimeReversal, "trip 7"))
	require.NoError(t, log.Log(IssueTimeReversal, "trip 9"))
	require.NoError(t, log.Log(IssueExtremeSpeed, "trip 11"))

	counts, err := CountRejections(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, 1, counts.NegativeFare)
	require.Equal(t, 2, counts.TimeReversal)
	require.Equal(t, 1, counts.ExtremeSpeed)
	require.Equal(t, 0, counts.UnknownZone)
	require.Equal(t, 4, counts.Total())
}

func TestCountRejectionsIgnoresUnknownPrefixes(t *testing.T) {
	counts, err := CountRejections(strings.NewReader("Something else,foo\nNegative fare,trip 1\n"))
	require.NoError(t, err)
	require.Equal(t, 1, counts.Total())
}

func TestLoadCountsMissingFile(t *testing.T) {
	counts, err := LoadCounts("testdata/does-not-exist.log")
	require.NoError(t, err)
	require.Zero(t, counts.Total())
}
