package engine

import (
	"reflect"
	"testing"
)

func TestTopN(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []float64 // ids
	}{
		{"top 2 keeps tie order", 2, []float64{2, 3}},
		{"top 1", 1, []float64{2}},
		{"n equals population", 4, []float64{2, 3, 1, 4}},
		{"n beyond population", 100, []float64{2, 3, 1, 4}},
		{"zero n", 0, []float64{}},
		{"negative n", -3, []float64{}},
	}

	for _, tt := range tests {
		got := TopN(sampleTrips(), "amt", tt.n)
		if !reflect.DeepEqual(ids(got), tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
			t.Errorf("%s: TopN = %v, want %v", tt.name, ids(got), tt.want)
		}
	}
}

// TopN is defined by equivalence with a full descending sort plus truncation,
// tie order included. Check it across every n for a tie-heavy sequence.
func TestTopNMatchesSortTruncate(t *testing.T) {
	records := []Record{
		{"id": 1.0, "amt": 10.0},
		{"id": 2.0, "amt": 30.0},
		{"id": 3.0, "amt": 30.0},
		{"id": 4.0, "amt": 5.0},
		{"id": 5.0, "amt": 30.0},
		{"id": 6.0},                // missing amt sorts last
		{"id": 7.0, "amt": 10.0},
	}
	sorted := SortDescending(records, "amt")

	for n := 0; n <= len(records)+1; n++ {
		got := TopN(records, "amt", n)

		end := n
		if end > len(sorted) {
			end = len(sorted)
		}
		want := sorted[:end]
		if !reflect.DeepEqual(ids(got), ids(want)) && !(len(got) == 0 && len(want) == 0) {
			t.Errorf("n=%d: TopN = %v, sort+truncate = %v", n, ids(got), ids(want))
		}
	}
}

func TestTopNDoesNotMutateInput(t *testing.T) {
	in := sampleTrips()
	TopN(in, "amt", 2)
	if !reflect.DeepEqual(ids(in), []float64{1, 2, 3, 4}) {
		t.Errorf("input mutated: %v", ids(in))
	}
}
