package engine

// ============================================================================
// AGGREGATION — per-group arithmetic mean
// ============================================================================

// AverageByGroup groups records by groupField and computes the arithmetic
// mean of valueField within each group. Only records where valueField is
// present and numeric contribute; a group with zero eligible records
// reports a mean of 0 — a documented sentinel the dashboard expects, not an
// error and not null. Group order follows GroupBy (first-seen). Means are
// returned at full precision; rounding for display is the caller's job.
func AverageByGroup(records []Record, groupField, valueField string) []GroupAverage {
	groups := GroupBy(records, groupField)

	out := make([]GroupAverage, 0, len(groups))
	for _, g := range groups {
		var sum float64
		var n int
		for _, rec := range g.Records {
			v, err := NumericField(rec, valueField)
			if err != nil {
				continue // missing or non-numeric: not eligible
			}
			sum += v
			n++
		}

		avg := 0.0
		if n > 0 {
			avg = sum / float64(n)
		}
		out = append(out, GroupAverage{Key: g.Key, Average: avg, Count: n})
	}
	return out
}
