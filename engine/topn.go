package engine

// ============================================================================
// TOP-N SELECTION — repeated max-extraction
// ============================================================================

// TopN returns the n records with the largest value of the named field, in
// descending order, without sorting the whole sequence. Ties keep input
// order (first seen wins), so the result is exactly what SortDescending
// followed by truncation to n would produce. n <= 0 yields an empty
// sequence; n beyond the population yields the whole sorted population.
// The input slice is not modified.
func TopN(records []Record, field string, n int) []Record {
	if n <= 0 {
		return []Record{}
	}
	if n > len(records) {
		n = len(records)
	}

	taken := make([]bool, len(records))
	out := make([]Record, 0, n)
	for len(out) < n {
		best := -1
		for i := range records {
			if taken[i] {
				continue
			}
			// Strict greater-than keeps the earliest of equal maxima,
			// matching the stable sort's tie order.
			if best < 0 || Compare(lookup(records[i], field), lookup(records[best], field)) > 0 {
				best = i
			}
		}
		taken[best] = true
		out = append(out, records[best])
	}
	return out
}
