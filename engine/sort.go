package engine

// ============================================================================
// EXCHANGE SORT — stable bubble sort by a named field
// ============================================================================
// Not sort.Slice on purpose. The whole point of the custom-sort endpoint is
// an explicit comparison-and-exchange pass, so the algorithm is spelled out:
// adjacent pairs are compared and swapped until a full pass makes no swap.
// O(n²) worst case, O(n) when the input is already ordered.
// ============================================================================

// SortDescending returns a new sequence ordered non-increasing by the named
// field. Records with equal field values keep their original relative order;
// records where the field is missing or null sort to the end. The input
// slice is not modified. An empty input yields an empty output.
func SortDescending(records []Record, field string) []Record {
	return exchangeSort(records, field, true)
}

// SortAscending is the ascending companion of SortDescending. Missing and
// null values sort to the front.
func SortAscending(records []Record, field string) []Record {
	return exchangeSort(records, field, false)
}

func exchangeSort(records []Record, field string, descending bool) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	// Swaps happen only on strict inequality, which keeps ties in input
	// order — the stability guarantee the top-N endpoint relies on.
	swapped := true
	for swapped {
		swapped = false
		for i := 0; i+1 < len(out); i++ {
			c := Compare(lookup(out[i], field), lookup(out[i+1], field))
			if (descending && c < 0) || (!descending && c > 0) {
				out[i], out[i+1] = out[i+1], out[i]
				swapped = true
			}
		}
	}
	return out
}
