package engine

// ============================================================================
// GROUPING — partition by field value, first-seen key order
// ============================================================================

// GroupBy partitions a sequence into groups keyed by the named field's
// value. Key equality is exact value equality — no normalization. Groups
// appear in the order each key was first encountered, and every input
// record lands in exactly one group. Records where the field is missing or
// null share a single nil-keyed group; that is not an error.
func GroupBy(records []Record, field string) []Group {
	index := make(map[any]int)
	var groups []Group

	for _, rec := range records {
		key := lookup(rec, field)
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, Group{Key: key})
		}
		groups[gi].Records = append(groups[gi].Records, rec)
	}
	return groups
}
