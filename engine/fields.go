package engine

// ============================================================================
// FIELD ACCESS — typed extraction and the value ordering policy
// ============================================================================

// Field returns the named field's value from a record. A missing key or an
// explicit null both fail with MissingFieldError.
func Field(rec Record, name string) (any, error) {
	v, ok := rec[name]
	if !ok || v == nil {
		return nil, &MissingFieldError{Field: name}
	}
	return v, nil
}

// NumericField returns the named field as a float64. Missing or null fields
// fail with MissingFieldError; present non-numeric values fail with
// InvalidFieldTypeError. No string-to-number coercion is attempted.
func NumericField(rec Record, name string) (float64, error) {
	v, ok := rec[name]
	if !ok || v == nil {
		return 0, &MissingFieldError{Field: name}
	}
	n, ok := asNumber(v)
	if !ok {
		return 0, &InvalidFieldTypeError{Field: name, Value: v}
	}
	return n, nil
}

// lookup reads a field for ordering purposes: missing and null collapse to
// nil, which Compare places below every present value.
func lookup(rec Record, name string) any {
	return rec[name]
}

// Compare imposes a total order on field values, returning -1, 0, or 1.
//
// The ordering policy, in full:
//   - nil (missing or null) is strictly less than any present value, so
//     null-valued records sort to the end of a descending sort;
//   - numbers compare by value;
//   - strings compare lexicographically;
//   - when kinds differ, a number orders before a string.
func Compare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	an, aIsNum := asNumber(a)
	bn, bIsNum := asNumber(b)

	switch {
	case aIsNum && bIsNum:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	case aIsNum:
		return -1
	case bIsNum:
		return 1
	}

	as := asString(a)
	bs := asString(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
