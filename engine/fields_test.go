package engine

import (
	"errors"
	"testing"
)

func TestFieldAccess(t *testing.T) {
	rec := Record{"trip_id": "t-1", "total_amount": 42.5, "tip": nil}

	if v, err := Field(rec, "total_amount"); err != nil || v != 42.5 {
		t.Errorf("Field(total_amount) = %v, %v; want 42.5, nil", v, err)
	}
	if v, err := Field(rec, "trip_id"); err != nil || v != "t-1" {
		t.Errorf("Field(trip_id) = %v, %v; want t-1, nil", v, err)
	}

	// Absent key and explicit null are both MissingFieldError.
	for _, name := range []string{"tip", "no_such"} {
		_, err := Field(rec, name)
		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Errorf("Field(%s) error = %v; want MissingFieldError", name, err)
		}
	}
}

func TestNumericField(t *testing.T) {
	rec := Record{"total_amount": 10.0, "borough": "Queens"}

	if v, err := NumericField(rec, "total_amount"); err != nil || v != 10.0 {
		t.Errorf("NumericField(total_amount) = %v, %v; want 10, nil", v, err)
	}

	_, err := NumericField(rec, "borough")
	var badType *InvalidFieldTypeError
	if !errors.As(err, &badType) {
		t.Fatalf("NumericField(borough) error = %v; want InvalidFieldTypeError", err)
	}
	if badType.Field != "borough" {
		t.Errorf("InvalidFieldTypeError.Field = %q; want borough", badType.Field)
	}

	_, err = NumericField(rec, "tip")
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Errorf("NumericField(tip) error = %v; want MissingFieldError", err)
	}
}

func TestCompareOrderingPolicy(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"equal numbers", 10.0, 10.0, 0},
		{"smaller number", 5.0, 10.0, -1},
		{"larger number", 30.0, 10.0, 1},
		{"int64 vs float64", int64(7), 7.0, 0},
		{"equal strings", "Queens", "Queens", 0},
		{"string order", "Bronx", "Queens", -1},
		// Null/missing is strictly less than any present value — this is
		// the policy that pushes null records to the end of a descending
		// sort, and it must hold against both kinds.
		{"nil vs number", nil, 0.0, -1},
		{"nil vs negative number", nil, -99.0, -1},
		{"nil vs string", nil, "", -1},
		{"number vs nil", 1.0, nil, 1},
		{"nil vs nil", nil, nil, 0},
		// Cross-kind: numbers order before strings.
		{"number vs string", 999.0, "a", -1},
		{"string vs number", "a", 999.0, 1},
	}

	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Compare(%v, %v) = %d, want %d", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}
