package schema

import (
	"errors"
	"testing"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/engine"
)

func TestLookupAndValidate(t *testing.T) {
	cfg := Config{
		Name: "trips",
		Fields: []Field{
			{Key: "trip_id", Kind: KindText},
			{Key: "total_amount", Kind: KindNumber},
		},
	}

	f, ok := cfg.Lookup("total_amount")
	if !ok || f.Kind != KindNumber {
		t.Errorf("Lookup(total_amount) = %v, %v", f, ok)
	}
	if _, ok := cfg.Lookup("fare"); ok {
		t.Error("Lookup(fare) should miss")
	}

	if err := cfg.Validate("trip_id"); err != nil {
		t.Errorf("Validate(trip_id) = %v, want nil", err)
	}

	err := cfg.Validate("faer") // typo'd field name from a caller
	var unknown *engine.UnknownFieldError
	if !errors.As(err, &unknown) {
		t.Fatalf("Validate(faer) = %v, want UnknownFieldError", err)
	}
	if unknown.Field != "faer" {
		t.Errorf("UnknownFieldError.Field = %q, want faer", unknown.Field)
	}
}

func TestInfer(t *testing.T) {
	records := []engine.Record{
		{"trip_id": "t-1", "total_amount": 12.5, "tip": nil},
		{"trip_id": "t-2", "total_amount": 3.0, "speed": 22.1},
	}
	cfg := Infer("trips", records)

	tests := []struct {
		key  string
		kind Kind
	}{
		{"trip_id", KindText},
		{"total_amount", KindNumber},
		{"speed", KindNumber},
		{"tip", KindText}, // null-only defaults to text
	}
	for _, tt := range tests {
		f, ok := cfg.Lookup(tt.key)
		if !ok {
			t.Errorf("Infer missed field %q", tt.key)
			continue
		}
		if f.Kind != tt.kind {
			t.Errorf("Infer(%s).Kind = %s, want %s", tt.key, f.Kind, tt.kind)
		}
	}

	if len(cfg.FieldKeys()) != 4 {
		t.Errorf("FieldKeys = %v, want 4 keys", cfg.FieldKeys())
	}
}
