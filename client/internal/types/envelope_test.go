package types

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestEnvelopeResult(t *testing.T) {
	var ok Envelope[Seller]
	if err := json.Unmarshal([]byte(`{"success":true,"message":"","data":{"id":"s1","email":"a@b.c"}}`), &ok); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s, err := ok.Result()
	if err != nil || s.ID != "s1" {
		t.Fatalf("Result = %+v, %v", s, err)
	}

	var empty Envelope[Seller]
	if err := json.Unmarshal([]byte(`{"success":true,"message":"done","data":null}`), &empty); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := empty.Result(); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}

	var failed Envelope[Seller]
	if err := json.Unmarshal([]byte(`{"success":false,"message":"Nope","data":null,"error":{"code":"denied","description":"Nope"}}`), &failed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := failed.Result(); err == nil || err.Error() != "Nope (denied)" {
		t.Fatalf("unexpected error %v", err)
	}

	var silent Envelope[Seller]
	if err := json.Unmarshal([]byte(`{"success":false,"message":"","data":null}`), &silent); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := silent.Result(); err == nil || err.Error() != "An error occurred" {
		t.Fatalf("expected fallback message, got %v", err)
	}

	var silentCoded Envelope[Seller]
	if err := json.Unmarshal([]byte(`{"success":false,"error":{"code":"internal"}}`), &silentCoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := silentCoded.Result(); err == nil || err.Error() != "An error occurred (internal)" {
		t.Fatalf("expected fallback message with code, got %v", err)
	}

	var nilEnv *Envelope[Seller]
	if _, err := nilEnv.Result(); !errors.Is(err, ErrNoData) {
		t.Fatalf("nil envelope: %v", err)
	}
}
