package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestTranslate_UniqueViolation(t *testing.T) {
	err := Translate(fmt.Errorf("insert team: %w", &pq.Error{Code: "23505", Constraint: "teams_name_key"}))

	if !errors.Is(err, ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got %v", err)
	}
	if errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("unique violation must not match ErrConstraintViolation")
	}

	var violation *Violation
	if !errors.As(err, &violation) || violation.Constraint != "teams_name_key" {
		t.Fatalf("expected constraint teams_name_key, got %+v", violation)
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		t.Fatalf("expected driver error to stay reachable")
	}
}

func TestTranslate_NotNullViolation(t *testing.T) {
	err := Translate(&pq.Error{Code: "23502", Column: "position"})
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
}

func TestTranslate_PassThrough(t *testing.T) {
	plain := errors.New("connection refused")
	if got := Translate(plain); got != plain {
		t.Fatalf("expected error unchanged, got %v", got)
	}

	syntax := &pq.Error{Code: "42601"}
	if got := Translate(syntax); got != error(syntax) {
		t.Fatalf("expected non-integrity driver error unchanged, got %v", got)
	}

	if Translate(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}
