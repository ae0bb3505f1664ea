package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateJournalCode(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"BQ", "VT", "HA", "OD1"} {
		if err := ValidateJournalCode(code); err != nil {
			t.Fatalf("expected %q to be valid, got %v", code, err)
		}
	}

	for _, code := range []string{"", "bq", "B Q", strings.Repeat("A", MaxJournalCodeLength+1)} {
		if err := ValidateJournalCode(code); !errors.Is(err, ErrInvalidJournalCode) {
			t.Fatalf("expected ErrInvalidJournalCode for %q, got %v", code, err)
		}
	}
}

func TestValidateAccountNumber(t *testing.T) {
	t.Parallel()

	for _, n := range []string{"512", "411", "7", " 607 "} {
		if err := ValidateAccountNumber(n); err != nil {
			t.Fatalf("expected %q to be valid, got %v", n, err)
		}
	}

	for _, n := range []string{"", "0512", "812", "51a", strings.Repeat("1", MaxAccountNumberLength+1)} {
		if err := ValidateAccountNumber(n); !errors.Is(err, ErrInvalidAccountNumber) {
			t.Fatalf("expected ErrInvalidAccountNumber for %q, got %v", n, err)
		}
	}
}

func TestValidateDescription(t *testing.T) {
	t.Parallel()

	if err := ValidateDescription("Customer payment"); err != nil {
		t.Fatalf("expected valid description, got %v", err)
	}

	if err := ValidateDescription("   "); !errors.Is(err, ErrInvalidDescription) {
		t.Fatalf("expected ErrInvalidDescription, got %v", err)
	}

	if err := ValidateDescription(strings.Repeat("x", MaxDescriptionLength+1)); !errors.Is(err, ErrInvalidDescription) {
		t.Fatalf("expected ErrInvalidDescription for long description, got %v", err)
	}
}

func TestValidateID(t *testing.T) {
	t.Parallel()

	if err := ValidateID("01HZX3K5N8Q2W7E4R6T9Y1U3I0"); !errors.Is(err, ErrInvalidIDFormat) {
		t.Fatalf("expected letter I to be rejected, got %v", err)
	}

	if err := ValidateID("01HZX3K5N8Q2W7E4R6T9Y1V3W0"); err != nil {
		t.Fatalf("expected valid ULID, got %v", err)
	}

	if err := ValidateID("not-an-id"); !errors.Is(err, ErrInvalidIDFormat) {
		t.Fatalf("expected ErrInvalidIDFormat, got %v", err)
	}
}

func TestValidatePagination(t *testing.T) {
	t.Parallel()

	limit, offset := ValidatePagination(0, -5)
	if limit != 20 || offset != 0 {
		t.Fatalf("expected defaults 20/0, got %d/%d", limit, offset)
	}

	limit, _ = ValidatePagination(1000, 0)
	if limit != 100 {
		t.Fatalf("expected limit clamped to 100, got %d", limit)
	}
}
