package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors
var (
	ErrInvalidJournalCode   = errors.New("invalid journal code")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInvalidDescription   = errors.New("invalid description")
	ErrInvalidIDFormat      = errors.New("invalid ID format")
	ErrInvalidLabel         = errors.New("invalid label")
)

// Validation constants
const (
	MaxJournalCodeLength   = 10
	MaxDescriptionLength   = 500
	MaxLabelLength         = 255
	MaxAccountNumberLength = 15
)

var (
	journalCodeRegex = regexp.MustCompile(`^[A-Z0-9]+$`)
	ulidRegex        = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
)

// ValidateJournalCode validates a journal code such as "BQ" or "VT".
func ValidateJournalCode(code string) error {
	if code == "" {
		return fmt.Errorf("%w: code cannot be empty", ErrInvalidJournalCode)
	}

	if len(code) > MaxJournalCodeLength {
		return fmt.Errorf("%w: code exceeds %d characters", ErrInvalidJournalCode, MaxJournalCodeLength)
	}

	if !journalCodeRegex.MatchString(code) {
		return fmt.Errorf("%w: %q must be upper-case alphanumeric", ErrInvalidJournalCode, code)
	}

	return nil
}

// ValidateAccountNumber checks the chart-of-accounts numbering: digits only,
// starting with a class digit 1-7.
func ValidateAccountNumber(number string) error {
	number = strings.TrimSpace(number)

	if number == "" || len(number) > MaxAccountNumberLength {
		return fmt.Errorf("%w: %q", ErrInvalidAccountNumber, number)
	}

	if number[0] < '1' || number[0] > '7' {
		return fmt.Errorf("%w: %q must start with a class digit 1-7", ErrInvalidAccountNumber, number)
	}

	for _, c := range number {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: %q must contain digits only", ErrInvalidAccountNumber, number)
		}
	}

	return nil
}

// ValidateDescription validates an entry description.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrInvalidDescription)
	}

	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidateID checks that an identifier is a ULID.
func ValidateID(id string) error {
	if !ulidRegex.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidIDFormat, id)
	}
	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 100
	const DefaultPageSize = 20

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
