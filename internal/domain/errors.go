package domain

import "errors"

var (
	// Line and entry invariants
	ErrInvalidLine      = errors.New("invalid journal line")
	ErrEntryPosted      = errors.New("cannot modify lines of a posted entry")
	ErrEntryVoided      = errors.New("entry is voided")
	ErrAlreadyPosted    = errors.New("entry is already posted")
	ErrUnbalancedEntry  = errors.New("cannot post an unbalanced entry")
	ErrCannotVoidPosted = errors.New("cannot void a posted entry, record a contra entry instead")
	ErrLineNotFound     = errors.New("journal line not found")
	ErrInvalidStatus    = errors.New("invalid entry status")

	// Money errors
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrMoneyOverflow    = errors.New("amount overflows minor-unit range")
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// Lookup errors
	ErrEntryNotFound      = errors.New("journal entry not found")
	ErrFiscalYearNotFound = errors.New("fiscal year not found")
	ErrFiscalYearClosed   = errors.New("cannot record entries in a closed fiscal year")
	ErrAccountNotFound    = errors.New("account not found")
	ErrThirdPartyNotFound = errors.New("third party not found")
	ErrDuplicateAccount   = errors.New("account number already exists")
	ErrInvalidThirdParty  = errors.New("invalid third party")
	ErrInvalidTransition  = errors.New("invalid fiscal year status transition")
	ErrInvalidPeriod      = errors.New("invalid fiscal year period")
	ErrDateOutOfPeriod    = errors.New("entry date is outside the fiscal year")
)
