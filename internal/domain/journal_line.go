package domain

import "fmt"

// JournalLine is one debit or credit movement inside a JournalEntry.
// Lines are only numbered and mutated by their owning entry.
type JournalLine struct {
	id           string
	lineNumber   int
	accountID    string
	thirdPartyID *string
	label        string
	debit        Money
	credit       Money
}

// NewJournalLine validates the debit/credit combination and returns an unnumbered line.
func NewJournalLine(id, accountID, label string, debit, credit Money, thirdPartyID *string) (*JournalLine, error) {
	if debit.IsNegative() || credit.IsNegative() {
		return nil, fmt.Errorf("%w: amounts cannot be negative", ErrInvalidLine)
	}

	if debit.IsPositive() && credit.IsPositive() {
		return nil, fmt.Errorf("%w: a line cannot have both debit and credit", ErrInvalidLine)
	}

	if debit.IsZero() && credit.IsZero() {
		return nil, fmt.Errorf("%w: line must have a debit or a credit amount", ErrInvalidLine)
	}

	if debit.Currency() != credit.Currency() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLine, ErrCurrencyMismatch)
	}

	var tp *string
	if thirdPartyID != nil && *thirdPartyID != "" {
		v := *thirdPartyID
		tp = &v
	}

	return &JournalLine{
		id:           id,
		accountID:    accountID,
		thirdPartyID: tp,
		label:        label,
		debit:        debit,
		credit:       credit,
	}, nil
}

func (l JournalLine) ID() string        { return l.id }
func (l JournalLine) LineNumber() int   { return l.lineNumber }
func (l JournalLine) AccountID() string { return l.accountID }
func (l JournalLine) Label() string     { return l.label }
func (l JournalLine) Debit() Money      { return l.debit }
func (l JournalLine) Credit() Money     { return l.credit }

// ThirdPartyID returns the optional third-party reference.
func (l JournalLine) ThirdPartyID() (string, bool) {
	if l.thirdPartyID == nil {
		return "", false
	}
	return *l.thirdPartyID, true
}

// IsDebit reports whether the line moves money on the debit side.
func (l JournalLine) IsDebit() bool {
	return l.debit.IsPositive()
}
