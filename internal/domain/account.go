package domain

import "time"

// Account is a chart-of-accounts entry referenced by journal lines.
type Account struct {
	ID          string
	Number      string
	Label       string
	IsSummary   bool
	IsAuxiliary bool
	ParentID    *string
	CreatedAt   time.Time
}

// AcceptsLines reports whether lines may be booked to the account.
// Summary accounts only aggregate their children.
func (a *Account) AcceptsLines() bool {
	return !a.IsSummary
}

// ThirdPartyType classifies counterparties.
type ThirdPartyType string

const (
	ThirdPartyClient   ThirdPartyType = "client"
	ThirdPartySupplier ThirdPartyType = "supplier"
	ThirdPartyEmployee ThirdPartyType = "employee"
	ThirdPartyOther    ThirdPartyType = "other"
)

// IsValid checks if the type is one of the known kinds.
func (t ThirdPartyType) IsValid() bool {
	switch t {
	case ThirdPartyClient, ThirdPartySupplier, ThirdPartyEmployee, ThirdPartyOther:
		return true
	}
	return false
}

// ThirdParty is a counterparty optionally referenced by a journal line.
type ThirdParty struct {
	ID        string
	Code      string
	Name      string
	Type      ThirdPartyType
	CreatedAt time.Time
}
