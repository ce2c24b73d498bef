package models

import "github.com/shopspring/decimal"

// Settlement represents a direct payment between two users that reduces
// an outstanding balance. Settlements model real-world cash transfers:
// once recorded they are immutable, with no update or delete.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// PaidBy is the user who paid (debtor settling up).
	PaidBy string

	// PaidByName is the payer's display name, populated on reads.
	PaidByName string

	// PaidTo is the user who received payment (creditor being paid).
	PaidTo string

	// PaidToName is the payee's display name, populated on reads.
	PaidToName string

	// Amount is the payment amount, positive with at most two
	// fractional digits.
	Amount decimal.Decimal

	// GroupID is the group this settlement belongs to, empty if none.
	GroupID string

	// GroupName is the group's display name, populated on reads.
	GroupName string

	// Note is an optional free-text annotation.
	Note string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
