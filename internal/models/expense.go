package models

import "github.com/shopspring/decimal"

// Split types accepted on expense creation.
const (
	SplitEqual      = "equal"
	SplitExact      = "exact"
	SplitPercentage = "percentage"
)

// Expense represents a cost paid by one user and divided among
// participants. An expense and its splits are created and deleted as
// one atomic unit; only the payer may delete it.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Description is the human-readable label (e.g. "Dinner at Luigi's").
	Description string

	// Amount is the full amount paid, positive with at most two
	// fractional digits. Always equal to the sum of the splits.
	Amount decimal.Decimal

	// PaidBy is the user ID of the payer.
	PaidBy string

	// PaidByName is the payer's display name, populated on reads.
	PaidByName string

	// GroupID is the group this expense belongs to, empty if none.
	GroupID string

	// GroupName is the group's display name, populated on reads.
	GroupName string

	// SplitType records how the shares were specified: equal, exact,
	// or percentage.
	SplitType string

	// Splits are the per-participant shares. Their amounts sum to
	// Amount exactly.
	Splits []ExpenseSplit

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// ExpenseSplit is one participant's share of an expense. It cannot
// outlive its expense.
type ExpenseSplit struct {
	// ExpenseID is the owning expense.
	ExpenseID string

	// UserID is the participant who owes this share. The payer may
	// appear here too: that part of the total was their own cost.
	UserID string

	// UserName is the participant's display name, populated on reads.
	UserName string

	// Amount is the non-negative share, at most two fractional digits.
	Amount decimal.Decimal
}
