// Package calculator implements the pure split and balance math.
// Nothing in here touches storage: callers feed in plain values and
// get back allocations that always conserve the total to the cent.
package calculator

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/splittab/splittab/internal/money"
)

var (
	// ErrInvalidTotal is returned when the total is non-positive or has
	// more than two fractional digits.
	ErrInvalidTotal = errors.New("total must be positive with at most two decimal places")

	// ErrEmptyParticipants is returned when no participants are given.
	ErrEmptyParticipants = errors.New("must have at least one participant")

	// ErrDuplicateParticipant is returned when the same user appears
	// twice in a split specification.
	ErrDuplicateParticipant = errors.New("duplicate participant in split")

	// ErrSplitMismatch is returned when exact shares or percentages do
	// not reconcile with the total.
	ErrSplitMismatch = errors.New("splits do not add up to the expense total")

	// ErrInvalidSplitType is returned for an unknown split type.
	ErrInvalidSplitType = errors.New("split type must be equal, exact, or percentage")
)

// ShareSpec is one participant's entry in a split specification.
// Amount is read in exact mode, Percentage in percentage mode; equal
// mode only uses UserID. Order is significant: rounding remainders are
// assigned in specification order.
type ShareSpec struct {
	UserID     string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// Share is one participant's computed share of an expense total.
type Share struct {
	UserID string
	Amount decimal.Decimal
}

// CalculateSplits converts an expense total and a split specification
// into per-participant shares whose sum equals the total exactly.
//
// Naive per-participant rounding lets the sum drift from the recorded
// total when the division is not exact; equal and percentage modes
// redistribute the remainder one cent at a time in participant order so
// the conservation invariant holds for every expense.
func CalculateSplits(total decimal.Decimal, splitType string, specs []ShareSpec) ([]Share, error) {
	if !total.IsPositive() || !money.Valid(total) {
		return nil, ErrInvalidTotal
	}
	if len(specs) == 0 {
		return nil, ErrEmptyParticipants
	}
	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if spec.UserID == "" {
			return nil, ErrEmptyParticipants
		}
		if seen[spec.UserID] {
			return nil, ErrDuplicateParticipant
		}
		seen[spec.UserID] = true
	}

	switch splitType {
	case "equal":
		return equalSplits(total, specs), nil
	case "exact":
		return exactSplits(total, specs)
	case "percentage":
		return percentageSplits(total, specs)
	default:
		return nil, ErrInvalidSplitType
	}
}

// equalSplits gives every participant total/n rounded down to the cent,
// then hands the leftover cents to the first participants in order.
func equalSplits(total decimal.Decimal, specs []ShareSpec) []Share {
	totalCents := money.Cents(total)
	n := int64(len(specs))
	base := totalCents / n
	remainder := totalCents - base*n

	shares := make([]Share, len(specs))
	for i, spec := range specs {
		cents := base
		if int64(i) < remainder {
			cents++
		}
		shares[i] = Share{UserID: spec.UserID, Amount: money.FromCents(cents)}
	}
	return shares
}

// exactSplits takes the caller's shares verbatim after verifying they
// reconcile with the total. Within-tolerance here means equality, since
// every share is already a whole number of cents.
func exactSplits(total decimal.Decimal, specs []ShareSpec) ([]Share, error) {
	sum := decimal.Zero
	shares := make([]Share, len(specs))
	for i, spec := range specs {
		if spec.Amount.IsNegative() || !money.Valid(spec.Amount) {
			return nil, ErrSplitMismatch
		}
		sum = sum.Add(spec.Amount)
		shares[i] = Share{UserID: spec.UserID, Amount: spec.Amount}
	}
	if sum.Sub(total).Abs().GreaterThanOrEqual(money.Tolerance) {
		return nil, ErrSplitMismatch
	}
	return shares, nil
}

// percentageSplits rounds each percentage share to the cent, then
// redistributes the rounding remainder so the shares sum to the total.
func percentageSplits(total decimal.Decimal, specs []ShareSpec) ([]Share, error) {
	pctSum := decimal.Zero
	for _, spec := range specs {
		if spec.Percentage.IsNegative() {
			return nil, ErrSplitMismatch
		}
		pctSum = pctSum.Add(spec.Percentage)
	}
	if pctSum.Sub(money.Hundred).Abs().GreaterThan(money.Tolerance) {
		return nil, ErrSplitMismatch
	}

	totalCents := money.Cents(total)
	cents := make([]int64, len(specs))
	var sumCents int64
	for i, spec := range specs {
		share := money.Round2(total.Mul(spec.Percentage).Div(money.Hundred))
		cents[i] = money.Cents(share)
		sumCents += cents[i]
	}

	// Remainder is at most one cent per participant; push it back one
	// cent at a time in participant order. When stepping down, skip
	// shares already at zero: a tiny percentage that rounds to 0 cents
	// must not be driven negative. The overshoot came from shares that
	// rounded up, so a positive share always remains to absorb it.
	remainder := totalCents - sumCents
	step := int64(1)
	if remainder < 0 {
		step = -1
	}
	for i := 0; remainder != 0; i = (i + 1) % len(cents) {
		if step < 0 && cents[i] == 0 {
			continue
		}
		cents[i] += step
		remainder -= step
	}

	shares := make([]Share, len(specs))
	for i, spec := range specs {
		shares[i] = Share{UserID: spec.UserID, Amount: money.FromCents(cents[i])}
	}
	return shares, nil
}
