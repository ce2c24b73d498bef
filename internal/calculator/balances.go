package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/splittab/splittab/internal/money"
)

// CounterpartyTotal is a pre-aggregated sum against one counterparty,
// as produced by the ledger store's read accessors.
type CounterpartyTotal struct {
	UserID   string
	UserName string
	Total    decimal.Decimal
}

// Balance is the net position against one counterparty. Positive means
// they owe the requesting user; negative means the user owes them.
type Balance struct {
	UserID   string
	UserName string
	Amount   decimal.Decimal
}

// BalanceSummary is the full derived balance picture for one user.
type BalanceSummary struct {
	Balances       []Balance
	TotalOwedToYou decimal.Decimal
	TotalYouOwe    decimal.Decimal
	NetBalance     decimal.Decimal
}

// NetBalances folds the four per-counterparty sums into net pairwise
// balances and aggregate totals:
//
//	balance(U, C) = owedToMe[C] - iOwe[C] - settledByMe[C] + settledToMe[C]
//
// Swapping U and C swaps the same four terms with the sign inverted, so
// the result is antisymmetric by construction. Counterparties whose net
// balance is within a cent of zero are treated as settled and dropped.
func NetBalances(owedToMe, iOwe, settledByMe, settledToMe []CounterpartyTotal) BalanceSummary {
	net := make(map[string]*Balance)

	accumulate := func(rows []CounterpartyTotal, negate bool) {
		for _, row := range rows {
			b, ok := net[row.UserID]
			if !ok {
				b = &Balance{UserID: row.UserID, UserName: row.UserName, Amount: decimal.Zero}
				net[row.UserID] = b
			}
			if negate {
				b.Amount = b.Amount.Sub(row.Total)
			} else {
				b.Amount = b.Amount.Add(row.Total)
			}
		}
	}

	accumulate(owedToMe, false)
	accumulate(iOwe, true)
	accumulate(settledByMe, true)
	accumulate(settledToMe, false)

	summary := BalanceSummary{
		TotalOwedToYou: decimal.Zero,
		TotalYouOwe:    decimal.Zero,
	}
	for _, b := range net {
		if b.Amount.Abs().LessThan(money.Tolerance) {
			continue
		}
		summary.Balances = append(summary.Balances, *b)
		if b.Amount.IsPositive() {
			summary.TotalOwedToYou = summary.TotalOwedToYou.Add(b.Amount)
		} else {
			summary.TotalYouOwe = summary.TotalYouOwe.Add(b.Amount.Abs())
		}
	}
	summary.NetBalance = summary.TotalOwedToYou.Sub(summary.TotalYouOwe)

	// Map iteration order is random; keep the output stable.
	sort.Slice(summary.Balances, func(i, j int) bool {
		if summary.Balances[i].UserName != summary.Balances[j].UserName {
			return summary.Balances[i].UserName < summary.Balances[j].UserName
		}
		return summary.Balances[i].UserID < summary.Balances[j].UserID
	})

	return summary
}
