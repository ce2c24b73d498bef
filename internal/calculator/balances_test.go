package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func row(userID string, total string) CounterpartyTotal {
	return CounterpartyTotal{UserID: userID, UserName: userID, Total: dec(total)}
}

func TestNetBalances(t *testing.T) {
	t.Run("combines all four sums", func(t *testing.T) {
		summary := NetBalances(
			[]CounterpartyTotal{row("bob", "10.00"), row("carol", "5.00")}, // owed to me
			[]CounterpartyTotal{row("bob", "4.00")},                        // i owe
			[]CounterpartyTotal{row("carol", "1.00")},                      // settled by me
			[]CounterpartyTotal{row("bob", "2.00")},                        // settled to me
		)

		// bob: 10 - 4 - 0 + 2 = 8, carol: 5 - 0 - 1 + 0 = 4
		if len(summary.Balances) != 2 {
			t.Fatalf("expected 2 balances, got %d", len(summary.Balances))
		}
		if !summary.Balances[0].Amount.Equal(dec("8.00")) {
			t.Errorf("bob balance = %s, want 8.00", summary.Balances[0].Amount)
		}
		if !summary.Balances[1].Amount.Equal(dec("4.00")) {
			t.Errorf("carol balance = %s, want 4.00", summary.Balances[1].Amount)
		}
		if !summary.TotalOwedToYou.Equal(dec("12.00")) {
			t.Errorf("total owed to you = %s, want 12.00", summary.TotalOwedToYou)
		}
		if !summary.TotalYouOwe.Equal(dec("0")) {
			t.Errorf("total you owe = %s, want 0", summary.TotalYouOwe)
		}
		if !summary.NetBalance.Equal(dec("12.00")) {
			t.Errorf("net balance = %s, want 12.00", summary.NetBalance)
		}
	})

	t.Run("settlement-only counterparty appears", func(t *testing.T) {
		summary := NetBalances(nil, nil, []CounterpartyTotal{row("dave", "3.00")}, nil)
		if len(summary.Balances) != 1 {
			t.Fatalf("expected 1 balance, got %d", len(summary.Balances))
		}
		if !summary.Balances[0].Amount.Equal(dec("-3.00")) {
			t.Errorf("dave balance = %s, want -3.00", summary.Balances[0].Amount)
		}
		if !summary.TotalYouOwe.Equal(dec("3.00")) {
			t.Errorf("total you owe = %s, want 3.00", summary.TotalYouOwe)
		}
	})

	t.Run("zeroed balance dropped", func(t *testing.T) {
		summary := NetBalances(
			[]CounterpartyTotal{row("bob", "3.33")},
			nil,
			nil,
			nil,
		)
		if len(summary.Balances) != 1 {
			t.Fatalf("expected 1 balance, got %d", len(summary.Balances))
		}

		settled := NetBalances(
			[]CounterpartyTotal{row("bob", "3.33")},
			[]CounterpartyTotal{row("bob", "3.33")},
			nil,
			nil,
		)
		if len(settled.Balances) != 0 {
			t.Errorf("expected settled balance to be dropped, got %d entries", len(settled.Balances))
		}
		if !settled.NetBalance.Equal(decimal.Zero) {
			t.Errorf("net balance = %s, want 0", settled.NetBalance)
		}
	})

	t.Run("antisymmetric for any history", func(t *testing.T) {
		// The same history viewed from the other side: the four sums swap
		// roles (owedToMe <-> iOwe, settledByMe <-> settledToMe).
		owedToA := []CounterpartyTotal{row("b", "10.00")}
		aOwes := []CounterpartyTotal{row("b", "2.50")}
		settledByA := []CounterpartyTotal{row("b", "1.00")}
		settledToA := []CounterpartyTotal{row("b", "0.25")}

		fromA := NetBalances(owedToA, aOwes, settledByA, settledToA)
		fromB := NetBalances(
			[]CounterpartyTotal{{UserID: "a", UserName: "a", Total: dec("2.50")}},
			[]CounterpartyTotal{{UserID: "a", UserName: "a", Total: dec("10.00")}},
			[]CounterpartyTotal{{UserID: "a", UserName: "a", Total: dec("0.25")}},
			[]CounterpartyTotal{{UserID: "a", UserName: "a", Total: dec("1.00")}},
		)

		if len(fromA.Balances) != 1 || len(fromB.Balances) != 1 {
			t.Fatalf("expected one balance on each side")
		}
		if !fromA.Balances[0].Amount.Equal(fromB.Balances[0].Amount.Neg()) {
			t.Errorf("balance(a,b) = %s, balance(b,a) = %s; want negation",
				fromA.Balances[0].Amount, fromB.Balances[0].Amount)
		}
	})
}
