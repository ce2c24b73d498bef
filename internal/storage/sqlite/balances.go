package sqlite

import (
	"context"
	"fmt"

	"github.com/splittab/splittab/internal/calculator"
	"github.com/splittab/splittab/internal/money"
)

// The four read accessors below feed the balance aggregation. Each
// returns per-counterparty sums over the current ledger contents;
// summing happens on cent integers so the results are exact.

// SumSplitsOwedTo sums split amounts on expenses the payer paid,
// grouped by owing user, excluding the payer's own shares.
func (s *SQLiteStore) SumSplitsOwedTo(ctx context.Context, payerID string) ([]calculator.CounterpartyTotal, error) {
	return s.sumByCounterparty(ctx,
		`SELECT es.user_id, u.name, SUM(es.amount_cents)
		 FROM expense_splits es
		 JOIN expenses e ON e.id = es.expense_id
		 JOIN users u ON u.id = es.user_id
		 WHERE e.paid_by = ? AND es.user_id != ?
		 GROUP BY es.user_id`,
		payerID, payerID,
	)
}

// SumSplitsOwedBy sums the user's split amounts on expenses paid by
// others, grouped by payer.
func (s *SQLiteStore) SumSplitsOwedBy(ctx context.Context, userID string) ([]calculator.CounterpartyTotal, error) {
	return s.sumByCounterparty(ctx,
		`SELECT e.paid_by, u.name, SUM(es.amount_cents)
		 FROM expense_splits es
		 JOIN expenses e ON e.id = es.expense_id
		 JOIN users u ON u.id = e.paid_by
		 WHERE es.user_id = ? AND e.paid_by != ?
		 GROUP BY e.paid_by`,
		userID, userID,
	)
}

// SumSettlementsPaid sums settlements the user paid, grouped by payee.
func (s *SQLiteStore) SumSettlementsPaid(ctx context.Context, userID string) ([]calculator.CounterpartyTotal, error) {
	return s.sumByCounterparty(ctx,
		`SELECT s.paid_to, u.name, SUM(s.amount_cents)
		 FROM settlements s
		 JOIN users u ON u.id = s.paid_to
		 WHERE s.paid_by = ?
		 GROUP BY s.paid_to`,
		userID,
	)
}

// SumSettlementsReceived sums settlements the user received, grouped by payer.
func (s *SQLiteStore) SumSettlementsReceived(ctx context.Context, userID string) ([]calculator.CounterpartyTotal, error) {
	return s.sumByCounterparty(ctx,
		`SELECT s.paid_by, u.name, SUM(s.amount_cents)
		 FROM settlements s
		 JOIN users u ON u.id = s.paid_by
		 WHERE s.paid_to = ?
		 GROUP BY s.paid_by`,
		userID,
	)
}

func (s *SQLiteStore) sumByCounterparty(ctx context.Context, query string, args ...any) ([]calculator.CounterpartyTotal, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to sum by counterparty: %w", err)
	}
	defer rows.Close()

	var totals []calculator.CounterpartyTotal
	for rows.Next() {
		var total calculator.CounterpartyTotal
		var cents int64
		if err := rows.Scan(&total.UserID, &total.UserName, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan counterparty total: %w", err)
		}
		total.Total = money.FromCents(cents)
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate counterparty totals: %w", err)
	}
	return totals, nil
}
