package service

import (
	"context"
	"fmt"

	"github.com/splittab/splittab/internal/calculator"
)

// Balances computes the user's net position against every counterparty
// by reading the store's current state. Nothing is cached or
// accumulated on writes: two calls with no intervening writes return
// identical results, and a delete is reflected on the very next call.
func (s *LedgerService) Balances(ctx context.Context, userID string) (*calculator.BalanceSummary, error) {
	owedToMe, err := s.store.SumSplitsOwedTo(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("balances: %w", err)
	}
	iOwe, err := s.store.SumSplitsOwedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("balances: %w", err)
	}
	settledByMe, err := s.store.SumSettlementsPaid(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("balances: %w", err)
	}
	settledToMe, err := s.store.SumSettlementsReceived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("balances: %w", err)
	}

	summary := calculator.NetBalances(owedToMe, iOwe, settledByMe, settledToMe)
	return &summary, nil
}
