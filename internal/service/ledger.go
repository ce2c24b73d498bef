// Package service implements the application operations on top of the
// calculator and the storage layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/splittab/splittab/internal/calculator"
	"github.com/splittab/splittab/internal/models"
	"github.com/splittab/splittab/internal/money"
	"github.com/splittab/splittab/internal/storage"
)

// LedgerService owns the expense, settlement, and balance operations.
// It holds no state of its own: every read derives from the store's
// current contents, so inserts and deletes are reflected immediately
// with no reconciliation step.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// SplitInput is one participant's entry in an expense request.
type SplitInput struct {
	UserID     string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// CreateExpenseRequest carries everything needed to record an expense.
type CreateExpenseRequest struct {
	Description string
	Amount      decimal.Decimal
	PaidBy      string
	GroupID     string
	SplitType   string
	Splits      []SplitInput
}

// CreateExpense validates the split specification, computes the
// per-participant shares, and persists the expense with its splits
// atomically. All validation happens before any write: a rejected
// request leaves no rows behind.
func (s *LedgerService) CreateExpense(ctx context.Context, req CreateExpenseRequest) (*models.Expense, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrInvalidDescription
	}

	specs := make([]calculator.ShareSpec, len(req.Splits))
	for i, split := range req.Splits {
		specs[i] = calculator.ShareSpec{
			UserID:     split.UserID,
			Amount:     split.Amount,
			Percentage: split.Percentage,
		}
	}

	shares, err := calculator.CalculateSplits(req.Amount, req.SplitType, specs)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		PaidBy:      req.PaidBy,
		GroupID:     req.GroupID,
		SplitType:   req.SplitType,
		Splits:      make([]models.ExpenseSplit, len(shares)),
	}
	for i, share := range shares {
		expense.Splits[i] = models.ExpenseSplit{
			UserID: share.UserID,
			Amount: share.Amount,
		}
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	slog.Info("expense created",
		"expense_id", expense.ID,
		"paid_by", expense.PaidBy,
		"amount", expense.Amount,
		"split_type", expense.SplitType,
		"participants", len(expense.Splits),
	)
	return s.store.GetExpense(ctx, expense.ID)
}

// DeleteExpense removes an expense and its splits. Only the payer may
// delete; the expense and all splits go together or not at all.
func (s *LedgerService) DeleteExpense(ctx context.Context, expenseID, requesterID string) error {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete expense: %w", err)
	}
	if expense.PaidBy != requesterID {
		return ErrForbidden
	}

	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	slog.Info("expense deleted", "expense_id", expenseID, "paid_by", requesterID)
	return nil
}

// ListExpenses returns the expenses the user paid or participates in.
func (s *LedgerService) ListExpenses(ctx context.Context, userID string) ([]*models.Expense, error) {
	expenses, err := s.store.ListExpensesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// CreateSettlementRequest carries a direct payment to record.
type CreateSettlementRequest struct {
	PaidBy  string
	PaidTo  string
	Amount  decimal.Decimal
	GroupID string
	Note    string
}

// CreateSettlement records an immutable payment from one user to
// another. The amount must be positive with at most two fractional
// digits, and a user cannot settle with themselves.
func (s *LedgerService) CreateSettlement(ctx context.Context, req CreateSettlementRequest) (*models.Settlement, error) {
	if !req.Amount.IsPositive() || !money.Valid(req.Amount) {
		return nil, ErrInvalidSettlement
	}
	if req.PaidBy == "" || req.PaidTo == "" || req.PaidBy == req.PaidTo {
		return nil, ErrInvalidSettlement
	}

	settlement := &models.Settlement{
		PaidBy:  req.PaidBy,
		PaidTo:  req.PaidTo,
		Amount:  req.Amount,
		GroupID: req.GroupID,
		Note:    req.Note,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, fmt.Errorf("create settlement: %w", err)
	}

	slog.Info("settlement recorded",
		"settlement_id", settlement.ID,
		"paid_by", settlement.PaidBy,
		"paid_to", settlement.PaidTo,
		"amount", settlement.Amount,
	)
	return settlement, nil
}

// ListSettlements returns the settlements the user paid or received.
func (s *LedgerService) ListSettlements(ctx context.Context, userID string) ([]*models.Settlement, error) {
	settlements, err := s.store.ListSettlementsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	return settlements, nil
}
