package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splittab/splittab/internal/models"
	"github.com/splittab/splittab/internal/money"
	"github.com/splittab/splittab/internal/storage"
)

// CreateExpense persists an expense and all of its splits as one atomic
// unit. A failure on any row rolls back everything, so an expense can
// never become visible without its splits.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, description, amount_cents, paid_by, group_id, split_type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.Description, money.Cents(expense.Amount), expense.PaidBy,
		nullable(expense.GroupID), expense.SplitType, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i := range expense.Splits {
		split := &expense.Splits[i]
		split.ExpenseID = expense.ID
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, user_id, amount_cents) VALUES (?, ?, ?)",
			expense.ID, split.UserID, money.Cents(split.Amount),
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID, including all of its splits.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	expense := &models.Expense{}
	var cents int64
	var groupID, groupName sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT e.id, e.description, e.amount_cents, e.paid_by, u.name, e.group_id, g.name, e.split_type, e.created_at
		 FROM expenses e
		 JOIN users u ON u.id = e.paid_by
		 LEFT JOIN groups g ON g.id = e.group_id
		 WHERE e.id = ?`,
		id,
	).Scan(&expense.ID, &expense.Description, &cents, &expense.PaidBy, &expense.PaidByName,
		&groupID, &groupName, &expense.SplitType, &expense.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	expense.Amount = money.FromCents(cents)
	expense.GroupID = groupID.String
	expense.GroupName = groupName.String

	splits, err := s.expenseSplits(ctx, expense.ID)
	if err != nil {
		return nil, err
	}
	expense.Splits = splits
	return expense, nil
}

// DeleteExpense removes an expense and all of its splits atomically.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete expense splits: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListExpensesForUser returns expenses the user paid or owes a share of,
// newest first, with splits attached.
func (s *SQLiteStore) ListExpensesForUser(ctx context.Context, userID string) ([]*models.Expense, error) {
	return s.listExpenses(ctx,
		`SELECT DISTINCT e.id, e.description, e.amount_cents, e.paid_by, u.name, e.group_id, g.name, e.split_type, e.created_at
		 FROM expenses e
		 JOIN users u ON u.id = e.paid_by
		 LEFT JOIN groups g ON g.id = e.group_id
		 LEFT JOIN expense_splits es ON es.expense_id = e.id
		 WHERE e.paid_by = ? OR es.user_id = ?
		 ORDER BY e.created_at DESC`,
		userID, userID,
	)
}

// ListExpensesByGroup returns a group's expenses, newest first, with
// splits attached.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	return s.listExpenses(ctx,
		`SELECT e.id, e.description, e.amount_cents, e.paid_by, u.name, e.group_id, g.name, e.split_type, e.created_at
		 FROM expenses e
		 JOIN users u ON u.id = e.paid_by
		 LEFT JOIN groups g ON g.id = e.group_id
		 WHERE e.group_id = ?
		 ORDER BY e.created_at DESC`,
		groupID,
	)
}

func (s *SQLiteStore) listExpenses(ctx context.Context, query string, args ...any) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var cents int64
		var groupID, groupName sql.NullString
		if err := rows.Scan(&expense.ID, &expense.Description, &cents, &expense.PaidBy, &expense.PaidByName,
			&groupID, &groupName, &expense.SplitType, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount = money.FromCents(cents)
		expense.GroupID = groupID.String
		expense.GroupName = groupName.String
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		splits, err := s.expenseSplits(ctx, expense.ID)
		if err != nil {
			return nil, err
		}
		expense.Splits = splits
	}
	return expenses, nil
}

func (s *SQLiteStore) expenseSplits(ctx context.Context, expenseID string) ([]models.ExpenseSplit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT es.expense_id, es.user_id, u.name, es.amount_cents
		 FROM expense_splits es
		 JOIN users u ON u.id = es.user_id
		 WHERE es.expense_id = ?`,
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %w", err)
	}
	defer rows.Close()

	var splits []models.ExpenseSplit
	for rows.Next() {
		var split models.ExpenseSplit
		var cents int64
		if err := rows.Scan(&split.ExpenseID, &split.UserID, &split.UserName, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		split.Amount = money.FromCents(cents)
		splits = append(splits, split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense splits: %w", err)
	}
	return splits, nil
}

// nullable maps an empty string to SQL NULL for optional foreign keys.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
