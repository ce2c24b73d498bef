// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/splittab/splittab/internal/calculator"
	"github.com/splittab/splittab/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser inserts a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email, or nil if none exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID, or nil if none exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// SearchUsersByEmail finds users whose email contains q, excluding
	// excludeID. Discovery is by email only, never by name.
	SearchUsersByEmail(ctx context.Context, q, excludeID string) ([]*models.User, error)

	// AddFriend records a friendship between two users. The pair is
	// symmetric: one row covers both directions.
	AddFriend(ctx context.Context, userID, friendID string) error

	// AreFriends reports whether a friendship exists in either direction.
	AreFriends(ctx context.Context, userID, otherID string) (bool, error)

	// ListFriends returns the user's friends from both directions.
	ListFriends(ctx context.Context, userID string) ([]*models.User, error)

	// RemoveFriend deletes the friendship in whichever direction it exists.
	RemoveFriend(ctx context.Context, userID, friendID string) error

	// CreateGroup inserts a group and its initial member rows. The
	// creator is always made a member.
	CreateGroup(ctx context.Context, group *models.Group, memberIDs []string) error

	// GetGroup retrieves a group by ID.
	GetGroup(ctx context.Context, id string) (*models.Group, error)

	// ListGroupsForUser returns the groups the user belongs to, newest
	// first, with member counts populated.
	ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error)

	// ListGroupMembers returns the members of a group.
	ListGroupMembers(ctx context.Context, groupID string) ([]*models.User, error)

	// IsGroupMember reports whether the user belongs to the group.
	IsGroupMember(ctx context.Context, groupID, userID string) (bool, error)

	// AddGroupMember adds a user to a group; adding an existing member
	// is a no-op.
	AddGroupMember(ctx context.Context, groupID, userID string) error

	// DeleteGroup removes a group and its membership rows.
	DeleteGroup(ctx context.Context, id string) error

	// CreateExpense persists an expense and all of its splits as one
	// atomic unit: either every row becomes visible or none do.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense with its splits.
	GetExpense(ctx context.Context, id string) (*models.Expense, error)

	// DeleteExpense removes an expense and all of its splits atomically,
	// leaving no orphan split rows.
	DeleteExpense(ctx context.Context, id string) error

	// ListExpensesForUser returns expenses the user paid or owes a share
	// of, newest first, splits included.
	ListExpensesForUser(ctx context.Context, userID string) ([]*models.Expense, error)

	// ListExpensesByGroup returns a group's expenses, newest first,
	// splits included.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// CreateSettlement inserts an immutable settlement row.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlementsForUser returns settlements the user paid or
	// received, newest first.
	ListSettlementsForUser(ctx context.Context, userID string) ([]*models.Settlement, error)

	// ListSettlementsByGroup returns a group's settlements, newest first.
	ListSettlementsByGroup(ctx context.Context, groupID string) ([]*models.Settlement, error)

	// SumSplitsOwedTo sums split amounts owed to the payer, grouped by
	// owing user, excluding the payer's own shares.
	SumSplitsOwedTo(ctx context.Context, payerID string) ([]calculator.CounterpartyTotal, error)

	// SumSplitsOwedBy sums the user's split amounts on expenses paid by
	// others, grouped by payer.
	SumSplitsOwedBy(ctx context.Context, userID string) ([]calculator.CounterpartyTotal, error)

	// SumSettlementsPaid sums settlements the user paid, grouped by payee.
	SumSettlementsPaid(ctx context.Context, userID string) ([]calculator.CounterpartyTotal, error)

	// SumSettlementsReceived sums settlements the user received, grouped
	// by payer.
	SumSettlementsReceived(ctx context.Context, userID string) ([]calculator.CounterpartyTotal, error)

	// Close releases any resources held by the store.
	Close() error
}
