package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/splittab/splittab/internal/models"
	"github.com/splittab/splittab/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedUser(t *testing.T, store *SQLiteStore, name, email string) *models.User {
	t.Helper()
	user := models.NewUser(name, email, "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSQLiteStoreUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")

	t.Run("GetUserByEmail finds existing user", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != alice.ID {
			t.Errorf("Expected user %s, got %+v", alice.ID, got)
		}
	})

	t.Run("GetUserByEmail returns nil for missing user", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil, got %+v", got)
		}
	})

	t.Run("SearchUsersByEmail excludes the requester", func(t *testing.T) {
		seedUser(t, store, "Bob", "bob@example.com")

		results, err := store.SearchUsersByEmail(ctx, "example.com", alice.ID)
		if err != nil {
			t.Fatalf("SearchUsersByEmail failed: %v", err)
		}
		for _, u := range results {
			if u.ID == alice.ID {
				t.Error("Search results should not include the excluded user")
			}
		}
		if len(results) == 0 {
			t.Error("Expected at least one match")
		}
	})
}

func TestSQLiteStoreFriends(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")

	t.Run("AddFriend is visible from both sides", func(t *testing.T) {
		if err := store.AddFriend(ctx, alice.ID, bob.ID); err != nil {
			t.Fatalf("AddFriend failed: %v", err)
		}

		for _, pair := range [][2]string{{alice.ID, bob.ID}, {bob.ID, alice.ID}} {
			ok, err := store.AreFriends(ctx, pair[0], pair[1])
			if err != nil {
				t.Fatalf("AreFriends failed: %v", err)
			}
			if !ok {
				t.Errorf("Expected %s and %s to be friends", pair[0], pair[1])
			}
		}

		friends, err := store.ListFriends(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListFriends failed: %v", err)
		}
		if len(friends) != 1 || friends[0].ID != alice.ID {
			t.Errorf("Expected bob's friends to be [alice], got %+v", friends)
		}
	})

	t.Run("RemoveFriend removes both directions", func(t *testing.T) {
		if err := store.RemoveFriend(ctx, bob.ID, alice.ID); err != nil {
			t.Fatalf("RemoveFriend failed: %v", err)
		}
		ok, err := store.AreFriends(ctx, alice.ID, bob.ID)
		if err != nil {
			t.Fatalf("AreFriends failed: %v", err)
		}
		if ok {
			t.Error("Expected friendship to be gone")
		}
	})
}

func TestSQLiteStoreExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")

	t.Run("CreateExpense persists expense and splits atomically", func(t *testing.T) {
		expense := &models.Expense{
			Description: "Dinner",
			Amount:      dec("10.00"),
			PaidBy:      alice.ID,
			SplitType:   models.SplitEqual,
			Splits: []models.ExpenseSplit{
				{UserID: alice.ID, Amount: dec("5.00")},
				{UserID: bob.ID, Amount: dec("5.00")},
			},
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == "" {
			t.Error("Expected expense ID to be generated")
		}
		if expense.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}

		got, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.PaidByName != "Alice" {
			t.Errorf("Expected payer name Alice, got %q", got.PaidByName)
		}
		if !got.Amount.Equal(dec("10.00")) {
			t.Errorf("Expected amount 10.00, got %s", got.Amount)
		}
		if len(got.Splits) != 2 {
			t.Fatalf("Expected 2 splits, got %d", len(got.Splits))
		}
		sum := decimal.Zero
		for _, s := range got.Splits {
			sum = sum.Add(s.Amount)
		}
		if !sum.Equal(got.Amount) {
			t.Errorf("Splits sum %s != amount %s", sum, got.Amount)
		}
	})

	t.Run("DeleteExpense removes expense and splits together", func(t *testing.T) {
		expense := &models.Expense{
			Description: "Taxi",
			Amount:      dec("7.50"),
			PaidBy:      bob.ID,
			SplitType:   models.SplitEqual,
			Splits: []models.ExpenseSplit{
				{UserID: alice.ID, Amount: dec("3.75")},
				{UserID: bob.ID, Amount: dec("3.75")},
			},
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		if err := store.DeleteExpense(ctx, expense.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}

		if _, err := store.GetExpense(ctx, expense.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}

		// No orphan splits feed the balance sums after delete.
		totals, err := store.SumSplitsOwedTo(ctx, bob.ID)
		if err != nil {
			t.Fatalf("SumSplitsOwedTo failed: %v", err)
		}
		if len(totals) != 0 {
			t.Errorf("Expected no totals after delete, got %+v", totals)
		}
	})

	t.Run("DeleteExpense on missing ID returns ErrNotFound", func(t *testing.T) {
		if err := store.DeleteExpense(ctx, "no-such-expense"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListExpensesForUser includes paid and shared expenses", func(t *testing.T) {
		expenses, err := store.ListExpensesForUser(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListExpensesForUser failed: %v", err)
		}
		if len(expenses) != 1 {
			t.Fatalf("Expected 1 expense for bob, got %d", len(expenses))
		}
		if expenses[0].Description != "Dinner" {
			t.Errorf("Expected Dinner, got %q", expenses[0].Description)
		}
	})
}

func TestSQLiteStoreBalanceSums(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	carol := seedUser(t, store, "Carol", "carol@example.com")

	expense := &models.Expense{
		Description: "Groceries",
		Amount:      dec("30.00"),
		PaidBy:      alice.ID,
		SplitType:   models.SplitEqual,
		Splits: []models.ExpenseSplit{
			{UserID: alice.ID, Amount: dec("10.00")},
			{UserID: bob.ID, Amount: dec("10.00")},
			{UserID: carol.ID, Amount: dec("10.00")},
		},
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	settlement := &models.Settlement{PaidBy: bob.ID, PaidTo: alice.ID, Amount: dec("4.00")}
	if err := store.CreateSettlement(ctx, settlement); err != nil {
		t.Fatalf("CreateSettlement failed: %v", err)
	}

	t.Run("SumSplitsOwedTo excludes the payer's own share", func(t *testing.T) {
		totals, err := store.SumSplitsOwedTo(ctx, alice.ID)
		if err != nil {
			t.Fatalf("SumSplitsOwedTo failed: %v", err)
		}
		if len(totals) != 2 {
			t.Fatalf("Expected 2 counterparties, got %d", len(totals))
		}
		for _, total := range totals {
			if total.UserID == alice.ID {
				t.Error("Payer's own share must not appear")
			}
			if !total.Total.Equal(dec("10.00")) {
				t.Errorf("Expected 10.00 per counterparty, got %s", total.Total)
			}
		}
	})

	t.Run("SumSplitsOwedBy groups by payer", func(t *testing.T) {
		totals, err := store.SumSplitsOwedBy(ctx, bob.ID)
		if err != nil {
			t.Fatalf("SumSplitsOwedBy failed: %v", err)
		}
		if len(totals) != 1 || totals[0].UserID != alice.ID || !totals[0].Total.Equal(dec("10.00")) {
			t.Errorf("Expected bob owes alice 10.00, got %+v", totals)
		}
	})

	t.Run("settlement sums are directional", func(t *testing.T) {
		paid, err := store.SumSettlementsPaid(ctx, bob.ID)
		if err != nil {
			t.Fatalf("SumSettlementsPaid failed: %v", err)
		}
		if len(paid) != 1 || paid[0].UserID != alice.ID || !paid[0].Total.Equal(dec("4.00")) {
			t.Errorf("Expected bob paid alice 4.00, got %+v", paid)
		}

		received, err := store.SumSettlementsReceived(ctx, alice.ID)
		if err != nil {
			t.Fatalf("SumSettlementsReceived failed: %v", err)
		}
		if len(received) != 1 || received[0].UserID != bob.ID || !received[0].Total.Equal(dec("4.00")) {
			t.Errorf("Expected alice received 4.00 from bob, got %+v", received)
		}
	})
}

func TestSQLiteStoreGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	carol := seedUser(t, store, "Carol", "carol@example.com")

	group := &models.Group{Name: "Roommates", CreatedBy: alice.ID}
	if err := store.CreateGroup(ctx, group, []string{bob.ID}); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.ID == "" {
		t.Fatal("Expected group ID to be generated")
	}

	t.Run("creator and listed members belong to the group", func(t *testing.T) {
		for _, id := range []string{alice.ID, bob.ID} {
			ok, err := store.IsGroupMember(ctx, group.ID, id)
			if err != nil {
				t.Fatalf("IsGroupMember failed: %v", err)
			}
			if !ok {
				t.Errorf("Expected %s to be a member", id)
			}
		}

		ok, err := store.IsGroupMember(ctx, group.ID, carol.ID)
		if err != nil {
			t.Fatalf("IsGroupMember failed: %v", err)
		}
		if ok {
			t.Error("Carol should not be a member yet")
		}
	})

	t.Run("AddGroupMember is idempotent", func(t *testing.T) {
		if err := store.AddGroupMember(ctx, group.ID, carol.ID); err != nil {
			t.Fatalf("AddGroupMember failed: %v", err)
		}
		if err := store.AddGroupMember(ctx, group.ID, carol.ID); err != nil {
			t.Fatalf("AddGroupMember (repeat) failed: %v", err)
		}

		members, err := store.ListGroupMembers(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListGroupMembers failed: %v", err)
		}
		if len(members) != 3 {
			t.Errorf("Expected 3 members, got %d", len(members))
		}
	})

	t.Run("ListGroupsForUser reports member count", func(t *testing.T) {
		groups, err := store.ListGroupsForUser(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListGroupsForUser failed: %v", err)
		}
		if len(groups) != 1 {
			t.Fatalf("Expected 1 group, got %d", len(groups))
		}
		if groups[0].MemberCount != 3 {
			t.Errorf("Expected member count 3, got %d", groups[0].MemberCount)
		}
	})

	t.Run("DeleteGroup detaches expenses instead of deleting them", func(t *testing.T) {
		expense := &models.Expense{
			Description: "Rent",
			Amount:      dec("100.00"),
			PaidBy:      alice.ID,
			GroupID:     group.ID,
			SplitType:   models.SplitEqual,
			Splits: []models.ExpenseSplit{
				{UserID: alice.ID, Amount: dec("50.00")},
				{UserID: bob.ID, Amount: dec("50.00")},
			},
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		if err := store.DeleteGroup(ctx, group.ID); err != nil {
			t.Fatalf("DeleteGroup failed: %v", err)
		}

		if _, err := store.GetGroup(ctx, group.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}

		got, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.GroupID != "" {
			t.Errorf("Expected expense group to be cleared, got %q", got.GroupID)
		}
	})
}

func TestSQLiteStoreSettlements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")

	settlement := &models.Settlement{
		PaidBy: alice.ID,
		PaidTo: bob.ID,
		Amount: dec("12.34"),
		Note:   "lunch",
	}
	if err := store.CreateSettlement(ctx, settlement); err != nil {
		t.Fatalf("CreateSettlement failed: %v", err)
	}
	if settlement.ID == "" {
		t.Error("Expected settlement ID to be generated")
	}

	t.Run("both parties see the settlement", func(t *testing.T) {
		for _, id := range []string{alice.ID, bob.ID} {
			settlements, err := store.ListSettlementsForUser(ctx, id)
			if err != nil {
				t.Fatalf("ListSettlementsForUser failed: %v", err)
			}
			if len(settlements) != 1 {
				t.Fatalf("Expected 1 settlement for %s, got %d", id, len(settlements))
			}
			got := settlements[0]
			if !got.Amount.Equal(dec("12.34")) {
				t.Errorf("Expected amount 12.34, got %s", got.Amount)
			}
			if got.PaidByName != "Alice" || got.PaidToName != "Bob" {
				t.Errorf("Expected names to be populated, got %q -> %q", got.PaidByName, got.PaidToName)
			}
			if got.Note != "lunch" {
				t.Errorf("Expected note to round-trip, got %q", got.Note)
			}
		}
	})
}
