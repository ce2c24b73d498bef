package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/splittab/splittab/internal/models"
)

// AddFriend records a friendship. A single row covers both directions.
func (s *SQLiteStore) AddFriend(ctx context.Context, userID, friendID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO friends (user_id, friend_id, created_at) VALUES (?, ?, ?)",
		userID, friendID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to add friend: %w", err)
	}
	return nil
}

// AreFriends reports whether a friendship exists in either direction.
func (s *SQLiteStore) AreFriends(ctx context.Context, userID, otherID string) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM friends WHERE (user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		userID, otherID, otherID, userID,
	).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}
	return true, nil
}

// ListFriends returns the user's friends from both directions of the
// friends table.
func (s *SQLiteStore) ListFriends(ctx context.Context, userID string) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT u.id, u.name, u.email, u.created_at FROM friends f
		 JOIN users u ON u.id = f.friend_id
		 WHERE f.user_id = ?
		 UNION
		 SELECT u.id, u.name, u.email, u.created_at FROM friends f
		 JOIN users u ON u.id = f.user_id
		 WHERE f.friend_id = ?`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var friends []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}
	return friends, nil
}

// RemoveFriend deletes the friendship in whichever direction it exists.
func (s *SQLiteStore) RemoveFriend(ctx context.Context, userID, friendID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM friends WHERE (user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		userID, friendID, friendID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove friend: %w", err)
	}
	return nil
}
