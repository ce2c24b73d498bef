package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/splittab/splittab/internal/models"
	"github.com/splittab/splittab/internal/storage"
)

// FriendService owns friendship operations. Friendships gate who can be
// added to groups and who shows up in friend-scoped search.
type FriendService struct {
	store storage.Store
}

// NewFriendService creates a FriendService with the given storage backend.
func NewFriendService(store storage.Store) *FriendService {
	return &FriendService{store: store}
}

// AddFriend records a friendship between the user and another user.
func (s *FriendService) AddFriend(ctx context.Context, userID, friendID string) error {
	if friendID == userID {
		return ErrSelfFriend
	}

	friend, err := s.store.GetUserByID(ctx, friendID)
	if err != nil {
		return fmt.Errorf("add friend: %w", err)
	}
	if friend == nil {
		return ErrNotFound
	}

	already, err := s.store.AreFriends(ctx, userID, friendID)
	if err != nil {
		return fmt.Errorf("add friend: %w", err)
	}
	if already {
		return ErrAlreadyFriends
	}

	if err := s.store.AddFriend(ctx, userID, friendID); err != nil {
		return fmt.Errorf("add friend: %w", err)
	}

	slog.Info("friend added", "user_id", userID, "friend_id", friendID)
	return nil
}

// ListFriends returns the user's friends.
func (s *FriendService) ListFriends(ctx context.Context, userID string) ([]*models.User, error) {
	friends, err := s.store.ListFriends(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	return friends, nil
}

// RemoveFriend deletes a friendship. Removing a non-friend is a no-op.
func (s *FriendService) RemoveFriend(ctx context.Context, userID, friendID string) error {
	if err := s.store.RemoveFriend(ctx, userID, friendID); err != nil {
		return fmt.Errorf("remove friend: %w", err)
	}
	return nil
}
