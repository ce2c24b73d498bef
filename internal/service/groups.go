package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/splittab/splittab/internal/models"
	"github.com/splittab/splittab/internal/storage"
)

// GroupService owns group membership operations. Membership checks
// gate the reads; the ledger itself does not re-verify that expense
// participants belong to a claimed group.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// GroupDetail is a group with its members and ledger history.
type GroupDetail struct {
	Group       *models.Group
	Members     []*models.User
	Expenses    []*models.Expense
	Settlements []*models.Settlement
}

// CreateGroup creates a group with the creator plus the given members.
func (s *GroupService) CreateGroup(ctx context.Context, creatorID, name, description string, memberIDs []string) (*models.Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidGroupName
	}

	group := &models.Group{
		Name:        name,
		Description: description,
		CreatedBy:   creatorID,
	}

	// The creator is always a member; skip them if listed explicitly.
	members := make([]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		if id != creatorID {
			members = append(members, id)
		}
	}

	if err := s.store.CreateGroup(ctx, group, members); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}

	slog.Info("group created", "group_id", group.ID, "created_by", creatorID, "members", len(members)+1)
	return group, nil
}

// ListGroups returns the groups the user belongs to.
func (s *GroupService) ListGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	groups, err := s.store.ListGroupsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// GetGroup returns a group with members, expenses, and settlements.
// Only members may view a group.
func (s *GroupService) GetGroup(ctx context.Context, groupID, requesterID string) (*GroupDetail, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get group: %w", err)
	}

	isMember, err := s.store.IsGroupMember(ctx, groupID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	if !isMember {
		return nil, ErrNotGroupMember
	}

	members, err := s.store.ListGroupMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	settlements, err := s.store.ListSettlementsByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}

	return &GroupDetail{
		Group:       group,
		Members:     members,
		Expenses:    expenses,
		Settlements: settlements,
	}, nil
}

// AddMember adds a user to a group. The requester must be a member,
// and may only add their own friends.
func (s *GroupService) AddMember(ctx context.Context, groupID, requesterID, userID string) error {
	isMember, err := s.store.IsGroupMember(ctx, groupID, requesterID)
	if err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	if !isMember {
		return ErrNotGroupMember
	}

	isFriend, err := s.store.AreFriends(ctx, requesterID, userID)
	if err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	if !isFriend {
		return ErrNotFriends
	}

	if err := s.store.AddGroupMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("add member: %w", err)
	}

	slog.Info("group member added", "group_id", groupID, "user_id", userID, "added_by", requesterID)
	return nil
}

// DeleteGroup removes a group. Only the creator may delete it.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID, requesterID string) error {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete group: %w", err)
	}
	if group.CreatedBy != requesterID {
		return ErrForbidden
	}

	if err := s.store.DeleteGroup(ctx, groupID); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}

	slog.Info("group deleted", "group_id", groupID, "deleted_by", requesterID)
	return nil
}
