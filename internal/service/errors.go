package service

import "errors"

var (
	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when a user attempts an operation they do
	// not own, e.g. deleting someone else's expense.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidDescription is returned when an expense has no description.
	ErrInvalidDescription = errors.New("description is required")

	// ErrInvalidGroupName is returned when a group has no name.
	ErrInvalidGroupName = errors.New("group name is required")

	// ErrInvalidSettlement is returned for a non-positive settlement
	// amount or a self-settlement.
	ErrInvalidSettlement = errors.New("settlement requires a positive amount and two distinct users")

	// ErrNotGroupMember is returned when a user acts on a group they do
	// not belong to.
	ErrNotGroupMember = errors.New("you are not a member of this group")

	// ErrNotFriends is returned when adding a non-friend to a group.
	ErrNotFriends = errors.New("you can only add your friends to groups")

	// ErrSelfFriend is returned when a user tries to befriend themselves.
	ErrSelfFriend = errors.New("cannot add yourself as a friend")

	// ErrAlreadyFriends is returned for a duplicate friendship.
	ErrAlreadyFriends = errors.New("already friends")
)
