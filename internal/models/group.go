package models

// Group represents a recurring set of people who share expenses
// (e.g. "Roommates", "Ski Trip"). Expenses and settlements may
// optionally be attached to a group.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group.
	Name string

	// Description is an optional free-text description.
	Description string

	// CreatedBy is the user ID of the creator. Only the creator can
	// delete the group.
	CreatedBy string

	// CreatedByName is the creator's display name, populated on reads.
	CreatedByName string

	// MemberCount is the number of members, populated on listing reads.
	MemberCount int

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}
