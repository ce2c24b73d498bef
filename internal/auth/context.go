package auth

import "context"

type userIDKey struct{}
type emailKey struct{}

// ContextWithUser returns a context carrying the authenticated user's
// ID and email.
func ContextWithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey{}, userID)
	return context.WithValue(ctx, emailKey{}, email)
}

// UserIDFromContext extracts the authenticated user ID from the context.
// Returns empty string if not set.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

// EmailFromContext extracts the authenticated user's email from the
// context. Returns empty string if not set.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey{}).(string)
	return email
}
