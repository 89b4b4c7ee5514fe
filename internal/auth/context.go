package auth

import (
	"context"

	"github.com/fieldserve/backoffice/internal/models"
)

type contextKey struct{}

var userKey contextKey

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom returns the authenticated user, or nil for an anonymous context.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
