package httpapi

import (
	"context"

	"github.com/riskibarqy/tt-league/internal/domain/user"
)

type contextKey string

const (
	principalContextKey contextKey = "auth_principal"
	partialContextKey   contextKey = "partial_request"
)

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(user.Principal)
	return p, ok
}

func withPartial(ctx context.Context) context.Context {
	return context.WithValue(ctx, partialContextKey, true)
}

// isPartial reports whether the caller asked for a fragment refresh.
func isPartial(ctx context.Context) bool {
	v, _ := ctx.Value(partialContextKey).(bool)
	return v
}
