package api

import (
	"context"
	"slices"

	"github.com/chainsafe/cat-bridge/pkg/chain"
)

type contextKey string

const (
	// ContextKeyCaller is the context key for the authenticated caller address
	ContextKeyCaller contextKey = "caller"
	// ContextKeyRoles is the context key for the caller's role claims
	ContextKeyRoles contextKey = "roles"
)

// WithCaller adds the caller address to the context
func WithCaller(ctx context.Context, caller chain.Address) context.Context {
	return context.WithValue(ctx, ContextKeyCaller, caller)
}

// CallerFromContext retrieves the caller address from the context
func CallerFromContext(ctx context.Context) (chain.Address, bool) {
	caller, ok := ctx.Value(ContextKeyCaller).(chain.Address)
	return caller, ok
}

// WithRoles adds the caller's roles to the context
func WithRoles(ctx context.Context, roles []string) context.Context {
	return context.WithValue(ctx, ContextKeyRoles, roles)
}

// HasRole reports whether the authenticated caller carries role
func HasRole(ctx context.Context, role string) bool {
	roles, _ := ctx.Value(ContextKeyRoles).([]string)
	return slices.Contains(roles, role)
}
