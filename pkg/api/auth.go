package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/chainsafe/cat-bridge/pkg/app/errors"
	apphttp "github.com/chainsafe/cat-bridge/pkg/app/http"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/config"
)

// RoleMessenger may deliver attested envelopes.
const RoleMessenger = "messenger"

// Claims are the JWT claims of a bridge caller. The subject is the caller's
// hex address.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator issues and validates HS256 caller tokens.
type Authenticator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewAuthenticator creates an authenticator from the auth config section.
func NewAuthenticator(cfg *config.AuthConfig) *Authenticator {
	return &Authenticator{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		now:    time.Now,
	}
}

// Issue signs a token for caller valid for ttl.
func (a *Authenticator) Issue(caller chain.Address, ttl time.Duration, roles ...string) (string, error) {
	now := a.now()
	claims := &Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   caller.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns its claims and caller address.
func (a *Authenticator) Validate(tokenString string) (*Claims, chain.Address, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, chain.ZeroAddress, fmt.Errorf("failed to parse token: %w", err)
	}

	caller, err := chain.ParseAddress(claims.Subject)
	if err != nil {
		return nil, chain.ZeroAddress, fmt.Errorf("invalid subject: %w", err)
	}
	return claims, caller, nil
}

// Middleware authenticates the bearer token and stores the caller and roles
// in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(errors.New("missing bearer token"), "bearer token required"))
			return
		}
		claims, caller, err := a.Validate(tokenString)
		if err != nil {
			apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
			return
		}
		ctx := WithRoles(WithCaller(r.Context(), caller), claims.Roles)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects callers without role.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !HasRole(r.Context(), role) {
				apphttp.DefaultErrorHandler(w, apperrors.ForbiddenError(nil, "role "+role+" required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
