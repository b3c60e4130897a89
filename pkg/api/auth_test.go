package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/config"
)

func TestAuthenticator_RoundTrip(t *testing.T) {
	a := NewAuthenticator(&config.AuthConfig{JWTSecret: "0123456789abcdef0123", Issuer: "cat-bridge"})

	tok, err := a.Issue(alice, time.Minute, RoleMessenger)
	require.NoError(t, err)

	claims, caller, err := a.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, alice, caller)
	require.Equal(t, []string{RoleMessenger}, claims.Roles)
}

func TestAuthenticator_Rejects(t *testing.T) {
	a := NewAuthenticator(&config.AuthConfig{JWTSecret: "0123456789abcdef0123", Issuer: "cat-bridge"})
	secret := []byte("0123456789abcdef0123")

	expired, err := a.Issue(alice, -time.Minute)
	require.NoError(t, err)

	otherIssuer, err := NewAuthenticator(&config.AuthConfig{JWTSecret: string(secret), Issuer: "someone-else"}).Issue(alice, time.Minute)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "cat-bridge",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}}).SignedString(secret)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:  "cat-bridge",
		Subject: chain.BytesToAddress([]byte("alice")).Hex(),
	}}).SignedString(secret)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"expired":      expired,
		"other issuer": otherIssuer,
		"bad subject":  badSubject,
		"no expiry":    noExpiry,
		"garbage":      "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := a.Validate(tok)
			require.Error(t, err)
		})
	}
}
