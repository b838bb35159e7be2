package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Role labels as issued by the auth provider.
const (
	RoleExplorer = "explorer"
	RoleBusiness = "business"
	RoleAdmin    = "admin"
)

var ErrNoToken = errors.New("no access token available")

// StaticTokenSource returns a fixed access token, the usual case for a device
// holding one signed-in session.
type StaticTokenSource string

// AccessToken implements [TokenSource].
func (s StaticTokenSource) AccessToken(context.Context) (string, error) {
	if s == "" {
		return "", ErrNoToken
	}
	return string(s), nil
}

// jwtRoleProvider extracts the role claim from the access token. The token's
// signature is the auth provider's concern and has already been checked
// server-side; here only the claim payload is read.
type jwtRoleProvider struct {
	tokens TokenSource
}

// NewJWTRoleProvider constructs a [RoleProvider] over the given token source.
func NewJWTRoleProvider(tokens TokenSource) RoleProvider {
	return &jwtRoleProvider{tokens: tokens}
}

// CurrentRole implements [RoleProvider]. An absent token means an anonymous
// caller, reported as [RoleExplorer]; a malformed token is an error the
// caller must treat as indeterminate.
func (p *jwtRoleProvider) CurrentRole(ctx context.Context) (string, error) {
	token, err := p.tokens.AccessToken(ctx)
	if errors.Is(err, ErrNoToken) {
		return RoleExplorer, nil
	}
	if err != nil {
		return "", fmt.Errorf("get access token: %w", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err = jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse access token: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", errors.New("access token has no role claim")
	}
	return role, nil
}
