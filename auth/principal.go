package auth

import (
	"fmt"

	apperrors "github.com/dygo/dykit/errors"
	"github.com/dygo/dykit/auth/jwt"
)

// AuthUser is the authenticated principal built from a verified access token.
type AuthUser struct {
	// ID is the user identifier (the token subject).
	ID string `json:"id"`

	// Email is the user's email address.
	Email string `json:"email"`

	// Roles are the roles carried by the access token.
	Roles []string `json:"roles"`

	// Claims is the full verified claim set the principal was built from.
	Claims *jwt.Claims `json:"-"`
}

// FromClaims builds an AuthUser from a verified claim set.
func FromClaims(claims *jwt.Claims) *AuthUser {
	return &AuthUser{
		ID:     claims.Sub,
		Email:  claims.Email,
		Roles:  claims.Roles,
		Claims: claims,
	}
}

// HasRole reports whether the principal carries the given role.
func (u *AuthUser) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the principal carries at least one of the roles.
func (u *AuthUser) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if u.HasRole(role) {
			return true
		}
	}
	return false
}

// HasAllRoles reports whether the principal carries every one of the roles.
func (u *AuthUser) HasAllRoles(roles ...string) bool {
	for _, role := range roles {
		if !u.HasRole(role) {
			return false
		}
	}
	return true
}

// RequireRole returns FORBIDDEN unless the principal carries the role.
func (u *AuthUser) RequireRole(role string) error {
	if !u.HasRole(role) {
		return apperrors.Forbidden(fmt.Sprintf("Role '%s' required", role))
	}
	return nil
}

// RequireAnyRole returns FORBIDDEN unless the principal carries at least one
// of the roles.
func (u *AuthUser) RequireAnyRole(roles ...string) error {
	if !u.HasAnyRole(roles...) {
		return apperrors.Forbidden(fmt.Sprintf("One of roles %v required", roles))
	}
	return nil
}

// RequireAllRoles returns FORBIDDEN unless the principal carries every one of
// the roles.
func (u *AuthUser) RequireAllRoles(roles ...string) error {
	if !u.HasAllRoles(roles...) {
		return apperrors.Forbidden(fmt.Sprintf("All of roles %v required", roles))
	}
	return nil
}
