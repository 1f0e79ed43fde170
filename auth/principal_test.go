package auth

import (
	"testing"

	apperrors "github.com/dygo/dykit/errors"
	"github.com/dygo/dykit/auth/jwt"
)

func TestFromClaims(t *testing.T) {
	claims := &jwt.Claims{
		Sub:   "user-1",
		Email: "a@example.com",
		Roles: []string{"user", "admin"},
	}
	u := FromClaims(claims)
	if u.ID != "user-1" || u.Email != "a@example.com" {
		t.Errorf("unexpected principal: %+v", u)
	}
	if u.Claims != claims {
		t.Error("principal must retain the verified claims")
	}
}

func TestAuthUser_RoleChecks(t *testing.T) {
	u := &AuthUser{Roles: []string{"user", "editor"}}

	if !u.HasRole("editor") || u.HasRole("admin") {
		t.Error("HasRole mismatch")
	}
	if !u.HasAnyRole("admin", "editor") {
		t.Error("HasAnyRole should pass with one match")
	}
	if u.HasAnyRole("admin", "root") {
		t.Error("HasAnyRole should fail with no match")
	}
	if !u.HasAllRoles("user", "editor") {
		t.Error("HasAllRoles should pass when all present")
	}
	if u.HasAllRoles("user", "admin") {
		t.Error("HasAllRoles should fail when one missing")
	}
}

func TestAuthUser_RequireRole_Messages(t *testing.T) {
	u := &AuthUser{Roles: []string{"user"}}

	err := u.RequireRole("admin")
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeForbidden {
		t.Fatalf("expected FORBIDDEN, got %v", err)
	}
	if appErr.Message != "Role 'admin' required" {
		t.Errorf("unexpected message: %s", appErr.Message)
	}

	err = u.RequireAnyRole("admin", "root")
	appErr, _ = apperrors.AsAppError(err)
	if appErr.Message != "One of roles [admin root] required" {
		t.Errorf("unexpected message: %s", appErr.Message)
	}

	err = u.RequireAllRoles("user", "admin")
	appErr, _ = apperrors.AsAppError(err)
	if appErr.Message != "All of roles [user admin] required" {
		t.Errorf("unexpected message: %s", appErr.Message)
	}

	if err := u.RequireRole("user"); err != nil {
		t.Errorf("satisfied requirement must pass, got %v", err)
	}
}
