package auth

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dygo/dykit/auth/authctx"
	"github.com/dygo/dykit/auth/jwt"
	apperrors "github.com/dygo/dykit/errors"
	"github.com/dygo/dykit/server"
)

// RoleMode selects how RequireRoles combines multiple roles.
type RoleMode string

const (
	// RoleModeAny passes when the caller holds at least one listed role.
	RoleModeAny RoleMode = "any"

	// RoleModeAll passes only when the caller holds every listed role.
	RoleModeAll RoleMode = "all"
)

// InjectConfig returns middleware that places the token-codec configuration
// in the request context. It must run before any route whose handler calls
// CurrentUser or OptionalUser.
func InjectConfig(cfg jwt.Config) gin.HandlerFunc {
	cfg.ApplyDefaults()
	return func(c *gin.Context) {
		ctx := authctx.WithConfig(c.Request.Context(), cfg)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAuth returns middleware that rejects requests without a valid access
// token. The verified claims are not attached to the request; handlers that
// need the principal call CurrentUser themselves.
func RequireAuth(cfg jwt.Config) gin.HandlerFunc {
	svc := jwt.NewService(cfg)
	return func(c *gin.Context) {
		if _, ok := verifyRequest(c, svc); !ok {
			return
		}
		c.Next()
	}
}

// RequireRoles returns middleware that rejects requests whose access token
// does not satisfy the role requirement. With RoleModeAny one listed role
// suffices; with RoleModeAll every listed role must be present.
func RequireRoles(cfg jwt.Config, mode RoleMode, roles ...string) gin.HandlerFunc {
	svc := jwt.NewService(cfg)
	return func(c *gin.Context) {
		claims, ok := verifyRequest(c, svc)
		if !ok {
			return
		}

		satisfied := false
		switch mode {
		case RoleModeAll:
			satisfied = claims.HasAllRoles(roles...)
		default:
			satisfied = claims.HasAnyRole(roles...)
		}
		if !satisfied {
			server.AbortWithError(c, apperrors.Forbidden(
				fmt.Sprintf("Required roles: %v (%s)", roles, roleModeLabel(mode))))
			return
		}
		c.Next()
	}
}

// verifyRequest parses and verifies the bearer token, writing the 401
// response itself on failure.
func verifyRequest(c *gin.Context, svc *jwt.Service) (*jwt.Claims, bool) {
	token, ok := bearerToken(c)
	if !ok {
		server.AbortWithError(c, apperrors.MissingToken())
		return nil, false
	}
	claims, err := svc.VerifyAccess(token)
	if err != nil {
		server.AbortWithError(c, apperrors.InvalidToken())
		return nil, false
	}
	return claims, true
}

func roleModeLabel(mode RoleMode) string {
	if mode == RoleModeAll {
		return "all"
	}
	return "any"
}
