package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dygo/dykit/auth/authctx"
	"github.com/dygo/dykit/auth/jwt"
	apperrors "github.com/dygo/dykit/errors"
)

const bearerPrefix = "Bearer "

// CurrentUser extracts the authenticated principal from the request. It reads
// the token-codec configuration from the request context (installed by
// InjectConfig), parses the Authorization header, and verifies the bearer as
// an access token.
//
// Failure modes:
//   - configuration absent: AUTH_ERROR (500), the route is wired wrong
//   - header absent or not a bearer: MISSING_TOKEN (401)
//   - verification failure of any kind, including an empty remainder after
//     the prefix: INVALID_TOKEN (401)
func CurrentUser(c *gin.Context) (*AuthUser, error) {
	cfg, ok := authctx.ConfigFrom(c.Request.Context())
	if !ok {
		return nil, apperrors.AuthConfig("Auth not configured")
	}

	token, ok := bearerToken(c)
	if !ok {
		return nil, apperrors.MissingToken()
	}

	claims, err := jwt.VerifyAccessToken(token, cfg)
	if err != nil {
		return nil, apperrors.InvalidToken()
	}
	return FromClaims(claims), nil
}

// OptionalUser is CurrentUser for routes that serve both anonymous and
// authenticated callers. It returns nil instead of failing.
func OptionalUser(c *gin.Context) *AuthUser {
	user, err := CurrentUser(c)
	if err != nil {
		return nil
	}
	return user
}

// bearerToken strips the bearer prefix. The remainder may be empty; it is
// the verifier's job to reject it.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return header[len(bearerPrefix):], true
}
