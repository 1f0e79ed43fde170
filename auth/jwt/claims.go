package jwt

import (
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token kinds carried in the "token_type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the payload carried by every issued token.
type Claims struct {
	// Sub is the subject (user ID).
	Sub string `json:"sub"`

	// Email is the user email.
	Email string `json:"email"`

	// Roles is the user's role set. Always empty for refresh tokens.
	Roles []string `json:"roles"`

	// TokenType is "access" or "refresh".
	TokenType string `json:"token_type"`

	// Iat is the issued-at time (seconds since epoch).
	Iat int64 `json:"iat"`

	// Exp is the expiration time (seconds since epoch).
	Exp int64 `json:"exp"`

	// Nbf is the not-before time (seconds since epoch).
	Nbf int64 `json:"nbf"`

	// Iss is the issuer.
	Iss string `json:"iss"`

	// Aud is the audience.
	Aud string `json:"aud"`

	// Jti is the unique identifier for this token.
	Jti string `json:"jti"`
}

// newAccessClaims builds claims for an access token.
func newAccessClaims(userID, email string, roles []string, cfg *Config, now time.Time) *Claims {
	if roles == nil {
		roles = []string{}
	}
	return &Claims{
		Sub:       userID,
		Email:     email,
		Roles:     roles,
		TokenType: TokenTypeAccess,
		Iat:       now.Unix(),
		Exp:       now.Add(cfg.AccessTokenTTL()).Unix(),
		Nbf:       now.Unix(),
		Iss:       cfg.Issuer,
		Aud:       cfg.Audience,
		Jti:       uuid.New().String(),
	}
}

// newRefreshClaims builds claims for a refresh token. Refresh tokens never
// carry roles; current roles are re-read from the store on refresh.
func newRefreshClaims(userID, email string, cfg *Config, now time.Time) *Claims {
	return &Claims{
		Sub:       userID,
		Email:     email,
		Roles:     []string{},
		TokenType: TokenTypeRefresh,
		Iat:       now.Unix(),
		Exp:       now.Add(cfg.RefreshTokenTTL()).Unix(),
		Nbf:       now.Unix(),
		Iss:       cfg.Issuer,
		Aud:       cfg.Audience,
		Jti:       uuid.New().String(),
	}
}

// IsAccessToken reports whether this is an access token.
func (c *Claims) IsAccessToken() bool {
	return c.TokenType == TokenTypeAccess
}

// IsRefreshToken reports whether this is a refresh token.
func (c *Claims) IsRefreshToken() bool {
	return c.TokenType == TokenTypeRefresh
}

// HasRole reports whether the role set contains the given role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the role set contains at least one of the given roles.
func (c *Claims) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if c.HasRole(role) {
			return true
		}
	}
	return false
}

// HasAllRoles reports whether the role set contains every one of the given roles.
func (c *Claims) HasAllRoles(roles ...string) bool {
	for _, role := range roles {
		if !c.HasRole(role) {
			return false
		}
	}
	return true
}

// --- gojwt.Claims implementation ---

func (c *Claims) GetExpirationTime() (*gojwt.NumericDate, error) {
	return gojwt.NewNumericDate(time.Unix(c.Exp, 0)), nil
}

func (c *Claims) GetIssuedAt() (*gojwt.NumericDate, error) {
	return gojwt.NewNumericDate(time.Unix(c.Iat, 0)), nil
}

func (c *Claims) GetNotBefore() (*gojwt.NumericDate, error) {
	return gojwt.NewNumericDate(time.Unix(c.Nbf, 0)), nil
}

func (c *Claims) GetIssuer() (string, error) {
	return c.Iss, nil
}

func (c *Claims) GetSubject() (string, error) {
	return c.Sub, nil
}

func (c *Claims) GetAudience() (gojwt.ClaimStrings, error) {
	return gojwt.ClaimStrings{c.Aud}, nil
}
