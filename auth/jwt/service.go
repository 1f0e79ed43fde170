// Package jwt issues and verifies the signed bearer tokens used by the auth
// subsystem. Tokens are HS256-signed compact JWTs carrying the Claims
// payload; every issued pair consists of a short-lived access token and a
// long-lived refresh token.
//
// The codec is stateless: verification is a pure function of the token, the
// configuration, and the clock. The clock is injectable for tests.
package jwt

import (
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	apperrors "github.com/dygo/dykit/errors"
	"github.com/dygo/dykit/logger"
)

// TokenPair is an access/refresh token pair returned to clients.
type TokenPair struct {
	// AccessToken is the short-lived bearer credential.
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived credential exchangeable for a new pair.
	RefreshToken string `json:"refresh_token"`

	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn uint64 `json:"expires_in"`
}

// Service issues and verifies token pairs for a single configuration.
type Service struct {
	cfg Config
	now func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTimeFunc overrides the clock used for issuance and verification.
func WithTimeFunc(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService creates a token service. Zero-value config fields are filled
// with development defaults.
func NewService(cfg Config, opts ...ServiceOption) *Service {
	cfg.ApplyDefaults()
	s := &Service{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssuePair creates a new access/refresh token pair for a user. The access
// token carries the given roles; the refresh token carries none. Both get a
// fresh unique token identifier.
func (s *Service) IssuePair(userID, email string, roles []string) (*TokenPair, error) {
	now := s.now()

	accessClaims := newAccessClaims(userID, email, roles, &s.cfg, now)
	access, err := s.sign(accessClaims)
	if err != nil {
		return nil, apperrors.Internal("Failed to create access token").WithCause(err)
	}

	refreshClaims := newRefreshClaims(userID, email, &s.cfg, now)
	refresh, err := s.sign(refreshClaims)
	if err != nil {
		return nil, apperrors.Internal("Failed to create refresh token").WithCause(err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.AccessTokenExpirySecs,
	}, nil
}

// Verify checks the signature and the standard time, issuer, and audience
// claims. Expiry is strict: a token with exp == now is rejected. Every
// failure collapses to UNAUTHORIZED so callers cannot distinguish why a
// token was refused.
func (s *Service) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := gojwt.ParseWithClaims(token, claims, s.keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(s.cfg.Issuer),
		gojwt.WithAudience(s.cfg.Audience),
		gojwt.WithTimeFunc(s.now),
	)
	if err != nil {
		logger.Debug("Token verification failed", logger.Fields("error", err.Error()))
		return nil, apperrors.Unauthorized()
	}
	if !parsed.Valid {
		return nil, apperrors.Unauthorized()
	}
	return claims, nil
}

// VerifyAccess verifies the token and requires kind == access.
func (s *Service) VerifyAccess(token string) (*Claims, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return nil, err
	}
	if !claims.IsAccessToken() {
		return nil, apperrors.Unauthorized()
	}
	return claims, nil
}

// VerifyRefresh verifies the token and requires kind == refresh.
func (s *Service) VerifyRefresh(token string) (*Claims, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken() {
		return nil, apperrors.Unauthorized()
	}
	return claims, nil
}

func (s *Service) sign(claims *Claims) (string, error) {
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) keyFunc(token *gojwt.Token) (interface{}, error) {
	if token.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("jwt: unexpected signing method: %s", token.Method.Alg())
	}
	return []byte(s.cfg.Secret), nil
}

// --- Package-level conveniences using the real clock ---

// CreateTokenPair issues a new token pair for a user.
func CreateTokenPair(userID, email string, roles []string, cfg Config) (*TokenPair, error) {
	return NewService(cfg).IssuePair(userID, email, roles)
}

// VerifyToken verifies a token of either kind and returns its claims.
func VerifyToken(token string, cfg Config) (*Claims, error) {
	return NewService(cfg).Verify(token)
}

// VerifyAccessToken verifies that a token is a valid access token.
func VerifyAccessToken(token string, cfg Config) (*Claims, error) {
	return NewService(cfg).VerifyAccess(token)
}

// VerifyRefreshToken verifies that a token is a valid refresh token.
func VerifyRefreshToken(token string, cfg Config) (*Claims, error) {
	return NewService(cfg).VerifyRefresh(token)
}
