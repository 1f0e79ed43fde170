package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/dygo/dykit/auth/jwt"
	"github.com/dygo/dykit/auth/password"
	apperrors "github.com/dygo/dykit/errors"
	"github.com/dygo/dykit/server"
	"github.com/dygo/dykit/validation"
)

// Handler serves the authentication endpoints over a UserStore.
type Handler struct {
	cfg    jwt.Config
	store  UserStore
	tokens *jwt.Service
	hasher password.Hasher
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHasher overrides the password hasher. The default is argon2id with
// standard parameters.
func WithHasher(h password.Hasher) HandlerOption {
	return func(hd *Handler) { hd.hasher = h }
}

// NewHandler creates an auth handler backed by the given store.
func NewHandler(cfg jwt.Config, store UserStore, opts ...HandlerOption) *Handler {
	cfg.ApplyDefaults()
	h := &Handler{
		cfg:    cfg,
		store:  store,
		tokens: jwt.NewService(cfg),
		hasher: password.NewHasher(password.Config{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes mounts the auth endpoints under /auth. The group carries
// InjectConfig so the profile endpoint can verify its own bearer.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	grp := r.Group("/auth")
	grp.Use(InjectConfig(h.cfg))
	grp.POST("/register", h.Register)
	grp.POST("/login", h.Login)
	grp.POST("/refresh", h.Refresh)
	grp.POST("/logout", h.Logout)
	grp.GET("/me", h.Me)
}

// Register creates a new account and signs the caller in.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.BadRequest("Invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}
	if err := password.ValidateStrength(req.Password); err != nil {
		server.RespondWithError(c, err)
		return
	}

	exists, err := h.store.EmailExists(c.Request.Context(), req.Email)
	if err != nil {
		server.RespondWithError(c, storeError(err))
		return
	}
	if exists {
		server.RespondWithError(c, apperrors.BadRequest("Email already registered"))
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		server.RespondWithError(c, apperrors.Internal("Failed to hash password").WithCause(err))
		return
	}

	user, err := h.store.Create(c.Request.Context(), CreateUserData{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	})
	if err != nil {
		server.RespondWithError(c, storeError(err))
		return
	}

	h.respondWithTokens(c, user)
}

// Login verifies credentials and issues a token pair. A missing account and a
// wrong password produce the same response so callers cannot probe which
// emails are registered.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.BadRequest("Invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	user, err := h.store.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		server.RespondWithError(c, storeError(err))
		return
	}
	if user == nil {
		server.RespondWithError(c, apperrors.Unauthorized())
		return
	}

	ok, err := h.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil || !ok {
		server.RespondWithError(c, apperrors.Unauthorized())
		return
	}

	h.respondWithTokens(c, user)
}

// Refresh exchanges a valid refresh token for a fresh pair. Roles are re-read
// from the store so role changes take effect at the next rotation.
func (h *Handler) Refresh(c *gin.Context) {
	var req TokenRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.BadRequest("Invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	claims, err := h.tokens.VerifyRefresh(req.RefreshToken)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	user, err := h.store.FindByID(c.Request.Context(), claims.Sub)
	if err != nil {
		server.RespondWithError(c, storeError(err))
		return
	}
	if user == nil {
		server.RespondWithError(c, apperrors.Unauthorized())
		return
	}

	h.respondWithTokens(c, user)
}

// Logout acknowledges a sign-out. Tokens are stateless, so there is nothing
// to revoke server-side; clients discard their pair.
func (h *Handler) Logout(c *gin.Context) {
	server.RespondOK(c, MessageResponse{Message: "Successfully logged out"})
}

// Me returns the profile of the authenticated caller, re-read from the store.
func (h *Handler) Me(c *gin.Context) {
	principal, err := CurrentUser(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	user, err := h.store.FindByID(c.Request.Context(), principal.ID)
	if err != nil {
		server.RespondWithError(c, storeError(err))
		return
	}
	if user == nil {
		server.RespondWithError(c, apperrors.NotFound("User not found"))
		return
	}

	server.RespondOK(c, userInfo(user))
}

func (h *Handler) respondWithTokens(c *gin.Context, user *StoredUser) {
	pair, err := h.tokens.IssuePair(user.ID, user.Email, user.Roles)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
		User:         userInfo(user),
	})
}

// storeError normalizes store failures: AppErrors pass through, anything else
// becomes an opaque DATABASE_ERROR.
func storeError(err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.Database(err)
}
