package auth

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}

// TokenRefreshRequest is the body of POST /auth/refresh.
type TokenRefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ChangePasswordRequest is the body of a password change call.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// PasswordResetRequest is the body of a password reset initiation call.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthUserInfo is the public view of a user returned by auth endpoints.
type AuthUserInfo struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// AuthResponse is the success body of register, login, and refresh.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    uint64       `json:"expires_in"`
	User         AuthUserInfo `json:"user"`
}

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

func userInfo(u *StoredUser) AuthUserInfo {
	return AuthUserInfo{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Roles: u.Roles,
	}
}
