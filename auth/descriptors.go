package auth

import "github.com/dygo/dykit/openapi"

// The auth routes document themselves at process start. Hosts that mount
// RegisterRoutes get /openapi.json and /docs coverage for free.
func init() {
	openapi.MustRegisterEndpoint(openapi.Endpoint{
		Method:      "post",
		Path:        "/auth/register",
		Handler:     "Register",
		Summary:     "Register a new user",
		Description: "Creates an account and returns an initial token pair.",
		Tag:         "auth",
		Request:     RegisterRequest{},
		Response:    AuthResponse{},
	})
	openapi.MustRegisterEndpoint(openapi.Endpoint{
		Method:      "post",
		Path:        "/auth/login",
		Handler:     "Login",
		Summary:     "Log in with email and password",
		Description: "Verifies credentials and returns a token pair.",
		Tag:         "auth",
		Request:     LoginRequest{},
		Response:    AuthResponse{},
	})
	openapi.MustRegisterEndpoint(openapi.Endpoint{
		Method:      "post",
		Path:        "/auth/refresh",
		Handler:     "Refresh",
		Summary:     "Refresh an expiring token pair",
		Description: "Exchanges a valid refresh token for a fresh pair with current roles.",
		Tag:         "auth",
		Request:     TokenRefreshRequest{},
		Response:    AuthResponse{},
	})
	openapi.MustRegisterEndpoint(openapi.Endpoint{
		Method:      "post",
		Path:        "/auth/logout",
		Handler:     "Logout",
		Summary:     "Log out",
		Description: "Acknowledges sign-out; clients discard their tokens.",
		Tag:         "auth",
		Response:    MessageResponse{},
	})
	openapi.MustRegisterEndpoint(openapi.Endpoint{
		Method:      "get",
		Path:        "/auth/me",
		Handler:     "Me",
		Summary:     "Get the authenticated user's profile",
		Description: "Returns the profile for the bearer of a valid access token.",
		Tag:         "auth",
		Response:    AuthUserInfo{},
	})
}
