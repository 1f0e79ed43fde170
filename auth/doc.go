// Package auth provides a complete JWT authentication subsystem: password
// hashing, token issuance and verification, a pluggable user store, request
// extractors, gin middleware, and ready-to-mount HTTP handlers.
//
// A minimal host wires it up like this:
//
//	cfg := jwt.FromEnv()
//	store := auth.NewInMemoryUserStore()
//	handler := auth.NewHandler(cfg, store)
//	handler.RegisterRoutes(router)
//
// Protected routes outside the auth group add auth.InjectConfig(cfg) and call
// auth.CurrentUser from their handlers, or use auth.RequireAuth and
// auth.RequireRoles as route middleware.
package auth
