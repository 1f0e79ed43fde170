package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds CORS middleware configuration. An AllowedOrigins entry of
// "*" admits every origin.
type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods" mapstructure:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers" mapstructure:"allowed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials" mapstructure:"allow_credentials"`
}

func (c *CORSConfig) allows(origin string) bool {
	for _, a := range c.AllowedOrigins {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

func (c *CORSConfig) apply(h http.Header, origin string) {
	h.Add("Vary", "Origin")
	if origin == "" || !c.allows(origin) {
		return
	}
	h.Set("Access-Control-Allow-Origin", origin)
	if len(c.AllowedMethods) > 0 {
		h.Set("Access-Control-Allow-Methods", strings.Join(c.AllowedMethods, ", "))
	}
	if len(c.AllowedHeaders) > 0 {
		h.Set("Access-Control-Allow-Headers", strings.Join(c.AllowedHeaders, ", "))
	}
	if c.AllowCredentials {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
}

// CORS returns middleware that writes CORS response headers for allowed
// origins and answers OPTIONS preflight requests with 204.
func CORS(cfg *CORSConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cfg.apply(w.Header(), r.Header.Get("Origin"))
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GinCORS adapts CORS for a standalone Gin engine. The server applies the
// handler-level CORS to all mounts, so this is only needed without a Server.
func GinCORS(cfg *CORSConfig) gin.HandlerFunc {
	return GinWrap(CORS(cfg))
}
