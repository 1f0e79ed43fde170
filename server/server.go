package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/dygo/dykit/logger"
	"github.com/dygo/dykit/openapi"
	"github.com/dygo/dykit/server/middleware"
)

// Server is an HTTP server backed by Gin, with additional http.Handler
// mounts on the same port and h2c for HTTP/2 without TLS.
type Server struct {
	httpServer  *http.Server
	engine      *gin.Engine
	mux         *http.ServeMux
	config      Config
	log         *logger.Logger
	middlewares []middleware.Middleware
}

// New creates a Server. Middleware is not applied until ApplyMiddleware or
// Use; the handler chain is assembled when Start runs.
func New(cfg Config, log *logger.Logger) *Server {
	cfg.ApplyDefaults()

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	mux := http.NewServeMux()
	mux.Handle("/", engine)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	httpServer := &http.Server{
		Addr:         addr,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		engine:     engine,
		mux:        mux,
		config:     cfg,
		log:        log.WithComponent("server"),
	}
}

// GinEngine returns the underlying Gin engine for route registration.
func (s *Server) GinEngine() *gin.Engine {
	return s.engine
}

// Handle mounts an http.Handler at the given pattern on the root ServeMux,
// next to the Gin engine.
func (s *Server) Handle(pattern string, handler http.Handler) {
	s.mux.Handle(pattern, handler)
	s.log.Debug("Handler mounted", logger.Fields("pattern", pattern))
}

// Use appends middleware to the handler chain. The standard stack from
// ApplyMiddleware runs first.
func (s *Server) Use(mws ...middleware.Middleware) {
	s.middlewares = append(s.middlewares, mws...)
}

// ApplyMiddleware installs the standard stack: request-ID, recovery, CORS,
// body-size limit, and request logging.
func (s *Server) ApplyMiddleware() {
	s.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.CORS(&s.config.CORS),
	)
	if s.config.MaxBodySize != "" {
		s.Use(middleware.BodySizeLimit(s.config.MaxBodySize))
	}
	s.Use(middleware.RequestLogger(s.log))
}

// RegisterDefaultEndpoints registers /health and the liveness/readiness
// probes.
func (s *Server) RegisterDefaultEndpoints(serviceName string, checker HealthChecker) {
	s.engine.GET("/health", Health(serviceName, checker))
	s.engine.GET("/alive", Liveness(serviceName))
	s.engine.GET("/ready", Readiness(serviceName, checker))
}

// MountDocs registers /openapi.json and /docs when any routes documented
// themselves in the registry; with an empty registry it does nothing.
func (s *Server) MountDocs(info openapi.Info) {
	if !openapi.HasEntries() {
		return
	}
	openapi.Mount(s.engine, info)
	s.log.Info("API documentation mounted", logger.Fields(
		"spec", "/openapi.json",
		"docs", "/docs",
	))
}

// ApplyDefaults installs the standard middleware stack plus tracing, the
// default endpoints, and the documentation routes.
func (s *Server) ApplyDefaults(serviceName string, checker HealthChecker) {
	s.ApplyMiddleware()
	s.Use(middleware.Tracing(serviceName))
	s.RegisterDefaultEndpoints(serviceName, checker)
	s.MountDocs(openapi.Info{Title: serviceName, Version: "0.1.0"})
}

// Start binds the port and begins serving. It returns once the listener is
// bound so the caller knows the port is ready; serving continues in a
// goroutine.
func (s *Server) Start(ctx context.Context) error {
	h2s := &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          120 * time.Second,
	}
	handler := h2c.NewHandler(s.mux, h2s)
	s.httpServer.Handler = middleware.Chain(s.middlewares...)(handler)

	s.log.Info("Starting HTTP server", logger.Fields("addr", s.httpServer.Addr))

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("Server error", logger.Fields("error", err.Error()))
		}
	}()

	s.log.Info("HTTP server started", logger.Fields("addr", s.httpServer.Addr))
	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Error("Server shutdown error", logger.Fields("error", err.Error()))
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("HTTP server shut down successfully")
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
