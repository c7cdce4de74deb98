// Package http provides the API server, router and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/messaging/internal/auth/http"
	groupHTTP "github.com/allisson/messaging/internal/group/http"
	messageHTTP "github.com/allisson/messaging/internal/message/http"
	userHTTP "github.com/allisson/messaging/internal/user/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// Handlers bundles the context handlers mounted on the router.
type Handlers struct {
	Auth    *authHTTP.AuthHandler
	User    *userHTTP.UserHandler
	Group   *groupHTTP.GroupHandler
	Message *messageHTTP.MessageHandler
}

// Middlewares bundles the cross-cutting middlewares mounted on the router.
// LoginRateLimit and HTTPMetrics are optional and skipped when nil.
type Middlewares struct {
	Authentication gin.HandlerFunc
	AdminOnly      gin.HandlerFunc
	LoginRateLimit gin.HandlerFunc
	HTTPMetrics    gin.HandlerFunc
}

// RouterConfig holds the router-level settings.
type RouterConfig struct {
	GinMode          string
	CORSEnabled      bool
	CORSAllowOrigins string
	RequestTimeout   time.Duration
}

// NewServer creates a new API server. SetupRouter must be called before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin engine and mounts the route table.
func (s *Server) SetupRouter(handlers Handlers, middlewares Middlewares, cfg RouterConfig) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if middlewares.HTTPMetrics != nil {
		router.Use(middlewares.HTTPMetrics)
	}
	if cfg.RequestTimeout > 0 {
		router.Use(TimeoutMiddleware(cfg.RequestTimeout))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	if middlewares.LoginRateLimit != nil {
		auth.POST("/login", middlewares.LoginRateLimit, handlers.Auth.LoginHandler)
	} else {
		auth.POST("/login", handlers.Auth.LoginHandler)
	}
	auth.POST("/logout", handlers.Auth.LogoutHandler)

	admin := v1.Group("/admin", middlewares.Authentication, middlewares.AdminOnly)
	admin.POST("/users/register", handlers.User.CreateUserHandler)
	admin.PUT("/users/:userId", handlers.User.UpdateUserHandler)

	groups := v1.Group("/groups", middlewares.Authentication)
	groups.POST("", handlers.Group.CreateGroupHandler)
	groups.GET("", handlers.Group.SearchGroupHandler)
	groups.DELETE("/:groupId", handlers.Group.DeleteGroupHandler)
	groups.POST("/:groupId/member", handlers.Group.AddMemberHandler)
	groups.DELETE("/:groupId/member", middlewares.AdminOnly, handlers.Group.RemoveMemberHandler)

	messages := v1.Group("/messages", middlewares.Authentication)
	messages.POST("/:groupId", handlers.Message.SendMessageHandler)
	messages.GET("/:groupId", handlers.Message.ListMessagesHandler)
	messages.POST("/:groupId/like", handlers.Message.LikeMessageHandler)
	messages.DELETE("/:groupId/:messageId", handlers.Message.DeleteMessageHandler)

	s.router = router
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured, call SetupRouter first")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness including the database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Error("readiness check failed", slog.Any("error", err))
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
