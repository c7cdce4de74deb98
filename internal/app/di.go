// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authHTTP "github.com/allisson/messaging/internal/auth/http"
	authRepository "github.com/allisson/messaging/internal/auth/repository"
	authService "github.com/allisson/messaging/internal/auth/service"
	authUsecase "github.com/allisson/messaging/internal/auth/usecase"
	"github.com/allisson/messaging/internal/auth/worker"
	"github.com/allisson/messaging/internal/config"
	"github.com/allisson/messaging/internal/database"
	groupHTTP "github.com/allisson/messaging/internal/group/http"
	groupRepository "github.com/allisson/messaging/internal/group/repository"
	groupUsecase "github.com/allisson/messaging/internal/group/usecase"
	"github.com/allisson/messaging/internal/http"
	messageHTTP "github.com/allisson/messaging/internal/message/http"
	messageRepository "github.com/allisson/messaging/internal/message/repository"
	messageUsecase "github.com/allisson/messaging/internal/message/usecase"
	"github.com/allisson/messaging/internal/metrics"
	userHTTP "github.com/allisson/messaging/internal/user/http"
	userRepository "github.com/allisson/messaging/internal/user/repository"
	userUsecase "github.com/allisson/messaging/internal/user/usecase"
)

// messageStore combines the message persistence views needed by the message
// and group use cases.
type messageStore interface {
	messageUsecase.MessageRepository
	groupUsecase.MessageRepository
}

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB

	// Managers
	txManager database.TxManager

	// Auth services
	signingSecret   []byte
	clock           authService.Clock
	tokenService    authService.TokenService
	passwordService authService.PasswordService

	// Repositories
	revokedTokenRepo authUsecase.RevokedTokenRepository
	userRepo         userUsecase.UserRepository
	groupRepo        groupUsecase.GroupRepository
	messageRepo      messageStore

	// Use Cases
	authUseCase    authUsecase.AuthUseCase
	userUseCase    userUsecase.UserUseCase
	groupUseCase   groupUsecase.GroupUseCase
	messageUseCase messageUsecase.MessageUseCase

	// Metrics
	metricsProvider *metrics.Provider

	// Servers and Workers
	httpServer    *http.Server
	metricsServer *http.MetricsServer
	sweeper       *worker.Sweeper

	// Initialization flags and mutex for thread-safety
	mu                 sync.Mutex
	loggerInit         sync.Once
	dbInit             sync.Once
	txManagerInit      sync.Once
	signingSecretInit  sync.Once
	tokenServiceInit   sync.Once
	revokedRepoInit    sync.Once
	userRepoInit       sync.Once
	groupRepoInit      sync.Once
	messageRepoInit    sync.Once
	authUseCaseInit    sync.Once
	userUseCaseInit    sync.Once
	groupUseCaseInit   sync.Once
	messageUseCaseInit sync.Once
	metricsInit        sync.Once
	httpServerInit     sync.Once
	metricsServerInit  sync.Once
	sweeperInit        sync.Once
	initErrors         map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:          cfg,
		clock:           authService.NewClock(),
		passwordService: authService.NewPasswordService(),
		initErrors:      make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// Clock returns the wall clock used by token issuance and the sweeper.
func (c *Container) Clock() authService.Clock {
	return c.clock
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	return c.passwordService
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["txManager"] = fmt.Errorf("failed to get database for tx manager: %w", err)
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// SigningSecret returns the token signing key material, decrypting it
// through KMS when an encrypted secret is configured.
func (c *Container) SigningSecret(ctx context.Context) ([]byte, error) {
	c.signingSecretInit.Do(func() {
		secret, err := authService.LoadSigningSecret(ctx, authService.SigningSecretConfig{
			PlainSecret:     c.config.AuthTokenSecret,
			EncryptedSecret: c.config.AuthTokenSecretEncrypted,
			KMSKeyURI:       c.config.KMSKeyURI,
		})
		if err != nil {
			c.initErrors["signingSecret"] = fmt.Errorf("failed to load signing secret: %w", err)
			return
		}
		c.signingSecret = secret
	})
	if storedErr, exists := c.initErrors["signingSecret"]; exists {
		return nil, storedErr
	}
	return c.signingSecret, nil
}

// TokenService returns the session token codec.
func (c *Container) TokenService(ctx context.Context) (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		secret, err := c.SigningSecret(ctx)
		if err != nil {
			c.initErrors["tokenService"] = err
			return
		}
		c.tokenService = authService.NewTokenService(secret, c.config.AuthTokenExpiration, c.clock)
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// RevokedTokenRepository returns the revocation store instance.
func (c *Container) RevokedTokenRepository() (authUsecase.RevokedTokenRepository, error) {
	c.revokedRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["revokedTokenRepo"] = fmt.Errorf("failed to get database for revoked token repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.revokedTokenRepo = authRepository.NewMySQLRevokedTokenRepository(db)
		case "postgres":
			c.revokedTokenRepo = authRepository.NewPostgreSQLRevokedTokenRepository(db)
		default:
			c.initErrors["revokedTokenRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["revokedTokenRepo"]; exists {
		return nil, storedErr
	}
	return c.revokedTokenRepo, nil
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.userRepo = userRepository.NewMySQLUserRepository(db)
		case "postgres":
			c.userRepo = userRepository.NewPostgreSQLUserRepository(db)
		default:
			c.initErrors["userRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// GroupRepository returns the group repository instance.
func (c *Container) GroupRepository() (groupUsecase.GroupRepository, error) {
	c.groupRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["groupRepo"] = fmt.Errorf("failed to get database for group repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.groupRepo = groupRepository.NewMySQLGroupRepository(db)
		case "postgres":
			c.groupRepo = groupRepository.NewPostgreSQLGroupRepository(db)
		default:
			c.initErrors["groupRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["groupRepo"]; exists {
		return nil, storedErr
	}
	return c.groupRepo, nil
}

// MessageRepository returns the message repository instance.
func (c *Container) MessageRepository() (messageStore, error) {
	c.messageRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["messageRepo"] = fmt.Errorf("failed to get database for message repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.messageRepo = messageRepository.NewMySQLMessageRepository(db)
		case "postgres":
			c.messageRepo = messageRepository.NewPostgreSQLMessageRepository(db)
		default:
			c.initErrors["messageRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["messageRepo"]; exists {
		return nil, storedErr
	}
	return c.messageRepo, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// AuthUseCase returns the auth use case instance.
func (c *Container) AuthUseCase(ctx context.Context) (authUsecase.AuthUseCase, error) {
	c.authUseCaseInit.Do(func() {
		useCase, err := c.initAuthUseCase(ctx)
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		c.authUseCase = useCase
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UserUseCase, error) {
	c.userUseCaseInit.Do(func() {
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get user repository for user use case: %w", err)
			return
		}
		c.userUseCase = userUsecase.NewUserUseCase(userRepo, c.passwordService, c.clock)
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// GroupUseCase returns the group use case instance.
func (c *Container) GroupUseCase() (groupUsecase.GroupUseCase, error) {
	c.groupUseCaseInit.Do(func() {
		useCase, err := c.initGroupUseCase()
		if err != nil {
			c.initErrors["groupUseCase"] = err
			return
		}
		c.groupUseCase = useCase
	})
	if storedErr, exists := c.initErrors["groupUseCase"]; exists {
		return nil, storedErr
	}
	return c.groupUseCase, nil
}

// MessageUseCase returns the message use case instance.
func (c *Container) MessageUseCase() (messageUsecase.MessageUseCase, error) {
	c.messageUseCaseInit.Do(func() {
		messageRepo, err := c.MessageRepository()
		if err != nil {
			c.initErrors["messageUseCase"] = fmt.Errorf("failed to get message repository for message use case: %w", err)
			return
		}
		c.messageUseCase = messageUsecase.NewMessageUseCase(messageRepo, c.clock, c.Logger())
	})
	if storedErr, exists := c.initErrors["messageUseCase"]; exists {
		return nil, storedErr
	}
	return c.messageUseCase, nil
}

// HTTPServer returns the API server with the full route table configured.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Sweeper returns the revocation sweeper worker.
func (c *Container) Sweeper(ctx context.Context) (*worker.Sweeper, error) {
	c.sweeperInit.Do(func() {
		authUseCase, err := c.AuthUseCase(ctx)
		if err != nil {
			c.initErrors["sweeper"] = fmt.Errorf("failed to get auth use case for sweeper: %w", err)
			return
		}
		c.sweeper = worker.NewSweeper(authUseCase, c.config.RevocationSweepInterval, c.Logger())
	})
	if storedErr, exists := c.initErrors["sweeper"]; exists {
		return nil, storedErr
	}
	return c.sweeper, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initAuthUseCase creates the auth use case with all its dependencies,
// wrapping it with the metrics decorator when metrics are enabled.
func (c *Container) initAuthUseCase(ctx context.Context) (authUsecase.AuthUseCase, error) {
	revokedTokenRepo, err := c.RevokedTokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get revoked token repository for auth use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	tokenService, err := c.TokenService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}

	useCase := authUsecase.NewAuthUseCase(
		revokedTokenRepo,
		userRepo,
		tokenService,
		c.passwordService,
		c.clock,
		c.config.AuthTokenExpiration,
	)

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider != nil {
		businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("failed to create business metrics: %w", err)
		}
		useCase = authUsecase.NewAuthUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initGroupUseCase creates the group use case with all its dependencies.
func (c *Container) initGroupUseCase() (groupUsecase.GroupUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for group use case: %w", err)
	}

	groupRepo, err := c.GroupRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get group repository for group use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for group use case: %w", err)
	}

	messageRepo, err := c.MessageRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get message repository for group use case: %w", err)
	}

	return groupUsecase.NewGroupUseCase(
		txManager,
		groupRepo,
		userRepo,
		messageRepo,
		c.clock,
		c.config.GroupDeleteCascadeMessages,
		c.Logger(),
	), nil
}

// initHTTPServer creates the API server with the full route table.
func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	authUseCase, err := c.AuthUseCase(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for http server: %w", err)
	}
	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}
	groupUseCase, err := c.GroupUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get group use case for http server: %w", err)
	}
	messageUseCase, err := c.MessageUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get message use case for http server: %w", err)
	}

	handlers := http.Handlers{
		Auth:    authHTTP.NewAuthHandler(authUseCase, logger),
		User:    userHTTP.NewUserHandler(userUseCase, logger),
		Group:   groupHTTP.NewGroupHandler(groupUseCase, logger),
		Message: messageHTTP.NewMessageHandler(messageUseCase, logger),
	}

	middlewares := http.Middlewares{
		Authentication: authHTTP.AuthenticationMiddleware(authUseCase, logger),
		AdminOnly:      authHTTP.AdminOnlyMiddleware(logger),
	}
	if c.config.RateLimitLoginEnabled {
		middlewares.LoginRateLimit = authHTTP.LoginRateLimitMiddleware(
			c.config.RateLimitLoginRequestsPerSec,
			c.config.RateLimitLoginBurst,
			logger,
		)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider != nil {
		middlewares.HTTPMetrics = metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(handlers, middlewares, http.RouterConfig{
		GinMode:          c.config.GetGinMode(),
		CORSEnabled:      c.config.CORSEnabled,
		CORSAllowOrigins: c.config.CORSAllowOrigins,
		RequestTimeout:   c.config.RequestTimeout,
	})

	return server, nil
}
