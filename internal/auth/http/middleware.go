package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	authUseCase "github.com/allisson/messaging/internal/auth/usecase"
	apperrors "github.com/allisson/messaging/internal/errors"
	"github.com/allisson/messaging/internal/httputil"
)

// AuthenticationMiddleware provides authentication via Bearer token in the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Resolves the token through AuthUseCase.Authenticate (revocation check, then signature)
// 3. Stores the authenticated identity in the request context
// 4. Allows downstream handlers to access the identity via GetIdentity()
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Revoked/expired/invalid token → 401 Unauthorized (the distinction is logged only)
//   - Revocation store failure → 503 Service Unavailable
func AuthenticationMiddleware(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		plainToken := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if plainToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		identity, err := authUseCase.Authenticate(c.Request.Context(), plainToken)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", identity.UserID.String()),
			slog.Bool("is_admin", identity.IsAdmin))

		c.Next()
	}
}

// AdminOnlyMiddleware restricts a route group to admin identities.
//
// MUST be used after AuthenticationMiddleware. A non-admin identity gets
// 403 Forbidden; a missing identity gets 401 Unauthorized.
func AdminOnlyMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok {
			logger.Error("admin middleware: no authenticated identity in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !authDomain.AdminOnly(identity) {
			logger.Debug("authorization failed: admin role required",
				slog.String("user_id", identity.UserID.String()))
			httputil.HandleErrorGin(c,
				apperrors.Wrap(apperrors.ErrForbidden, "You don't have permission to access this resource"),
				logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
