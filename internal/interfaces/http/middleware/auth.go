package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/auth"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/constants"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/errors"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/utils"
)

// TokenVerifier validates bearer tokens
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized, "missing authorization token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized, "invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized, "invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}
