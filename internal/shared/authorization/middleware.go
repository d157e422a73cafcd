package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/discourse/discourse-local-site-contacts/internal/shared/constants"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/errors"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/utils"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if !UserRole(userRole).IsAdmin() {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError(constants.ErrMsgForbidden, "admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
