package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/discourse/discourse-local-site-contacts/internal/shared/constants"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/errors"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/utils"
)

func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponseWithError(c, errors.NewInternalError(constants.ErrMsgInternalServerError))
		c.Abort()
	})
}
