package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"replsite/internal/apperrors"
	"replsite/internal/i18n"
	"replsite/pkg/logging"
	"replsite/response"
)

// GlobalErrorMiddleware 全局错误中间件
func GlobalErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ctx := c.Request.Context()
		for _, err := range c.Errors {
			var appErr *apperrors.AppError
			if errors.As(err.Err, &appErr) {
				message := appErr.Message
				if appErr.MessageID != "" {
					message = i18n.TOr(ctx, appErr.MessageID, appErr.Message, appErr.Data)
				}
				c.AbortWithStatusJSON(appErr.Code, response.ErrorFromAppError(appErr, message))
				return
			}
		}

		// 默认处理未定义的错误
		logging.Logger.Error("Unhandled request error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(c.Errors.Last().Err))
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			response.Error(i18n.TOr(ctx, "error.system", "System error", nil)))
	}
}
