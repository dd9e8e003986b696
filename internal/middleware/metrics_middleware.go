package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"replsite/internal/metrics"
)

// MetricsMiddleware 记录请求数与耗时，route 使用 gin 的路由模板（如 /api/messages/:locale）
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
