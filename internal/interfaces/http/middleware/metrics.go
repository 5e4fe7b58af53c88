package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/listkeeper/backend/internal/infrastructure/metrics"
)

// unmatchedRoute 未命中路由时的标签值，避免路径基数爆炸
const unmatchedRoute = "unmatched"

// Metrics 记录请求数与耗时
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method

		m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
