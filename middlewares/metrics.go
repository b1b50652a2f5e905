package middlewares

import (
	"strconv"

	"github.com/Kariqs/foodcourt-api/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics counts requests by route template so ids do not explode the label set.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
	}
}
