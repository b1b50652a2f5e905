package middlewares

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog is gin's logger with the request id in every line. It must run
// after RequestID.
func AccessLog() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("[GIN] %v | %3d | %13v | %15s | %-7s %#v | %s\n%s",
			param.TimeStamp.Format(time.RFC3339),
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			param.Method,
			param.Path,
			param.Keys[RequestIDKey],
			param.ErrorMessage,
		)
	})
}
