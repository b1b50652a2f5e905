package middlewares

import (
	"net/http"
	"strings"

	"github.com/Kariqs/foodcourt-api/utils"
	"github.com/gin-gonic/gin"
)

// RequireAuth verifies the bearer token and stores its claims under "user".
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		claims, err := utils.ParseToken(secret, tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		ctx.Set("user", claims)
		ctx.Next()
	}
}

// AdminGuard is the chain protecting catalog, roster and day-end writes.
// Without a secret the API stays open and the chain is empty.
func AdminGuard(secret string) []gin.HandlerFunc {
	if secret == "" {
		return nil
	}
	return []gin.HandlerFunc{RequireAuth(secret), RequireAdmin()}
}
