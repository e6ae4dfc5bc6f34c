package middlewares

import (
	"strings"

	"gin-storefront/services"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "token"

// Identity resolves the caller from the session cookie (or a Bearer header)
// and stores the user in the request context. It never aborts: operations
// that need a caller enforce that themselves.
func Identity(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, _ := ctx.Cookie(SessionCookie)
		if tokenString == "" {
			header := ctx.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				tokenString = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if tokenString == "" {
			ctx.Next()
			return
		}

		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			ctx.Next()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}
