package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobforge-backend/internal/delivery/http/response"
	"jobforge-backend/internal/domain"
	"jobforge-backend/pkg/token"
)

// AuthMiddleware verifies the Bearer access token and loads the user id
// and email into the request context. The user row is checked so that a
// deactivated account cannot ride out its token's remaining lifetime.
func AuthMiddleware(issuer *token.Issuer, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := issuer.Verify(tokenString, token.KindAccess)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.Subject)
		if err != nil || !user.IsActive {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)

		c.Next()
	}
}
