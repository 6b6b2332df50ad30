package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
)

// AuthMiddleware resolves the caller from the Authorization header and
// rejects the request with 401 if the token is missing or unknown.
// The header scheme is "Token <key>"; "Bearer <key>" is accepted as an
// alias for clients that send the generic form.
func AuthMiddleware(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := extractTokenKey(c.GetHeader("Authorization"))
		if key == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication credentials were not provided")
			c.Abort()
			return
		}

		user, err := authUC.Authorize(c.Request.Context(), key)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUsername), user.Username)

		c.Next()
	}
}

func extractTokenKey(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	switch parts[0] {
	case "Token", "Bearer":
		return strings.TrimSpace(parts[1])
	}
	return ""
}
