package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mural-api/internal/pkg/jwtutil"
	"mural-api/internal/transport/http/response"
)

const (
	ContextUserIDKey    = "user_id"
	ContextUserNameKey  = "user_name"
	ContextUserEmailKey = "user_email"
)

// AuthJWT guards mutating routes. A missing token is 401; a token that
// is present but fails verification (bad signature, garbage, expired)
// is 403.
func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "token not provided")
			c.Abort()
			return
		}

		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, http.StatusForbidden, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserNameKey, claims.Name)
		c.Set(ContextUserEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
