package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pureherbal/storefront-api/pkg/helpers"
	"github.com/pureherbal/storefront-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth reads the Authorization bearer header, verifies the token, and
// injects the user id into the Gin context. Verification is token-only;
// there is no session store to consult.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Message(c, http.StatusUnauthorized, "No token, authorization denied")
			c.Abort()
			return
		}
		uid, err := jwt.Verify(token)
		if err != nil {
			msg := "Token is not valid"
			if errors.Is(err, helpers.ErrTokenExpired) {
				msg = "Token has expired"
			}
			response.Message(c, http.StatusUnauthorized, msg)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(h)
}
