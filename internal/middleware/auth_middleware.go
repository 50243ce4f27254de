package middleware

import (
	"strings"

	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminRequired validates the admin session JWT from either the
// Authorization header or the session cookie. Failures are uniform 401s
// that never reveal whether the target resource exists.
func AdminRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			unauthorized(c)
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &services.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c)
			return
		}

		claims, ok := token.Claims.(*services.AdminClaims)
		if !ok || claims.Role != "admin" {
			unauthorized(c)
			return
		}

		c.Set("admin_user", claims.Username)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}
	}

	if cookie, err := c.Cookie(utils.AdminCookieName); err == nil {
		return cookie
	}

	return ""
}

func unauthorized(c *gin.Context) {
	utils.UnauthorizedResponse(c)
	c.Abort()
}
