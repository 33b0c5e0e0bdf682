package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authUsernameKey = "authUsername"
	authIsAdminKey  = "authIsAdmin"
)

// Authenticate parses an optional Bearer token and stores the caller identity
// on the context. Missing or invalid tokens leave the request anonymous; the
// Require* middlewares decide whether anonymous is acceptable.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.Next()
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if username, _ := claims["username"].(string); username != "" {
				isAdmin, _ := claims["isAdmin"].(bool)
				c.Set(authUsernameKey, username)
				c.Set(authIsAdminKey, isAdmin)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated username and admin flag, empty when
// anonymous.
func CurrentUser(c *gin.Context) (string, bool) {
	return c.GetString(authUsernameKey), c.GetBool(authIsAdminKey)
}

func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(authUsernameKey) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized: login required"})
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, isAdmin := CurrentUser(c)
		if username == "" || !isAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized: admin required"})
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin allows the route when the path parameter matches the
// caller's own username, or when the caller is an admin.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, isAdmin := CurrentUser(c)
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized: login required"})
			return
		}
		if c.Param(param) != username && !isAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
