package Middleware

import (
	"net/http"

	"MediTrack/Models"
	"MediTrack/Utils/Token"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// JwtAuthMiddleware verifies the bearer token, resolves the account named by
// its id claim and stores it in the context for the handlers downstream. A
// token whose subject no longer exists is rejected the same way as an
// invalid one.
func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := Token.ExtractClaims(c)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}

		user, err := Models.GetUserByID(claims.UserID)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAdmin rejects callers whose role is not admin. Runs after
// JwtAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}
		if user.Role != Models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the account resolved by JwtAuthMiddleware.
func CurrentUser(c *gin.Context) (Models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return Models.User{}, false
	}
	user, ok := value.(Models.User)
	return user, ok
}
