// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/service"

	"github.com/gin-gonic/gin"
)

// UserContextKey is where the authenticated user is stored in the gin
// context.
const UserContextKey = "currentUser"

// AuthenticateJWT verifies the bearer token and resolves it to a user via
// the auth service.
func AuthenticateJWT(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		// The token is prefixed with 'Bearer ', so we need to trim that
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := authService.Identify(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthenticateJWT.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, ok := c.Get(UserContextKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}
