package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloghub/internal/db"
	"bloghub/internal/models"
	"bloghub/internal/services"
)

const UserKey = "user"

// TokenRequired gates a route group on a valid bearer token. The raw
// Authorization header value is the token. After signature and expiry
// check out, the user is re-resolved from the store by the claim's ID so
// stale or tampered claim fields never drive authorization.
func TokenRequired(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token not found"})
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Expired or invalid token"})
			return
		}

		var user models.User
		if err := db.DB.WithContext(c.Request.Context()).First(&user, claims.User.ID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Expired or invalid token"})
			return
		}

		c.Set(UserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by TokenRequired.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(UserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
