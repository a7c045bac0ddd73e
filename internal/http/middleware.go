package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"financial-saver-go/internal/database"
	"financial-saver-go/internal/models"
)

// AuthMiddleware resolves a bearer session token to a user and stores the
// identity in the request context. Tokens look like session_{UUID}_{random}.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		tokenParts := strings.Split(parts[1], "_")
		if len(tokenParts) != 3 || tokenParts[0] != "session" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := database.DB.Where("uuid = ?", tokenParts[1]).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("user", &user)
		c.Set("userID", user.ID)

		c.Next()
	}
}
