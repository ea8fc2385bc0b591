package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/skillbridge/marketplace-api/internal/database"
	apierrors "github.com/skillbridge/marketplace-api/internal/errors"
	"github.com/skillbridge/marketplace-api/internal/models"
)

// RequireUserType restricts a route to users registered with the given role
func RequireUserType(userType models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, userID).Error; err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if user.UserType != userType {
			apierrors.Forbidden(c, "This action requires a "+string(userType)+" account")
			c.Abort()
			return
		}

		c.Next()
	}
}
