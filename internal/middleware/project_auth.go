package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillbridge/marketplace-api/internal/constants"
	"github.com/skillbridge/marketplace-api/internal/database"
	apierrors "github.com/skillbridge/marketplace-api/internal/errors"
	"github.com/skillbridge/marketplace-api/internal/models"
)

// RequireProjectOwner checks that the current user owns the project in the
// URL, and stashes the loaded project in the context for the handler.
func RequireProjectOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectIDStr := c.Param("id")
		projectID, err := strconv.ParseUint(projectIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid project ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var project models.Project
		if err := database.GetDB().
			Preload("Client").
			Preload("Skills").
			First(&project, projectID).Error; err != nil {
			apierrors.NotFound(c, "Project not found")
			c.Abort()
			return
		}

		if project.ClientID != userID {
			apierrors.Forbidden(c, "Only the project owner can perform this action")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyProject, project)
		c.Next()
	}
}
