package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillbridge/marketplace-api/internal/dto"
	apierrors "github.com/skillbridge/marketplace-api/internal/errors"
	"github.com/skillbridge/marketplace-api/internal/middleware"
	"github.com/skillbridge/marketplace-api/internal/services"
	"github.com/skillbridge/marketplace-api/internal/utils"
)

// UserHandler coordinates profile and freelancer-search HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile returns a user's public profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateProfile updates the authenticated user's profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateProfileRequest struct {
		Bio          *string  `json:"bio"`
		Company      *string  `json:"company"`
		Location     *string  `json:"location"`
		HourlyRate   *float64 `json:"hourly_rate"`
		Availability *string  `json:"availability"`
		Skills       []string `json:"skills"`
		Portfolio    []string `json:"portfolio"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(userID, services.UpdateProfileInput{
		Bio:          req.Bio,
		Company:      req.Company,
		Location:     req.Location,
		HourlyRate:   req.HourlyRate,
		Availability: req.Availability,
		Skills:       req.Skills,
		Portfolio:    req.Portfolio,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrNegativeHourlyRate):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update profile")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// ListFreelancers searches freelancers with optional filters:
// location, min_rate, max_rate, availability, skills (comma-separated).
func (h *UserHandler) ListFreelancers(c *gin.Context) {
	minRate, err := optionalFloatQuery(c, "min_rate")
	if err != nil {
		apierrors.BadRequest(c, "Invalid min_rate")
		return
	}
	maxRate, err := optionalFloatQuery(c, "max_rate")
	if err != nil {
		apierrors.BadRequest(c, "Invalid max_rate")
		return
	}

	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.SearchFreelancers(services.SearchFreelancersInput{
		Location:     optionalQuery(c, "location"),
		MinRate:      minRate,
		MaxRate:      maxRate,
		Availability: optionalQuery(c, "availability"),
		Skills:       csvQuery(c, "skills"),
		Page:         params.Page,
		PageSize:     params.Limit,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to search freelancers")
		return
	}

	c.JSON(http.StatusOK, dto.ToFreelancerListResponse(users, params, total))
}
