package dto

import (
	"time"

	"github.com/skillbridge/marketplace-api/internal/models"
	"github.com/skillbridge/marketplace-api/internal/utils"
)

// UserDTO represents a user in API responses. The password column never
// leaves the persistence layer.
type UserDTO struct {
	ID           uint64          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	UserType     models.UserType `json:"user_type"`
	Bio          string          `json:"bio,omitempty"`
	Company      string          `json:"company,omitempty"`
	Location     string          `json:"location,omitempty"`
	HourlyRate   *float64        `json:"hourly_rate,omitempty"`
	Availability string          `json:"availability"`
	Skills       []string        `json:"skills"`
	Portfolio    []string        `json:"portfolio"`
	CreatedAt    time.Time       `json:"created_at"`
}

// FreelancerListResponse represents a paginated freelancer search result
type FreelancerListResponse struct {
	Freelancers []UserDTO                `json:"freelancers"`
	Pagination  utils.PaginationResponse `json:"pagination"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		UserType:     user.UserType,
		Bio:          user.Bio,
		Company:      user.Company,
		Location:     user.Location,
		HourlyRate:   user.HourlyRate,
		Availability: user.Availability,
		Skills:       user.SkillNames(),
		Portfolio:    user.PortfolioItems(),
		CreatedAt:    user.CreatedAt,
	}
}

// ToFreelancerListResponse converts a freelancer page to the response shape
func ToFreelancerListResponse(users []models.User, params utils.PaginationParams, total int64) FreelancerListResponse {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}

	return FreelancerListResponse{
		Freelancers: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
