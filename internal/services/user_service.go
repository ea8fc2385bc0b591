package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/models"
	"github.com/skillbridge/marketplace-api/internal/repository"
)

var ErrNegativeHourlyRate = errors.New("hourly rate cannot be negative")

// UserService handles profile and freelancer-search business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// UpdateProfileInput holds the editable profile fields. Nil fields are left
// unchanged. Skills, portfolio and hourly rate only apply to freelancers;
// company only applies to clients.
type UpdateProfileInput struct {
	Bio          *string
	Company      *string
	Location     *string
	HourlyRate   *float64
	Availability *string
	Skills       []string
	Portfolio    []string
}

// UpdateProfile updates the profile of a user, applying only the fields that
// are valid for the user's role.
func (s *UserService) UpdateProfile(userID uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Location != nil {
		user.Location = *input.Location
	}

	if user.IsFreelancer() {
		if input.HourlyRate != nil {
			if *input.HourlyRate < 0 {
				return nil, ErrNegativeHourlyRate
			}
			user.HourlyRate = input.HourlyRate
		}
		if input.Availability != nil {
			user.Availability = *input.Availability
		}
	}
	if user.IsClient() && input.Company != nil {
		user.Company = *input.Company
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if user.IsFreelancer() {
		if input.Skills != nil {
			if err := s.userRepo.ReplaceSkills(userID, input.Skills); err != nil {
				return nil, fmt.Errorf("failed to update skills: %w", err)
			}
		}
		if input.Portfolio != nil {
			if err := s.userRepo.ReplacePortfolio(userID, input.Portfolio); err != nil {
				return nil, fmt.Errorf("failed to update portfolio: %w", err)
			}
		}
	}

	return s.userRepo.FindByID(userID, "Skills", "Portfolio")
}

// GetProfile retrieves a user's public profile.
func (s *UserService) GetProfile(userID uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID, "Skills", "Portfolio")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// SearchFreelancersInput holds the optional freelancer search filters.
type SearchFreelancersInput struct {
	Location     *string
	MinRate      *float64
	MaxRate      *float64
	Availability *string
	Skills       []string
	Page         int
	PageSize     int
}

// SearchFreelancers lists freelancers matching the filters. When skills are
// given, the skills join takes over and the remaining filters are ignored,
// mirroring the two distinct search queries the marketplace exposes.
func (s *UserService) SearchFreelancers(input SearchFreelancersInput) ([]models.User, int64, error) {
	if len(input.Skills) > 0 {
		users, total, err := s.userRepo.ListFreelancersBySkills(input.Skills, input.Page, input.PageSize)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to search freelancers by skills: %w", err)
		}
		return users, total, nil
	}

	users, total, err := s.userRepo.ListFreelancers(repository.FreelancerFilter{
		Location:     input.Location,
		MinRate:      input.MinRate,
		MaxRate:      input.MaxRate,
		Availability: input.Availability,
		Page:         input.Page,
		PageSize:     input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search freelancers: %w", err)
	}
	return users, total, nil
}
