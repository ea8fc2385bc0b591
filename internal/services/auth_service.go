package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/constants"
	"github.com/skillbridge/marketplace-api/internal/models"
	"github.com/skillbridge/marketplace-api/internal/repository"
)

var (
	ErrEmailTaken           = errors.New("email is already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidName          = errors.New("name must be 2-100 characters")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrInvalidUserType      = errors.New("user type must be CLIENT or FREELANCER")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and authentication.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// SignupInput represents the required information to register a new user.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	UserType models.UserType
}

// Signup registers a new user with a hashed password. Email uniqueness is
// checked up front for a friendly error, but the unique index on users.email
// is what actually guarantees it.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < constants.MinNameLength || len(name) > constants.MaxNameLength {
		return nil, ErrInvalidName
	}
	email := strings.TrimSpace(input.Email)
	if !models.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !input.UserType.Valid() {
		return nil, ErrInvalidUserType
	}

	taken, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Password:     string(hashedPassword),
		UserType:     input.UserType,
		Availability: constants.DefaultAvailability,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication. UserType is optional
// and scopes the lookup to a role when set.
type LoginInput struct {
	Email    string
	Password string
	UserType models.UserType
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	var (
		user *models.User
		err  error
	)
	if input.UserType != "" {
		if !input.UserType.Valid() {
			return nil, ErrInvalidUserType
		}
		user, err = s.userRepo.FindByEmailAndUserType(input.Email, input.UserType)
	} else {
		user, err = s.userRepo.FindByEmail(input.Email)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID with skills and portfolio loaded.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id, "Skills", "Portfolio")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
