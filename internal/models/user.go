package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/constants"
)

type UserType string

const (
	UserTypeClient     UserType = "CLIENT"
	UserTypeFreelancer UserType = "FREELANCER"
)

// Valid reports whether the user type is one of the known values.
func (t UserType) Valid() bool {
	return t == UserTypeClient || t == UserTypeFreelancer
}

type User struct {
	ID           uint64   `gorm:"primarykey" json:"id"`
	Name         string   `gorm:"type:varchar(100);not null" json:"name"`
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string   `gorm:"type:varchar(255);not null" json:"-"`
	UserType     UserType `gorm:"type:varchar(20);not null" json:"user_type"`
	Bio          string   `gorm:"type:text" json:"bio,omitempty"`
	Company      string   `gorm:"type:varchar(255)" json:"company,omitempty"`
	Location     string   `gorm:"type:varchar(255)" json:"location,omitempty"`
	HourlyRate   *float64 `json:"hourly_rate,omitempty"`
	Availability string   `gorm:"type:varchar(100);default:'available'" json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Skills    []UserSkill         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	Portfolio []UserPortfolioItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"portfolio,omitempty"`
	Projects  []Project           `gorm:"foreignKey:ClientID" json:"-"`
	Proposals []Proposal          `gorm:"foreignKey:FreelancerID" json:"-"`
}

// UserSkill is one row of the user_skills element table.
type UserSkill struct {
	UserID uint64 `gorm:"primarykey;autoIncrement:false" json:"-"`
	Skill  string `gorm:"primarykey;type:varchar(100)" json:"skill"`
}

func (UserSkill) TableName() string {
	return "user_skills"
}

// UserPortfolioItem is one row of the user_portfolio element table.
type UserPortfolioItem struct {
	UserID        uint64 `gorm:"primarykey;autoIncrement:false" json:"-"`
	PortfolioItem string `gorm:"primarykey;type:varchar(500);column:portfolio_item" json:"portfolio_item"`
}

func (UserPortfolioItem) TableName() string {
	return "user_portfolio"
}

// BeforeSave enforces the storage-boundary constraints so an invalid row is
// never persisted, regardless of what the caller validated.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if isBlank(u.Name) || len(u.Name) < constants.MinNameLength || len(u.Name) > constants.MaxNameLength {
		return validationError("name must be %d-%d characters", constants.MinNameLength, constants.MaxNameLength)
	}
	if !ValidEmail(u.Email) {
		return validationError("invalid email address")
	}
	if isBlank(u.Password) {
		return validationError("password is required")
	}
	if !u.UserType.Valid() {
		return validationError("unknown user type %q", u.UserType)
	}
	if u.HourlyRate != nil && *u.HourlyRate < 0 {
		return validationError("hourly rate cannot be negative")
	}
	if u.Availability == "" {
		u.Availability = constants.DefaultAvailability
	}
	return nil
}

// IsFreelancer reports whether the user registered as a freelancer.
func (u *User) IsFreelancer() bool {
	return u.UserType == UserTypeFreelancer
}

// IsClient reports whether the user registered as a client.
func (u *User) IsClient() bool {
	return u.UserType == UserTypeClient
}

// SkillNames flattens the user_skills rows into a list of strings.
func (u *User) SkillNames() []string {
	names := make([]string, len(u.Skills))
	for i, s := range u.Skills {
		names[i] = s.Skill
	}
	return names
}

// PortfolioItems flattens the user_portfolio rows into a list of strings.
func (u *User) PortfolioItems() []string {
	items := make([]string, len(u.Portfolio))
	for i, p := range u.Portfolio {
		items[i] = p.PortfolioItem
	}
	return items
}
