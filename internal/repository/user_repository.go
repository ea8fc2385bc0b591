package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/database"
	"github.com/skillbridge/marketplace-api/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID with optional preloading
func (r *GormUserRepository) FindByID(id uint64, preload ...string) (*models.User, error) {
	var user models.User
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by exact, case-sensitive email match
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmailAndUserType finds a user by email scoped to a role
func (r *GormUserRepository) FindByEmailAndUserType(email string, userType models.UserType) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ? AND user_type = ?", email, userType).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether a user with the given email exists
func (r *GormUserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Update persists changes to a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// ReplaceSkills replaces the user's skill rows atomically
func (r *GormUserRepository) ReplaceSkills(userID uint64, skills []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserSkill{}).Error; err != nil {
			return err
		}
		if len(skills) == 0 {
			return nil
		}
		rows := make([]models.UserSkill, 0, len(skills))
		for _, skill := range uniqueStrings(skills) {
			rows = append(rows, models.UserSkill{UserID: userID, Skill: skill})
		}
		return tx.Create(&rows).Error
	})
}

// ReplacePortfolio replaces the user's portfolio rows atomically
func (r *GormUserRepository) ReplacePortfolio(userID uint64, items []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserPortfolioItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]models.UserPortfolioItem, 0, len(items))
		for _, item := range uniqueStrings(items) {
			rows = append(rows, models.UserPortfolioItem{UserID: userID, PortfolioItem: item})
		}
		return tx.Create(&rows).Error
	})
}

// ListFreelancers retrieves freelancers matching the optional filters.
// A nil filter field is a no-op and matches all rows.
func (r *GormUserRepository) ListFreelancers(filter FreelancerFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{}).Where("user_type = ?", models.UserTypeFreelancer)

	// Apply filters
	if filter.Location != nil {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(*filter.Location)+"%")
	}
	if filter.MinRate != nil {
		query = query.Where("hourly_rate >= ?", *filter.MinRate)
	}
	if filter.MaxRate != nil {
		query = query.Where("hourly_rate <= ?", *filter.MaxRate)
	}
	if filter.Availability != nil {
		query = query.Where("availability = ?", *filter.Availability)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Scopes(database.Paginate(filter.Page, filter.PageSize))

	var users []models.User
	if err := listQuery.Preload("Skills").Preload("Portfolio").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListFreelancersBySkills retrieves freelancers having at least one of the
// given skills, matched case-insensitively via the user_skills join.
func (r *GormUserRepository) ListFreelancersBySkills(skills []string, page, pageSize int) ([]models.User, int64, error) {
	lowered := lowerStrings(skills)
	if len(lowered) == 0 {
		return []models.User{}, 0, nil
	}

	var total int64
	err := r.freelancersBySkillsQuery(lowered).
		Distinct("users.id").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	listQuery := r.freelancersBySkillsQuery(lowered).
		Distinct("users.*").
		Scopes(database.Paginate(page, pageSize))

	var users []models.User
	if err := listQuery.Preload("Skills").Preload("Portfolio").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *GormUserRepository) freelancersBySkillsQuery(lowered []string) *gorm.DB {
	return r.db.Model(&models.User{}).
		Joins("JOIN user_skills ON user_skills.user_id = users.id").
		Where("users.user_type = ?", models.UserTypeFreelancer).
		Where("LOWER(user_skills.skill) IN ?", lowered)
}

// lowerStrings lowercases every entry, dropping blanks
func lowerStrings(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		result = append(result, strings.ToLower(v))
	}
	return result
}

// uniqueStrings removes duplicate values, preserving the first occurrence
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
