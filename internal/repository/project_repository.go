package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/database"
	"github.com/skillbridge/marketplace-api/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create inserts a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update persists changes to a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project together with its proposals and skill rows.
// The whole cascade runs in one transaction.
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Proposal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectSkill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

// ReplaceSkills replaces the project's skill rows atomically
func (r *GormProjectRepository) ReplaceSkills(projectID uint64, skills []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectSkill{}).Error; err != nil {
			return err
		}
		if len(skills) == 0 {
			return nil
		}
		rows := make([]models.ProjectSkill, 0, len(skills))
		for _, skill := range uniqueStrings(skills) {
			rows = append(rows, models.ProjectSkill{ProjectID: projectID, Skill: skill})
		}
		return tx.Create(&rows).Error
	})
}

// ListByClient retrieves all projects of a client, newest first
func (r *GormProjectRepository) ListByClient(clientID uint64) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("client_id = ?", clientID).
		Order("created_at DESC").
		Preload("Skills").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// ListByStatus retrieves projects with the given status, newest first
func (r *GormProjectRepository) ListByStatus(status models.ProjectStatus, page, pageSize int) ([]models.Project, int64, error) {
	return r.List(ProjectFilter{Status: status, Page: page, PageSize: pageSize})
}

// List retrieves projects matching the filter, newest first. Status is
// required; every other filter is a no-op when nil.
func (r *GormProjectRepository) List(filter ProjectFilter) ([]models.Project, int64, error) {
	query := r.db.Model(&models.Project{}).Where("status = ?", filter.Status)

	// Apply filters
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.MinBudget != nil {
		query = query.Where("budget >= ?", *filter.MinBudget)
	}
	if filter.MaxBudget != nil {
		query = query.Where("budget <= ?", *filter.MaxBudget)
	}
	if filter.Search != nil {
		pattern := "%" + strings.ToLower(*filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC").
		Scopes(database.Paginate(filter.Page, filter.PageSize))

	var projects []models.Project
	if err := listQuery.Preload("Client").Preload("Skills").Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// ListBySkills retrieves OPEN projects having at least one of the given
// skills, matched case-insensitively via the project_skills join.
func (r *GormProjectRepository) ListBySkills(skills []string, page, pageSize int) ([]models.Project, int64, error) {
	lowered := lowerStrings(skills)
	if len(lowered) == 0 {
		return []models.Project{}, 0, nil
	}

	var total int64
	err := r.projectsBySkillsQuery(lowered).
		Distinct("projects.id").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	listQuery := r.projectsBySkillsQuery(lowered).
		Distinct("projects.*").
		Order("projects.created_at DESC").
		Scopes(database.Paginate(page, pageSize))

	var projects []models.Project
	if err := listQuery.Preload("Client").Preload("Skills").Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (r *GormProjectRepository) projectsBySkillsQuery(lowered []string) *gorm.DB {
	return r.db.Model(&models.Project{}).
		Joins("JOIN project_skills ON project_skills.project_id = projects.id").
		Where("projects.status = ?", models.ProjectStatusOpen).
		Where("LOWER(project_skills.skill) IN ?", lowered)
}

// CountByClientAndStatus counts a client's projects with the given status
func (r *GormProjectRepository) CountByClientAndStatus(clientID uint64, status models.ProjectStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("client_id = ? AND status = ?", clientID, status).
		Count(&count).Error
	return count, err
}
