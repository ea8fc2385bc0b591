package repository

import (
	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/models"
)

// GormProposalRepository is a GORM implementation of ProposalRepository
type GormProposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new ProposalRepository
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &GormProposalRepository{db: db}
}

// Create inserts a new proposal. The composite unique index on
// (project_id, freelancer_id) makes a duplicate insert fail atomically.
func (r *GormProposalRepository) Create(proposal *models.Proposal) error {
	return r.db.Create(proposal).Error
}

// FindByID finds a proposal by ID with optional preloading
func (r *GormProposalRepository) FindByID(id uint64, preload ...string) (*models.Proposal, error) {
	var proposal models.Proposal
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&proposal, id).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

// Update persists changes to a proposal
func (r *GormProposalRepository) Update(proposal *models.Proposal) error {
	return r.db.Save(proposal).Error
}

// Delete removes a proposal
func (r *GormProposalRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Proposal{}, id).Error
}

// ListByProject retrieves all proposals on a project, newest first
func (r *GormProposalRepository) ListByProject(projectID uint64) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Preload("Freelancer").
		Find(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

// ListByFreelancer retrieves all proposals of a freelancer, newest first
func (r *GormProposalRepository) ListByFreelancer(freelancerID uint64) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Preload("Project").
		Find(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

// FindByProjectAndFreelancer finds the single proposal for a pair
func (r *GormProposalRepository) FindByProjectAndFreelancer(projectID, freelancerID uint64) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.Where("project_id = ? AND freelancer_id = ?", projectID, freelancerID).
		First(&proposal).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// ExistsByProjectAndFreelancer reports whether a proposal exists for a pair
func (r *GormProposalRepository) ExistsByProjectAndFreelancer(projectID, freelancerID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Proposal{}).
		Where("project_id = ? AND freelancer_id = ?", projectID, freelancerID).
		Count(&count).Error
	return count > 0, err
}

// CountByFreelancerAndStatus counts a freelancer's proposals with a status
func (r *GormProposalRepository) CountByFreelancerAndStatus(freelancerID uint64, status models.ProposalStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Proposal{}).
		Where("freelancer_id = ? AND status = ?", freelancerID, status).
		Count(&count).Error
	return count, err
}

// CountByClient counts proposals across all of a client's projects
func (r *GormProposalRepository) CountByClient(clientID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Proposal{}).
		Joins("JOIN projects ON projects.id = proposals.project_id").
		Where("projects.client_id = ?", clientID).
		Count(&count).Error
	return count, err
}

// CountByClientAndStatus counts proposals across a client's projects,
// filtered by proposal status
func (r *GormProposalRepository) CountByClientAndStatus(clientID uint64, status models.ProposalStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Proposal{}).
		Joins("JOIN projects ON projects.id = proposals.project_id").
		Where("projects.client_id = ? AND proposals.status = ?", clientID, status).
		Count(&count).Error
	return count, err
}

// ListByProjectAndStatusNot retrieves a project's proposals excluding a
// status, newest first
func (r *GormProposalRepository) ListByProjectAndStatusNot(projectID uint64, status models.ProposalStatus) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.Where("project_id = ? AND status <> ?", projectID, status).
		Order("created_at DESC").
		Preload("Freelancer").
		Find(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}
