package repository

import (
	"github.com/skillbridge/marketplace-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(user *models.User) error

	// FindByID finds a user by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.User, error)

	// FindByEmail finds a user by exact email match
	FindByEmail(email string) (*models.User, error)

	// FindByEmailAndUserType finds a user by email scoped to a role
	FindByEmailAndUserType(email string, userType models.UserType) (*models.User, error)

	// ExistsByEmail reports whether a user with the given email exists
	ExistsByEmail(email string) (bool, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// ReplaceSkills replaces the user's skill rows
	ReplaceSkills(userID uint64, skills []string) error

	// ReplacePortfolio replaces the user's portfolio rows
	ReplacePortfolio(userID uint64, items []string) error

	// ListFreelancers retrieves freelancers matching the optional filters, paged
	ListFreelancers(filter FreelancerFilter) ([]models.User, int64, error)

	// ListFreelancersBySkills retrieves freelancers having at least one of the
	// given skills (case-insensitive), paged
	ListFreelancersBySkills(skills []string, page, pageSize int) ([]models.User, int64, error)
}

// FreelancerFilter holds the optional filters for freelancer search.
// A nil field matches everything.
type FreelancerFilter struct {
	Location     *string
	MinRate      *float64
	MaxRate      *float64
	Availability *string
	Page         int
	PageSize     int
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create inserts a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// Update persists changes to a project
	Update(project *models.Project) error

	// Delete removes a project and cascades to its proposals and skill rows
	Delete(id uint64) error

	// ReplaceSkills replaces the project's skill rows
	ReplaceSkills(projectID uint64, skills []string) error

	// ListByClient retrieves all projects of a client, newest first
	ListByClient(clientID uint64) ([]models.Project, error)

	// ListByStatus retrieves projects with the given status, newest first, paged
	ListByStatus(status models.ProjectStatus, page, pageSize int) ([]models.Project, int64, error)

	// List retrieves projects matching the filter, newest first, paged
	List(filter ProjectFilter) ([]models.Project, int64, error)

	// ListBySkills retrieves OPEN projects having at least one of the given
	// skills (case-insensitive), newest first, paged
	ListBySkills(skills []string, page, pageSize int) ([]models.Project, int64, error)

	// CountByClientAndStatus counts a client's projects with the given status
	CountByClientAndStatus(clientID uint64, status models.ProjectStatus) (int64, error)
}

// ProjectFilter holds filtering options for listing projects. Status is
// required; the remaining fields are optional and nil matches everything.
type ProjectFilter struct {
	Status    models.ProjectStatus
	Category  *string
	MinBudget *int
	MaxBudget *int
	Search    *string
	Page      int
	PageSize  int
}

// ProposalRepository defines the interface for proposal data access
type ProposalRepository interface {
	// Create inserts a new proposal
	Create(proposal *models.Proposal) error

	// FindByID finds a proposal by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Proposal, error)

	// Update persists changes to a proposal
	Update(proposal *models.Proposal) error

	// Delete removes a proposal
	Delete(id uint64) error

	// ListByProject retrieves all proposals on a project, newest first
	ListByProject(projectID uint64) ([]models.Proposal, error)

	// ListByFreelancer retrieves all proposals of a freelancer, newest first
	ListByFreelancer(freelancerID uint64) ([]models.Proposal, error)

	// FindByProjectAndFreelancer finds the single proposal for a pair
	FindByProjectAndFreelancer(projectID, freelancerID uint64) (*models.Proposal, error)

	// ExistsByProjectAndFreelancer reports whether a proposal exists for a pair
	ExistsByProjectAndFreelancer(projectID, freelancerID uint64) (bool, error)

	// CountByFreelancerAndStatus counts a freelancer's proposals with a status
	CountByFreelancerAndStatus(freelancerID uint64, status models.ProposalStatus) (int64, error)

	// CountByClient counts proposals across all of a client's projects
	CountByClient(clientID uint64) (int64, error)

	// CountByClientAndStatus counts proposals across a client's projects,
	// filtered by proposal status
	CountByClientAndStatus(clientID uint64, status models.ProposalStatus) (int64, error)

	// ListByProjectAndStatusNot retrieves a project's proposals excluding a
	// status, newest first
	ListByProjectAndStatusNot(projectID uint64, status models.ProposalStatus) ([]models.Proposal, error)
}
