package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/models"
	"github.com/skillbridge/marketplace-api/internal/repository"
)

var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrNotClient               = errors.New("only clients can post projects")
	ErrNotProjectOwner         = errors.New("only the project owner can perform this action")
	ErrInvalidProjectStatus    = errors.New("unknown project status")
	ErrIllegalStatusTransition = errors.New("illegal project status transition")
	ErrTitleRequired           = errors.New("title is required")
	ErrDescriptionRequired     = errors.New("description is required")
	ErrCategoryRequired        = errors.New("category is required")
	ErrBudgetNotPositive       = errors.New("budget must be positive")
	ErrDeadlineRequired        = errors.New("deadline is required")
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo  repository.ProjectRepository
	proposalRepo repository.ProposalRepository
	userRepo     repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, proposalRepo repository.ProposalRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
	}
}

// CreateProjectInput represents input for posting a project.
type CreateProjectInput struct {
	Title       string
	Description string
	Budget      int
	Category    string
	Skills      []string
	Deadline    time.Time
	ClientID    uint64
}

// CreateProject posts a new project for a client.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	client, err := s.userRepo.FindByID(input.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	if !client.IsClient() {
		return nil, ErrNotClient
	}

	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Description == "" {
		return nil, ErrDescriptionRequired
	}
	if input.Category == "" {
		return nil, ErrCategoryRequired
	}
	if input.Budget <= 0 {
		return nil, ErrBudgetNotPositive
	}
	if input.Deadline.IsZero() {
		return nil, ErrDeadlineRequired
	}

	project := &models.Project{
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Category:    input.Category,
		Deadline:    input.Deadline,
		Status:      models.ProjectStatusOpen,
		ClientID:    input.ClientID,
	}
	for _, skill := range input.Skills {
		project.Skills = append(project.Skills, models.ProjectSkill{Skill: skill})
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.projectRepo.FindByID(project.ID, "Client", "Skills")
}

// GetProject returns a project with its client and skills loaded.
func (s *ProjectService) GetProject(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID, "Client", "Skills")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// ListProjectsInput holds the browse filters. Status defaults to OPEN.
type ListProjectsInput struct {
	Status    models.ProjectStatus
	Category  *string
	MinBudget *int
	MaxBudget *int
	Search    *string
	Skills    []string
	Page      int
	PageSize  int
}

// ListProjects lists projects matching the filters, newest first. A skills
// filter switches to the skills join, which is restricted to OPEN projects.
func (s *ProjectService) ListProjects(input ListProjectsInput) ([]models.Project, int64, error) {
	if len(input.Skills) > 0 {
		projects, total, err := s.projectRepo.ListBySkills(input.Skills, input.Page, input.PageSize)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list projects by skills: %w", err)
		}
		return projects, total, nil
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusOpen
	}
	if !status.Valid() {
		return nil, 0, ErrInvalidProjectStatus
	}

	projects, total, err := s.projectRepo.List(repository.ProjectFilter{
		Status:    status,
		Category:  input.Category,
		MinBudget: input.MinBudget,
		MaxBudget: input.MaxBudget,
		Search:    input.Search,
		Page:      input.Page,
		PageSize:  input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// ClientProjects lists all projects posted by a client, newest first.
func (s *ProjectService) ClientProjects(clientID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list client projects: %w", err)
	}
	return projects, nil
}

// UpdateProjectInput represents input for updating a project. Nil fields are
// left unchanged.
type UpdateProjectInput struct {
	Title       *string
	Description *string
	Budget      *int
	Category    *string
	Deadline    *time.Time
	Status      *models.ProjectStatus
	Skills      []string
}

// UpdateProject updates a project owned by the actor. A status change must be
// a legal transition of the project state machine.
func (s *ProjectService) UpdateProject(projectID, actorID uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if project.ClientID != actorID {
		return nil, ErrNotProjectOwner
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		project.Title = *input.Title
	}
	if input.Description != nil {
		if *input.Description == "" {
			return nil, ErrDescriptionRequired
		}
		project.Description = *input.Description
	}
	if input.Budget != nil {
		if *input.Budget <= 0 {
			return nil, ErrBudgetNotPositive
		}
		project.Budget = *input.Budget
	}
	if input.Category != nil {
		if *input.Category == "" {
			return nil, ErrCategoryRequired
		}
		project.Category = *input.Category
	}
	if input.Deadline != nil {
		project.Deadline = *input.Deadline
	}
	if input.Status != nil && *input.Status != project.Status {
		if !input.Status.Valid() {
			return nil, ErrInvalidProjectStatus
		}
		if !project.Status.CanTransitionTo(*input.Status) {
			return nil, ErrIllegalStatusTransition
		}
		project.Status = *input.Status
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	if input.Skills != nil {
		if err := s.projectRepo.ReplaceSkills(project.ID, input.Skills); err != nil {
			return nil, fmt.Errorf("failed to update skills: %w", err)
		}
	}

	return s.projectRepo.FindByID(project.ID, "Client", "Skills")
}

// DeleteProject removes a project owned by the actor; its proposals are
// deleted with it.
func (s *ProjectService) DeleteProject(projectID, actorID uint64) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if project.ClientID != actorID {
		return ErrNotProjectOwner
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// ClientDashboard aggregates a client's project and proposal counts.
type ClientDashboard struct {
	OpenProjects       int64 `json:"open_projects"`
	InProgressProjects int64 `json:"in_progress_projects"`
	CompletedProjects  int64 `json:"completed_projects"`
	TotalProposals     int64 `json:"total_proposals"`
	PendingProposals   int64 `json:"pending_proposals"`
}

// GetClientDashboard computes the dashboard counters for a client.
func (s *ProjectService) GetClientDashboard(clientID uint64) (*ClientDashboard, error) {
	dashboard := &ClientDashboard{}

	counts := []struct {
		status models.ProjectStatus
		dest   *int64
	}{
		{models.ProjectStatusOpen, &dashboard.OpenProjects},
		{models.ProjectStatusInProgress, &dashboard.InProgressProjects},
		{models.ProjectStatusCompleted, &dashboard.CompletedProjects},
	}
	for _, c := range counts {
		count, err := s.projectRepo.CountByClientAndStatus(clientID, c.status)
		if err != nil {
			return nil, fmt.Errorf("failed to count projects: %w", err)
		}
		*c.dest = count
	}

	total, err := s.proposalRepo.CountByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to count proposals: %w", err)
	}
	dashboard.TotalProposals = total

	pending, err := s.proposalRepo.CountByClientAndStatus(clientID, models.ProposalStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending proposals: %w", err)
	}
	dashboard.PendingProposals = pending

	return dashboard, nil
}
