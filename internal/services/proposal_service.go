package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/models"
	"github.com/skillbridge/marketplace-api/internal/repository"
)

var (
	ErrProposalNotFound          = errors.New("proposal not found")
	ErrNotFreelancer             = errors.New("only freelancers can submit proposals")
	ErrProjectNotOpen            = errors.New("project is not accepting proposals")
	ErrOwnProject                = errors.New("cannot submit a proposal to your own project")
	ErrDuplicateProposal         = errors.New("a proposal for this project already exists")
	ErrNotProposalOwner          = errors.New("only the proposal owner can perform this action")
	ErrProposalNotPending        = errors.New("proposal has already been decided")
	ErrCoverLetterRequired       = errors.New("cover letter is required")
	ErrTimelineRequired          = errors.New("timeline is required")
	ErrProposedBudgetNotPositive = errors.New("proposed budget must be positive")
)

// ProposalService handles proposal business logic.
type ProposalService struct {
	proposalRepo repository.ProposalRepository
	projectRepo  repository.ProjectRepository
	userRepo     repository.UserRepository
}

// NewProposalService creates a new ProposalService.
func NewProposalService(proposalRepo repository.ProposalRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProposalService {
	return &ProposalService{
		proposalRepo: proposalRepo,
		projectRepo:  projectRepo,
		userRepo:     userRepo,
	}
}

// SubmitProposalInput represents input for submitting a proposal.
type SubmitProposalInput struct {
	ProjectID      uint64
	FreelancerID   uint64
	CoverLetter    string
	ProposedBudget int
	Timeline       string
}

// Submit creates a proposal on an open project. The exists check gives a
// friendly error; the unique index on (project_id, freelancer_id) is what
// actually prevents the duplicate under concurrency.
func (s *ProposalService) Submit(input SubmitProposalInput) (*models.Proposal, error) {
	if input.CoverLetter == "" {
		return nil, ErrCoverLetterRequired
	}
	if input.Timeline == "" {
		return nil, ErrTimelineRequired
	}
	if input.ProposedBudget <= 0 {
		return nil, ErrProposedBudgetNotPositive
	}

	freelancer, err := s.userRepo.FindByID(input.FreelancerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find freelancer: %w", err)
	}
	if !freelancer.IsFreelancer() {
		return nil, ErrNotFreelancer
	}

	project, err := s.projectRepo.FindByID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project.Status != models.ProjectStatusOpen {
		return nil, ErrProjectNotOpen
	}
	if project.ClientID == input.FreelancerID {
		return nil, ErrOwnProject
	}

	exists, err := s.proposalRepo.ExistsByProjectAndFreelancer(input.ProjectID, input.FreelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing proposal: %w", err)
	}
	if exists {
		return nil, ErrDuplicateProposal
	}

	proposal := &models.Proposal{
		ProjectID:      input.ProjectID,
		FreelancerID:   input.FreelancerID,
		CoverLetter:    input.CoverLetter,
		ProposedBudget: input.ProposedBudget,
		Timeline:       input.Timeline,
		Status:         models.ProposalStatusPending,
	}

	if err := s.proposalRepo.Create(proposal); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateProposal
		}
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	return s.proposalRepo.FindByID(proposal.ID, "Project", "Freelancer")
}

// ProjectProposals lists a project's proposals for its owner, newest first.
func (s *ProposalService) ProjectProposals(projectID, actorID uint64) ([]models.Proposal, error) {
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

	proposals, err := s.proposalRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

// FreelancerProposals lists all proposals of a freelancer, newest first.
func (s *ProposalService) FreelancerProposals(freelancerID uint64) ([]models.Proposal, error) {
	proposals, err := s.proposalRepo.ListByFreelancer(freelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

// Accept accepts a pending proposal on behalf of the project owner. The
// remaining pending proposals are rejected and the project moves to
// IN_PROGRESS.
func (s *ProposalService) Accept(proposalID, actorID uint64) (*models.Proposal, error) {
	proposal, project, err := s.ownedProposal(proposalID, actorID)
	if err != nil {
		return nil, err
	}
	if !proposal.Status.CanTransitionTo(models.ProposalStatusAccepted) {
		return nil, ErrProposalNotPending
	}

	proposal.Status = models.ProposalStatusAccepted
	if err := s.proposalRepo.Update(proposal); err != nil {
		return nil, fmt.Errorf("failed to accept proposal: %w", err)
	}

	others, err := s.proposalRepo.ListByProjectAndStatusNot(proposal.ProjectID, models.ProposalStatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to list remaining proposals: %w", err)
	}
	for i := range others {
		if others[i].Status != models.ProposalStatusPending {
			continue
		}
		others[i].Status = models.ProposalStatusRejected
		if err := s.proposalRepo.Update(&others[i]); err != nil {
			return nil, fmt.Errorf("failed to reject proposal %d: %w", others[i].ID, err)
		}
	}

	if project.Status.CanTransitionTo(models.ProjectStatusInProgress) {
		project.Status = models.ProjectStatusInProgress
		if err := s.projectRepo.Update(project); err != nil {
			return nil, fmt.Errorf("failed to update project status: %w", err)
		}
	}

	return s.proposalRepo.FindByID(proposal.ID, "Project", "Freelancer")
}

// Reject rejects a pending proposal on behalf of the project owner.
func (s *ProposalService) Reject(proposalID, actorID uint64) (*models.Proposal, error) {
	proposal, _, err := s.ownedProposal(proposalID, actorID)
	if err != nil {
		return nil, err
	}
	if !proposal.Status.CanTransitionTo(models.ProposalStatusRejected) {
		return nil, ErrProposalNotPending
	}

	proposal.Status = models.ProposalStatusRejected
	if err := s.proposalRepo.Update(proposal); err != nil {
		return nil, fmt.Errorf("failed to reject proposal: %w", err)
	}

	return s.proposalRepo.FindByID(proposal.ID, "Project", "Freelancer")
}

// Withdraw deletes a freelancer's own pending proposal.
func (s *ProposalService) Withdraw(proposalID, actorID uint64) error {
	proposal, err := s.proposalRepo.FindByID(proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProposalNotFound
		}
		return fmt.Errorf("failed to find proposal: %w", err)
	}
	if proposal.FreelancerID != actorID {
		return ErrNotProposalOwner
	}
	if proposal.Status != models.ProposalStatusPending {
		return ErrProposalNotPending
	}

	if err := s.proposalRepo.Delete(proposalID); err != nil {
		return fmt.Errorf("failed to withdraw proposal: %w", err)
	}
	return nil
}

// FreelancerDashboard aggregates a freelancer's proposal counts.
type FreelancerDashboard struct {
	PendingProposals  int64 `json:"pending_proposals"`
	AcceptedProposals int64 `json:"accepted_proposals"`
	RejectedProposals int64 `json:"rejected_proposals"`
}

// GetFreelancerDashboard computes the dashboard counters for a freelancer.
func (s *ProposalService) GetFreelancerDashboard(freelancerID uint64) (*FreelancerDashboard, error) {
	dashboard := &FreelancerDashboard{}

	counts := []struct {
		status models.ProposalStatus
		dest   *int64
	}{
		{models.ProposalStatusPending, &dashboard.PendingProposals},
		{models.ProposalStatusAccepted, &dashboard.AcceptedProposals},
		{models.ProposalStatusRejected, &dashboard.RejectedProposals},
	}
	for _, c := range counts {
		count, err := s.proposalRepo.CountByFreelancerAndStatus(freelancerID, c.status)
		if err != nil {
			return nil, fmt.Errorf("failed to count proposals: %w", err)
		}
		*c.dest = count
	}

	return dashboard, nil
}

// ownedProposal loads a proposal and its project, verifying the actor owns
// the project.
func (s *ProposalService) ownedProposal(proposalID, actorID uint64) (*models.Proposal, *models.Project, error) {
	proposal, err := s.proposalRepo.FindByID(proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProposalNotFound
		}
		return nil, nil, fmt.Errorf("failed to find proposal: %w", err)
	}

	project, err := s.projectRepo.FindByID(proposal.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project.ClientID != actorID {
		return nil, nil, ErrNotProjectOwner
	}

	return proposal, project, nil
}
