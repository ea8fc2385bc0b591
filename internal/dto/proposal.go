package dto

import (
	"time"

	"github.com/skillbridge/marketplace-api/internal/models"
)

// ProposalDTO represents a proposal in API responses
type ProposalDTO struct {
	ID             uint64                `json:"id"`
	ProjectID      uint64                `json:"project_id"`
	ProjectTitle   string                `json:"project_title,omitempty"`
	FreelancerID   uint64                `json:"freelancer_id"`
	FreelancerName string                `json:"freelancer_name,omitempty"`
	CoverLetter    string                `json:"cover_letter"`
	ProposedBudget int                   `json:"proposed_budget"`
	Timeline       string                `json:"timeline"`
	Status         models.ProposalStatus `json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ToProposalDTO converts a Proposal model to ProposalDTO
func ToProposalDTO(proposal models.Proposal) ProposalDTO {
	dto := ProposalDTO{
		ID:             proposal.ID,
		ProjectID:      proposal.ProjectID,
		FreelancerID:   proposal.FreelancerID,
		CoverLetter:    proposal.CoverLetter,
		ProposedBudget: proposal.ProposedBudget,
		Timeline:       proposal.Timeline,
		Status:         proposal.Status,
		CreatedAt:      proposal.CreatedAt,
		UpdatedAt:      proposal.UpdatedAt,
	}

	// Include relations if preloaded
	if proposal.Project.ID != 0 {
		dto.ProjectTitle = proposal.Project.Title
	}
	if proposal.Freelancer.ID != 0 {
		dto.FreelancerName = proposal.Freelancer.Name
	}

	return dto
}

// ToProposalList converts a slice of proposals to DTOs
func ToProposalList(proposals []models.Proposal) []ProposalDTO {
	items := make([]ProposalDTO, len(proposals))
	for i, proposal := range proposals {
		items[i] = ToProposalDTO(proposal)
	}
	return items
}
