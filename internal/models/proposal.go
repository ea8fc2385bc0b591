package models

import (
	"time"

	"gorm.io/gorm"
)

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "PENDING"
	ProposalStatusAccepted ProposalStatus = "ACCEPTED"
	ProposalStatusRejected ProposalStatus = "REJECTED"
)

// Valid reports whether the status is one of the known values.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusPending, ProposalStatusAccepted, ProposalStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
// A proposal only ever moves from PENDING to ACCEPTED or REJECTED.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	return s == ProposalStatusPending &&
		(next == ProposalStatusAccepted || next == ProposalStatusRejected)
}

// Proposal is a freelancer's bid on a project. A freelancer may submit at most
// one proposal per project, enforced by the composite unique index.
type Proposal struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	ProjectID      uint64         `gorm:"not null;uniqueIndex:idx_proposals_project_freelancer" json:"project_id"`
	FreelancerID   uint64         `gorm:"not null;uniqueIndex:idx_proposals_project_freelancer" json:"freelancer_id"`
	CoverLetter    string         `gorm:"type:text;not null" json:"cover_letter"`
	ProposedBudget int            `gorm:"not null" json:"proposed_budget"`
	Timeline       string         `gorm:"type:varchar(255);not null" json:"timeline"`
	Status         ProposalStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Project    Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Freelancer User    `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
}

// BeforeSave enforces the storage-boundary constraints.
func (p *Proposal) BeforeSave(tx *gorm.DB) error {
	if p.ProjectID == 0 {
		return validationError("project is required")
	}
	if p.FreelancerID == 0 {
		return validationError("freelancer is required")
	}
	if isBlank(p.CoverLetter) {
		return validationError("cover letter is required")
	}
	if p.ProposedBudget <= 0 {
		return validationError("proposed budget must be positive")
	}
	if isBlank(p.Timeline) {
		return validationError("timeline is required")
	}
	if p.Status == "" {
		p.Status = ProposalStatusPending
	}
	if !p.Status.Valid() {
		return validationError("unknown proposal status %q", p.Status)
	}
	return nil
}
