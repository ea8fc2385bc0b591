package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "OPEN"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusCancelled  ProjectStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known values.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusOpen, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
// OPEN -> IN_PROGRESS -> COMPLETED, with CANCELLED reachable from OPEN or
// IN_PROGRESS. COMPLETED and CANCELLED are terminal.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	switch s {
	case ProjectStatusOpen:
		return next == ProjectStatusInProgress || next == ProjectStatusCancelled
	case ProjectStatusInProgress:
		return next == ProjectStatusCompleted || next == ProjectStatusCancelled
	}
	return false
}

type Project struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Budget      int           `gorm:"not null" json:"budget"`
	Category    string        `gorm:"type:varchar(100);not null" json:"category"`
	Deadline    time.Time     `gorm:"type:date;not null" json:"deadline"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'OPEN'" json:"status"`
	ClientID    uint64        `gorm:"not null" json:"client_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Client    User           `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Skills    []ProjectSkill `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	Proposals []Proposal     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"proposals,omitempty"`
}

// ProjectSkill is one row of the project_skills element table.
type ProjectSkill struct {
	ProjectID uint64 `gorm:"primarykey;autoIncrement:false" json:"-"`
	Skill     string `gorm:"primarykey;type:varchar(100)" json:"skill"`
}

func (ProjectSkill) TableName() string {
	return "project_skills"
}

// BeforeSave enforces the storage-boundary constraints.
func (p *Project) BeforeSave(tx *gorm.DB) error {
	if isBlank(p.Title) {
		return validationError("title is required")
	}
	if isBlank(p.Description) {
		return validationError("description is required")
	}
	if p.Budget <= 0 {
		return validationError("budget must be positive")
	}
	if isBlank(p.Category) {
		return validationError("category is required")
	}
	if p.Deadline.IsZero() {
		return validationError("deadline is required")
	}
	if p.ClientID == 0 {
		return validationError("client is required")
	}
	if p.Status == "" {
		p.Status = ProjectStatusOpen
	}
	if !p.Status.Valid() {
		return validationError("unknown project status %q", p.Status)
	}
	return nil
}

// SkillNames flattens the project_skills rows into a list of strings.
func (p *Project) SkillNames() []string {
	names := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		names[i] = s.Skill
	}
	return names
}
