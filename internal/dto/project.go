package dto

import (
	"time"

	"github.com/skillbridge/marketplace-api/internal/models"
	"github.com/skillbridge/marketplace-api/internal/utils"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Budget      int                  `json:"budget"`
	Category    string               `json:"category"`
	Skills      []string             `json:"skills"`
	Deadline    time.Time            `json:"deadline"`
	Status      models.ProjectStatus `json:"status"`
	ClientID    uint64               `json:"client_id"`
	ClientName  string               `json:"client_name,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects   []ProjectDTO             `json:"projects"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Budget:      project.Budget,
		Category:    project.Category,
		Skills:      project.SkillNames(),
		Deadline:    project.Deadline,
		Status:      project.Status,
		ClientID:    project.ClientID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	// Include client name if preloaded
	if project.Client.ID != 0 {
		dto.ClientName = project.Client.Name
	}

	return dto
}

// ToProjectList converts a slice of projects to DTOs
func ToProjectList(projects []models.Project) []ProjectDTO {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}
	return items
}

// ToProjectListResponse converts a project page to the response shape
func ToProjectListResponse(projects []models.Project, params utils.PaginationParams, total int64) ProjectListResponse {
	return ProjectListResponse{
		Projects: ToProjectList(projects),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
