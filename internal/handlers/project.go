package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillbridge/marketplace-api/internal/dto"
	apierrors "github.com/skillbridge/marketplace-api/internal/errors"
	"github.com/skillbridge/marketplace-api/internal/middleware"
	"github.com/skillbridge/marketplace-api/internal/models"
	"github.com/skillbridge/marketplace-api/internal/services"
	"github.com/skillbridge/marketplace-api/internal/utils"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects browses projects with optional filters:
// status (default OPEN), category, min_budget, max_budget, search,
// skills (comma-separated).
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	minBudget, err := optionalIntQuery(c, "min_budget")
	if err != nil {
		apierrors.BadRequest(c, "Invalid min_budget")
		return
	}
	maxBudget, err := optionalIntQuery(c, "max_budget")
	if err != nil {
		apierrors.BadRequest(c, "Invalid max_budget")
		return
	}

	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.ListProjects(services.ListProjectsInput{
		Status:    models.ProjectStatus(c.Query("status")),
		Category:  optionalQuery(c, "category"),
		MinBudget: minBudget,
		MaxBudget: maxBudget,
		Search:    optionalQuery(c, "search"),
		Skills:    csvQuery(c, "skills"),
		Page:      params.Page,
		PageSize:  params.Limit,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidProjectStatus) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to list projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(projects, params, total))
}

// GetProject returns a single project.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetProject(projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// CreateProject posts a new project for the authenticated client.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateProjectRequest struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description" binding:"required"`
		Budget      int      `json:"budget" binding:"required,gt=0"`
		Category    string   `json:"category" binding:"required"`
		Skills      []string `json:"skills"`
		Deadline    string   `json:"deadline" binding:"required"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		apierrors.BadRequest(c, "Deadline must be a date in YYYY-MM-DD format")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Category:    req.Category,
		Skills:      req.Skills,
		Deadline:    deadline,
		ClientID:    userID,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// UpdateProject updates a project owned by the authenticated client.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateProjectRequest struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Budget      *int     `json:"budget"`
		Category    *string  `json:"category"`
		Deadline    *string  `json:"deadline"`
		Status      *string  `json:"status"`
		Skills      []string `json:"skills"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Category:    req.Category,
		Skills:      req.Skills,
	}
	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			apierrors.BadRequest(c, "Deadline must be a date in YYYY-MM-DD format")
			return
		}
		input.Deadline = &deadline
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		input.Status = &status
	}

	project, err := h.projectService.UpdateProject(projectID, userID, input)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject removes a project owned by the authenticated client.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.projectService.DeleteProject(projectID, userID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}

// MyProjects lists the authenticated client's projects, newest first.
func (h *ProjectHandler) MyProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projects, err := h.projectService.ClientProjects(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectList(projects),
	})
}

// ClientDashboard returns the authenticated client's counters.
func (h *ProjectHandler) ClientDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	dashboard, err := h.projectService.GetClientDashboard(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotClient),
		errors.Is(err, services.ErrNotProjectOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrDescriptionRequired),
		errors.Is(err, services.ErrCategoryRequired),
		errors.Is(err, services.ErrBudgetNotPositive),
		errors.Is(err, services.ErrDeadlineRequired),
		errors.Is(err, services.ErrInvalidProjectStatus):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrIllegalStatusTransition):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
