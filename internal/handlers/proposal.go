package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillbridge/marketplace-api/internal/dto"
	apierrors "github.com/skillbridge/marketplace-api/internal/errors"
	"github.com/skillbridge/marketplace-api/internal/middleware"
	"github.com/skillbridge/marketplace-api/internal/services"
)

// ProposalHandler coordinates proposal HTTP handlers.
type ProposalHandler struct {
	proposalService *services.ProposalService
}

// NewProposalHandler creates a new ProposalHandler.
func NewProposalHandler(proposalService *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalService,
	}
}

// SubmitProposal submits a proposal from the authenticated freelancer.
func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SubmitProposalRequest struct {
		ProjectID      uint64 `json:"project_id" binding:"required"`
		CoverLetter    string `json:"cover_letter" binding:"required"`
		ProposedBudget int    `json:"proposed_budget" binding:"required,gt=0"`
		Timeline       string `json:"timeline" binding:"required"`
	}

	var req SubmitProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.Submit(services.SubmitProposalInput{
		ProjectID:      req.ProjectID,
		FreelancerID:   userID,
		CoverLetter:    req.CoverLetter,
		ProposedBudget: req.ProposedBudget,
		Timeline:       req.Timeline,
	})
	if err != nil {
		respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProposalDTO(*proposal))
}

// ProjectProposals lists a project's proposals for its owner.
func (h *ProposalHandler) ProjectProposals(c *gin.Context) {
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

	proposals, err := h.proposalService.ProjectProposals(projectID, userID)
	if err != nil {
		respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"proposals": dto.ToProposalList(proposals),
	})
}

// MyProposals lists the authenticated freelancer's proposals.
func (h *ProposalHandler) MyProposals(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	proposals, err := h.proposalService.FreelancerProposals(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list proposals")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"proposals": dto.ToProposalList(proposals),
	})
}

// AcceptProposal accepts a pending proposal on the owner's project.
func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	proposalID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid proposal ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	proposal, err := h.proposalService.Accept(proposalID, userID)
	if err != nil {
		respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalDTO(*proposal))
}

// RejectProposal rejects a pending proposal on the owner's project.
func (h *ProposalHandler) RejectProposal(c *gin.Context) {
	proposalID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid proposal ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	proposal, err := h.proposalService.Reject(proposalID, userID)
	if err != nil {
		respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalDTO(*proposal))
}

// WithdrawProposal deletes the authenticated freelancer's pending proposal.
func (h *ProposalHandler) WithdrawProposal(c *gin.Context) {
	proposalID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid proposal ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.proposalService.Withdraw(proposalID, userID); err != nil {
		respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Proposal withdrawn successfully",
	})
}

// FreelancerDashboard returns the authenticated freelancer's counters.
func (h *ProposalHandler) FreelancerDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	dashboard, err := h.proposalService.GetFreelancerDashboard(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func respondProposalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProposalNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotFreelancer),
		errors.Is(err, services.ErrNotProjectOwner),
		errors.Is(err, services.ErrNotProposalOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrDuplicateProposal):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrProjectNotOpen),
		errors.Is(err, services.ErrOwnProject),
		errors.Is(err, services.ErrProposalNotPending),
		errors.Is(err, services.ErrCoverLetterRequired),
		errors.Is(err, services.ErrTimelineRequired),
		errors.Is(err, services.ErrProposedBudgetNotPositive):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
