package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ProjectStatus
		to      ProjectStatus
		allowed bool
	}{
		{ProjectStatusOpen, ProjectStatusInProgress, true},
		{ProjectStatusOpen, ProjectStatusCancelled, true},
		{ProjectStatusOpen, ProjectStatusCompleted, false},
		{ProjectStatusInProgress, ProjectStatusCompleted, true},
		{ProjectStatusInProgress, ProjectStatusCancelled, true},
		{ProjectStatusInProgress, ProjectStatusOpen, false},
		{ProjectStatusCompleted, ProjectStatusOpen, false},
		{ProjectStatusCompleted, ProjectStatusInProgress, false},
		{ProjectStatusCancelled, ProjectStatusOpen, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestProposalStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ProposalStatus
		to      ProposalStatus
		allowed bool
	}{
		{ProposalStatusPending, ProposalStatusAccepted, true},
		{ProposalStatusPending, ProposalStatusRejected, true},
		{ProposalStatusAccepted, ProposalStatusRejected, false},
		{ProposalStatusAccepted, ProposalStatusPending, false},
		{ProposalStatusRejected, ProposalStatusAccepted, false},
		{ProposalStatusRejected, ProposalStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, ProjectStatusOpen.Valid())
	assert.False(t, ProjectStatus("ARCHIVED").Valid())
	assert.True(t, ProposalStatusPending.Valid())
	assert.False(t, ProposalStatus("WITHDRAWN").Valid())
	assert.True(t, UserTypeClient.Valid())
	assert.False(t, UserType("ADMIN").Valid())
}

func TestUserBeforeSaveValidation(t *testing.T) {
	valid := func() *User {
		return &User{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "hashed",
			UserType: UserTypeClient,
		}
	}

	assert.NoError(t, valid().BeforeSave(nil))

	u := valid()
	u.Name = "A"
	assert.True(t, errors.Is(u.BeforeSave(nil), ErrValidation))

	u = valid()
	u.Email = "not-an-email"
	assert.True(t, errors.Is(u.BeforeSave(nil), ErrValidation))

	u = valid()
	u.UserType = "ADMIN"
	assert.True(t, errors.Is(u.BeforeSave(nil), ErrValidation))

	u = valid()
	rate := -1.0
	u.HourlyRate = &rate
	assert.True(t, errors.Is(u.BeforeSave(nil), ErrValidation))

	// Availability defaults when unset
	u = valid()
	assert.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, "available", u.Availability)
}

func TestProposalBeforeSaveDefaultsStatus(t *testing.T) {
	p := &Proposal{
		ProjectID:      1,
		FreelancerID:   2,
		CoverLetter:    "hello",
		ProposedBudget: 100,
		Timeline:       "1 week",
	}
	assert.NoError(t, p.BeforeSave(nil))
	assert.Equal(t, ProposalStatusPending, p.Status)

	p.ProposedBudget = 0
	assert.True(t, errors.Is(p.BeforeSave(nil), ErrValidation))
}
