package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/models"
)

// openTestDB creates an in-memory SQLite database with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would see a different in-memory database
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserSkill{},
		&models.UserPortfolioItem{},
		&models.Project{},
		&models.ProjectSkill{},
		&models.Proposal{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, userType models.UserType) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: "hashedpassword",
		UserType: userType,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProject(t *testing.T, db *gorm.DB, clientID uint64, title string, budget int, status models.ProjectStatus, createdAt time.Time) *models.Project {
	t.Helper()

	project := &models.Project{
		Title:       title,
		Description: "Test description",
		Budget:      budget,
		Category:    "web-development",
		Deadline:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      status,
		ClientID:    clientID,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func seedProposal(t *testing.T, db *gorm.DB, projectID, freelancerID uint64, status models.ProposalStatus, createdAt time.Time) *models.Proposal {
	t.Helper()

	proposal := &models.Proposal{
		ProjectID:      projectID,
		FreelancerID:   freelancerID,
		CoverLetter:    "I would love to work on this",
		ProposedBudget: 900,
		Timeline:       "2 weeks",
		Status:         status,
		CreatedAt:      createdAt,
	}
	require.NoError(t, db.Create(proposal).Error)
	return proposal
}

func seedUserSkills(t *testing.T, db *gorm.DB, userID uint64, skills ...string) {
	t.Helper()

	for _, skill := range skills {
		require.NoError(t, db.Create(&models.UserSkill{UserID: userID, Skill: skill}).Error)
	}
}

func seedProjectSkills(t *testing.T, db *gorm.DB, projectID uint64, skills ...string) {
	t.Helper()

	for _, skill := range skills {
		require.NoError(t, db.Create(&models.ProjectSkill{ProjectID: projectID, Skill: skill}).Error)
	}
}
