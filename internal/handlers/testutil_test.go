package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/constants"
	"github.com/skillbridge/marketplace-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
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

// testContext builds a gin context around a JSON request, authenticated as
// the given user when userID is non-zero.
func testContext(t *testing.T, method, target string, body any, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	if userID != 0 {
		c.Set(constants.ContextKeyUserID, userID)
	}

	return c, w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
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

func seedProject(t *testing.T, db *gorm.DB, clientID uint64, title string, budget int, status models.ProjectStatus) *models.Project {
	t.Helper()

	project := &models.Project{
		Title:       title,
		Description: "Test description",
		Budget:      budget,
		Category:    "web-development",
		Deadline:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      status,
		ClientID:    clientID,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func seedProposal(t *testing.T, db *gorm.DB, projectID, freelancerID uint64, status models.ProposalStatus) *models.Proposal {
	t.Helper()

	proposal := &models.Proposal{
		ProjectID:      projectID,
		FreelancerID:   freelancerID,
		CoverLetter:    "I would love to work on this",
		ProposedBudget: 900,
		Timeline:       "2 weeks",
		Status:         status,
	}
	require.NoError(t, db.Create(proposal).Error)
	return proposal
}
