package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/dto"
	"github.com/skillbridge/marketplace-api/internal/models"
	"github.com/skillbridge/marketplace-api/internal/repository"
	"github.com/skillbridge/marketplace-api/internal/services"
)

type UserHandlerTestSuite struct {
	suite.Suite
	db         *gorm.DB
	handler    *UserHandler
	client     *models.User
	freelancer *models.User
}

func (s *UserHandlerTestSuite) SetupTest() {
	s.db = openTestDB(s.T())

	userRepo := repository.NewUserRepository(s.db)
	userService := services.NewUserService(userRepo)
	s.handler = NewUserHandler(userService)

	s.client = seedUser(s.T(), s.db, "client@example.com", models.UserTypeClient)
	s.freelancer = seedUser(s.T(), s.db, "freelancer@example.com", models.UserTypeFreelancer)
}

func (s *UserHandlerTestSuite) TestGetProfile() {
	idParam := strconv.FormatUint(s.freelancer.ID, 10)
	c, w := testContext(s.T(), http.MethodGet, "/api/users/"+idParam, nil, 0)
	c.Params = gin.Params{{Key: "id", Value: idParam}}

	s.handler.GetProfile(c)
	s.Equal(http.StatusOK, w.Code)

	var user dto.UserDTO
	decodeJSON(s.T(), w, &user)
	s.Equal(s.freelancer.ID, user.ID)
	s.NotContains(w.Body.String(), "password")
}

func (s *UserHandlerTestSuite) TestGetProfileNotFound() {
	c, w := testContext(s.T(), http.MethodGet, "/api/users/99999", nil, 0)
	c.Params = gin.Params{{Key: "id", Value: "99999"}}

	s.handler.GetProfile(c)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *UserHandlerTestSuite) TestUpdateFreelancerProfile() {
	c, w := testContext(s.T(), http.MethodPut, "/api/users/me", gin.H{
		"bio":         "Seasoned backend developer",
		"hourly_rate": 75.0,
		"skills":      []string{"Go", "PostgreSQL"},
		"portfolio":   []string{"https://example.com/work"},
	}, s.freelancer.ID)

	s.handler.UpdateProfile(c)
	s.Equal(http.StatusOK, w.Code)

	var user dto.UserDTO
	decodeJSON(s.T(), w, &user)
	s.Equal("Seasoned backend developer", user.Bio)
	s.Require().NotNil(user.HourlyRate)
	s.Equal(75.0, *user.HourlyRate)
	s.ElementsMatch([]string{"Go", "PostgreSQL"}, user.Skills)
	s.Equal([]string{"https://example.com/work"}, user.Portfolio)
}

func (s *UserHandlerTestSuite) TestUpdateClientIgnoresFreelancerFields() {
	c, w := testContext(s.T(), http.MethodPut, "/api/users/me", gin.H{
		"company":     "Acme Corp",
		"hourly_rate": 75.0,
		"skills":      []string{"Go"},
	}, s.client.ID)

	s.handler.UpdateProfile(c)
	s.Equal(http.StatusOK, w.Code)

	var user dto.UserDTO
	decodeJSON(s.T(), w, &user)
	s.Equal("Acme Corp", user.Company)
	s.Nil(user.HourlyRate)
	s.Empty(user.Skills)
}

func (s *UserHandlerTestSuite) TestUpdateNegativeHourlyRate() {
	c, w := testContext(s.T(), http.MethodPut, "/api/users/me", gin.H{
		"hourly_rate": -5.0,
	}, s.freelancer.ID)

	s.handler.UpdateProfile(c)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *UserHandlerTestSuite) TestListFreelancersBySkills() {
	seedSkill := func(userID uint64, skill string) {
		s.NoError(s.db.Create(&models.UserSkill{UserID: userID, Skill: skill}).Error)
	}
	seedSkill(s.freelancer.ID, "Go")

	other := seedUser(s.T(), s.db, "other@example.com", models.UserTypeFreelancer)
	seedSkill(other.ID, "Rust")

	c, w := testContext(s.T(), http.MethodGet, "/api/freelancers?skills=go", nil, 0)

	s.handler.ListFreelancers(c)
	s.Equal(http.StatusOK, w.Code)

	var resp dto.FreelancerListResponse
	decodeJSON(s.T(), w, &resp)
	s.Equal(int64(1), resp.Pagination.Total)
	s.Require().Len(resp.Freelancers, 1)
	s.Equal(s.freelancer.ID, resp.Freelancers[0].ID)
}

func (s *UserHandlerTestSuite) TestListFreelancersRateFilter() {
	rate := 50.0
	s.freelancer.HourlyRate = &rate
	s.NoError(s.db.Save(s.freelancer).Error)

	expensive := 200.0
	other := seedUser(s.T(), s.db, "pricey@example.com", models.UserTypeFreelancer)
	other.HourlyRate = &expensive
	s.NoError(s.db.Save(other).Error)

	c, w := testContext(s.T(), http.MethodGet, "/api/freelancers?min_rate=40&max_rate=100", nil, 0)

	s.handler.ListFreelancers(c)
	s.Equal(http.StatusOK, w.Code)

	var resp dto.FreelancerListResponse
	decodeJSON(s.T(), w, &resp)
	s.Equal(int64(1), resp.Pagination.Total)
	s.Require().Len(resp.Freelancers, 1)
	s.Equal(s.freelancer.ID, resp.Freelancers[0].ID)
}

func (s *UserHandlerTestSuite) TestListFreelancersInvalidRate() {
	c, w := testContext(s.T(), http.MethodGet, "/api/freelancers?min_rate=cheap", nil, 0)

	s.handler.ListFreelancers(c)
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
