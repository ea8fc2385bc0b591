package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/skillbridge/marketplace-api/internal/models"
)

type ProjectRepositoryTestSuite struct {
	suite.Suite
	db     *gorm.DB
	repo   ProjectRepository
	client *models.User
}

func (s *ProjectRepositoryTestSuite) SetupTest() {
	s.db = openTestDB(s.T())
	s.repo = NewProjectRepository(s.db)
	s.client = seedUser(s.T(), s.db, "client@example.com", models.UserTypeClient)
}

func (s *ProjectRepositoryTestSuite) TestCreateAndFindByID() {
	project := seedProject(s.T(), s.db, s.client.ID, "Build an API", 1000, models.ProjectStatusOpen, time.Now())
	seedProjectSkills(s.T(), s.db, project.ID, "Go", "PostgreSQL")

	found, err := s.repo.FindByID(project.ID, "Client", "Skills")
	s.NoError(err)
	s.Equal("Build an API", found.Title)
	s.Equal(s.client.Email, found.Client.Email)
	s.ElementsMatch([]string{"Go", "PostgreSQL"}, found.SkillNames())

	_, err = s.repo.FindByID(99999)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *ProjectRepositoryTestSuite) TestListBudgetBoundsInclusive() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedProject(s.T(), s.db, s.client.ID, "Too cheap", 99, models.ProjectStatusOpen, base)
	low := seedProject(s.T(), s.db, s.client.ID, "Lower bound", 100, models.ProjectStatusOpen, base.Add(time.Minute))
	high := seedProject(s.T(), s.db, s.client.ID, "Upper bound", 500, models.ProjectStatusOpen, base.Add(2*time.Minute))
	seedProject(s.T(), s.db, s.client.ID, "Too expensive", 501, models.ProjectStatusOpen, base.Add(3*time.Minute))

	min, max := 100, 500
	projects, total, err := s.repo.List(ProjectFilter{
		Status:    models.ProjectStatusOpen,
		MinBudget: &min,
		MaxBudget: &max,
	})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(projects, 2)
	// Newest first
	s.Equal(high.ID, projects[0].ID)
	s.Equal(low.ID, projects[1].ID)
}

func (s *ProjectRepositoryTestSuite) TestListFiltersByStatusAndCategory() {
	now := time.Now()
	seedProject(s.T(), s.db, s.client.ID, "Open web", 300, models.ProjectStatusOpen, now)
	closed := seedProject(s.T(), s.db, s.client.ID, "Finished", 300, models.ProjectStatusCompleted, now)
	mobile := seedProject(s.T(), s.db, s.client.ID, "Open mobile", 300, models.ProjectStatusOpen, now)
	s.NoError(s.db.Model(mobile).Update("category", "mobile-development").Error)

	projects, total, err := s.repo.List(ProjectFilter{Status: models.ProjectStatusOpen})
	s.NoError(err)
	s.Equal(int64(2), total)
	for _, p := range projects {
		s.NotEqual(closed.ID, p.ID)
		s.Equal(models.ProjectStatusOpen, p.Status)
	}

	category := "mobile-development"
	projects, total, err = s.repo.List(ProjectFilter{Status: models.ProjectStatusOpen, Category: &category})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(projects, 1)
	s.Equal(mobile.ID, projects[0].ID)
}

func (s *ProjectRepositoryTestSuite) TestListSearchCaseInsensitive() {
	now := time.Now()
	match := seedProject(s.T(), s.db, s.client.ID, "React Dashboard", 400, models.ProjectStatusOpen, now)
	seedProject(s.T(), s.db, s.client.ID, "Backend rewrite", 400, models.ProjectStatusOpen, now)

	search := "reACT"
	projects, total, err := s.repo.List(ProjectFilter{Status: models.ProjectStatusOpen, Search: &search})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(projects, 1)
	s.Equal(match.ID, projects[0].ID)

	// Description is searched too
	search = "test descr"
	_, total, err = s.repo.List(ProjectFilter{Status: models.ProjectStatusOpen, Search: &search})
	s.NoError(err)
	s.Equal(int64(2), total)
}

func (s *ProjectRepositoryTestSuite) TestListBySkillsOpenOnly() {
	now := time.Now()
	open := seedProject(s.T(), s.db, s.client.ID, "Open Go work", 500, models.ProjectStatusOpen, now)
	seedProjectSkills(s.T(), s.db, open.ID, "Go", "Docker")

	closed := seedProject(s.T(), s.db, s.client.ID, "Closed Go work", 500, models.ProjectStatusCompleted, now)
	seedProjectSkills(s.T(), s.db, closed.ID, "Go")

	projects, total, err := s.repo.ListBySkills([]string{"GO"}, 0, 0)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(projects, 1)
	s.Equal(open.ID, projects[0].ID)

	// Two matching skills still count the project once
	projects, total, err = s.repo.ListBySkills([]string{"go", "docker"}, 0, 0)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(projects, 1)
}

func (s *ProjectRepositoryTestSuite) TestListByClientNewestFirst() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	older := seedProject(s.T(), s.db, s.client.ID, "Older", 100, models.ProjectStatusOpen, base)
	newer := seedProject(s.T(), s.db, s.client.ID, "Newer", 100, models.ProjectStatusOpen, base.Add(time.Hour))

	other := seedUser(s.T(), s.db, "other@example.com", models.UserTypeClient)
	seedProject(s.T(), s.db, other.ID, "Not mine", 100, models.ProjectStatusOpen, base)

	projects, err := s.repo.ListByClient(s.client.ID)
	s.NoError(err)
	s.Require().Len(projects, 2)
	s.Equal(newer.ID, projects[0].ID)
	s.Equal(older.ID, projects[1].ID)
}

func (s *ProjectRepositoryTestSuite) TestReplaceSkills() {
	project := seedProject(s.T(), s.db, s.client.ID, "Skill swap", 100, models.ProjectStatusOpen, time.Now())
	seedProjectSkills(s.T(), s.db, project.ID, "PHP")

	s.NoError(s.repo.ReplaceSkills(project.ID, []string{"Go", "Kubernetes"}))

	found, err := s.repo.FindByID(project.ID, "Skills")
	s.NoError(err)
	s.ElementsMatch([]string{"Go", "Kubernetes"}, found.SkillNames())
}

func (s *ProjectRepositoryTestSuite) TestDeleteCascadesToProposals() {
	freelancer := seedUser(s.T(), s.db, "free@example.com", models.UserTypeFreelancer)

	doomed := seedProject(s.T(), s.db, s.client.ID, "Doomed", 100, models.ProjectStatusOpen, time.Now())
	seedProjectSkills(s.T(), s.db, doomed.ID, "Go")
	seedProposal(s.T(), s.db, doomed.ID, freelancer.ID, models.ProposalStatusPending, time.Now())

	survivor := seedProject(s.T(), s.db, s.client.ID, "Survivor", 100, models.ProjectStatusOpen, time.Now())
	kept := seedProposal(s.T(), s.db, survivor.ID, freelancer.ID, models.ProposalStatusPending, time.Now())

	s.NoError(s.repo.Delete(doomed.ID))

	_, err := s.repo.FindByID(doomed.ID)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))

	var proposalCount int64
	s.NoError(s.db.Model(&models.Proposal{}).Where("project_id = ?", doomed.ID).Count(&proposalCount).Error)
	s.Zero(proposalCount)

	var skillCount int64
	s.NoError(s.db.Model(&models.ProjectSkill{}).Where("project_id = ?", doomed.ID).Count(&skillCount).Error)
	s.Zero(skillCount)

	// The other project's proposal is untouched
	var survivorProposal models.Proposal
	s.NoError(s.db.First(&survivorProposal, kept.ID).Error)
	s.Equal(survivor.ID, survivorProposal.ProjectID)
}

func (s *ProjectRepositoryTestSuite) TestCountByClientAndStatus() {
	now := time.Now()
	seedProject(s.T(), s.db, s.client.ID, "Open one", 100, models.ProjectStatusOpen, now)
	seedProject(s.T(), s.db, s.client.ID, "Open two", 100, models.ProjectStatusOpen, now)
	seedProject(s.T(), s.db, s.client.ID, "Running", 100, models.ProjectStatusInProgress, now)

	count, err := s.repo.CountByClientAndStatus(s.client.ID, models.ProjectStatusOpen)
	s.NoError(err)
	s.Equal(int64(2), count)

	count, err = s.repo.CountByClientAndStatus(s.client.ID, models.ProjectStatusInProgress)
	s.NoError(err)
	s.Equal(int64(1), count)

	seedProject(s.T(), s.db, s.client.ID, "Open three", 100, models.ProjectStatusOpen, now)
	count, err = s.repo.CountByClientAndStatus(s.client.ID, models.ProjectStatusOpen)
	s.NoError(err)
	s.Equal(int64(3), count)
}

func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
