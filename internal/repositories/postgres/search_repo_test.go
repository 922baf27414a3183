package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/repositories/postgres"
	"github.com/kherrera/devfolio/internal/testutil"
)

type SearchRepoSuite struct {
	suite.Suite
	db   *gorm.DB
	repo postgres.SearchRepository
}

func (s *SearchRepoSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = postgres.NewSearchRepo(s.db)
	s.seed()
}

func (s *SearchRepoSuite) seed() {
	now := time.Now().UTC()

	s.Require().NoError(s.db.Create(&models.Profile{
		ID:        uuid.NewString(),
		FullName:  "Dana Whitfield",
		Email:     "dana@example.com",
		Education: "BSc Computer Science",
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)

	for _, sk := range []struct {
		name, category string
	}{
		{"React", "Frontend"},
		{"React Native", "Mobile"},
		{"PostgreSQL", "Backend"},
	} {
		s.Require().NoError(s.db.Create(&models.Skill{
			ID:          uuid.NewString(),
			Name:        sk.name,
			Proficiency: 4,
			Category:    sk.category,
			CreatedAt:   now,
			UpdatedAt:   now,
		}).Error)
	}

	s.Require().NoError(s.db.Create(&models.Project{
		ID:          uuid.NewString(),
		Title:       "Realtime dashboard",
		Description: "Built with React and websockets",
		CreatedAt:   now,
		UpdatedAt:   now,
	}).Error)

	s.Require().NoError(s.db.Create(&models.WorkExperience{
		ID:          uuid.NewString(),
		Company:     "Reactive Labs",
		Position:    "Backend Engineer",
		Description: "Service development in Go",
		StartDate:   now.AddDate(-2, 0, 0),
		Current:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}).Error)
}

func (s *SearchRepoSuite) TestSkillsMatchIsCaseInsensitive() {
	rows, err := s.repo.Skills(context.Background(), "%react%", "")
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	for _, r := range rows {
		s.Assert().Equal(models.EntitySkill, r.Type)
		s.Assert().NotEmpty(r.ID)
	}
}

func (s *SearchRepoSuite) TestSkillsCategoryFilterIsExact() {
	rows, err := s.repo.Skills(context.Background(), "%react%", "Mobile")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("React Native", rows[0].Title)
	s.Assert().Equal("Mobile", rows[0].Category)

	rows, err = s.repo.Skills(context.Background(), "%react%", "Mob")
	s.Require().NoError(err)
	s.Assert().Empty(rows)
}

func (s *SearchRepoSuite) TestProfilesMatchNameEmailEducation() {
	for _, pattern := range []string{"%dana%", "%example.com%", "%computer%"} {
		rows, err := s.repo.Profiles(context.Background(), pattern)
		s.Require().NoError(err)
		s.Require().Len(rows, 1, "pattern %s", pattern)
		s.Assert().Equal(models.EntityProfile, rows[0].Type)
		s.Assert().Equal("Dana Whitfield", rows[0].Title)
	}
}

func (s *SearchRepoSuite) TestProjectsMatchTitleAndDescription() {
	rows, err := s.repo.Projects(context.Background(), "%react%")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal(models.EntityProject, rows[0].Type)
	s.Assert().Equal("Realtime dashboard", rows[0].Title)
}

func (s *SearchRepoSuite) TestWorkMatchCompanyPositionDescription() {
	rows, err := s.repo.Work(context.Background(), "%reactive%")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal(models.EntityWork, rows[0].Type)
	s.Assert().Equal("Backend Engineer", rows[0].Title)
	s.Assert().Equal("Reactive Labs", rows[0].Category)

	rows, err = s.repo.Work(context.Background(), "%go%")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
}

func (s *SearchRepoSuite) TestNoMatchesReturnsEmpty() {
	rows, err := s.repo.Projects(context.Background(), "%zzzzz%")
	s.Require().NoError(err)
	s.Assert().Empty(rows)
}

func TestSearchRepoSuite(t *testing.T) {
	suite.Run(t, new(SearchRepoSuite))
}
