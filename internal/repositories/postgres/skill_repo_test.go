package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/repositories/postgres"
	"github.com/kherrera/devfolio/internal/testutil"
	"github.com/kherrera/devfolio/internal/utils"
)

type SkillRepoSuite struct {
	suite.Suite
	db   *gorm.DB
	repo postgres.SkillRepository
}

func (s *SkillRepoSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = postgres.NewSkillRepo(s.db)
}

func (s *SkillRepoSuite) newSkill(name, category string, prof int) *models.Skill {
	now := time.Now().UTC()
	return &models.Skill{
		ID:          uuid.NewString(),
		Name:        name,
		Proficiency: prof,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *SkillRepoSuite) TestCreateAndGet() {
	ctx := context.Background()
	sk := s.newSkill("Go", "Backend", 5)

	s.Require().NoError(s.repo.Create(ctx, sk))

	got, err := s.repo.GetByID(ctx, sk.ID)
	s.Require().NoError(err)
	s.Assert().Equal("Go", got.Name)
	s.Assert().Equal(5, got.Proficiency)
	s.Assert().Equal("Backend", got.Category)
}

func (s *SkillRepoSuite) TestCreateDuplicateNameConflicts() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Create(ctx, s.newSkill("Go", "Backend", 5)))

	err := s.repo.Create(ctx, s.newSkill("Go", "Tools", 2))
	s.Require().Error(err)
	s.Assert().True(errors.Is(err, utils.ErrConflict))
}

func (s *SkillRepoSuite) TestListFiltersByExactCategory() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Create(ctx, s.newSkill("Go", "Backend", 5)))
	s.Require().NoError(s.repo.Create(ctx, s.newSkill("PostgreSQL", "Backend", 4)))
	s.Require().NoError(s.repo.Create(ctx, s.newSkill("React", "Frontend", 3)))

	all, err := s.repo.List(ctx, "")
	s.Require().NoError(err)
	s.Assert().Len(all, 3)

	backend, err := s.repo.List(ctx, "Backend")
	s.Require().NoError(err)
	s.Require().Len(backend, 2)
	// ordered by name
	s.Assert().Equal("Go", backend[0].Name)
	s.Assert().Equal("PostgreSQL", backend[1].Name)

	// equality, not substring
	none, err := s.repo.List(ctx, "Back")
	s.Require().NoError(err)
	s.Assert().Empty(none)
}

func (s *SkillRepoSuite) TestUpdateMissingRowIsNotFound() {
	sk := s.newSkill("Go", "Backend", 5)
	err := s.repo.Update(context.Background(), sk)
	s.Require().Error(err)
	s.Assert().True(errors.Is(err, utils.ErrNotFound))
}

func (s *SkillRepoSuite) TestDeleteRemovesJunctionRows() {
	ctx := context.Background()
	sk := s.newSkill("Go", "Backend", 5)
	s.Require().NoError(s.repo.Create(ctx, sk))

	now := time.Now().UTC()
	project := &models.Project{
		ID:        uuid.NewString(),
		Title:     "CLI tool",
		Skills:    []models.Skill{*sk},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(s.db.Create(project).Error)

	var joins int64
	s.Require().NoError(s.db.Table("project_skills").Count(&joins).Error)
	s.Require().EqualValues(1, joins)

	s.Require().NoError(s.repo.Delete(ctx, sk.ID))

	s.Require().NoError(s.db.Table("project_skills").Count(&joins).Error)
	s.Assert().EqualValues(0, joins)

	_, err := s.repo.GetByID(ctx, sk.ID)
	s.Assert().True(errors.Is(err, utils.ErrNotFound))
}

func TestSkillRepoSuite(t *testing.T) {
	suite.Run(t, new(SkillRepoSuite))
}
