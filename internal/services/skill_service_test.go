package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/utils"
)

type stubSkillRepo struct {
	created *models.Skill
	byID    map[string]*models.Skill
	err     error
}

func (s *stubSkillRepo) List(context.Context, string) ([]models.Skill, error) { return nil, s.err }

func (s *stubSkillRepo) ListByIDs(_ context.Context, ids []string) ([]models.Skill, error) {
	var out []models.Skill
	for _, id := range ids {
		if sk, ok := s.byID[id]; ok {
			out = append(out, *sk)
		}
	}
	return out, s.err
}

func (s *stubSkillRepo) GetByID(_ context.Context, id string) (*models.Skill, error) {
	if sk, ok := s.byID[id]; ok {
		return sk, nil
	}
	return nil, utils.ErrNotFound
}

func (s *stubSkillRepo) Create(_ context.Context, sk *models.Skill) error {
	s.created = sk
	return s.err
}

func (s *stubSkillRepo) Update(context.Context, *models.Skill) error { return s.err }
func (s *stubSkillRepo) Delete(context.Context, string) error        { return s.err }

func TestSkillCreate_ValidatesProficiencyBounds(t *testing.T) {
	svc := NewSkillService(&stubSkillRepo{})

	for _, p := range []int{0, -1, 6, 100} {
		err := svc.Create(context.Background(), &models.Skill{Name: "Go", Proficiency: p})
		require.Error(t, err, "proficiency %d", p)
		assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	}

	for _, p := range []int{1, 3, 5} {
		err := svc.Create(context.Background(), &models.Skill{Name: "Go", Proficiency: p})
		assert.NoError(t, err, "proficiency %d", p)
	}
}

func TestSkillCreate_RequiresName(t *testing.T) {
	svc := NewSkillService(&stubSkillRepo{})

	err := svc.Create(context.Background(), &models.Skill{Name: "   ", Proficiency: 3})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestSkillCreate_AssignsIDAndTimestamps(t *testing.T) {
	repo := &stubSkillRepo{}
	svc := NewSkillService(repo)

	sk := &models.Skill{Name: "Go", Proficiency: 4, Category: "Backend"}
	require.NoError(t, svc.Create(context.Background(), sk))
	require.NotNil(t, repo.created)
	assert.NotEmpty(t, repo.created.ID)
	assert.False(t, repo.created.CreatedAt.IsZero())
	assert.Equal(t, repo.created.CreatedAt, repo.created.UpdatedAt)
}

func TestSkillCreate_MapsDuplicateNameToConflict(t *testing.T) {
	svc := NewSkillService(&stubSkillRepo{err: utils.ErrConflict})

	err := svc.Create(context.Background(), &models.Skill{Name: "Go", Proficiency: 4})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))
}

func TestSkillGet_MapsMissingRowToNotFound(t *testing.T) {
	svc := NewSkillService(&stubSkillRepo{byID: map[string]*models.Skill{}})

	_, err := svc.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
