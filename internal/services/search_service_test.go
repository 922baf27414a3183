package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/utils"
)

type stubSearchRepo struct {
	profiles []models.SearchResult
	skills   []models.SearchResult
	projects []models.SearchResult
	work     []models.SearchResult

	calls       []string
	gotPattern  string
	gotCategory string
	err         error
}

func (s *stubSearchRepo) Profiles(_ context.Context, pattern string) ([]models.SearchResult, error) {
	s.calls = append(s.calls, "profiles")
	s.gotPattern = pattern
	return s.profiles, s.err
}

func (s *stubSearchRepo) Skills(_ context.Context, pattern, category string) ([]models.SearchResult, error) {
	s.calls = append(s.calls, "skills")
	s.gotPattern = pattern
	s.gotCategory = category
	return s.skills, s.err
}

func (s *stubSearchRepo) Projects(_ context.Context, pattern string) ([]models.SearchResult, error) {
	s.calls = append(s.calls, "projects")
	s.gotPattern = pattern
	return s.projects, s.err
}

func (s *stubSearchRepo) Work(_ context.Context, pattern string) ([]models.SearchResult, error) {
	s.calls = append(s.calls, "work")
	s.gotPattern = pattern
	return s.work, s.err
}

func result(typ, title string) models.SearchResult {
	return models.SearchResult{Type: typ, Title: title, ID: typ + "-" + title}
}

func TestSearch_RejectsShortQueryWithoutQuerying(t *testing.T) {
	repo := &stubSearchRepo{}
	svc := NewSearchService(repo)

	for _, q := range []string{"", "a", " a ", "  "} {
		_, err := svc.Search(context.Background(), q)
		require.Error(t, err, "query %q", q)
		assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	}
	assert.Empty(t, repo.calls, "no query may be issued for a rejected input")
}

func TestSearch_LowercasesWildcardPattern(t *testing.T) {
	repo := &stubSearchRepo{}
	svc := NewSearchService(repo)

	_, err := svc.Search(context.Background(), "  ReAct  ")
	require.NoError(t, err)
	assert.Equal(t, "%react%", repo.gotPattern)
	assert.Equal(t, []string{"profiles", "skills", "projects", "work"}, repo.calls)
}

func TestSearch_ExactTitleMatchSortsFirst(t *testing.T) {
	repo := &stubSearchRepo{
		projects: []models.SearchResult{
			result(models.EntityProject, "React Native"),
			result(models.EntityProject, "React"),
		},
	}
	svc := NewSearchService(repo)

	out, err := svc.Search(context.Background(), "React")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "React", out[0].Title)
	assert.Equal(t, "React Native", out[1].Title)
}

func TestSearch_OrdersBySubstringPositionInTitle(t *testing.T) {
	repo := &stubSearchRepo{
		skills: []models.SearchResult{
			result(models.EntitySkill, "Backend React"),
		},
		projects: []models.SearchResult{
			result(models.EntityProject, "Dashboard"), // matched on description only
			result(models.EntityProject, "React Native"),
		},
	}
	svc := NewSearchService(repo)

	out, err := svc.Search(context.Background(), "react")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "React Native", out[0].Title)
	assert.Equal(t, "Backend React", out[1].Title)
	assert.Equal(t, "Dashboard", out[2].Title, "title without the query sorts last")
}

func TestSearch_ExactMatchIsCaseInsensitive(t *testing.T) {
	repo := &stubSearchRepo{
		skills: []models.SearchResult{
			result(models.EntitySkill, "go tooling"),
			result(models.EntitySkill, "GO"),
		},
	}
	svc := NewSearchService(repo)

	out, err := svc.Search(context.Background(), "go")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "GO", out[0].Title)
}

func TestSearch_WrapsRepositoryFailure(t *testing.T) {
	repo := &stubSearchRepo{err: errors.New("connection refused")}
	svc := NewSearchService(repo)

	_, err := svc.Search(context.Background(), "react")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInternal))
}

func TestAdvancedSearch_RejectsInvalidType(t *testing.T) {
	repo := &stubSearchRepo{}
	svc := NewSearchService(repo)

	_, err := svc.AdvancedSearch(context.Background(), AdvancedParams{Query: "react", Type: "bogus"})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Contains(t, err.Error(), "profile, skill, project, work")
	assert.Empty(t, repo.calls)
}

func TestAdvancedSearch_QueriesOnlyRequestedType(t *testing.T) {
	repo := &stubSearchRepo{
		skills: []models.SearchResult{
			{Type: models.EntitySkill, Title: "PostgreSQL", Category: "Backend", ID: "s1"},
		},
	}
	svc := NewSearchService(repo)

	out, err := svc.AdvancedSearch(context.Background(), AdvancedParams{
		Query:    "postgres",
		Type:     models.EntitySkill,
		Category: "Backend",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"skills"}, repo.calls)
	assert.Equal(t, "Backend", repo.gotCategory)
	require.Len(t, out, 1)
	assert.Equal(t, models.EntitySkill, out[0].Type)
}

func TestAdvancedSearch_TruncatesWithoutRanking(t *testing.T) {
	// The exact title match comes last in merge order; with limit=1 the
	// first merged entry wins because the advanced path does not rank.
	repo := &stubSearchRepo{
		projects: []models.SearchResult{
			result(models.EntityProject, "React Native"),
			result(models.EntityProject, "React"),
		},
	}
	svc := NewSearchService(repo)

	out, err := svc.AdvancedSearch(context.Background(), AdvancedParams{Query: "react", Limit: 1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "React Native", out[0].Title)
}

func TestAdvancedSearch_DefaultLimitIsTwenty(t *testing.T) {
	var rows []models.SearchResult
	for i := 0; i < 25; i++ {
		rows = append(rows, result(models.EntitySkill, "Skill"))
	}
	repo := &stubSearchRepo{skills: rows}
	svc := NewSearchService(repo)

	out, err := svc.AdvancedSearch(context.Background(), AdvancedParams{Query: "skill"})
	require.NoError(t, err)
	assert.Len(t, out, 20)
}
