package services

import (
	"context"
	"sort"
	"strings"

	"github.com/kherrera/devfolio/internal/models"
	pgrepo "github.com/kherrera/devfolio/internal/repositories/postgres"
	"github.com/kherrera/devfolio/internal/utils"
)

const defaultSearchLimit = 20

// AdvancedParams narrows an advanced search. Type restricts which entities
// are queried (empty means all four), Category is an exact equality filter
// on the skill branch only, Limit truncates the merged result list.
type AdvancedParams struct {
	Query    string
	Type     string
	Category string
	Limit    int
}

type SearchService interface {
	// Search fans out to every entity type and ranks the merged results by
	// relevance (exact title match first, then substring position).
	Search(ctx context.Context, query string) ([]models.SearchResult, error)

	// AdvancedSearch applies type/category filters and truncates to Limit.
	// Results keep the merge order; no relevance ranking is applied here,
	// matching the behavior of the system this one replaced.
	AdvancedSearch(ctx context.Context, p AdvancedParams) ([]models.SearchResult, error)
}

type searchService struct {
	repo pgrepo.SearchRepository
}

func NewSearchService(repo pgrepo.SearchRepository) SearchService {
	return &searchService{repo: repo}
}

func (s *searchService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	const op = "SearchService.Search"

	q := strings.TrimSpace(query)
	if len(q) < 2 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "query must be at least 2 characters", nil)
	}

	results, err := s.fanOut(ctx, q, "", "")
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "search failed", err)
	}

	rankResults(results, q)
	return results, nil
}

func (s *searchService) AdvancedSearch(ctx context.Context, p AdvancedParams) ([]models.SearchResult, error) {
	const op = "SearchService.AdvancedSearch"

	q := strings.TrimSpace(p.Query)
	if len(q) < 2 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "query must be at least 2 characters", nil)
	}
	if p.Type != "" && !models.ValidEntityType(p.Type) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "type must be one of profile, skill, project, work", nil)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	results, err := s.fanOut(ctx, q, p.Type, p.Category)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "search failed", err)
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// fanOut queries the requested entity types sequentially and concatenates
// the result sets, preserving each source's internal order. An empty typ
// selects all four. No query is issued for a type not requested.
func (s *searchService) fanOut(ctx context.Context, query, typ, category string) ([]models.SearchResult, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	merged := make([]models.SearchResult, 0, 16)

	if typ == "" || typ == models.EntityProfile {
		rows, err := s.repo.Profiles(ctx, pattern)
		if err != nil {
			return nil, err
		}
		merged = append(merged, rows...)
	}
	if typ == "" || typ == models.EntitySkill {
		rows, err := s.repo.Skills(ctx, pattern, category)
		if err != nil {
			return nil, err
		}
		merged = append(merged, rows...)
	}
	if typ == "" || typ == models.EntityProject {
		rows, err := s.repo.Projects(ctx, pattern)
		if err != nil {
			return nil, err
		}
		merged = append(merged, rows...)
	}
	if typ == "" || typ == models.EntityWork {
		rows, err := s.repo.Work(ctx, pattern)
		if err != nil {
			return nil, err
		}
		merged = append(merged, rows...)
	}
	return merged, nil
}

// rankResults sorts in place with a two-key comparator: entries whose title
// equals the query (case-insensitive) come first; ties order by the index of
// the first occurrence of the query inside the title, titles that do not
// contain the query at all sorting last.
func rankResults(results []models.SearchResult, query string) {
	q := strings.ToLower(query)
	sort.SliceStable(results, func(i, j int) bool {
		ti := strings.ToLower(results[i].Title)
		tj := strings.ToLower(results[j].Title)

		ei, ej := ti == q, tj == q
		if ei != ej {
			return ei
		}
		return titleIndex(ti, q) < titleIndex(tj, q)
	})
}

func titleIndex(title, q string) int {
	idx := strings.Index(title, q)
	if idx < 0 {
		return int(^uint(0) >> 1) // not in title: sort after everything else
	}
	return idx
}
