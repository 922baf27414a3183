package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kherrera/devfolio/internal/models"
)

// SearchRepository issues one substring-match query per entity type, each
// projecting its rows into the normalized SearchResult shape. Matching is
// case-insensitive: callers pass a pre-lowercased "%query%" pattern.
type SearchRepository interface {
	Profiles(ctx context.Context, pattern string) ([]models.SearchResult, error)
	Skills(ctx context.Context, pattern, category string) ([]models.SearchResult, error)
	Projects(ctx context.Context, pattern string) ([]models.SearchResult, error)
	Work(ctx context.Context, pattern string) ([]models.SearchResult, error)
}

type searchRepo struct {
	db *gorm.DB
}

func NewSearchRepo(db *gorm.DB) SearchRepository {
	return &searchRepo{db: db}
}

func (r *searchRepo) Profiles(ctx context.Context, pattern string) ([]models.SearchResult, error) {
	var out []models.SearchResult
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Select("'profile' AS type, full_name AS title, education AS description, '' AS category, id").
		Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(education) LIKE ?", pattern, pattern, pattern).
		Scan(&out).Error
	return out, err
}

// Skills optionally narrows by exact category equality (advanced search only).
func (r *searchRepo) Skills(ctx context.Context, pattern, category string) ([]models.SearchResult, error) {
	tx := r.db.WithContext(ctx).
		Model(&models.Skill{}).
		Select("'skill' AS type, name AS title, '' AS description, category, id").
		Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	var out []models.SearchResult
	err := tx.Scan(&out).Error
	return out, err
}

func (r *searchRepo) Projects(ctx context.Context, pattern string) ([]models.SearchResult, error) {
	var out []models.SearchResult
	err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Select("'project' AS type, title, description, '' AS category, id").
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Scan(&out).Error
	return out, err
}

func (r *searchRepo) Work(ctx context.Context, pattern string) ([]models.SearchResult, error) {
	var out []models.SearchResult
	err := r.db.WithContext(ctx).
		Model(&models.WorkExperience{}).
		Select("'work' AS type, position AS title, description, company AS category, id").
		Where("LOWER(company) LIKE ? OR LOWER(position) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern).
		Scan(&out).Error
	return out, err
}
