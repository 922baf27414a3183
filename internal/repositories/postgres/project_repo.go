package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/utils"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	ReplaceSkills(ctx context.Context, projectID string, skills []models.Skill) error
	Delete(ctx context.Context, id string) error
}

type projectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) List(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	err := r.db.WithContext(ctx).
		Preload("Skills").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	err := r.db.WithContext(ctx).
		Preload("Skills").
		Where("id = ?", id).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

// Create persists the project together with any pre-attached skills.
func (r *projectRepo) Create(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) Update(ctx context.Context, p *models.Project) error {
	res := r.db.WithContext(ctx).Model(&models.Project{ID: p.ID}).
		Select("title", "description", "repo_url", "demo_url", "tags", "updated_at").
		Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *projectRepo) ReplaceSkills(ctx context.Context, projectID string, skills []models.Skill) error {
	p := models.Project{ID: projectID}
	assoc := r.db.WithContext(ctx).Model(&p).Association("Skills")
	if len(skills) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(skills)
}

// Delete removes the project and its skill associations.
func (r *projectRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p := models.Project{ID: id}
		if err := tx.Model(&p).Association("Skills").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&p)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrNotFound
		}
		return nil
	})
}
