package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/utils"
)

type WorkRepository interface {
	List(ctx context.Context) ([]models.WorkExperience, error)
	GetByID(ctx context.Context, id string) (*models.WorkExperience, error)
	Create(ctx context.Context, w *models.WorkExperience) error
	Update(ctx context.Context, w *models.WorkExperience) error
	Delete(ctx context.Context, id string) error
}

type workRepo struct {
	db *gorm.DB
}

func NewWorkRepo(db *gorm.DB) WorkRepository {
	return &workRepo{db: db}
}

// List orders current positions first, then most recent start date.
func (r *workRepo) List(ctx context.Context) ([]models.WorkExperience, error) {
	var out []models.WorkExperience
	err := r.db.WithContext(ctx).
		Order("current DESC").
		Order("start_date DESC").
		Find(&out).Error
	return out, err
}

func (r *workRepo) GetByID(ctx context.Context, id string) (*models.WorkExperience, error) {
	var w models.WorkExperience
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &w, err
}

func (r *workRepo) Create(ctx context.Context, w *models.WorkExperience) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *workRepo) Update(ctx context.Context, w *models.WorkExperience) error {
	res := r.db.WithContext(ctx).Model(&models.WorkExperience{ID: w.ID}).
		Select("company", "position", "description", "start_date", "end_date", "current", "highlights", "updated_at").
		Updates(w)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *workRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.WorkExperience{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
