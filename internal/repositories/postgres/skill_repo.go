package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/utils"
)

type SkillRepository interface {
	List(ctx context.Context, category string) ([]models.Skill, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.Skill, error)
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	Create(ctx context.Context, s *models.Skill) error
	Update(ctx context.Context, s *models.Skill) error
	Delete(ctx context.Context, id string) error
}

type skillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) List(ctx context.Context, category string) ([]models.Skill, error) {
	tx := r.db.WithContext(ctx).Order("name ASC")
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	var out []models.Skill
	err := tx.Find(&out).Error
	return out, err
}

func (r *skillRepo) ListByIDs(ctx context.Context, ids []string) ([]models.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.Skill
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *skillRepo) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	var s models.Skill
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *skillRepo) Create(ctx context.Context, s *models.Skill) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrConflict
	}
	return err
}

func (r *skillRepo) Update(ctx context.Context, s *models.Skill) error {
	res := r.db.WithContext(ctx).Model(&models.Skill{ID: s.ID}).
		Select("name", "proficiency", "category", "updated_at").
		Updates(s)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return utils.ErrConflict
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// Delete removes the skill and its project associations.
func (r *skillRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s := models.Skill{ID: id}
		if err := tx.Model(&s).Association("Projects").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&s)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrNotFound
		}
		return nil
	})
}
