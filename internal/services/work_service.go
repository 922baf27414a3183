package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kherrera/devfolio/internal/models"
	pgrepo "github.com/kherrera/devfolio/internal/repositories/postgres"
	"github.com/kherrera/devfolio/internal/utils"
)

type WorkService interface {
	List(ctx context.Context) ([]models.WorkExperience, error)
	Get(ctx context.Context, id string) (*models.WorkExperience, error)
	Create(ctx context.Context, w *models.WorkExperience) error
	Update(ctx context.Context, w *models.WorkExperience) error
	Delete(ctx context.Context, id string) error
}

type workService struct {
	work pgrepo.WorkRepository
}

func NewWorkService(work pgrepo.WorkRepository) WorkService {
	return &workService{work: work}
}

func validateWork(op string, w *models.WorkExperience) error {
	if w == nil || strings.TrimSpace(w.Company) == "" || strings.TrimSpace(w.Position) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "company and position are required", nil)
	}
	if w.StartDate.IsZero() {
		return utils.E(utils.CodeInvalidArgument, op, "start_date is required", nil)
	}
	if w.EndDate != nil && w.EndDate.Before(w.StartDate) {
		return utils.E(utils.CodeInvalidArgument, op, "end_date must not precede start_date", nil)
	}
	return nil
}

func (s *workService) List(ctx context.Context) ([]models.WorkExperience, error) {
	const op = "WorkService.List"

	out, err := s.work.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list work experience", err)
	}
	return out, nil
}

func (s *workService) Get(ctx context.Context, id string) (*models.WorkExperience, error) {
	const op = "WorkService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	w, err := s.work.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "work experience not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get work experience", err)
	}
	return w, nil
}

func (s *workService) Create(ctx context.Context, w *models.WorkExperience) error {
	const op = "WorkService.Create"

	if err := validateWork(op, w); err != nil {
		return err
	}
	if w.Current {
		w.EndDate = nil
	}

	now := time.Now().UTC()
	w.ID = uuid.NewString()
	w.CreatedAt = now
	w.UpdatedAt = now

	if err := s.work.Create(ctx, w); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create work experience", err)
	}
	return nil
}

func (s *workService) Update(ctx context.Context, w *models.WorkExperience) error {
	const op = "WorkService.Update"

	if w == nil || w.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := validateWork(op, w); err != nil {
		return err
	}
	if w.Current {
		w.EndDate = nil
	}
	w.UpdatedAt = time.Now().UTC()

	if err := s.work.Update(ctx, w); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "work experience not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update work experience", err)
	}
	return nil
}

func (s *workService) Delete(ctx context.Context, id string) error {
	const op = "WorkService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.work.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "work experience not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete work experience", err)
	}
	return nil
}
