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

type SkillService interface {
	List(ctx context.Context, category string) ([]models.Skill, error)
	Get(ctx context.Context, id string) (*models.Skill, error)
	Create(ctx context.Context, sk *models.Skill) error
	Update(ctx context.Context, sk *models.Skill) error
	Delete(ctx context.Context, id string) error
}

type skillService struct {
	skills pgrepo.SkillRepository
}

func NewSkillService(skills pgrepo.SkillRepository) SkillService {
	return &skillService{skills: skills}
}

func validateSkill(op string, sk *models.Skill) error {
	if sk == nil || strings.TrimSpace(sk.Name) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "skill name is required", nil)
	}
	if sk.Proficiency < 1 || sk.Proficiency > 5 {
		return utils.E(utils.CodeInvalidArgument, op, "proficiency must be between 1 and 5", nil)
	}
	return nil
}

func (s *skillService) List(ctx context.Context, category string) ([]models.Skill, error) {
	const op = "SkillService.List"

	out, err := s.skills.List(ctx, category)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skills", err)
	}
	return out, nil
}

func (s *skillService) Get(ctx context.Context, id string) (*models.Skill, error) {
	const op = "SkillService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	sk, err := s.skills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "skill not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get skill", err)
	}
	return sk, nil
}

func (s *skillService) Create(ctx context.Context, sk *models.Skill) error {
	const op = "SkillService.Create"

	if err := validateSkill(op, sk); err != nil {
		return err
	}

	now := time.Now().UTC()
	sk.ID = uuid.NewString()
	sk.CreatedAt = now
	sk.UpdatedAt = now

	if err := s.skills.Create(ctx, sk); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return utils.E(utils.CodeConflict, op, "skill name already exists", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to create skill", err)
	}
	return nil
}

func (s *skillService) Update(ctx context.Context, sk *models.Skill) error {
	const op = "SkillService.Update"

	if sk == nil || sk.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := validateSkill(op, sk); err != nil {
		return err
	}
	sk.UpdatedAt = time.Now().UTC()

	if err := s.skills.Update(ctx, sk); err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			return utils.E(utils.CodeNotFound, op, "skill not found", err)
		case errors.Is(err, utils.ErrConflict):
			return utils.E(utils.CodeConflict, op, "skill name already exists", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update skill", err)
	}
	return nil
}

func (s *skillService) Delete(ctx context.Context, id string) error {
	const op = "SkillService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "skill not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete skill", err)
	}
	return nil
}
