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

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	// Create persists the project; skillIDs, when given, must all reference
	// existing skills.
	Create(ctx context.Context, p *models.Project, skillIDs []string) error
	// Update applies field changes; a non-nil skillIDs replaces the skill
	// associations wholesale (empty slice clears them).
	Update(ctx context.Context, p *models.Project, skillIDs []string) error
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	projects pgrepo.ProjectRepository
	skills   pgrepo.SkillRepository
}

func NewProjectService(projects pgrepo.ProjectRepository, skills pgrepo.SkillRepository) ProjectService {
	return &projectService{projects: projects, skills: skills}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	const op = "ProjectService.List"

	out, err := s.projects.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list projects", err)
	}
	return out, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	const op = "ProjectService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get project", err)
	}
	return p, nil
}

func (s *projectService) resolveSkills(ctx context.Context, op string, skillIDs []string) ([]models.Skill, error) {
	if len(skillIDs) == 0 {
		return nil, nil
	}
	found, err := s.skills.ListByIDs(ctx, skillIDs)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to resolve skills", err)
	}
	if len(found) != len(uniqueStrings(skillIDs)) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "one or more skill_ids do not exist", nil)
	}
	return found, nil
}

func (s *projectService) Create(ctx context.Context, p *models.Project, skillIDs []string) error {
	const op = "ProjectService.Create"

	if p == nil || strings.TrimSpace(p.Title) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "project title is required", nil)
	}

	skills, err := s.resolveSkills(ctx, op, skillIDs)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Skills = skills

	if err := s.projects.Create(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create project", err)
	}
	return nil
}

func (s *projectService) Update(ctx context.Context, p *models.Project, skillIDs []string) error {
	const op = "ProjectService.Update"

	if p == nil || p.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if strings.TrimSpace(p.Title) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "project title is required", nil)
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, p); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update project", err)
	}

	if skillIDs != nil {
		skills, err := s.resolveSkills(ctx, op, skillIDs)
		if err != nil {
			return err
		}
		if err := s.projects.ReplaceSkills(ctx, p.ID, skills); err != nil {
			return utils.E(utils.CodeInternal, op, "failed to update project skills", err)
		}
	}
	return nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	const op = "ProjectService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete project", err)
	}
	return nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
