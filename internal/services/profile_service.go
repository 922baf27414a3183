package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kherrera/devfolio/internal/cache"
	"github.com/kherrera/devfolio/internal/models"
	pgrepo "github.com/kherrera/devfolio/internal/repositories/postgres"
	"github.com/kherrera/devfolio/internal/utils"
)

const (
	profileCacheKey = "devfolio:profile"
	profileCacheTTL = 5 * time.Minute
)

type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Upsert(ctx context.Context, p *models.Profile) error
}

type profileService struct {
	profiles pgrepo.ProfileRepository
	cache    cache.Cache // optional
}

func NewProfileService(profiles pgrepo.ProfileRepository, c cache.Cache) ProfileService {
	return &profileService{profiles: profiles, cache: c}
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	const op = "ProfileService.Get"

	if s.cache != nil {
		var cached models.Profile
		if hit, err := s.cache.GetJSON(ctx, profileCacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	p, err := s.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, profileCacheKey, p, profileCacheTTL)
	}
	return p, nil
}

func (s *profileService) Upsert(ctx context.Context, p *models.Profile) error {
	const op = "ProfileService.Upsert"

	if p == nil || p.Email == "" {
		return utils.E(utils.CodeInvalidArgument, op, "profile.email is required", nil)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Upsert(ctx, p); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return utils.E(utils.CodeConflict, op, "email already in use", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to upsert profile", err)
	}

	if s.cache != nil {
		_ = s.cache.Del(ctx, profileCacheKey)
	}
	return nil
}
