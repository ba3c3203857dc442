package service

import (
	"context"
	"errors"
	"time"

	"storefront/internal/cache"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes profile lookups.
type UserService interface {
	GetProfile(ctx context.Context, id string) (*model.Profile, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	var cached model.Profile
	if s.cache.GetJSON(ctx, cache.UserKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	profile := user.Profile()
	s.cache.SetJSON(ctx, cache.UserKey(id), profile, userCacheTTL)
	return &profile, nil
}
