package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hugely/internal/cache"
	apperrors "hugely/internal/errors"
	"hugely/internal/model"
	"hugely/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes back office account operations.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	EnsureAdmin(ctx context.Context, name, password string) (created bool, err error)
}

type userService struct {
	repo  repository.UserRepository
	cache cache.KV
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache cache.KV) UserService {
	return &userService{repo: repo, cache: cache}
}

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, userCacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userCacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// EnsureAdmin creates the named administrator or resets its password and
// admin flag when it already exists.
func (s *userService) EnsureAdmin(ctx context.Context, name, password string) (bool, error) {
	if name == "" || password == "" {
		return false, fmt.Errorf("%w: name and password are required", apperrors.ErrValidation)
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return false, fmt.Errorf("check user %q: %w", name, err)
	}

	if existing != nil {
		if err := existing.SetPassword(password); err != nil {
			return false, fmt.Errorf("hash password: %w", err)
		}
		existing.IsAdmin = true
		if err := s.repo.Update(ctx, existing); err != nil {
			return false, fmt.Errorf("%w: update user %q", apperrors.ErrDatabase, name)
		}
		_ = s.cache.Delete(ctx, userCacheKey(existing.ID))
		return false, nil
	}

	user := &model.User{Name: name, IsAdmin: true, LastLogin: time.Now()}
	if err := user.SetPassword(password); err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return false, fmt.Errorf("%w: create user %q", apperrors.ErrDatabase, name)
	}
	return true, nil
}
