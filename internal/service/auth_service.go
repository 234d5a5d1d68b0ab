package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"hugely/internal/auth"
	"hugely/internal/cache"
	apperrors "hugely/internal/errors"
	"hugely/internal/repository"
)

var (
	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = fmt.Errorf("%w: wrong password", apperrors.ErrAuth)
	// ErrNotAdmin is returned when a valid user lacks the admin flag.
	ErrNotAdmin = fmt.Errorf("%w: insufficient privilege", apperrors.ErrAuth)
	// ErrInvalidToken is returned when an API token is invalid, expired or revoked.
	ErrInvalidToken = fmt.Errorf("%w: invalid or expired token", apperrors.ErrAuth)
)

// LoginInput carries the credentials posted to the login form.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (auth.Identity, error)
	IssueToken(ctx context.Context, id auth.Identity) (string, error)
	VerifyToken(ctx context.Context, token string) (*auth.Claims, error)
	RevokeToken(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	users      cache.KV
	log        zerolog.Logger
	now        func() time.Time
}

// NewAuthService creates a new authentication service. users is the cache
// shared with UserService; a sign-in evicts the user's entry.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, users cache.KV, log zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		users:      users,
		log:        log,
		now:        time.Now,
	}
}

// Login checks the credentials of an administrator and returns its identity.
func (s *authService) Login(ctx context.Context, in LoginInput) (auth.Identity, error) {
	if err := validateStruct(in); err != nil {
		return auth.Identity{}, err
	}

	user, err := s.userRepo.FindByName(ctx, in.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return auth.Identity{}, err
		}
		s.log.Error().Err(err).Str("username", in.Username).Msg("lookup user")
		return auth.Identity{}, fmt.Errorf("%w: lookup user", apperrors.ErrDatabase)
	}

	if !user.CheckPassword(in.Password) {
		return auth.Identity{}, ErrWrongPassword
	}
	if !user.IsAdmin {
		return auth.Identity{}, ErrNotAdmin
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID, s.now()); err != nil {
		s.log.Warn().Err(err).Uint("user_id", user.ID).Msg("update last login")
	} else if s.users != nil {
		_ = s.users.Delete(ctx, userCacheKey(user.ID))
	}

	return auth.Identity{UserID: user.ID, Name: user.Name, IsAdmin: user.IsAdmin}, nil
}

// IssueToken signs an API access token for the identity.
func (s *authService) IssueToken(ctx context.Context, id auth.Identity) (string, error) {
	_, token, err := s.jwtService.GenerateAccessToken(id)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

// VerifyToken validates an API token and rejects revoked ones.
func (s *authService) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	revoked, err := s.tokenStore.IsAccessTokenBlacklisted(ctx, claims.ID)
	if err != nil || revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RevokeToken blacklists the token until it would have expired.
func (s *authService) RevokeToken(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return ErrInvalidToken
	}
	return s.tokenStore.BlacklistAccessToken(ctx, claims.ID, s.jwtService.RemainingTTL(claims))
}
