package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/storage"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

type userService struct {
	repo          storage.UserRepository
	tokens        storage.TokenStore
	jwtSecret     string
	jwtExpiration time.Duration
	refreshTTL    time.Duration
	logger        *zap.Logger
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, tokens storage.TokenStore, jwtSecret string, jwtExpiration, refreshTTL time.Duration, logger *zap.Logger) UserService {
	return &userService{
		repo:          repo,
		tokens:        tokens,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		refreshTTL:    refreshTTL,
		logger:        logger,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: user with email %s already exists", ErrConflict, req.Email)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, MapRepoError(err, "checking user email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &models.User{Email: req.Email, PasswordHash: string(hash)})
	if err != nil {
		return nil, MapRepoError(err, "creating user")
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, MapRepoError(err, "fetching user for login")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user.ID.Hex())
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a
// fresh pair is issued for the same user.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	userID, err := s.tokens.UserID(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, MapRepoError(err, "resolving refresh token")
	}

	if err := s.tokens.Delete(ctx, refreshToken); err != nil {
		return nil, MapRepoError(err, "revoking refresh token")
	}
	return s.issueTokens(ctx, userID)
}

// Logout revokes a refresh token. Unknown tokens are treated as already
// logged out.
func (s *userService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokens.Delete(ctx, refreshToken); err != nil {
		return MapRepoError(err, "revoking refresh token")
	}
	return nil
}

// SeedAdmin creates the development admin account when it does not exist.
// Intended for non-production startup only.
func (s *userService) SeedAdmin(ctx context.Context, email, password string) error {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return MapRepoError(err, "checking admin account")
	}

	if _, err := s.Register(ctx, &dto.RegisterRequest{Email: email, Password: password}); err != nil {
		// A concurrent seed losing the race is fine.
		if errors.Is(err, ErrConflict) {
			return nil
		}
		return err
	}
	s.logger.Info("admin account seeded", zap.String("email", email))
	return nil
}

func (s *userService) issueTokens(ctx context.Context, userID string) (*dto.TokenPair, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh := uuid.NewString()
	if err := s.tokens.Save(ctx, refresh, userID, s.refreshTTL); err != nil {
		return nil, MapRepoError(err, "persisting refresh token")
	}
	return &dto.TokenPair{Token: signed, RefreshToken: refresh}, nil
}
