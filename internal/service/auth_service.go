package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	config "github.com/socialdeck/management-api/configs"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/internal/models"
	"github.com/socialdeck/management-api/internal/repository"
	"github.com/socialdeck/management-api/internal/transfer"
	"github.com/socialdeck/management-api/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, req *transfer.RegisterRequest) (*transfer.AuthResponse, error)
	Login(ctx context.Context, req *transfer.LoginRequest) (*transfer.AuthResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*transfer.UserInfo, error)
}

type authService struct {
	cfg config.Config
	u   repository.UserRepository
}

func NewAuthService(cfg config.Config, u repository.UserRepository) AuthService {
	return &authService{
		cfg: cfg,
		u:   u,
	}
}

func (s *authService) Register(ctx context.Context, req *transfer.RegisterRequest) (*transfer.AuthResponse, error) {
	_, exists, err := s.u.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		CreatedAt:    time.Now().UTC(),
	}

	// The unique index is the real guard; a racing insert surfaces here
	// as ErrDuplicateEmail even after the pre-check passed.
	if err := s.u.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.sessionFor(user)
}

func (s *authService) Login(ctx context.Context, req *transfer.LoginRequest) (*transfer.AuthResponse, error) {
	user, exists, err := s.u.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password collapse into one failure so the
	// response cannot be used to enumerate accounts.
	if !exists || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperr.ErrInvalidCredentials
	}

	return s.sessionFor(user)
}

func (s *authService) GetByID(ctx context.Context, userID uuid.UUID) (*transfer.UserInfo, error) {
	user, exists, err := s.u.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.ErrNotFound
	}

	return &transfer.UserInfo{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}, nil
}

func (s *authService) sessionFor(user *models.User) (*transfer.AuthResponse, error) {
	token, err := utils.GenerateToken(s.cfg, user)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return &transfer.AuthResponse{
		Token:       token,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		UserID:      user.ID,
	}, nil
}
