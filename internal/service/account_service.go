package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/internal/models"
	"github.com/socialdeck/management-api/internal/repository"
	"github.com/socialdeck/management-api/internal/transfer"
)

type AccountService interface {
	Connect(ctx context.Context, userID uuid.UUID, req *transfer.ConnectAccountRequest) (*transfer.SocialAccountDto, error)
	List(ctx context.Context, userID uuid.UUID) ([]*transfer.SocialAccountDto, error)
	Disconnect(ctx context.Context, userID, accountID uuid.UUID) error
}

type accountService struct {
	ac repository.SocialAccountRepository
}

func NewAccountService(ac repository.SocialAccountRepository) AccountService {
	return &accountService{ac: ac}
}

func (s *accountService) Connect(ctx context.Context, userID uuid.UUID, req *transfer.ConnectAccountRequest) (*transfer.SocialAccountDto, error) {
	provider, err := models.ParseProvider(req.Provider)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, err.Error())
	}

	if req.ProviderUserID == "" || req.AccessToken == "" {
		err := fmt.Errorf("%w: provider user id and access token are required", apperr.ErrValidation)
		slog.Info(err.Error())
		return nil, err
	}

	account := &models.SocialAccount{
		ID:             uuid.New(),
		UserID:         userID,
		Provider:       provider,
		ProviderUserID: req.ProviderUserID,
		DisplayName:    req.DisplayName,
		AccessToken:    req.AccessToken,
		RefreshToken:   req.RefreshToken,
		ExpiresAt:      req.ExpiresAt,
		ConnectedAt:    time.Now().UTC(),
	}

	// Uniqueness of (provider, provider_user_id, user_id) is the store's
	// invariant; a breach comes back as ErrConflict.
	if err := s.ac.Create(ctx, account); err != nil {
		return nil, err
	}

	return transfer.ToSocialAccountDto(account), nil
}

func (s *accountService) List(ctx context.Context, userID uuid.UUID) ([]*transfer.SocialAccountDto, error) {
	accounts, err := s.ac.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*transfer.SocialAccountDto, 0, len(accounts))
	for _, account := range accounts {
		dtos = append(dtos, transfer.ToSocialAccountDto(account))
	}
	return dtos, nil
}

func (s *accountService) Disconnect(ctx context.Context, userID, accountID uuid.UUID) error {
	removed, err := s.ac.Remove(ctx, accountID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.ErrNotFound
	}
	return nil
}
