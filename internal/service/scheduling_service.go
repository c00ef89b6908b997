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

// SchedulingService drives the scheduled-post lifecycle:
// scheduled -> canceled via Cancel, scheduled -> posted only through the
// external publishing collaborator. Both end states are terminal.
type SchedulingService interface {
	Schedule(ctx context.Context, userID uuid.UUID, req *transfer.SchedulePostRequest) (*transfer.ScheduledPostDto, error)
	ListScheduled(ctx context.Context, userID uuid.UUID, accountID *uuid.UUID) ([]*transfer.ScheduledPostDto, error)
	Cancel(ctx context.Context, userID, postID uuid.UUID) error
	ListPublished(ctx context.Context, userID uuid.UUID, accountID *uuid.UUID) ([]*transfer.PublishedPostDto, error)
}

type schedulingService struct {
	sp repository.ScheduledPostRepository
	pp repository.PublishedPostRepository
	ac repository.SocialAccountRepository
}

func NewSchedulingService(
	sp repository.ScheduledPostRepository,
	pp repository.PublishedPostRepository,
	ac repository.SocialAccountRepository) SchedulingService {
	return &schedulingService{
		sp: sp,
		pp: pp,
		ac: ac,
	}
}

func (s *schedulingService) Schedule(ctx context.Context, userID uuid.UUID, req *transfer.SchedulePostRequest) (*transfer.ScheduledPostDto, error) {
	if req.Content == "" {
		err := fmt.Errorf("%w: content cannot be empty", apperr.ErrValidation)
		slog.Info(err.Error())
		return nil, err
	}

	owned, err := s.ac.CheckByUserID(ctx, req.SocialAccountID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperr.ErrAccountNotFound
	}

	post := &models.ScheduledPost{
		ID:              uuid.New(),
		SocialAccountID: req.SocialAccountID,
		Content:         req.Content,
		ScheduledFor:    req.ScheduledFor.UTC(),
		MediaURL:        req.MediaURL,
		Status:          models.PostStatusScheduled,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.sp.Create(ctx, post); err != nil {
		return nil, err
	}

	return transfer.ToScheduledPostDto(post), nil
}

func (s *schedulingService) ListScheduled(ctx context.Context, userID uuid.UUID, accountID *uuid.UUID) ([]*transfer.ScheduledPostDto, error) {
	posts, err := s.sp.ListByUserID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*transfer.ScheduledPostDto, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, transfer.ToScheduledPostDto(post))
	}
	return dtos, nil
}

// Cancel reports success for any post the caller owns, including ones
// already canceled or posted: the guarded update leaves terminal states
// untouched, so a repeated cancel is an idempotent no-op rather than an
// error. Posts the caller does not own are indistinguishable from missing.
func (s *schedulingService) Cancel(ctx context.Context, userID, postID uuid.UUID) error {
	owned, err := s.sp.CheckByUserID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return apperr.ErrNotFound
	}

	return s.sp.SetCanceled(ctx, postID)
}

func (s *schedulingService) ListPublished(ctx context.Context, userID uuid.UUID, accountID *uuid.UUID) ([]*transfer.PublishedPostDto, error) {
	posts, err := s.pp.ListByUserID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*transfer.PublishedPostDto, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, transfer.ToPublishedPostDto(post))
	}
	return dtos, nil
}
