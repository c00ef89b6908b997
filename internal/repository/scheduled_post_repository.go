package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/models"
)

type ScheduledPostRepository interface {
	Create(ctx context.Context, post *models.ScheduledPost) error
	ListByUserID(ctx context.Context, userID uuid.UUID, accountID *uuid.UUID) ([]*models.ScheduledPost, error)
	CheckByUserID(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	SetCanceled(ctx context.Context, postID uuid.UUID) error
}

type scheduledPostRepository struct {
	db *sql.DB
}

func NewScheduledPostRepository(db *sql.DB) ScheduledPostRepository {
	return &scheduledPostRepository{db: db}
}

func (r *scheduledPostRepository) Create(ctx context.Context, post *models.ScheduledPost) error {
	query := `
		INSERT INTO scheduled_posts (id, social_account_id, content, scheduled_for, media_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.SocialAccountID, post.Content, post.ScheduledFor, post.MediaURL, post.Status, post.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduledPostRepository) ListByUserID(ctx context.Context, userID uuid.UUID, accountID *uuid.UUID) ([]*models.ScheduledPost, error) {
	query := `
		SELECT p.id, p.social_account_id, p.content, p.scheduled_for, p.media_url, p.status, p.created_at
		FROM scheduled_posts p
		JOIN social_accounts a ON a.id = p.social_account_id
		WHERE a.user_id = $1
	`
	args := []interface{}{userID}

	if accountID != nil {
		query += " AND p.social_account_id = $2"
		args = append(args, *accountID)
	}
	query += " ORDER BY p.scheduled_for ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ScheduledPost
	for rows.Next() {
		var post models.ScheduledPost
		err := rows.Scan(&post.ID, &post.SocialAccountID, &post.Content, &post.ScheduledFor, &post.MediaURL, &post.Status, &post.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return posts, nil
}

func (r *scheduledPostRepository) CheckByUserID(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	query := `
		SELECT 1 FROM scheduled_posts p
		JOIN social_accounts a ON a.id = p.social_account_id
		WHERE p.id = $1 AND a.user_id = $2
	`
	var result int
	err := r.db.QueryRowContext(ctx, query, postID, userID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}
	return result == 1, nil
}

// SetCanceled only touches rows still in the scheduled state, so canceled
// and posted stay terminal. Re-canceling is a silent no-op at this level.
func (r *scheduledPostRepository) SetCanceled(ctx context.Context, postID uuid.UUID) error {
	query := "UPDATE scheduled_posts SET status = $1 WHERE id = $2 AND status = $3"
	_, err := r.db.ExecContext(ctx, query, models.PostStatusCanceled, postID, models.PostStatusScheduled)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
