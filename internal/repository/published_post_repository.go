package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/models"
)

// PublishedPostRepository stores the records left behind by the external
// publishing collaborator. Rows are immutable once written.
type PublishedPostRepository interface {
	Create(ctx context.Context, post *models.PublishedPost) error
	ListByUserID(ctx context.Context, userID uuid.UUID, accountID *uuid.UUID) ([]*models.PublishedPost, error)
}

type publishedPostRepository struct {
	db *sql.DB
}

func NewPublishedPostRepository(db *sql.DB) PublishedPostRepository {
	return &publishedPostRepository{db: db}
}

func (r *publishedPostRepository) Create(ctx context.Context, post *models.PublishedPost) error {
	query := `
		INSERT INTO published_posts (id, social_account_id, content, media_url, posted_at, provider_post_id, likes, comments, shares, views)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.SocialAccountID, post.Content, post.MediaURL, post.PostedAt,
		post.ProviderPostID, post.Likes, post.Comments, post.Shares, post.Views)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *publishedPostRepository) ListByUserID(ctx context.Context, userID uuid.UUID, accountID *uuid.UUID) ([]*models.PublishedPost, error) {
	query := `
		SELECT p.id, p.social_account_id, p.content, p.media_url, p.posted_at,
			p.provider_post_id, p.likes, p.comments, p.shares, p.views
		FROM published_posts p
		JOIN social_accounts a ON a.id = p.social_account_id
		WHERE a.user_id = $1
	`
	args := []interface{}{userID}

	if accountID != nil {
		query += " AND p.social_account_id = $2"
		args = append(args, *accountID)
	}
	query += " ORDER BY p.posted_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.PublishedPost
	for rows.Next() {
		var post models.PublishedPost
		err := rows.Scan(&post.ID, &post.SocialAccountID, &post.Content, &post.MediaURL, &post.PostedAt,
			&post.ProviderPostID, &post.Likes, &post.Comments, &post.Shares, &post.Views)
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
