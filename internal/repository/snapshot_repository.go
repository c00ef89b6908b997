package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/models"
)

// SnapshotRepository holds the append-only analytics captures.
type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *models.AnalyticsSnapshot) error
	ListByUserID(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*models.AnalyticsSnapshot, error)
}

type snapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Create(ctx context.Context, snapshot *models.AnalyticsSnapshot) error {
	query := `
		INSERT INTO analytics_snapshots (id, social_account_id, captured_at, followers, impressions, engagements, clicks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		snapshot.ID, snapshot.SocialAccountID, snapshot.CapturedAt,
		snapshot.Followers, snapshot.Impressions, snapshot.Engagements, snapshot.Clicks)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *snapshotRepository) ListByUserID(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*models.AnalyticsSnapshot, error) {
	query := `
		SELECT s.id, s.social_account_id, s.captured_at, s.followers, s.impressions, s.engagements, s.clicks
		FROM analytics_snapshots s
		JOIN social_accounts a ON a.id = s.social_account_id
		WHERE a.user_id = $1
	`
	args := []interface{}{userID}

	if from != nil {
		args = append(args, *from)
		query += " AND s.captured_at >= $2"
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += " AND s.captured_at <= $3"
		} else {
			query += " AND s.captured_at <= $2"
		}
	}
	query += " ORDER BY s.captured_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var snapshots []*models.AnalyticsSnapshot
	for rows.Next() {
		var s models.AnalyticsSnapshot
		err := rows.Scan(&s.ID, &s.SocialAccountID, &s.CapturedAt, &s.Followers, &s.Impressions, &s.Engagements, &s.Clicks)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		snapshots = append(snapshots, &s)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return snapshots, nil
}
