package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/internal/models"
)

type SocialAccountRepository interface {
	Create(ctx context.Context, sa *models.SocialAccount) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.SocialAccount, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
	CheckByUserID(ctx context.Context, accountID, userID uuid.UUID) (bool, error)
	Remove(ctx context.Context, accountID, userID uuid.UUID) (bool, error)
}

type socialAccountRepository struct {
	db *sql.DB
}

func NewSocialAccountRepository(db *sql.DB) SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

func (r *socialAccountRepository) Create(ctx context.Context, sa *models.SocialAccount) error {
	query := `
		INSERT INTO social_accounts(
			id,
			user_id,
			provider,
			provider_user_id,
			display_name,
			access_token,
			refresh_token,
			expires_at,
			connected_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		sa.ID,
		sa.UserID,
		sa.Provider,
		sa.ProviderUserID,
		sa.DisplayName,
		sa.AccessToken,
		sa.RefreshToken,
		sa.ExpiresAt,
		sa.ConnectedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrConflict
		}
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *socialAccountRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.SocialAccount, error) {
	query := `
		SELECT id, user_id, provider, provider_user_id, display_name,
			access_token, refresh_token, expires_at, connected_at
		FROM social_accounts
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.SocialAccount
	for rows.Next() {
		var sa models.SocialAccount
		err := rows.Scan(&sa.ID, &sa.UserID, &sa.Provider, &sa.ProviderUserID, &sa.DisplayName,
			&sa.AccessToken, &sa.RefreshToken, &sa.ExpiresAt, &sa.ConnectedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, &sa)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return accounts, nil
}

func (r *socialAccountRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	query := "SELECT COUNT(*) FROM social_accounts WHERE user_id = $1"

	var count int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}

func (r *socialAccountRepository) CheckByUserID(ctx context.Context, accountID, userID uuid.UUID) (bool, error) {
	query := "SELECT 1 FROM social_accounts WHERE id = $1 AND user_id = $2"

	var result int
	err := r.db.QueryRowContext(ctx, query, accountID, userID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}
	return result == 1, nil
}

// Remove deletes only when the account is owned by userID. Dependent posts
// and snapshots go with it through the schema's ON DELETE CASCADE.
func (r *socialAccountRepository) Remove(ctx context.Context, accountID, userID uuid.UUID) (bool, error) {
	query := "DELETE FROM social_accounts WHERE id = $1 AND user_id = $2"
	result, err := r.db.ExecContext(ctx, query, accountID, userID)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return affected > 0, nil
}
