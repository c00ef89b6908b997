package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/models"
)

type AutomationRuleRepository interface {
	Create(ctx context.Context, rule *models.AutomationRule) error
	GetByID(ctx context.Context, ruleID, userID uuid.UUID) (*models.AutomationRule, bool, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.AutomationRule, error)
	Update(ctx context.Context, rule *models.AutomationRule) (bool, error)
	SetEnabled(ctx context.Context, ruleID, userID uuid.UUID, enabled bool) (bool, error)
	Remove(ctx context.Context, ruleID, userID uuid.UUID) (bool, error)
}

type automationRuleRepository struct {
	db *sql.DB
}

func NewAutomationRuleRepository(db *sql.DB) AutomationRuleRepository {
	return &automationRuleRepository{db: db}
}

func (r *automationRuleRepository) Create(ctx context.Context, rule *models.AutomationRule) error {
	query := `
		INSERT INTO automation_rules (id, user_id, name, trigger_kind, action_kind, conditions_json, parameters_json, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		rule.ID, rule.UserID, rule.Name, rule.TriggerKind, rule.ActionKind,
		rule.ConditionsJSON, rule.ParametersJSON, rule.Enabled, rule.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *automationRuleRepository) GetByID(ctx context.Context, ruleID, userID uuid.UUID) (*models.AutomationRule, bool, error) {
	query := `
		SELECT id, user_id, name, trigger_kind, action_kind, conditions_json, parameters_json, enabled, created_at
		FROM automation_rules
		WHERE id = $1 AND user_id = $2
	`
	var rule models.AutomationRule
	err := r.db.QueryRowContext(ctx, query, ruleID, userID).Scan(
		&rule.ID, &rule.UserID, &rule.Name, &rule.TriggerKind, &rule.ActionKind,
		&rule.ConditionsJSON, &rule.ParametersJSON, &rule.Enabled, &rule.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &rule, true, nil
}

func (r *automationRuleRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.AutomationRule, error) {
	query := `
		SELECT id, user_id, name, trigger_kind, action_kind, conditions_json, parameters_json, enabled, created_at
		FROM automation_rules
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var rules []*models.AutomationRule
	for rows.Next() {
		var rule models.AutomationRule
		err := rows.Scan(&rule.ID, &rule.UserID, &rule.Name, &rule.TriggerKind, &rule.ActionKind,
			&rule.ConditionsJSON, &rule.ParametersJSON, &rule.Enabled, &rule.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		rules = append(rules, &rule)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return rules, nil
}

func (r *automationRuleRepository) Update(ctx context.Context, rule *models.AutomationRule) (bool, error) {
	query := `
		UPDATE automation_rules
		SET name = $1,
			trigger_kind = $2,
			action_kind = $3,
			conditions_json = $4,
			parameters_json = $5,
			enabled = $6
		WHERE id = $7 AND user_id = $8
	`
	result, err := r.db.ExecContext(ctx, query,
		rule.Name, rule.TriggerKind, rule.ActionKind, rule.ConditionsJSON,
		rule.ParametersJSON, rule.Enabled, rule.ID, rule.UserID)
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

func (r *automationRuleRepository) SetEnabled(ctx context.Context, ruleID, userID uuid.UUID, enabled bool) (bool, error) {
	query := "UPDATE automation_rules SET enabled = $1 WHERE id = $2 AND user_id = $3"
	result, err := r.db.ExecContext(ctx, query, enabled, ruleID, userID)
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

func (r *automationRuleRepository) Remove(ctx context.Context, ruleID, userID uuid.UUID) (bool, error) {
	query := "DELETE FROM automation_rules WHERE id = $1 AND user_id = $2"
	result, err := r.db.ExecContext(ctx, query, ruleID, userID)
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
