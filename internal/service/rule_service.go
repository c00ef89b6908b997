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

// RuleService owns automation rule CRUD. Condition and parameter payloads
// pass through untouched; interpreting them belongs to the rule-execution
// engine outside this backend.
type RuleService interface {
	Create(ctx context.Context, userID uuid.UUID, req *transfer.AutomationRuleRequest) (*transfer.AutomationRuleDto, error)
	List(ctx context.Context, userID uuid.UUID) ([]*transfer.AutomationRuleDto, error)
	Update(ctx context.Context, userID, ruleID uuid.UUID, req *transfer.AutomationRuleRequest) (*transfer.AutomationRuleDto, error)
	Delete(ctx context.Context, userID, ruleID uuid.UUID) error
	Toggle(ctx context.Context, userID, ruleID uuid.UUID, enabled bool) error
}

type ruleService struct {
	ar repository.AutomationRuleRepository
}

func NewRuleService(ar repository.AutomationRuleRepository) RuleService {
	return &ruleService{ar: ar}
}

func (s *ruleService) Create(ctx context.Context, userID uuid.UUID, req *transfer.AutomationRuleRequest) (*transfer.AutomationRuleDto, error) {
	if req.Name == "" {
		err := fmt.Errorf("%w: rule name cannot be empty", apperr.ErrValidation)
		slog.Info(err.Error())
		return nil, err
	}

	rule := &models.AutomationRule{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           req.Name,
		TriggerKind:    defaultString(req.Trigger, models.RuleTriggerTime),
		ActionKind:     defaultString(req.Action, models.RuleActionPost),
		ConditionsJSON: req.ConditionsJSON,
		ParametersJSON: req.ParametersJSON,
		Enabled:        defaultBool(req.Enabled, true),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.ar.Create(ctx, rule); err != nil {
		return nil, err
	}
	return transfer.ToAutomationRuleDto(rule), nil
}

func (s *ruleService) List(ctx context.Context, userID uuid.UUID) ([]*transfer.AutomationRuleDto, error) {
	rules, err := s.ar.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*transfer.AutomationRuleDto, 0, len(rules))
	for _, rule := range rules {
		dtos = append(dtos, transfer.ToAutomationRuleDto(rule))
	}
	return dtos, nil
}

func (s *ruleService) Update(ctx context.Context, userID, ruleID uuid.UUID, req *transfer.AutomationRuleRequest) (*transfer.AutomationRuleDto, error) {
	if req.Name == "" {
		err := fmt.Errorf("%w: rule name cannot be empty", apperr.ErrValidation)
		slog.Info(err.Error())
		return nil, err
	}

	rule, exists, err := s.ar.GetByID(ctx, ruleID, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.ErrNotFound
	}

	rule.Name = req.Name
	rule.TriggerKind = defaultString(req.Trigger, rule.TriggerKind)
	rule.ActionKind = defaultString(req.Action, rule.ActionKind)
	rule.ConditionsJSON = req.ConditionsJSON
	rule.ParametersJSON = req.ParametersJSON
	rule.Enabled = defaultBool(req.Enabled, rule.Enabled)

	updated, err := s.ar.Update(ctx, rule)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperr.ErrNotFound
	}
	return transfer.ToAutomationRuleDto(rule), nil
}

func (s *ruleService) Delete(ctx context.Context, userID, ruleID uuid.UUID) error {
	removed, err := s.ar.Remove(ctx, ruleID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.ErrNotFound
	}
	return nil
}

// Toggle flips only the enabled flag; every other field is left as is.
func (s *ruleService) Toggle(ctx context.Context, userID, ruleID uuid.UUID, enabled bool) error {
	toggled, err := s.ar.SetEnabled(ctx, ruleID, userID, enabled)
	if err != nil {
		return err
	}
	if !toggled {
		return apperr.ErrNotFound
	}
	return nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func defaultBool(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
