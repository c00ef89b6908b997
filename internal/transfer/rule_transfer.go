package transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/models"
)

type AutomationRuleRequest struct {
	Name           string  `json:"name"`
	Trigger        string  `json:"trigger"`
	Action         string  `json:"action"`
	ConditionsJSON *string `json:"conditionsJson,omitempty"`
	ParametersJSON *string `json:"parametersJson,omitempty"`
	Enabled        *bool   `json:"enabled,omitempty"`
}

type AutomationRuleDto struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Trigger        string    `json:"trigger"`
	Action         string    `json:"action"`
	ConditionsJSON *string   `json:"conditionsJson,omitempty"`
	ParametersJSON *string   `json:"parametersJson,omitempty"`
	Enabled        bool      `json:"enabled"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToAutomationRuleDto(r *models.AutomationRule) *AutomationRuleDto {
	return &AutomationRuleDto{
		ID:             r.ID,
		Name:           r.Name,
		Trigger:        r.TriggerKind,
		Action:         r.ActionKind,
		ConditionsJSON: r.ConditionsJSON,
		ParametersJSON: r.ParametersJSON,
		Enabled:        r.Enabled,
		CreatedAt:      r.CreatedAt,
	}
}
