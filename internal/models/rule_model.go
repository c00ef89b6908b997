package models

import (
	"time"

	"github.com/google/uuid"
)

// AutomationRule pairs a trigger kind with an action kind. The conditions and
// parameters payloads are opaque JSON: they are stored and returned verbatim
// and interpreted only by an external rule-execution engine.
type AutomationRule struct {
	ID             uuid.UUID `db:"id" json:"id"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	Name           string    `db:"name" json:"name"`
	TriggerKind    string    `db:"trigger_kind" json:"trigger"`
	ActionKind     string    `db:"action_kind" json:"action"`
	ConditionsJSON *string   `db:"conditions_json" json:"conditions_json,omitempty"`
	ParametersJSON *string   `db:"parameters_json" json:"parameters_json,omitempty"`
	Enabled        bool      `db:"enabled" json:"enabled"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

const (
	RuleTriggerTime  = "time"
	RuleTriggerEvent = "event"

	RuleActionPost    = "post"
	RuleActionReshare = "reshare"
	RuleActionNotify  = "notify"
)
