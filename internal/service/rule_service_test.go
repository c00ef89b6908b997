package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/internal/models"
	"github.com/socialdeck/management-api/internal/transfer"
)

func TestRuleCreateDefaults(t *testing.T) {
	svc := NewRuleService(&fakeRuleRepo{})
	userID := uuid.New()

	dto, err := svc.Create(context.Background(), userID, &transfer.AutomationRuleRequest{
		Name: "evening reshare",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RuleTriggerTime, dto.Trigger)
	assert.Equal(t, models.RuleActionPost, dto.Action)
	assert.True(t, dto.Enabled)
	assert.Nil(t, dto.ConditionsJSON)

	_, err = svc.Create(context.Background(), userID, &transfer.AutomationRuleRequest{})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRuleOpaquePayloadRoundTrip(t *testing.T) {
	svc := NewRuleService(&fakeRuleRepo{})
	userID := uuid.New()

	conditions := `{"weekday":["sat","sun"],"nested":{"whatever":true}}`
	parameters := `{"target":"instagram"}`
	dto, err := svc.Create(context.Background(), userID, &transfer.AutomationRuleRequest{
		Name:           "weekend notify",
		Trigger:        models.RuleTriggerEvent,
		Action:         models.RuleActionNotify,
		ConditionsJSON: &conditions,
		ParametersJSON: &parameters,
	})
	require.NoError(t, err)

	listed, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].ConditionsJSON)
	// Stored and returned verbatim, never interpreted.
	assert.Equal(t, conditions, *listed[0].ConditionsJSON)
	assert.Equal(t, parameters, *listed[0].ParametersJSON)
	assert.Equal(t, dto.ID, listed[0].ID)
}

func TestRuleToggleFlipsOnlyEnabled(t *testing.T) {
	repo := &fakeRuleRepo{}
	svc := NewRuleService(repo)
	userID := uuid.New()

	conditions := `{"hour":18}`
	dto, err := svc.Create(context.Background(), userID, &transfer.AutomationRuleRequest{
		Name:           "daily post",
		ConditionsJSON: &conditions,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Toggle(context.Background(), userID, dto.ID, false))

	listed, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].Enabled)
	assert.Equal(t, "daily post", listed[0].Name)
	require.NotNil(t, listed[0].ConditionsJSON)
	assert.Equal(t, conditions, *listed[0].ConditionsJSON)

	err = svc.Toggle(context.Background(), uuid.New(), dto.ID, true)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.False(t, repo.rules[0].Enabled)
}

func TestRuleUpdateRequiresOwnership(t *testing.T) {
	svc := NewRuleService(&fakeRuleRepo{})
	userID := uuid.New()

	dto, err := svc.Create(context.Background(), userID, &transfer.AutomationRuleRequest{Name: "old name"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), userID, dto.ID, &transfer.AutomationRuleRequest{
		Name:    "new name",
		Trigger: models.RuleTriggerEvent,
	})
	require.NoError(t, err)
	assert.Equal(t, "new name", updated.Name)
	assert.Equal(t, models.RuleTriggerEvent, updated.Trigger)

	_, err = svc.Update(context.Background(), uuid.New(), dto.ID, &transfer.AutomationRuleRequest{Name: "hijack"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRuleUpdateRejectsEmptyName(t *testing.T) {
	svc := NewRuleService(&fakeRuleRepo{})
	userID := uuid.New()

	dto, err := svc.Create(context.Background(), userID, &transfer.AutomationRuleRequest{Name: "keep me"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), userID, dto.ID, &transfer.AutomationRuleRequest{})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	listed, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "keep me", listed[0].Name)
}

func TestRuleDelete(t *testing.T) {
	svc := NewRuleService(&fakeRuleRepo{})
	userID := uuid.New()

	dto, err := svc.Create(context.Background(), userID, &transfer.AutomationRuleRequest{Name: "short lived"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), uuid.New(), dto.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), userID, dto.ID))

	listed, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = svc.Delete(context.Background(), userID, dto.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
