package model_test

import (
	"encoding/json"
	"salon/internal/domains/wizard/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_Text(t *testing.T) {
	data, err := json.Marshal(map[string]model.Step{"step": model.StepSelectDateTime})
	require.NoError(t, err)
	assert.JSONEq(t, `{"step":"select_date_time"}`, string(data))

	var step model.Step
	require.NoError(t, step.UnmarshalText([]byte("confirmed")))
	assert.Equal(t, model.StepConfirmed, step)

	assert.Error(t, step.UnmarshalText([]byte("payment")))
	assert.Equal(t, "step(9)", model.Step(9).String())
}

func TestDraft_Contact(t *testing.T) {
	draft := model.Draft{Name: "  Ane ", Phone: " 600000000", Email: "ane@example.com ", Notes: " hola "}

	contact := draft.Contact()
	assert.Equal(t, "Ane", contact.Name)
	assert.Equal(t, "600000000", contact.Phone)
	assert.Equal(t, "ane@example.com", contact.Email)
	assert.Equal(t, " hola ", contact.Notes)
}
