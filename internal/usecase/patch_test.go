package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"evacuation/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEvacuationInput_TriState(t *testing.T) {
	var input UpdateEvacuationInput
	err := json.Unmarshal([]byte(`{
		"action_name": "Ewakuacja Paryż",
		"end_date": null,
		"status": "in_progress",
		"start_date": "2024-06-01T12:00:00Z"
	}`), &input)
	require.NoError(t, err)

	assert.True(t, input.ActionName.HasValue())
	assert.Equal(t, "Ewakuacja Paryż", input.ActionName.Value)

	assert.True(t, input.EndDate.Set)
	assert.True(t, input.EndDate.Null)
	assert.False(t, input.EndDate.HasValue())

	assert.Equal(t, entity.EvacuationStatusInProgress, input.Status.Value)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), input.StartDate.Value.UTC())

	assert.False(t, input.EventDescription.Set)
	assert.False(t, input.CountryID.Set)
	assert.False(t, input.CityID.Set)
}

func TestPatch_InvalidValue(t *testing.T) {
	var input UpdateEvacuationInput
	err := json.Unmarshal([]byte(`{"city_id": "Paryż"}`), &input)
	assert.Error(t, err)
}

func TestPatch_Constructors(t *testing.T) {
	some := Some(uint(7))
	assert.True(t, some.HasValue())
	assert.Equal(t, uint(7), some.Value)

	cleared := Null[uint]()
	assert.True(t, cleared.Set)
	assert.False(t, cleared.HasValue())

	var absent Patch[uint]
	assert.False(t, absent.Set)
	assert.False(t, absent.HasValue())
}

func TestPatch_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Patch[string] `json:"a"`
		B Patch[string] `json:"b"`
		C Patch[string] `json:"c"`
	}{A: Some("x"), B: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null,"c":null}`, string(out))
}
