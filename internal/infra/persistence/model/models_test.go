package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, m any) *schema.Schema {
	t.Helper()

	s, err := schema.Parse(m, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	return s
}

func TestModels_ForeignKeys(t *testing.T) {
	tests := []struct {
		name       string
		model      any
		relation   string
		table      string
		references string
		column     string
		onDelete   string
	}{
		{name: "city to country", model: &CityModel{}, relation: "Country", table: "cities", references: "countries", column: "country_id", onDelete: "RESTRICT"},
		{name: "location to city", model: &LocationModel{}, relation: "City", table: "locations", references: "cities", column: "city_id", onDelete: "RESTRICT"},
		{name: "trip to traveler", model: &TripModel{}, relation: "Traveler", table: "trips", references: "travelers", column: "traveler_pesel", onDelete: "CASCADE"},
		{name: "stage to location", model: &StageModel{}, relation: "Location", table: "stages", references: "locations", column: "location_id", onDelete: "RESTRICT"},
		{name: "notification to traveler", model: &NotificationModel{}, relation: "Traveler", table: "notifications", references: "travelers", column: "traveler_pesel", onDelete: "CASCADE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, ok := parseSchema(t, tt.model).Relationships.Relations[tt.relation]
			require.True(t, ok)

			constraint := rel.ParseConstraint()
			require.NotNil(t, constraint)
			assert.Equal(t, tt.table, constraint.Schema.Table)
			assert.Equal(t, tt.references, constraint.ReferenceSchema.Table)
			require.Len(t, constraint.ForeignKeys, 1)
			assert.Equal(t, tt.column, constraint.ForeignKeys[0].DBName)
			assert.Equal(t, tt.onDelete, constraint.OnDelete)
		})
	}
}

func TestModels_StagesBelongToTrips(t *testing.T) {
	rel, ok := parseSchema(t, &TripModel{}).Relationships.Relations["Stages"]
	require.True(t, ok)

	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint)
	assert.Equal(t, "stages", constraint.Schema.Table)
	assert.Equal(t, "trips", constraint.ReferenceSchema.Table)
}

func TestModels_NotificationsHaveNoEvacuationKey(t *testing.T) {
	s := parseSchema(t, &NotificationModel{})

	for name, rel := range s.Relationships.Relations {
		if constraint := rel.ParseConstraint(); constraint != nil {
			assert.NotEqual(t, "evacuations", constraint.ReferenceSchema.Table, name)
		}
	}
}

func TestModels_CheckConstraints(t *testing.T) {
	evacuationChecks := parseSchema(t, &EvacuationModel{}).ParseCheckConstraints()
	require.Contains(t, evacuationChecks, "chk_evacuations_scope")
	assert.Equal(t, "(country_id IS NULL) <> (city_id IS NULL)", evacuationChecks["chk_evacuations_scope"].Constraint)
	require.Contains(t, evacuationChecks, "chk_evacuations_dates")
	assert.Equal(t, "end_date IS NULL OR end_date >= start_date", evacuationChecks["chk_evacuations_dates"].Constraint)

	stageChecks := parseSchema(t, &StageModel{}).ParseCheckConstraints()
	require.Contains(t, stageChecks, "chk_stages_dates")
	assert.Equal(t, "end_date >= start_date", stageChecks["chk_stages_dates"].Constraint)
}
