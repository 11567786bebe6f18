package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vtpartner/internal/apperr"
)

func TestResolveKnownCategories(t *testing.T) {
	seenTables := map[string]bool{}
	seenIDColumns := map[string]bool{}

	for _, c := range Categories() {
		d, err := Resolve(int64(c))
		require.NoError(t, err, "category %s", c)

		assert.Equal(t, c, d.Category)
		assert.NotEmpty(t, d.Table)
		assert.NotEmpty(t, d.NameColumn)
		assert.NotEmpty(t, d.IDColumn)
		assert.NotEmpty(t, d.DocumentTable)

		assert.False(t, seenTables[d.Table], "table %s reused", d.Table)
		assert.False(t, seenIDColumns[d.IDColumn], "id column %s reused", d.IDColumn)
		seenTables[d.Table] = true
		seenIDColumns[d.IDColumn] = true

		again, err := Resolve(int64(c))
		require.NoError(t, err)
		assert.Equal(t, d, again)
	}
}

func TestResolveRejectsUnknownCategory(t *testing.T) {
	for _, id := range []int64{0, -1, 6, 99} {
		_, err := Resolve(id)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindInvalidCategory), "id %d", id)
	}
}

func TestDispatchMatchesModels(t *testing.T) {
	type tabler interface{ TableName() string }

	for _, c := range Categories() {
		d, err := Resolve(int64(c))
		require.NoError(t, err)

		agent := c.NewAgent()
		require.NotNil(t, agent)
		assert.Equal(t, c, agent.Category())

		tb, ok := agent.(tabler)
		require.True(t, ok)
		assert.Equal(t, d.Table, tb.TableName())

		_, drives := agent.(VehicleAgent)
		assert.Equal(t, c.OwnsVehicle(), drives, "category %s", c)
	}
	assert.Nil(t, Category(42).NewAgent())
}

func TestSetAgentID(t *testing.T) {
	for _, c := range Categories() {
		agent := c.NewAgent()
		agent.SetAgentID(17)
		assert.Equal(t, uint(17), agent.AgentID())
	}
}
