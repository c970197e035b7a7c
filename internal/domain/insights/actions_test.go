package insights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-api/internal/domain/insights"
)

func TestSuggestActions(t *testing.T) {
	s := insights.Snapshot{UrgentDemands: 2, StaleActiveCustomers: 5, SingleOrderActiveCustomers: 3}

	got := insights.SuggestActions(s)

	require.Len(t, got, 3)
	assert.Equal(t, insights.ToneImmediate, got[0].Tone)
	assert.Equal(t, "Existem 2 demandas marcadas como urgentes.", got[0].Description)
	assert.Equal(t, insights.CategoryOperations, got[0].Category)

	assert.Equal(t, insights.ToneRelationship, got[1].Tone)
	assert.Equal(t, "5 clientes ativos não têm contato há mais de 30 dias.", got[1].Description)

	assert.Equal(t, insights.ToneOpportunity, got[2].Tone)
	assert.Equal(t, "3 clientes ativos fizeram apenas 1 pedido. Ofereça novos serviços.", got[2].Description)
	for _, f := range got {
		assert.Equal(t, insights.KindAction, f.Kind)
	}
}

func TestSuggestActions_Empty(t *testing.T) {
	assert.Empty(t, insights.SuggestActions(insights.Snapshot{}))
}
