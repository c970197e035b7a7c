package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-api/internal/application/analytics"
)

func TestDashboard_GetSummary(t *testing.T) {
	uc := analytics.NewDashboardUseCase(busyCompany())

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	k := got.KPIs
	assert.Equal(t, 10, k.TotalCustomers)
	assert.Equal(t, 4, k.ActiveCustomers)
	assert.Equal(t, 2, k.NewCustomers)
	assert.Equal(t, 10, k.TotalOrders)
	assert.Equal(t, 4, k.InProgressOrders)
	assert.Equal(t, 2, k.OverdueOrders)
	assert.Equal(t, "1234.5", k.MonthRevenue.String())
	assert.Equal(t, "30", k.AvgMargin.String())
	assert.Equal(t, "-500", k.MonthBalance.String())
	assert.Equal(t, 2, k.DemandsInCreation)
	assert.Equal(t, 1, k.DemandsAwaiting)
	assert.Equal(t, 1, k.UrgentDemands)

	require.Len(t, got.Charts.RevenueHistory, 6)
	assert.Equal(t, "150", got.Charts.RevenueHistory[5].Amount.String())
	assert.Regexp(t, `^\d{4}-\d{2}$`, got.Charts.RevenueHistory[0].Label)

	require.Len(t, got.Charts.TopCustomers, 1)
	assert.Equal(t, "900.46", got.Charts.TopCustomers[0].TotalValue.String())
	require.Len(t, got.Charts.OrdersByStatus, 1)
}

func TestDashboard_AnyFailureFails(t *testing.T) {
	repo := busyCompany()
	repo.fail = map[string]error{"TopCustomers": errors.New("boom")}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top clientes")
}

func TestDashboard_EmptyHistoryPadsZeros(t *testing.T) {
	repo := busyCompany()
	repo.monthly = nil
	uc := analytics.NewDashboardUseCase(repo)

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, got.Charts.RevenueHistory, 6)
	for _, p := range got.Charts.RevenueHistory {
		assert.True(t, p.Amount.IsZero())
	}
}
