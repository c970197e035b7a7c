package insights_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-api/internal/domain/insights"
)

func series(vals ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = dec(v)
	}
	return out
}

func TestRevenueTrend(t *testing.T) {
	t.Run("crescimento de 50%", func(t *testing.T) {
		f, ok := insights.RevenueTrend(series("100", "100", "100", "150", "150", "150"))
		require.True(t, ok)
		assert.Equal(t, insights.ToneGrowth, f.Tone)
		assert.Equal(t, "Faturamento em Crescimento", f.Title)
		assert.Equal(t, "Faturamento cresceu 50.0% nos últimos meses.", f.Description)
		require.NotNil(t, f.ChangePct)
		assert.Equal(t, "50.0", f.ChangePct.StringFixed(1))
	})

	t.Run("declínio de 33.3%", func(t *testing.T) {
		f, ok := insights.RevenueTrend(series("300", "300", "300", "200", "200", "200"))
		require.True(t, ok)
		assert.Equal(t, insights.ToneDecline, f.Tone)
		assert.Equal(t, "Faturamento caiu 33.3% nos últimos meses.", f.Description)
		assert.Equal(t, "-33.3", f.ChangePct.StringFixed(1))
	})

	t.Run("variação dentro de 10% não gera tendência", func(t *testing.T) {
		_, ok := insights.RevenueTrend(series("100", "100", "100", "105", "108", "110"))
		assert.False(t, ok)
	})

	t.Run("menos de três meses", func(t *testing.T) {
		_, ok := insights.RevenueTrend(series("100", "300"))
		assert.False(t, ok)
	})

	t.Run("média inicial zero", func(t *testing.T) {
		_, ok := insights.RevenueTrend(series("0", "0", "0", "500", "500", "500"))
		assert.False(t, ok)
	})
}

func TestAnalyzeTrends_MissingHistory(t *testing.T) {
	s := insights.Snapshot{MonthlyRevenue: series("100", "100", "100", "150", "150", "150")}
	assert.Len(t, insights.AnalyzeTrends(s), 1)

	s.MarkMissing(insights.MetricMonthlyRevenue, assert.AnError)
	assert.Empty(t, insights.AnalyzeTrends(s))
}
