package insights_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-api/internal/domain/insights"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// healthySnapshot no dispara ninguna alerta ni recomendación.
func healthySnapshot() insights.Snapshot {
	return insights.Snapshot{
		TotalCustomers:    10,
		ActiveCustomers:   6,
		ProspectCustomers: 2,
		TotalOrders:       20,
		Income:            dec("5000"),
		Expenses:          dec("1000"),
		MarginAverage:     dec("35"),
		MarginSamples:     4,
	}
}

func TestConversionRule(t *testing.T) {
	t.Run("4 de 10 ativos dispara alerta", func(t *testing.T) {
		s := healthySnapshot()
		s.ActiveCustomers = 4

		got := insights.AnalyzeGeneral(s)

		require.Len(t, got.Alerts, 1)
		assert.Equal(t, "Taxa de Conversão Baixa", got.Alerts[0].Title)
		assert.Equal(t, insights.ToneWarning, got.Alerts[0].Tone)
		assert.Equal(t, insights.CategoryCustomers, got.Alerts[0].Category)
		assert.Contains(t, got.Alerts[0].Description, "40.0%")
		assert.Empty(t, got.Insights)
	})

	t.Run("6 de 10 ativos gera insight", func(t *testing.T) {
		got := insights.AnalyzeGeneral(healthySnapshot())

		require.Len(t, got.Insights, 1)
		assert.Equal(t, "Boa Taxa de Conversão", got.Insights[0].Title)
		assert.Equal(t, insights.ToneSuccess, got.Insights[0].Tone)
		assert.Contains(t, got.Insights[0].Description, "60.0%")
		assert.Empty(t, got.Alerts)
	})

	t.Run("sem clientes não gera nada", func(t *testing.T) {
		got := insights.AnalyzeGeneral(insights.Snapshot{})
		assert.Empty(t, got.Insights)
		assert.Empty(t, got.Alerts)
		assert.Empty(t, got.Recommendations)
	})
}

func TestProspectSurplusRule(t *testing.T) {
	s := healthySnapshot()
	s.ProspectCustomers = 7

	got := insights.AnalyzeGeneral(s)

	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "Foque na Conversão de Prospects", got.Recommendations[0].Title)
	assert.Equal(t, insights.PriorityHigh, got.Recommendations[0].Priority)
	assert.Equal(t, "Você tem 7 prospects vs 6 clientes ativos. Intensifique o follow-up.", got.Recommendations[0].Description)
}

func TestOverdueAndCashFlowRules(t *testing.T) {
	s := healthySnapshot()
	s.OverdueOrders = 3
	s.Income = dec("1000")
	s.Expenses = dec("1500.5")

	got := insights.AnalyzeGeneral(s)

	require.Len(t, got.Alerts, 2)
	assert.Equal(t, "Pedidos Atrasados", got.Alerts[0].Title)
	assert.Equal(t, insights.ToneDanger, got.Alerts[0].Tone)
	assert.Equal(t, "3 pedidos estão atrasados. Revise os prazos e capacidade da equipe.", got.Alerts[0].Description)
	assert.Equal(t, "Despesas Superiores às Receitas", got.Alerts[1].Title)
	assert.Equal(t, "Este mês as despesas (R$ 1500.50) superam as receitas (R$ 1000.00).", got.Alerts[1].Description)
}

func TestMarginRule(t *testing.T) {
	t.Run("margens 10% e 50% não disparam", func(t *testing.T) {
		avg, n := insights.AverageMargin([]insights.OrderAmount{
			{Value: dec("100"), Cost: dec("90")},
			{Value: dec("200"), Cost: dec("100")},
		})
		require.Equal(t, 2, n)
		assert.True(t, avg.Equal(dec("30")))

		s := healthySnapshot()
		s.MarginAverage, s.MarginSamples = avg, n
		got := insights.AnalyzeGeneral(s)
		assert.Empty(t, got.Alerts)
		assert.Empty(t, got.Recommendations)
	})

	t.Run("margem única de 5% gera alerta e recomendação", func(t *testing.T) {
		avg, n := insights.AverageMargin([]insights.OrderAmount{{Value: dec("100"), Cost: dec("95")}})

		s := healthySnapshot()
		s.MarginAverage, s.MarginSamples = avg, n
		got := insights.AnalyzeGeneral(s)

		require.Len(t, got.Alerts, 1)
		assert.Equal(t, "Margem Baixa", got.Alerts[0].Title)
		assert.Contains(t, got.Alerts[0].Description, "5.0%")
		require.Len(t, got.Recommendations, 1)
		assert.Equal(t, "Otimize a Margem de Lucro", got.Recommendations[0].Title)
	})

	t.Run("pedidos com valor zero são ignorados", func(t *testing.T) {
		avg, n := insights.AverageMargin([]insights.OrderAmount{
			{Value: dec("0"), Cost: dec("10")},
			{Value: dec("100"), Cost: dec("60")},
		})
		assert.Equal(t, 1, n)
		assert.True(t, avg.Equal(dec("40")))
	})

	t.Run("sem pedidos concluídos não gera achado", func(t *testing.T) {
		s := healthySnapshot()
		s.MarginAverage, s.MarginSamples = decimal.Zero, 0
		got := insights.AnalyzeGeneral(s)
		assert.Empty(t, got.Alerts)
	})
}

func TestGeneralRuleOrder(t *testing.T) {
	s := insights.Snapshot{
		TotalCustomers:    10,
		ActiveCustomers:   2,
		ProspectCustomers: 5,
		OverdueOrders:     1,
		Income:            dec("10"),
		Expenses:          dec("20"),
		MarginAverage:     dec("5"),
		MarginSamples:     1,
	}

	got := insights.AnalyzeGeneral(s)

	titles := make([]string, 0, len(got.Alerts))
	for _, f := range got.Alerts {
		titles = append(titles, f.Title)
	}
	assert.Equal(t, []string{
		"Taxa de Conversão Baixa",
		"Pedidos Atrasados",
		"Despesas Superiores às Receitas",
		"Margem Baixa",
	}, titles)
	require.Len(t, got.Recommendations, 2)
	assert.Equal(t, "Foque na Conversão de Prospects", got.Recommendations[0].Title)
	assert.Equal(t, "Otimize a Margem de Lucro", got.Recommendations[1].Title)
}

func TestMissingMetricSkipsOnlyDependentRules(t *testing.T) {
	s := healthySnapshot()
	s.OverdueOrders = 4
	s.MarkMissing(insights.MetricActiveCustomers, errors.New("timeout"))

	got := insights.AnalyzeGeneral(s)

	assert.Empty(t, got.Insights, "conversão depende de clientes ativos")
	require.Len(t, got.Alerts, 1)
	assert.Equal(t, "Pedidos Atrasados", got.Alerts[0].Title)
}

func TestAnalysisIsIdempotent(t *testing.T) {
	s := healthySnapshot()
	s.OverdueOrders = 2
	s.MonthlyRevenue = []decimal.Decimal{dec("100"), dec("100"), dec("100"), dec("150"), dec("150"), dec("150")}

	assert.Equal(t, insights.AnalyzeGeneral(s), insights.AnalyzeGeneral(s))
	assert.Equal(t, insights.AnalyzeTrends(s), insights.AnalyzeTrends(s))
	assert.Equal(t, insights.HealthScore(s), insights.HealthScore(s))
}

func TestEngineRuleNames(t *testing.T) {
	e := insights.NewEngine(insights.GeneralRules()...)
	assert.Equal(t, []string{"conversao", "prospects", "atrasos", "fluxo_caixa", "margem"}, e.Rules())
}

func TestWindows(t *testing.T) {
	now := time.Date(2026, 3, 31, 15, 0, 0, 0, time.UTC)

	w := insights.MonthWindow(now)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), w.End)
	assert.True(t, w.Contains(now))
	assert.False(t, w.Contains(w.End))

	prev := w.Previous()
	assert.Equal(t, "2026-02", prev.Label())

	months := insights.TrailingMonths(now, 6)
	require.Len(t, months, 6)
	assert.Equal(t, "2025-10", months[0].Label())
	assert.Equal(t, "2026-03", months[5].Label())
}
