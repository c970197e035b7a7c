package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-api/internal/application/analytics"
	"github.com/jhoicas/gestao-api/internal/domain"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/insights"
	"github.com/jhoicas/gestao-api/pkg/logger"
)

func newAssistant(repo *fakeAnalytics) (*analytics.AssistantUseCase, *fakePDF, *fakeMetrics) {
	pdf := &fakePDF{}
	m := &fakeMetrics{}
	uc := analytics.NewAssistantUseCase(repo, &fakeSettings{}, pdf, m, logger.Nop())
	return uc, pdf, m
}

func TestGeneralAnalysis(t *testing.T) {
	uc, _, _ := newAssistant(busyCompany())

	got, err := uc.GeneralAnalysis(context.Background())
	require.NoError(t, err)

	assert.Empty(t, got.Insights)

	titles := make([]string, 0, len(got.Alerts))
	for _, a := range got.Alerts {
		titles = append(titles, a.Titulo)
	}
	assert.Equal(t, []string{"Taxa de Conversão Baixa", "Pedidos Atrasados", "Despesas Superiores às Receitas"}, titles)

	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "Foque na Conversão de Prospects", got.Recommendations[0].Titulo)
	assert.Equal(t, insights.PriorityHigh, got.Recommendations[0].Prioridade)
}

func TestGeneralAnalysis_OnlyQueriesWhatItNeeds(t *testing.T) {
	repo := busyCompany()
	uc, _, _ := newAssistant(repo)

	_, err := uc.GeneralAnalysis(context.Background())
	require.NoError(t, err)

	assert.Zero(t, repo.called("MonthlyCompletedRevenue"))
	assert.Zero(t, repo.called("CountDemands"))
	assert.Zero(t, repo.called("CountStaleCustomers"))
}

func TestGeneralAnalysis_SkipsRulesWithMissingMetrics(t *testing.T) {
	repo := busyCompany()
	repo.fail = map[string]error{"CountOverdueOrders": errors.New("timeout")}
	uc, _, _ := newAssistant(repo)

	got, err := uc.GeneralAnalysis(context.Background())
	require.NoError(t, err)

	for _, a := range got.Alerts {
		assert.NotEqual(t, "Pedidos Atrasados", a.Titulo)
	}
	assert.Len(t, got.Alerts, 2)
}

func TestGeneralAnalysis_DataUnavailable(t *testing.T) {
	t.Run("ping falha", func(t *testing.T) {
		repo := busyCompany()
		repo.pingErr = errors.New("connection refused")
		uc, _, _ := newAssistant(repo)

		_, err := uc.GeneralAnalysis(context.Background())
		assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("todas as métricas falham", func(t *testing.T) {
		boom := errors.New("boom")
		repo := busyCompany()
		repo.fail = map[string]error{
			"CountCustomers": boom, "CountOverdueOrders": boom,
			"SumTransactions": boom, "CompletedOrderAmounts": boom,
		}
		uc, _, _ := newAssistant(repo)

		_, err := uc.GeneralAnalysis(context.Background())
		assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	})
}

func TestGeneralAnalysis_Idempotent(t *testing.T) {
	uc, _, _ := newAssistant(busyCompany())

	a, err := uc.GeneralAnalysis(context.Background())
	require.NoError(t, err)
	b, err := uc.GeneralAnalysis(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestTrends(t *testing.T) {
	uc, _, _ := newAssistant(busyCompany())

	got, err := uc.Trends(context.Background())
	require.NoError(t, err)

	require.Len(t, got.Trends, 1)
	assert.Equal(t, insights.ToneGrowth, got.Trends[0].Tipo)
	require.NotNil(t, got.Trends[0].Variacao)
	assert.Equal(t, "50", got.Trends[0].Variacao.String())
}

func TestTrends_EmptyListIsNotNull(t *testing.T) {
	repo := busyCompany()
	repo.monthly = nil
	uc, _, _ := newAssistant(repo)

	got, err := uc.Trends(context.Background())
	require.NoError(t, err)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tendencias":[]}`, string(raw))
}

func TestSuggestions(t *testing.T) {
	uc, _, _ := newAssistant(busyCompany())

	got, err := uc.Suggestions(context.Background())
	require.NoError(t, err)

	require.Len(t, got.Actions, 3)
	assert.Equal(t, insights.ToneImmediate, got.Actions[0].Tipo)
	assert.Equal(t, insights.ToneRelationship, got.Actions[1].Tipo)
	assert.Equal(t, insights.ToneOpportunity, got.Actions[2].Tipo)
}

func TestFullReport(t *testing.T) {
	uc, _, m := newAssistant(busyCompany())

	got, err := uc.FullReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, got.Summary.TotalCustomers)
	assert.Equal(t, 10, got.Summary.TotalOrders)
	assert.Equal(t, 6, got.Summary.OrdersInMonth)
	assert.Len(t, got.General.Alerts, 3)
	assert.Len(t, got.Trends, 1)
	assert.Len(t, got.Actions, 3)
	assert.False(t, got.Timestamp.IsZero())

	// 100 - 2/10*30 + 10, limitado a 100
	assert.Equal(t, 100, got.HealthScore)
	assert.Equal(t, 100, m.score)
	assert.Equal(t, 3, m.findings[string(insights.KindAlert)])
	assert.Equal(t, 3, m.findings[string(insights.KindAction)])
}

func TestFullReport_HealthScoreWithoutGrowth(t *testing.T) {
	repo := busyCompany()
	repo.ordersThisMonth = 4
	uc, _, _ := newAssistant(repo)

	got, err := uc.FullReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 94, got.HealthScore)
}

func TestFullReportPDF(t *testing.T) {
	repo := busyCompany()
	pdf := &fakePDF{}
	settings := &fakeSettings{cur: &entity.CompanySettings{CompanyName: "Gráfica Modelo"}}
	uc := analytics.NewAssistantUseCase(repo, settings, pdf, nil, logger.Nop())

	doc, err := uc.FullReportPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "%PDF-1.4", string(doc))
	assert.Equal(t, "Gráfica Modelo", pdf.company)
	require.NotNil(t, pdf.report)
	assert.Equal(t, 10, pdf.report.Summary.TotalCustomers)
}

func TestFullReportPDF_DefaultCompanyName(t *testing.T) {
	uc, pdf, _ := newAssistant(busyCompany())

	_, err := uc.FullReportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCompanySettings().CompanyName, pdf.company)
}

func TestAsk(t *testing.T) {
	cases := []struct {
		question string
		want     string
	}{
		{"Qual o FATURAMENTO?", "O faturamento deste mês é de R$ 1234.50."},
		{"quanto de receita entrou", "O faturamento deste mês é de R$ 1234.50."},
		{"Quantos clientes?", "Você tem 10 clientes cadastrados, sendo 4 ativos."},
		{"e os pedidos", "Existem 10 pedidos no total, com 4 em andamento."},
		{"tem ATRASO?", "Há 2 pedidos atrasados no momento."},
		{"bom dia", insights.FallbackAnswer},
		{"", insights.FallbackAnswer},
	}
	for _, tc := range cases {
		t.Run(tc.question, func(t *testing.T) {
			uc, _, _ := newAssistant(busyCompany())

			got, err := uc.Ask(context.Background(), tc.question)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Answer)
		})
	}
}

func TestAsk_QueriesOnlyTopicData(t *testing.T) {
	repo := busyCompany()
	uc, _, _ := newAssistant(repo)

	_, err := uc.Ask(context.Background(), "pedidos atrasados")
	require.NoError(t, err)

	assert.Equal(t, 2, repo.called("CountOrders"))
	assert.Zero(t, repo.called("CountOverdueOrders"))
	assert.Zero(t, repo.called("CountCustomers"))
}

func TestAsk_DataFailure(t *testing.T) {
	repo := busyCompany()
	repo.fail = map[string]error{"CountOverdueOrders": errors.New("boom")}
	uc, _, _ := newAssistant(repo)

	_, err := uc.Ask(context.Background(), "atraso")
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)

	got, err := uc.Ask(context.Background(), "olá")
	require.NoError(t, err)
	assert.Equal(t, insights.FallbackAnswer, got.Answer)
}
