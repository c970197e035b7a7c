package insights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestao-api/internal/domain/insights"
)

func TestClassifyQuestion(t *testing.T) {
	cases := []struct {
		q    string
		want insights.Topic
	}{
		{"Qual o FATURAMENTO?", insights.TopicRevenue},
		{"qual a receita do mês", insights.TopicRevenue},
		{"Quantos CLIENTES eu tenho?", insights.TopicCustomers},
		{"pedidos em aberto", insights.TopicOrders},
		{"tem algum ATRASO?", insights.TopicOverdue},
		{"faturamento por cliente", insights.TopicRevenue},
		{"pedidos com atraso", insights.TopicOrders},
		{"como está o tempo hoje?", insights.TopicUnknown},
		{"", insights.TopicUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.q, func(t *testing.T) {
			assert.Equal(t, tc.want, insights.ClassifyQuestion(tc.q))
		})
	}
}

func TestAnswers(t *testing.T) {
	assert.Equal(t, "O faturamento deste mês é de R$ 1234.50.", insights.RevenueAnswer(dec("1234.5")))
	assert.Equal(t, "Você tem 10 clientes cadastrados, sendo 6 ativos.", insights.CustomersAnswer(10, 6))
	assert.Equal(t, "Existem 8 pedidos no total, com 3 em andamento.", insights.OrdersAnswer(8, 3))
	assert.Equal(t, "Há 2 pedidos atrasados no momento.", insights.OverdueAnswer(2))
	assert.Contains(t, insights.FallbackAnswer, "faturamento, clientes, pedidos ou atrasos")
}
