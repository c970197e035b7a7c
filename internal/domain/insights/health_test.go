package insights_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestao-api/internal/domain/insights"
)

func TestHealthScore(t *testing.T) {
	cases := []struct {
		name string
		s    insights.Snapshot
		want int
	}{
		{
			name: "saudável sem atrasos",
			s:    insights.Snapshot{TotalOrders: 10, MarginAverage: dec("30"), MarginSamples: 3},
			want: 100,
		},
		{
			name: "metade atrasada",
			s:    insights.Snapshot{TotalOrders: 10, OverdueOrders: 5, MarginAverage: dec("30"), MarginSamples: 3},
			want: 85,
		},
		{
			name: "margem de 15%",
			s:    insights.Snapshot{TotalOrders: 10, MarginAverage: dec("15"), MarginSamples: 2},
			want: 90,
		},
		{
			name: "sem pedidos concluídos conta margem zero",
			s:    insights.Snapshot{},
			want: 60,
		},
		{
			name: "bônus de crescimento limitado a 100",
			s:    insights.Snapshot{TotalOrders: 10, MarginAverage: dec("40"), MarginSamples: 5, OrdersInWindow: 6, OrdersPrevWindow: 4},
			want: 100,
		},
		{
			name: "bônus exige mês anterior com pedidos",
			s:    insights.Snapshot{TotalOrders: 10, MarginAverage: dec("10"), MarginSamples: 5, OrdersInWindow: 6},
			want: 80,
		},
		{
			name: "bônus aplicado",
			s:    insights.Snapshot{TotalOrders: 10, MarginAverage: dec("10"), MarginSamples: 5, OrdersInWindow: 6, OrdersPrevWindow: 2},
			want: 90,
		},
		{
			name: "margem muito negativa é limitada a zero",
			s:    insights.Snapshot{TotalOrders: 4, OverdueOrders: 4, MarginAverage: dec("-300"), MarginSamples: 1},
			want: 0,
		},
		{
			name: "empate arredonda para o par (abaixo)",
			s:    insights.Snapshot{TotalOrders: 4, OverdueOrders: 1, MarginAverage: dec("30"), MarginSamples: 2},
			want: 92,
		},
		{
			name: "empate arredonda para o par (acima)",
			s:    insights.Snapshot{TotalOrders: 4, OverdueOrders: 1, MarginAverage: dec("19.5"), MarginSamples: 2},
			want: 92,
		},
		{
			name: "arredondamento",
			s:    insights.Snapshot{TotalOrders: 3, OverdueOrders: 1, MarginAverage: dec("25"), MarginSamples: 1},
			want: 90,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, insights.HealthScore(tc.s))
		})
	}
}

func TestHealthScore_AlwaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		total := r.Intn(50)
		s := insights.Snapshot{
			TotalOrders:      total,
			OverdueOrders:    r.Intn(total + 1),
			MarginAverage:    decimal.NewFromInt(int64(r.Intn(400) - 200)),
			MarginSamples:    r.Intn(3),
			OrdersInWindow:   r.Intn(20),
			OrdersPrevWindow: r.Intn(20),
		}
		got := insights.HealthScore(s)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestHealthScore_SkipsMissingMetrics(t *testing.T) {
	s := insights.Snapshot{TotalOrders: 10, OverdueOrders: 10}
	s.MarkMissing(insights.MetricMarginAverage, assert.AnError)

	assert.Equal(t, 70, insights.HealthScore(s))
}
