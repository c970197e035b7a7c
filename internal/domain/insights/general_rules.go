package insights

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

// Umbrales de las reglas generales.
var (
	LowConversionPct = decimal.NewFromInt(50)
	LowMarginPct     = decimal.NewFromInt(20)
)

var hundred = decimal.NewFromInt(100)

// GeneralRules reglas del análisis general en su orden de evaluación.
func GeneralRules() []Rule {
	return []Rule{
		{Name: "conversao", Requires: []Metric{MetricTotalCustomers, MetricActiveCustomers}, Eval: conversionRule},
		{Name: "prospects", Requires: []Metric{MetricProspectCustomers, MetricActiveCustomers}, Eval: prospectSurplusRule},
		{Name: "atrasos", Requires: []Metric{MetricOverdueOrders}, Eval: overdueOrdersRule},
		{Name: "fluxo_caixa", Requires: []Metric{MetricIncome, MetricExpenses}, Eval: cashFlowRule},
		{Name: "margem", Requires: []Metric{MetricMarginAverage}, Eval: marginRule},
	}
}

// ConversionRate porcentaje de clientes activos sobre el total; false si no hay clientes.
func ConversionRate(active, total int) (decimal.Decimal, bool) {
	if total <= 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(int64(active)).Div(decimal.NewFromInt(int64(total))).Mul(hundred), true
}

func conversionRule(s Snapshot) []Finding {
	rate, ok := ConversionRate(s.ActiveCustomers, s.TotalCustomers)
	if !ok {
		return nil
	}
	if rate.LessThan(LowConversionPct) {
		return []Finding{{
			Kind:        KindAlert,
			Tone:        ToneWarning,
			Title:       "Taxa de Conversão Baixa",
			Description: fmt.Sprintf("Apenas %s%% dos clientes estão ativos. Considere estratégias de reativação.", rate.StringFixed(1)),
			Category:    CategoryCustomers,
		}}
	}
	return []Finding{{
		Kind:        KindInsight,
		Tone:        ToneSuccess,
		Title:       "Boa Taxa de Conversão",
		Description: fmt.Sprintf("Taxa de conversão de %s%% está acima da média.", rate.StringFixed(1)),
		Category:    CategoryCustomers,
	}}
}

func prospectSurplusRule(s Snapshot) []Finding {
	if s.ProspectCustomers <= s.ActiveCustomers {
		return nil
	}
	return []Finding{{
		Kind:        KindRecommendation,
		Title:       "Foque na Conversão de Prospects",
		Description: fmt.Sprintf("Você tem %d prospects vs %d clientes ativos. Intensifique o follow-up.", s.ProspectCustomers, s.ActiveCustomers),
		Priority:    PriorityHigh,
		Category:    CategorySales,
	}}
}

func overdueOrdersRule(s Snapshot) []Finding {
	if s.OverdueOrders <= 0 {
		return nil
	}
	return []Finding{{
		Kind:        KindAlert,
		Tone:        ToneDanger,
		Title:       "Pedidos Atrasados",
		Description: fmt.Sprintf("%d pedidos estão atrasados. Revise os prazos e capacidade da equipe.", s.OverdueOrders),
		Category:    CategoryOperations,
	}}
}

func cashFlowRule(s Snapshot) []Finding {
	if !s.Expenses.GreaterThan(s.Income) {
		return nil
	}
	return []Finding{{
		Kind:     KindAlert,
		Tone:     ToneDanger,
		Title:    "Despesas Superiores às Receitas",
		Category: CategoryFinance,
		Description: fmt.Sprintf("Este mês as despesas (R$ %s) superam as receitas (R$ %s).",
			s.Expenses.StringFixed(2), s.Income.StringFixed(2)),
	}}
}

func marginRule(s Snapshot) []Finding {
	if s.MarginSamples == 0 || !s.MarginAverage.LessThan(LowMarginPct) {
		return nil
	}
	return []Finding{
		{
			Kind:        KindAlert,
			Tone:        ToneWarning,
			Title:       "Margem Baixa",
			Description: fmt.Sprintf("Margem média de %s%% está abaixo do recomendado (20%%+).", s.MarginAverage.StringFixed(1)),
			Category:    CategoryFinance,
		},
		{
			Kind:        KindRecommendation,
			Title:       "Otimize a Margem de Lucro",
			Description: "Revise a tabela de preços e negocie melhores condições com fornecedores.",
			Priority:    PriorityHigh,
			Category:    CategoryFinance,
		},
	}
}

// OrderAmount valor y costo de un pedido concluido.
type OrderAmount struct {
	Value decimal.Decimal
	Cost  decimal.Decimal
}

// AverageMargin media aritmética de los márgenes por pedido, ignorando pedidos
// con valor no positivo. Devuelve también la cantidad de pedidos considerados.
func AverageMargin(orders []OrderAmount) (decimal.Decimal, int) {
	sum := decimal.Zero
	n := 0
	for _, o := range orders {
		if !o.Value.IsPositive() {
			continue
		}
		sum = sum.Add(entity.MarginPercent(o.Value, o.Cost))
		n++
	}
	if n == 0 {
		return decimal.Zero, 0
	}
	return sum.Div(decimal.NewFromInt(int64(n))), n
}
