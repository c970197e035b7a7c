package insights

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TrendMonths meses de historia que alimentan la regla de tendencia.
const TrendMonths = 6

// trendMinMonths cantidad de meses usados en cada extremo de la serie.
const trendMinMonths = 3

// Factores de crecimiento y caída respecto a la media inicial.
var (
	TrendGrowthFactor  = decimal.RequireFromString("1.10")
	TrendDeclineFactor = decimal.RequireFromString("0.90")
)

// TrendRules regla de tendencia de facturación.
func TrendRules() []Rule {
	return []Rule{
		{Name: "faturamento", Requires: []Metric{MetricMonthlyRevenue}, Eval: revenueTrendRule},
	}
}

func revenueTrendRule(s Snapshot) []Finding {
	f, ok := RevenueTrend(s.MonthlyRevenue)
	if !ok {
		return nil
	}
	return []Finding{f}
}

// RevenueTrend compara la media de los primeros tres meses con la de los últimos
// tres. Sin al menos tres meses, o con media inicial cero, no hay tendencia.
func RevenueTrend(monthly []decimal.Decimal) (Finding, bool) {
	if len(monthly) < trendMinMonths {
		return Finding{}, false
	}
	early := mean(monthly[:trendMinMonths])
	recent := mean(monthly[len(monthly)-trendMinMonths:])
	if !early.IsPositive() {
		return Finding{}, false
	}

	change := recent.Div(early).Sub(decimal.NewFromInt(1)).Mul(hundred).Round(1)

	switch {
	case recent.GreaterThan(early.Mul(TrendGrowthFactor)):
		return Finding{
			Kind:        KindTrend,
			Tone:        ToneGrowth,
			Title:       "Faturamento em Crescimento",
			Description: fmt.Sprintf("Faturamento cresceu %s%% nos últimos meses.", change.StringFixed(1)),
			Category:    CategoryFinance,
			ChangePct:   &change,
		}, true
	case recent.LessThan(early.Mul(TrendDeclineFactor)):
		return Finding{
			Kind:        KindTrend,
			Tone:        ToneDecline,
			Title:       "Faturamento em Declínio",
			Description: fmt.Sprintf("Faturamento caiu %s%% nos últimos meses.", change.Abs().StringFixed(1)),
			Category:    CategoryFinance,
			ChangePct:   &change,
		}, true
	}
	return Finding{}, false
}

func mean(xs []decimal.Decimal) decimal.Decimal {
	if len(xs) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(decimal.Zero, xs...).Div(decimal.NewFromInt(int64(len(xs))))
}
