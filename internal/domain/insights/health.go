package insights

import "github.com/shopspring/decimal"

// Pesos del score de salud.
var (
	healthOverduePenalty = decimal.NewFromInt(30)
	healthMarginWeight   = decimal.NewFromInt(2)
	healthGrowthBonus    = decimal.NewFromInt(10)
)

// HealthScore puntaje 0..100 del negocio.
//
// Parte de 100, descuenta la proporción de pedidos atrasados (hasta 30 puntos)
// y 2 puntos por cada punto de margen medio por debajo de 20%, y suma 10 si el
// mes actual tuvo más pedidos que el anterior. Los pasos cuyas métricas faltan
// se omiten.
//
// Sin pedidos concluidos con valor el margen medio cuenta como 0, así que una
// base vacía puntúa 60. El redondeo final es al par más cercano (92.5 -> 92).
func HealthScore(s Snapshot) int {
	score := hundred

	if s.Has(MetricTotalOrders, MetricOverdueOrders) && s.TotalOrders > 0 {
		ratio := decimal.NewFromInt(int64(s.OverdueOrders)).Div(decimal.NewFromInt(int64(s.TotalOrders)))
		score = score.Sub(ratio.Mul(healthOverduePenalty))
	}

	if s.Has(MetricMarginAverage) {
		avg := s.MarginAverage
		if s.MarginSamples == 0 {
			avg = decimal.Zero
		}
		if avg.LessThan(LowMarginPct) {
			score = score.Sub(LowMarginPct.Sub(avg).Mul(healthMarginWeight))
		}
	}

	if s.Has(MetricOrdersInWindow, MetricOrdersPrevWindow) &&
		s.OrdersPrevWindow > 0 && s.OrdersInWindow > s.OrdersPrevWindow {
		score = score.Add(healthGrowthBonus)
	}

	n := int(score.RoundBank(0).IntPart())
	switch {
	case n < 0:
		return 0
	case n > 100:
		return 100
	}
	return n
}
