package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-api/internal/domain/insights"
)

// GroupCount conteo por etiqueta (group by).
type GroupCount struct {
	Label string
	Count int
}

// GroupAmount monto por etiqueta (group by).
type GroupAmount struct {
	Label  string
	Amount decimal.Decimal
}

// CustomerRanking cliente con el total de sus pedidos.
type CustomerRanking struct {
	CustomerID string
	Name       string
	TotalValue decimal.Decimal
	OrderCount int
}

// AnalyticsRepository consultas agregadas de lectura (conteos, sumas, group by)
// usadas por el asistente, el dashboard y los endpoints de estadísticas.
// Las sumas sobre cero filas devuelven cero, nunca error.
type AnalyticsRepository interface {
	Ping(ctx context.Context) error

	// CountCustomers cuenta clientes; status vacío cuenta todos.
	CountCustomers(ctx context.Context, status string) (int, error)
	CountCustomersRegisteredBetween(ctx context.Context, from, to time.Time) (int, error)
	// CountStaleCustomers clientes con el status dado cuyo último contacto es anterior a before.
	CountStaleCustomers(ctx context.Context, status string, before time.Time) (int, error)
	// CountCustomersWithOrders clientes con el status dado y exactamente n pedidos.
	CountCustomersWithOrders(ctx context.Context, status string, n int) (int, error)
	TopCustomers(ctx context.Context, limit int) ([]CustomerRanking, error)

	// CountOrders cuenta pedidos con alguno de los estados; sin estados cuenta todos.
	CountOrders(ctx context.Context, statuses ...string) (int, error)
	CountOrdersPlacedBetween(ctx context.Context, from, to time.Time) (int, error)
	// CountOverdueOrders pedidos con entrega anterior a now y no concluidos.
	CountOverdueOrders(ctx context.Context, now time.Time) (int, error)
	OrdersByStatus(ctx context.Context) ([]GroupCount, error)
	SumCompletedOrderValue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	CompletedOrderAmounts(ctx context.Context) ([]insights.OrderAmount, error)
	// MonthlyCompletedRevenue facturación concluida por cada ventana, en el mismo orden.
	MonthlyCompletedRevenue(ctx context.Context, months []insights.Window) ([]decimal.Decimal, error)

	SumTransactions(ctx context.Context, txType string, from, to time.Time) (decimal.Decimal, error)
	MonthlyTransactions(ctx context.Context, txType string, months []insights.Window) ([]decimal.Decimal, error)

	// CountDemands filtra por status y prioridad; vacío no filtra.
	CountDemands(ctx context.Context, status, priority string) (int, error)
}
