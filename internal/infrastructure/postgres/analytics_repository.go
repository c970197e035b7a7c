package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/insights"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura (conteos, sumas, series mensuales)
// para el asistente, el dashboard y las estadísticas por entidad.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// Ping verifica que la base responde antes de lanzar las consultas en paralelo.
func (r *AnalyticsRepo) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("analytics.Ping: %w", err)
	}
	return nil
}

// ── Clientes ────────────────────────────────────────────────────────────────

func (r *AnalyticsRepo) CountCustomers(ctx context.Context, status string) (int, error) {
	if status == "" {
		return queryCount(ctx, r.pool, "analytics.CountCustomers", `SELECT COUNT(*) FROM customers`)
	}
	return queryCount(ctx, r.pool, "analytics.CountCustomers",
		`SELECT COUNT(*) FROM customers WHERE status = $1`, status)
}

func (r *AnalyticsRepo) CountCustomersRegisteredBetween(ctx context.Context, from, to time.Time) (int, error) {
	return queryCount(ctx, r.pool, "analytics.CountCustomersRegisteredBetween",
		`SELECT COUNT(*) FROM customers WHERE registered_at >= $1 AND registered_at < $2`, from, to)
}

// CountStaleCustomers clientes sin contacto desde before. Sin fecha de último contacto no cuentan.
func (r *AnalyticsRepo) CountStaleCustomers(ctx context.Context, status string, before time.Time) (int, error) {
	return queryCount(ctx, r.pool, "analytics.CountStaleCustomers",
		`SELECT COUNT(*) FROM customers WHERE status = $1 AND last_contact_at < $2`, status, before)
}

func (r *AnalyticsRepo) CountCustomersWithOrders(ctx context.Context, status string, n int) (int, error) {
	const query = `
		SELECT COUNT(*) FROM (
			SELECT c.id
			FROM customers c
			JOIN orders o ON o.customer_id = c.id
			WHERE c.status = $1
			GROUP BY c.id
			HAVING COUNT(o.id) = $2
		) t`
	return queryCount(ctx, r.pool, "analytics.CountCustomersWithOrders", query, status, n)
}

// TopCustomers clientes con mayor valor total de pedidos.
func (r *AnalyticsRepo) TopCustomers(ctx context.Context, limit int) ([]repository.CustomerRanking, error) {
	const query = `
		SELECT c.id, c.name, COALESCE(SUM(o.value), 0) AS total_value, COUNT(o.id) AS order_count
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.name
		ORDER BY total_value DESC, c.name
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopCustomers: %w", err)
	}
	defer rows.Close()

	out := make([]repository.CustomerRanking, 0, limit)
	for rows.Next() {
		var c repository.CustomerRanking
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.TotalValue, &c.OrderCount); err != nil {
			return nil, fmt.Errorf("analytics.TopCustomers: scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ── Pedidos ─────────────────────────────────────────────────────────────────

func (r *AnalyticsRepo) CountOrders(ctx context.Context, statuses ...string) (int, error) {
	if len(statuses) == 0 {
		return queryCount(ctx, r.pool, "analytics.CountOrders", `SELECT COUNT(*) FROM orders`)
	}
	return queryCount(ctx, r.pool, "analytics.CountOrders",
		`SELECT COUNT(*) FROM orders WHERE status = ANY($1)`, statuses)
}

func (r *AnalyticsRepo) CountOrdersPlacedBetween(ctx context.Context, from, to time.Time) (int, error) {
	return queryCount(ctx, r.pool, "analytics.CountOrdersPlacedBetween",
		`SELECT COUNT(*) FROM orders WHERE placed_at >= $1 AND placed_at < $2`, from, to)
}

// CountOverdueOrders pedidos con entrega vencida que no están concluidos.
func (r *AnalyticsRepo) CountOverdueOrders(ctx context.Context, now time.Time) (int, error) {
	return queryCount(ctx, r.pool, "analytics.CountOverdueOrders",
		`SELECT COUNT(*) FROM orders WHERE delivery_at < $1 AND status <> $2`, now, entity.OrderStatusCompleted)
}

func (r *AnalyticsRepo) OrdersByStatus(ctx context.Context) ([]repository.GroupCount, error) {
	return queryGroupCounts(ctx, r.pool, "analytics.OrdersByStatus",
		`SELECT status, COUNT(*) FROM orders GROUP BY status ORDER BY COUNT(*) DESC, status`)
}

func (r *AnalyticsRepo) SumCompletedOrderValue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var v decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(value), 0) FROM orders
		WHERE status = $1 AND placed_at >= $2 AND placed_at < $3`,
		entity.OrderStatusCompleted, from, to,
	).Scan(&v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumCompletedOrderValue: %w", err)
	}
	return v, nil
}

// CompletedOrderAmounts valor y costo de todos los pedidos concluidos.
func (r *AnalyticsRepo) CompletedOrderAmounts(ctx context.Context) ([]insights.OrderAmount, error) {
	rows, err := r.pool.Query(ctx, `SELECT value, cost FROM orders WHERE status = $1`, entity.OrderStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("analytics.CompletedOrderAmounts: %w", err)
	}
	defer rows.Close()

	out := make([]insights.OrderAmount, 0)
	for rows.Next() {
		var a insights.OrderAmount
		if err := rows.Scan(&a.Value, &a.Cost); err != nil {
			return nil, fmt.Errorf("analytics.CompletedOrderAmounts: scan: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) MonthlyCompletedRevenue(ctx context.Context, months []insights.Window) ([]decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(o.value), 0)
		FROM unnest($1::timestamptz[], $2::timestamptz[]) WITH ORDINALITY AS m(start_at, end_at, idx)
		LEFT JOIN orders o
			ON o.status = $3 AND o.placed_at >= m.start_at AND o.placed_at < m.end_at
		GROUP BY m.idx
		ORDER BY m.idx`
	starts, ends := windowBounds(months)
	return r.monthlySeries(ctx, "analytics.MonthlyCompletedRevenue", query, len(months),
		starts, ends, entity.OrderStatusCompleted)
}

// ── Financeiro ──────────────────────────────────────────────────────────────

func (r *AnalyticsRepo) SumTransactions(ctx context.Context, txType string, from, to time.Time) (decimal.Decimal, error) {
	var v decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM financial_transactions
		WHERE type = $1 AND date >= $2 AND date < $3`,
		txType, from, to,
	).Scan(&v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumTransactions: %w", err)
	}
	return v, nil
}

func (r *AnalyticsRepo) MonthlyTransactions(ctx context.Context, txType string, months []insights.Window) ([]decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM unnest($1::timestamptz[], $2::timestamptz[]) WITH ORDINALITY AS m(start_at, end_at, idx)
		LEFT JOIN financial_transactions t
			ON t.type = $3 AND t.date >= m.start_at AND t.date < m.end_at
		GROUP BY m.idx
		ORDER BY m.idx`
	starts, ends := windowBounds(months)
	return r.monthlySeries(ctx, "analytics.MonthlyTransactions", query, len(months), starts, ends, txType)
}

// ── Demandas ────────────────────────────────────────────────────────────────

func (r *AnalyticsRepo) CountDemands(ctx context.Context, status, priority string) (int, error) {
	var w whereBuilder
	w.addIf("status = ?", status)
	w.addIf("priority = ?", priority)
	return queryCount(ctx, r.pool, "analytics.CountDemands", `SELECT COUNT(*) FROM social_demands`+w.sql(), w.args...)
}

func (r *AnalyticsRepo) monthlySeries(ctx context.Context, op, query string, n int, args ...any) ([]decimal.Decimal, error) {
	if n == 0 {
		return []decimal.Decimal{}, nil
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]decimal.Decimal, 0, n)
	for rows.Next() {
		var v decimal.Decimal
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func windowBounds(ws []insights.Window) (starts, ends []time.Time) {
	starts = make([]time.Time, len(ws))
	ends = make([]time.Time, len(ws))
	for i, w := range ws {
		starts[i] = w.Start
		ends[i] = w.End
	}
	return starts, ends
}
