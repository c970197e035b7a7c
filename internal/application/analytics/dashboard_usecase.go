// Package analytics contiene los casos de uso de lectura agregada: el asistente
// de análisis y el dashboard principal.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/insights"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

const (
	dashboardTopCustomers  = 5 // clientes en el ranking del dashboard
	dashboardHistoryMonths = 6
)

// DashboardUseCase genera los KPIs del mes en curso y las series de los gráficos.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Cualquier consulta
// que falle hace fallar el dashboard completo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetSummary construye el DashboardResponse lanzando todas las consultas en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	now := uc.now()
	month := insights.MonthWindow(now)
	history := insights.TrailingMonths(now, dashboardHistoryMonths)
	r := uc.analyticsRepo

	var (
		k        dto.DashboardKPIs
		byStatus []repository.GroupCount
		revenue  []decimal.Decimal
		top      []repository.CustomerRanking
	)

	g, gctx := errgroup.WithContext(ctx)
	count := func(what string, dst *int, q func(ctx context.Context) (int, error)) {
		g.Go(func() error {
			n, err := q(gctx)
			if err != nil {
				return fmt.Errorf("dashboard: %s: %w", what, err)
			}
			*dst = n
			return nil
		})
	}
	sum := func(what string, dst *decimal.Decimal, q func(ctx context.Context) (decimal.Decimal, error)) {
		g.Go(func() error {
			v, err := q(gctx)
			if err != nil {
				return fmt.Errorf("dashboard: %s: %w", what, err)
			}
			*dst = v.Round(2)
			return nil
		})
	}

	// ── KPIs ──────────────────────────────────────────────────────────────────
	count("clientes", &k.TotalCustomers, func(ctx context.Context) (int, error) { return r.CountCustomers(ctx, "") })
	count("clientes ativos", &k.ActiveCustomers, func(ctx context.Context) (int, error) {
		return r.CountCustomers(ctx, entity.CustomerStatusActive)
	})
	count("clientes novos", &k.NewCustomers, func(ctx context.Context) (int, error) {
		return r.CountCustomersRegisteredBetween(ctx, month.Start, month.End)
	})
	count("pedidos", &k.TotalOrders, func(ctx context.Context) (int, error) { return r.CountOrders(ctx) })
	count("pedidos em andamento", &k.InProgressOrders, func(ctx context.Context) (int, error) {
		return r.CountOrders(ctx, entity.InProgressOrderStatuses()...)
	})
	count("pedidos atrasados", &k.OverdueOrders, func(ctx context.Context) (int, error) {
		return r.CountOverdueOrders(ctx, now)
	})
	count("demandas em criação", &k.DemandsInCreation, func(ctx context.Context) (int, error) {
		return r.CountDemands(ctx, entity.DemandStatusCreation, "")
	})
	count("demandas aguardando", &k.DemandsAwaiting, func(ctx context.Context) (int, error) {
		return r.CountDemands(ctx, entity.DemandStatusAwaitingApproval, "")
	})
	count("demandas urgentes", &k.UrgentDemands, func(ctx context.Context) (int, error) {
		return r.CountDemands(ctx, "", entity.PriorityUrgent)
	})
	sum("faturamento", &k.MonthRevenue, func(ctx context.Context) (decimal.Decimal, error) {
		return r.SumCompletedOrderValue(ctx, month.Start, month.End)
	})
	sum("receitas", &k.MonthIncome, func(ctx context.Context) (decimal.Decimal, error) {
		return r.SumTransactions(ctx, entity.TransactionRevenue, month.Start, month.End)
	})
	sum("despesas", &k.MonthExpenses, func(ctx context.Context) (decimal.Decimal, error) {
		return r.SumTransactions(ctx, entity.TransactionExpense, month.Start, month.End)
	})
	sum("margem", &k.AvgMargin, func(ctx context.Context) (decimal.Decimal, error) {
		amounts, err := r.CompletedOrderAmounts(ctx)
		if err != nil {
			return decimal.Zero, err
		}
		avg, _ := insights.AverageMargin(amounts)
		return avg, nil
	})

	// ── Gráficos ──────────────────────────────────────────────────────────────
	g.Go(func() error {
		var err error
		if byStatus, err = r.OrdersByStatus(gctx); err != nil {
			return fmt.Errorf("dashboard: pedidos por status: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if revenue, err = r.MonthlyCompletedRevenue(gctx, history); err != nil {
			return fmt.Errorf("dashboard: histórico de faturamento: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if top, err = r.TopCustomers(gctx, dashboardTopCustomers); err != nil {
			return fmt.Errorf("dashboard: top clientes: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	k.MonthBalance = k.MonthIncome.Sub(k.MonthExpenses)

	charts := dto.DashboardCharts{
		OrdersByStatus: make([]dto.LabelCount, 0, len(byStatus)),
		RevenueHistory: make([]dto.LabelAmount, 0, len(history)),
		TopCustomers:   make([]dto.TopCustomerDTO, 0, len(top)),
	}
	for _, s := range byStatus {
		charts.OrdersByStatus = append(charts.OrdersByStatus, dto.LabelCount{Label: s.Label, Count: s.Count})
	}
	for i, w := range history {
		v := decimal.Zero
		if i < len(revenue) {
			v = revenue[i].Round(2)
		}
		charts.RevenueHistory = append(charts.RevenueHistory, dto.LabelAmount{Label: w.Label(), Amount: v})
	}
	for _, c := range top {
		charts.TopCustomers = append(charts.TopCustomers, dto.TopCustomerDTO{
			ID:         c.CustomerID,
			Name:       c.Name,
			TotalValue: c.TotalValue.Round(2),
			OrderCount: c.OrderCount,
		})
	}

	return &dto.DashboardResponse{KPIs: k, Charts: charts}, nil
}
