package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/gestao-api/internal/domain"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/insights"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
	"github.com/jhoicas/gestao-api/pkg/logger"
)

// errNotCollected marca las métricas que no se pidieron en una recolección parcial.
var errNotCollected = errors.New("métrica não solicitada")

// MetricAggregator arma el Snapshot consultando cada métrica por separado.
type MetricAggregator struct {
	repo repository.AnalyticsRepository
	log  *logger.Logger
}

// NewMetricAggregator construye el agregador.
func NewMetricAggregator(repo repository.AnalyticsRepository, log *logger.Logger) *MetricAggregator {
	return &MetricAggregator{repo: repo, log: log}
}

// metricFetch consulta una métrica y devuelve la función que la aplica al snapshot.
// Aplicar ocurre en la goroutine que recoge los resultados.
type metricFetch func(ctx context.Context) (func(*insights.Snapshot), error)

type metricResult struct {
	metric insights.Metric
	apply  func(*insights.Snapshot)
	err    error
}

// Collect calcula las métricas del mes de now (y del mes anterior) en paralelo.
// Con only vacío se calculan todas; si no, solo las indicadas y el resto queda
// como faltante.
//
// Una métrica que falla queda marcada como faltante en el Snapshot; si la base
// no responde al ping o fallan todas, devuelve ErrDataUnavailable.
func (a *MetricAggregator) Collect(ctx context.Context, now time.Time, only ...insights.Metric) (insights.Snapshot, error) {
	if err := a.repo.Ping(ctx); err != nil {
		return insights.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}

	w := insights.MonthWindow(now)
	s := insights.Snapshot{Window: w}
	all := a.fetches(now, w)

	selected := all
	if len(only) > 0 {
		selected = make(map[insights.Metric]metricFetch, len(only))
		for _, m := range only {
			if f, ok := all[m]; ok {
				selected[m] = f
			}
		}
		for m := range all {
			if _, ok := selected[m]; !ok {
				s.MarkMissing(m, errNotCollected)
			}
		}
	}

	resCh := make(chan metricResult, len(selected))
	for m, f := range selected {
		go func(m insights.Metric, f metricFetch) {
			apply, err := f(ctx)
			resCh <- metricResult{metric: m, apply: apply, err: err}
		}(m, f)
	}

	var lastErr error
	failed := 0
	for range selected {
		r := <-resCh
		if r.err != nil {
			failed++
			lastErr = r.err
			s.MarkMissing(r.metric, r.err)
			a.log.Debug().Err(r.err).Str("metric", string(r.metric)).Msg("métrica indisponível")
			continue
		}
		r.apply(&s)
	}

	if failed > 0 && failed == len(selected) {
		return insights.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, lastErr)
	}
	if failed > 0 {
		a.log.Warn().Int("missing", failed).Int("total", len(selected)).Msg("análise com métricas faltantes")
	}
	return s, nil
}

func countInto(q func(ctx context.Context) (int, error), set func(*insights.Snapshot, int)) metricFetch {
	return func(ctx context.Context) (func(*insights.Snapshot), error) {
		n, err := q(ctx)
		if err != nil {
			return nil, err
		}
		return func(s *insights.Snapshot) { set(s, n) }, nil
	}
}

func (a *MetricAggregator) fetches(now time.Time, w insights.Window) map[insights.Metric]metricFetch {
	r := a.repo
	prev := w.Previous()
	staleBefore := now.AddDate(0, 0, -insights.StaleContactDays)
	months := insights.TrailingMonths(now, insights.TrendMonths)

	return map[insights.Metric]metricFetch{
		// ── Clientes ─────────────────────────────────────────────────────────
		insights.MetricTotalCustomers: countInto(
			func(ctx context.Context) (int, error) { return r.CountCustomers(ctx, "") },
			func(s *insights.Snapshot, n int) { s.TotalCustomers = n }),
		insights.MetricActiveCustomers: countInto(
			func(ctx context.Context) (int, error) { return r.CountCustomers(ctx, entity.CustomerStatusActive) },
			func(s *insights.Snapshot, n int) { s.ActiveCustomers = n }),
		insights.MetricProspectCustomers: countInto(
			func(ctx context.Context) (int, error) { return r.CountCustomers(ctx, entity.CustomerStatusProspect) },
			func(s *insights.Snapshot, n int) { s.ProspectCustomers = n }),
		insights.MetricNewCustomers: countInto(
			func(ctx context.Context) (int, error) { return r.CountCustomersRegisteredBetween(ctx, w.Start, w.End) },
			func(s *insights.Snapshot, n int) { s.NewCustomers = n }),
		insights.MetricStaleActiveCustomers: countInto(
			func(ctx context.Context) (int, error) {
				return r.CountStaleCustomers(ctx, entity.CustomerStatusActive, staleBefore)
			},
			func(s *insights.Snapshot, n int) { s.StaleActiveCustomers = n }),
		insights.MetricSingleOrderActiveCustomers: countInto(
			func(ctx context.Context) (int, error) {
				return r.CountCustomersWithOrders(ctx, entity.CustomerStatusActive, 1)
			},
			func(s *insights.Snapshot, n int) { s.SingleOrderActiveCustomers = n }),

		// ── Pedidos ──────────────────────────────────────────────────────────
		insights.MetricTotalOrders: countInto(
			func(ctx context.Context) (int, error) { return r.CountOrders(ctx) },
			func(s *insights.Snapshot, n int) { s.TotalOrders = n }),
		insights.MetricInProgressOrders: countInto(
			func(ctx context.Context) (int, error) { return r.CountOrders(ctx, entity.InProgressOrderStatuses()...) },
			func(s *insights.Snapshot, n int) { s.InProgressOrders = n }),
		insights.MetricOverdueOrders: countInto(
			func(ctx context.Context) (int, error) { return r.CountOverdueOrders(ctx, now) },
			func(s *insights.Snapshot, n int) { s.OverdueOrders = n }),
		insights.MetricOrdersInWindow: countInto(
			func(ctx context.Context) (int, error) { return r.CountOrdersPlacedBetween(ctx, w.Start, w.End) },
			func(s *insights.Snapshot, n int) { s.OrdersInWindow = n }),
		insights.MetricOrdersPrevWindow: countInto(
			func(ctx context.Context) (int, error) { return r.CountOrdersPlacedBetween(ctx, prev.Start, prev.End) },
			func(s *insights.Snapshot, n int) { s.OrdersPrevWindow = n }),
		insights.MetricRevenue: func(ctx context.Context) (func(*insights.Snapshot), error) {
			v, err := r.SumCompletedOrderValue(ctx, w.Start, w.End)
			if err != nil {
				return nil, err
			}
			return func(s *insights.Snapshot) { s.Revenue = v }, nil
		},
		insights.MetricMarginAverage: func(ctx context.Context) (func(*insights.Snapshot), error) {
			amounts, err := r.CompletedOrderAmounts(ctx)
			if err != nil {
				return nil, err
			}
			avg, n := insights.AverageMargin(amounts)
			return func(s *insights.Snapshot) {
				s.MarginAverage = avg
				s.MarginSamples = n
			}, nil
		},
		insights.MetricMonthlyRevenue: func(ctx context.Context) (func(*insights.Snapshot), error) {
			vs, err := r.MonthlyCompletedRevenue(ctx, months)
			if err != nil {
				return nil, err
			}
			return func(s *insights.Snapshot) { s.MonthlyRevenue = vs }, nil
		},

		// ── Financeiro ───────────────────────────────────────────────────────
		insights.MetricIncome: func(ctx context.Context) (func(*insights.Snapshot), error) {
			v, err := r.SumTransactions(ctx, entity.TransactionRevenue, w.Start, w.End)
			if err != nil {
				return nil, err
			}
			return func(s *insights.Snapshot) { s.Income = v }, nil
		},
		insights.MetricExpenses: func(ctx context.Context) (func(*insights.Snapshot), error) {
			v, err := r.SumTransactions(ctx, entity.TransactionExpense, w.Start, w.End)
			if err != nil {
				return nil, err
			}
			return func(s *insights.Snapshot) { s.Expenses = v }, nil
		},

		// ── Demandas ─────────────────────────────────────────────────────────
		insights.MetricUrgentDemands: countInto(
			func(ctx context.Context) (int, error) { return r.CountDemands(ctx, "", entity.PriorityUrgent) },
			func(s *insights.Snapshot, n int) { s.UrgentDemands = n }),
		insights.MetricDemandsInCreation: countInto(
			func(ctx context.Context) (int, error) { return r.CountDemands(ctx, entity.DemandStatusCreation, "") },
			func(s *insights.Snapshot, n int) { s.DemandsInCreation = n }),
		insights.MetricDemandsAwaitingApproval: countInto(
			func(ctx context.Context) (int, error) {
				return r.CountDemands(ctx, entity.DemandStatusAwaitingApproval, "")
			},
			func(s *insights.Snapshot, n int) { s.DemandsAwaitingApproval = n }),
	}
}
