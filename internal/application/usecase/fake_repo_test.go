package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-api/internal/domain"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/insights"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

// ── Clientes ────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	items  map[string]*entity.Customer
	totals map[string]entity.CustomerTotals
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func newFakeCustomers(cs ...*entity.Customer) *fakeCustomerRepo {
	f := &fakeCustomerRepo{items: map[string]*entity.Customer{}, totals: map[string]entity.CustomerTotals{}}
	for _, c := range cs {
		f.items[c.ID] = c
	}
	return f
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) List(context.Context, repository.CustomerFilter) ([]repository.CustomerSummary, error) {
	out := make([]repository.CustomerSummary, 0, len(f.items))
	for id, c := range f.items {
		out = append(out, repository.CustomerSummary{Customer: c, Totals: f.totals[id]})
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	if _, ok := f.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCustomerRepo) Totals(_ context.Context, id string) (entity.CustomerTotals, error) {
	return f.totals[id], nil
}

// ── Pedidos ─────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	items   map[string]*entity.Order
	created *entity.Order
	updated *entity.Order
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func newFakeOrders(os ...*entity.Order) *fakeOrderRepo {
	f := &fakeOrderRepo{items: map[string]*entity.Order{}}
	for _, o := range os {
		f.items[o.ID] = o
	}
	return f
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	f.created = o
	f.items[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) List(context.Context, repository.OrderFilter) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(f.items))
	for _, o := range f.items {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	f.updated = o
	f.items[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

// ── Financeiro ──────────────────────────────────────────────────────────────

type fakeFinanceRepo struct {
	items   map[string]*entity.FinancialTransaction
	created *entity.FinancialTransaction
}

var _ repository.FinancialRepository = (*fakeFinanceRepo)(nil)

func newFakeFinance() *fakeFinanceRepo {
	return &fakeFinanceRepo{items: map[string]*entity.FinancialTransaction{}}
}

func (f *fakeFinanceRepo) Create(_ context.Context, tx *entity.FinancialTransaction) error {
	f.created = tx
	f.items[tx.ID] = tx
	return nil
}

func (f *fakeFinanceRepo) GetByID(_ context.Context, id string) (*entity.FinancialTransaction, error) {
	tx, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (f *fakeFinanceRepo) List(context.Context, repository.TransactionFilter) ([]*entity.FinancialTransaction, error) {
	return nil, nil
}

func (f *fakeFinanceRepo) Update(_ context.Context, tx *entity.FinancialTransaction) error {
	f.items[tx.ID] = tx
	return nil
}

func (f *fakeFinanceRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeFinanceRepo) CountByStatus(context.Context, string) (int, error) { return 0, nil }

func (f *fakeFinanceRepo) SumByCategory(context.Context, string, time.Time, time.Time) ([]repository.GroupAmount, error) {
	return nil, nil
}

// ── Agregados ───────────────────────────────────────────────────────────────

// fakeAnalytics solo responde lo que usan los casos de uso de entidades.
type fakeAnalytics struct {
	customersByStatus map[string]int // "" = total
	top               []repository.CustomerRanking

	// montos mensuales por tipo; se recortan/rellenan al largo pedido
	monthly     map[string][]decimal.Decimal
	monthsAsked [][]insights.Window
	failMonthly error
}

var _ repository.AnalyticsRepository = (*fakeAnalytics)(nil)

func (f *fakeAnalytics) Ping(context.Context) error { return nil }

func (f *fakeAnalytics) CountCustomers(_ context.Context, status string) (int, error) {
	return f.customersByStatus[status], nil
}

func (f *fakeAnalytics) CountCustomersRegisteredBetween(context.Context, time.Time, time.Time) (int, error) {
	return 0, nil
}

func (f *fakeAnalytics) CountStaleCustomers(context.Context, string, time.Time) (int, error) {
	return 0, nil
}

func (f *fakeAnalytics) CountCustomersWithOrders(context.Context, string, int) (int, error) {
	return 0, nil
}

func (f *fakeAnalytics) TopCustomers(_ context.Context, limit int) ([]repository.CustomerRanking, error) {
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func (f *fakeAnalytics) CountOrders(context.Context, ...string) (int, error) { return 0, nil }

func (f *fakeAnalytics) CountOrdersPlacedBetween(context.Context, time.Time, time.Time) (int, error) {
	return 0, nil
}

func (f *fakeAnalytics) CountOverdueOrders(context.Context, time.Time) (int, error) { return 0, nil }

func (f *fakeAnalytics) OrdersByStatus(context.Context) ([]repository.GroupCount, error) {
	return nil, nil
}

func (f *fakeAnalytics) SumCompletedOrderValue(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeAnalytics) CompletedOrderAmounts(context.Context) ([]insights.OrderAmount, error) {
	return nil, nil
}

func (f *fakeAnalytics) MonthlyCompletedRevenue(_ context.Context, months []insights.Window) ([]decimal.Decimal, error) {
	return make([]decimal.Decimal, len(months)), nil
}

func (f *fakeAnalytics) SumTransactions(context.Context, string, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeAnalytics) MonthlyTransactions(_ context.Context, txType string, months []insights.Window) ([]decimal.Decimal, error) {
	if f.failMonthly != nil {
		return nil, f.failMonthly
	}
	f.monthsAsked = append(f.monthsAsked, months)
	out := make([]decimal.Decimal, len(months))
	src := f.monthly[txType]
	for i := range out {
		if i < len(src) {
			out[i] = src[i]
		}
	}
	return out, nil
}

func (f *fakeAnalytics) CountDemands(context.Context, string, string) (int, error) { return 0, nil }

// ── Helpers ─────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }
