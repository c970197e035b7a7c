package analytics_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/insights"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

// fakeAnalytics repositorio en memoria; fail fuerza errores por método.
type fakeAnalytics struct {
	mu    sync.Mutex
	calls map[string]int

	pingErr error
	fail    map[string]error

	customersByStatus map[string]int // "" = total
	newCustomers      int
	staleCustomers    int
	singleOrder       int
	top               []repository.CustomerRanking

	ordersTotal      int
	ordersInProgress int
	overdue          int
	ordersThisMonth  int
	ordersPrevMonth  int
	byStatus         []repository.GroupCount
	completedRevenue decimal.Decimal
	amounts          []insights.OrderAmount
	monthly          []decimal.Decimal

	income   decimal.Decimal
	expenses decimal.Decimal

	demandsByStatus   map[string]int
	demandsByPriority map[string]int
}

var _ repository.AnalyticsRepository = (*fakeAnalytics)(nil)

func (f *fakeAnalytics) hit(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[method]++
	return f.fail[method]
}

func (f *fakeAnalytics) called(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeAnalytics) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeAnalytics) CountCustomers(ctx context.Context, status string) (int, error) {
	if err := f.hit("CountCustomers"); err != nil {
		return 0, err
	}
	return f.customersByStatus[status], nil
}

func (f *fakeAnalytics) CountCustomersRegisteredBetween(ctx context.Context, from, to time.Time) (int, error) {
	return f.newCustomers, f.hit("CountCustomersRegisteredBetween")
}

func (f *fakeAnalytics) CountStaleCustomers(ctx context.Context, status string, before time.Time) (int, error) {
	return f.staleCustomers, f.hit("CountStaleCustomers")
}

func (f *fakeAnalytics) CountCustomersWithOrders(ctx context.Context, status string, n int) (int, error) {
	return f.singleOrder, f.hit("CountCustomersWithOrders")
}

func (f *fakeAnalytics) TopCustomers(ctx context.Context, limit int) ([]repository.CustomerRanking, error) {
	return f.top, f.hit("TopCustomers")
}

func (f *fakeAnalytics) CountOrders(ctx context.Context, statuses ...string) (int, error) {
	if err := f.hit("CountOrders"); err != nil {
		return 0, err
	}
	if len(statuses) == 0 {
		return f.ordersTotal, nil
	}
	return f.ordersInProgress, nil
}

func (f *fakeAnalytics) CountOrdersPlacedBetween(ctx context.Context, from, to time.Time) (int, error) {
	if err := f.hit("CountOrdersPlacedBetween"); err != nil {
		return 0, err
	}
	if insights.MonthWindow(time.Now()).Contains(from) {
		return f.ordersThisMonth, nil
	}
	return f.ordersPrevMonth, nil
}

func (f *fakeAnalytics) CountOverdueOrders(ctx context.Context, now time.Time) (int, error) {
	return f.overdue, f.hit("CountOverdueOrders")
}

func (f *fakeAnalytics) OrdersByStatus(ctx context.Context) ([]repository.GroupCount, error) {
	return f.byStatus, f.hit("OrdersByStatus")
}

func (f *fakeAnalytics) SumCompletedOrderValue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return f.completedRevenue, f.hit("SumCompletedOrderValue")
}

func (f *fakeAnalytics) CompletedOrderAmounts(ctx context.Context) ([]insights.OrderAmount, error) {
	return f.amounts, f.hit("CompletedOrderAmounts")
}

func (f *fakeAnalytics) MonthlyCompletedRevenue(ctx context.Context, months []insights.Window) ([]decimal.Decimal, error) {
	return f.monthly, f.hit("MonthlyCompletedRevenue")
}

func (f *fakeAnalytics) SumTransactions(ctx context.Context, txType string, from, to time.Time) (decimal.Decimal, error) {
	if err := f.hit("SumTransactions"); err != nil {
		return decimal.Zero, err
	}
	if txType == entity.TransactionRevenue {
		return f.income, nil
	}
	return f.expenses, nil
}

func (f *fakeAnalytics) MonthlyTransactions(ctx context.Context, txType string, months []insights.Window) ([]decimal.Decimal, error) {
	return make([]decimal.Decimal, len(months)), f.hit("MonthlyTransactions")
}

func (f *fakeAnalytics) CountDemands(ctx context.Context, status, priority string) (int, error) {
	if err := f.hit("CountDemands"); err != nil {
		return 0, err
	}
	if priority != "" {
		return f.demandsByPriority[priority], nil
	}
	return f.demandsByStatus[status], nil
}

type fakeSettings struct {
	cur *entity.CompanySettings
}

func (f *fakeSettings) Get(ctx context.Context) (*entity.CompanySettings, error) { return f.cur, nil }

func (f *fakeSettings) Save(ctx context.Context, s *entity.CompanySettings) error {
	f.cur = s
	return nil
}

type fakePDF struct {
	company string
	report  *dto.FullReportResponse
}

func (f *fakePDF) GenerateAssistantReport(ctx context.Context, company string, report *dto.FullReportResponse) ([]byte, error) {
	f.company = company
	f.report = report
	return []byte("%PDF-1.4"), nil
}

type fakeMetrics struct {
	mu       sync.Mutex
	findings map[string]int
	score    int
}

func (f *fakeMetrics) ObserveFindings(kind string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findings == nil {
		f.findings = map[string]int{}
	}
	f.findings[kind] += n
}

func (f *fakeMetrics) SetHealthScore(score int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.score = score
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// busyCompany datos de una empresa con algunos problemas.
func busyCompany() *fakeAnalytics {
	return &fakeAnalytics{
		customersByStatus: map[string]int{
			"":                            10,
			entity.CustomerStatusActive:   4,
			entity.CustomerStatusProspect: 5,
		},
		newCustomers:     2,
		staleCustomers:   3,
		singleOrder:      2,
		ordersTotal:      10,
		ordersInProgress: 4,
		overdue:          2,
		ordersThisMonth:  6,
		ordersPrevMonth:  4,
		byStatus:         []repository.GroupCount{{Label: entity.OrderStatusProduction, Count: 3}},
		completedRevenue: dec("1234.5"),
		amounts: []insights.OrderAmount{
			{Value: dec("100"), Cost: dec("90")},
			{Value: dec("100"), Cost: dec("50")},
		},
		monthly:  []decimal.Decimal{dec("100"), dec("100"), dec("100"), dec("150"), dec("150"), dec("150")},
		income:   dec("1000"),
		expenses: dec("1500"),
		top:      []repository.CustomerRanking{{CustomerID: "c-1", Name: "Prefeitura X", TotalValue: dec("900.456"), OrderCount: 3}},
		demandsByStatus: map[string]int{
			entity.DemandStatusCreation:         2,
			entity.DemandStatusAwaitingApproval: 1,
		},
		demandsByPriority: map[string]int{entity.PriorityUrgent: 1},
	}
}
