package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/application/usecase"
	"github.com/jhoicas/gestao-api/internal/domain"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

func newFinanceUC(a *fakeAnalytics) (*usecase.FinanceUseCase, *fakeFinanceRepo) {
	repo := newFakeFinance()
	orders := newFakeOrders(existingOrder())
	return usecase.NewFinanceUseCase(repo, orders, a), repo
}

func TestFinanceCashFlow_TwelveMonthsOldestFirst(t *testing.T) {
	income := make([]decimal.Decimal, usecase.CashFlowMonths)
	for i := range income {
		income[i] = decimal.NewFromInt(int64((i + 1) * 100))
	}
	a := &fakeAnalytics{monthly: map[string][]decimal.Decimal{
		entity.TransactionRevenue: income,
		entity.TransactionExpense: {dec("50")},
	}}
	uc, _ := newFinanceUC(a)

	got, err := uc.CashFlow(context.Background())
	require.NoError(t, err)

	require.Len(t, got.Months, 12)
	require.Len(t, got.Income, 12)
	require.Len(t, got.Expenses, 12)

	now := time.Now()
	assert.Equal(t, now.Format("2006-01"), got.Months[11], "el mes actual va último")
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)
	assert.Equal(t, first.Format("2006-01"), got.Months[0])
	for i := 1; i < len(got.Months); i++ {
		assert.Less(t, got.Months[i-1], got.Months[i])
	}

	assert.Equal(t, "100", got.Income[0].String())
	assert.Equal(t, "1200", got.Income[11].String())
	assert.Equal(t, "50", got.Expenses[0].String())
	assert.True(t, got.Expenses[11].IsZero())

	// receitas y despesas consultan las mismas ventanas
	require.Len(t, a.monthsAsked, 2)
	assert.Equal(t, a.monthsAsked[0], a.monthsAsked[1])
}

func TestFinanceCashFlow_DataError(t *testing.T) {
	boom := errors.New("conexão perdida")
	uc, _ := newFinanceUC(&fakeAnalytics{failMonthly: boom})

	_, err := uc.CashFlow(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "finance.CashFlow")
}

func TestFinanceCreate(t *testing.T) {
	cases := []struct {
		name string
		in   dto.CreateTransactionRequest
		want error
	}{
		{
			name: "pedido inexistente",
			in:   dto.CreateTransactionRequest{Description: "x", Type: entity.TransactionRevenue, Category: "Vendas", Amount: dec("10"), OrderID: strPtr("66666666-6666-4666-8666-666666666666")},
			want: domain.ErrNotFound,
		},
		{
			name: "valor zero",
			in:   dto.CreateTransactionRequest{Description: "x", Type: entity.TransactionExpense, Category: "Aluguel", Amount: decimal.Zero},
			want: domain.ErrInvalidInput,
		},
		{
			name: "tipo inválido",
			in:   dto.CreateTransactionRequest{Description: "x", Type: "Transferência", Category: "Outros", Amount: dec("10")},
			want: domain.ErrInvalidInput,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := newFinanceUC(&fakeAnalytics{})

			_, err := uc.Create(context.Background(), tc.in)

			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, repo.created)
		})
	}
}

func TestFinanceCreate_DefaultsAndOrderLink(t *testing.T) {
	uc, repo := newFinanceUC(&fakeAnalytics{})

	got, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		Description: "Recebimento PED-20260301-ABCDEF12",
		Type:        entity.TransactionRevenue,
		Category:    "Vendas",
		Amount:      dec("2000"),
		OrderID:     strPtr(orderID),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionPending, got.Status)
	require.NotNil(t, got.OrderID)
	assert.Equal(t, orderID, *got.OrderID)
	assert.False(t, repo.created.Date.IsZero())
}

func TestFinanceCreate_EmptyOrderIDMeansNone(t *testing.T) {
	uc, repo := newFinanceUC(&fakeAnalytics{})

	_, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		Description: "Energia", Type: entity.TransactionExpense, Category: "Energia", Amount: dec("180"), OrderID: strPtr(""),
	})
	require.NoError(t, err)

	assert.Nil(t, repo.created.OrderID)
}
