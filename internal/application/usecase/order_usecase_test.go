package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/application/usecase"
	"github.com/jhoicas/gestao-api/internal/domain"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

const (
	customerA = "11111111-1111-4111-8111-111111111111"
	customerB = "22222222-2222-4222-8222-222222222222"
	orderID   = "33333333-3333-4333-8333-333333333333"
)

func newOrderUC(orders ...*entity.Order) (*usecase.OrderUseCase, *fakeOrderRepo) {
	repo := newFakeOrders(orders...)
	customers := newFakeCustomers(
		&entity.Customer{ID: customerA, Name: "Prefeitura de Itu", Status: entity.CustomerStatusActive},
		&entity.Customer{ID: customerB, Name: "Loja Azul", Status: entity.CustomerStatusActive},
	)
	return usecase.NewOrderUseCase(repo, customers, &fakeAnalytics{}), repo
}

func TestOrderCreate_Defaults(t *testing.T) {
	uc, repo := newOrderUC()

	got, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID:  customerA,
		ServiceType: "Banner",
		Value:       dec("1000"),
		Cost:        decPtr("600"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusQuote, got.Status)
	assert.Equal(t, entity.PriorityNormal, got.Priority)
	assert.Equal(t, entity.TransactionPending, got.PaymentStatus)
	assert.True(t, strings.HasPrefix(got.Code, "PED-"), got.Code)
	assert.Equal(t, "40", got.Margin.String())
	assert.False(t, got.Overdue)
	require.NotNil(t, repo.created)
	assert.Equal(t, customerA, repo.created.CustomerID)
}

func TestOrderCreate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   dto.CreateOrderRequest
		want error
	}{
		{
			name: "cliente inexistente",
			in:   dto.CreateOrderRequest{CustomerID: "44444444-4444-4444-8444-444444444444", ServiceType: "Banner", Value: dec("10")},
			want: domain.ErrNotFound,
		},
		{
			name: "valor negativo",
			in:   dto.CreateOrderRequest{CustomerID: customerA, ServiceType: "Banner", Value: dec("-1")},
			want: domain.ErrInvalidInput,
		},
		{
			name: "custo negativo",
			in:   dto.CreateOrderRequest{CustomerID: customerA, ServiceType: "Banner", Value: dec("10"), Cost: decPtr("-5")},
			want: domain.ErrInvalidInput,
		},
		{
			name: "status desconhecido",
			in:   dto.CreateOrderRequest{CustomerID: customerA, ServiceType: "Banner", Value: dec("10"), Status: "Arquivado"},
			want: domain.ErrInvalidInput,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := newOrderUC()

			got, err := uc.Create(context.Background(), tc.in)

			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, got)
			assert.Nil(t, repo.created)
		})
	}
}

func existingOrder() *entity.Order {
	delivery := time.Now().AddDate(0, 0, -2)
	return &entity.Order{
		ID:            orderID,
		Code:          "PED-20260301-ABCDEF12",
		CustomerID:    customerA,
		ServiceType:   "Fachada",
		Description:   "Fachada em ACM",
		Status:        entity.OrderStatusProduction,
		Priority:      entity.PriorityHigh,
		PlacedAt:      time.Now().AddDate(0, 0, -20),
		DeliveryAt:    &delivery,
		Owner:         "Marcos",
		Value:         dec("2000"),
		Cost:          dec("1500"),
		PaymentStatus: entity.TransactionPending,
	}
}

func TestOrderUpdate_OnlyProvidedFieldsChange(t *testing.T) {
	uc, repo := newOrderUC(existingOrder())

	got, err := uc.Update(context.Background(), orderID, dto.UpdateOrderRequest{
		Status: strPtr(entity.OrderStatusCompleted),
		Cost:   decPtr("1000"),
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	saved := repo.updated
	require.NotNil(t, saved)
	assert.Equal(t, entity.OrderStatusCompleted, saved.Status)
	assert.Equal(t, "1000", saved.Cost.String())

	before := existingOrder()
	assert.Equal(t, before.Code, saved.Code)
	assert.Equal(t, before.CustomerID, saved.CustomerID)
	assert.Equal(t, before.ServiceType, saved.ServiceType)
	assert.Equal(t, before.Description, saved.Description)
	assert.Equal(t, before.Priority, saved.Priority)
	assert.Equal(t, before.Owner, saved.Owner)
	assert.Equal(t, "2000", saved.Value.String())
	assert.NotNil(t, saved.DeliveryAt)

	assert.Equal(t, "50", got.Margin.String())
	assert.False(t, got.Overdue, "concluído nunca está atrasado")
}

func TestOrderUpdate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   dto.UpdateOrderRequest
		want error
	}{
		{name: "cliente inexistente", in: dto.UpdateOrderRequest{CustomerID: strPtr("55555555-5555-4555-8555-555555555555")}, want: domain.ErrNotFound},
		{name: "valor negativo", in: dto.UpdateOrderRequest{Value: decPtr("-10")}, want: domain.ErrInvalidInput},
		{name: "custo negativo", in: dto.UpdateOrderRequest{Cost: decPtr("-0.01")}, want: domain.ErrInvalidInput},
		{name: "status desconhecido", in: dto.UpdateOrderRequest{Status: strPtr("Pausado")}, want: domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := newOrderUC(existingOrder())

			_, err := uc.Update(context.Background(), orderID, tc.in)

			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, repo.updated)
		})
	}
}

func TestOrderUpdate_ChangesCustomer(t *testing.T) {
	uc, repo := newOrderUC(existingOrder())

	_, err := uc.Update(context.Background(), orderID, dto.UpdateOrderRequest{CustomerID: strPtr(customerB)})
	require.NoError(t, err)

	assert.Equal(t, customerB, repo.updated.CustomerID)
}

func TestOrderUpdate_Missing(t *testing.T) {
	uc, repo := newOrderUC()

	got, err := uc.Update(context.Background(), orderID, dto.UpdateOrderRequest{Owner: strPtr("Ana")})

	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Nil(t, repo.updated)
}

func TestOrderGetByID_OverdueFlag(t *testing.T) {
	uc, _ := newOrderUC(existingOrder())

	got, err := uc.GetByID(context.Background(), orderID)
	require.NoError(t, err)

	assert.True(t, got.Overdue)
	assert.Equal(t, entity.DeadlineLate, got.DeadlineStatus)
}
