package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/insights"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos.
type OrderUseCase struct {
	repo      repository.OrderRepository
	customers repository.CustomerRepository
	analytics repository.AnalyticsRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, customers repository.CustomerRepository, analytics repository.AnalyticsRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, customers: customers, analytics: analytics}
}

// Create registra un pedido. Genera el código PED-... si no viene informado.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := uc.ensureCustomer(ctx, in.CustomerID); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = entity.OrderStatusQuote
	}
	if in.Priority == "" {
		in.Priority = entity.PriorityNormal
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = entity.TransactionPending
	}
	if !entity.IsValidOrderStatus(in.Status) {
		return nil, invalid("status de pedido inválido: %s", in.Status)
	}
	cost := decimal.Zero
	if in.Cost != nil {
		cost = *in.Cost
	}
	if in.Value.IsNegative() || cost.IsNegative() {
		return nil, invalid("valor e custo não podem ser negativos")
	}

	now := time.Now()
	placed := now
	if p := in.PlacedAt.TimePtr(); p != nil {
		placed = *p
	}
	code := in.Code
	if code == "" {
		code = entity.NewOrderCode(placed)
	}
	o := &entity.Order{
		ID:            uuid.New().String(),
		Code:          code,
		CustomerID:    in.CustomerID,
		ServiceType:   in.ServiceType,
		Description:   in.Description,
		Status:        in.Status,
		Priority:      in.Priority,
		PlacedAt:      placed,
		DeliveryAt:    in.DeliveryAt.TimePtr(),
		Owner:         in.Owner,
		Value:         in.Value,
		Cost:          cost,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: in.PaymentStatus,
		Notes:         in.Notes,
		Attachments:   in.Attachments,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return toOrderResponse(o, now), nil
}

// GetByID devuelve nil, nil si el pedido no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}
	return toOrderResponse(o, time.Now()), nil
}

// List lista pedidos filtrados, más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, f repository.OrderFilter) (*dto.OrderListResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, now))
	}
	return &dto.OrderListResponse{Items: items, Page: dto.PageResponse{Limit: f.Limit, Offset: f.Offset}}, nil
}

// Update aplica solo los campos presentes.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}
	if in.CustomerID != nil && *in.CustomerID != o.CustomerID {
		if err := uc.ensureCustomer(ctx, *in.CustomerID); err != nil {
			return nil, err
		}
		o.CustomerID = *in.CustomerID
	}
	if in.Status != nil {
		if !entity.IsValidOrderStatus(*in.Status) {
			return nil, invalid("status de pedido inválido: %s", *in.Status)
		}
		o.Status = *in.Status
	}
	setString(&o.ServiceType, in.ServiceType)
	setString(&o.Description, in.Description)
	setString(&o.Priority, in.Priority)
	setString(&o.Owner, in.Owner)
	setString(&o.PaymentMethod, in.PaymentMethod)
	setString(&o.PaymentStatus, in.PaymentStatus)
	setString(&o.Notes, in.Notes)
	setString(&o.Attachments, in.Attachments)
	if p := in.PlacedAt.TimePtr(); p != nil {
		o.PlacedAt = *p
	}
	if in.DeliveryAt != nil {
		o.DeliveryAt = in.DeliveryAt.TimePtr()
	}
	if in.Value != nil {
		o.Value = *in.Value
	}
	if in.Cost != nil {
		o.Cost = *in.Cost
	}
	if o.Value.IsNegative() || o.Cost.IsNegative() {
		return nil, invalid("valor e custo não podem ser negativos")
	}
	now := time.Now()
	o.UpdatedAt = now
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return toOrderResponse(o, now), nil
}

// Delete elimina un pedido.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Stats totales de pedidos, facturación del mes y margen medio.
func (uc *OrderUseCase) Stats(ctx context.Context) (*dto.OrderStatsResponse, error) {
	now := time.Now()
	month := insights.MonthWindow(now)

	var (
		out dto.OrderStatsResponse
		err error
	)
	if out.Total, err = uc.analytics.CountOrders(ctx); err != nil {
		return nil, fmt.Errorf("order.Stats: %w", err)
	}
	if out.InProgress, err = uc.analytics.CountOrders(ctx, entity.InProgressOrderStatuses()...); err != nil {
		return nil, fmt.Errorf("order.Stats: %w", err)
	}
	if out.Completed, err = uc.analytics.CountOrders(ctx, entity.OrderStatusCompleted); err != nil {
		return nil, fmt.Errorf("order.Stats: %w", err)
	}
	if out.Overdue, err = uc.analytics.CountOverdueOrders(ctx, now); err != nil {
		return nil, fmt.Errorf("order.Stats: %w", err)
	}
	revenue, err := uc.analytics.SumCompletedOrderValue(ctx, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("order.Stats: %w", err)
	}
	amounts, err := uc.analytics.CompletedOrderAmounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("order.Stats: %w", err)
	}
	avg, _ := insights.AverageMargin(amounts)
	out.MonthRevenue = revenue.Round(2)
	out.AvgMargin = avg.Round(2)
	return &out, nil
}

func (uc *OrderUseCase) ensureCustomer(ctx context.Context, id string) error {
	c, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return notFound("cliente " + id)
	}
	return nil
}

func toOrderResponse(o *entity.Order, now time.Time) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:                o.ID,
		Code:              o.Code,
		CustomerID:        o.CustomerID,
		ServiceType:       o.ServiceType,
		Description:       o.Description,
		Status:            o.Status,
		Priority:          o.Priority,
		PlacedAt:          o.PlacedAt,
		DeliveryAt:        o.DeliveryAt,
		Owner:             o.Owner,
		Value:             o.Value,
		Cost:              o.Cost,
		PaymentMethod:     o.PaymentMethod,
		PaymentStatus:     o.PaymentStatus,
		Notes:             o.Notes,
		Attachments:       o.Attachments,
		Margin:            o.Margin().Round(2),
		DaysUntilDelivery: o.DaysUntilDelivery(now),
		DeadlineStatus:    o.DeadlineStatus(now),
		Overdue:           o.IsOverdue(now),
	}
}
