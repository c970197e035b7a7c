package entity

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusQuote      = "Orçamento"
	OrderStatusApproved   = "Aprovado"
	OrderStatusProduction = "Produção"
	OrderStatusCompleted  = "Concluído"
	OrderStatusCancelled  = "Cancelado"
)

// Prioridades de pedidos y demandas.
const (
	PriorityUrgent = "Urgente"
	PriorityHigh   = "Alta"
	PriorityNormal = "Normal"
	PriorityLow    = "Baixa"
)

// Situación del pedido respecto a su fecha de entrega.
const (
	DeadlineLate   = "Atrasado"
	DeadlineUrgent = "Urgente"
	DeadlineOnTime = "No Prazo"
)

// UrgentDeadlineDays días restantes a partir de los cuales un pedido pasa a urgente.
const UrgentDeadlineDays = 3

// Order pedido de servicio de un cliente.
type Order struct {
	ID            string
	Code          string // PED-YYYYMMDD-XXXXXXXX
	CustomerID    string
	ServiceType   string
	Description   string
	Status        string
	Priority      string
	PlacedAt      time.Time
	DeliveryAt    *time.Time
	Owner         string
	Value         decimal.Decimal
	Cost          decimal.Decimal
	PaymentMethod string
	PaymentStatus string
	Notes         string
	Attachments   string
	UpdatedAt     time.Time
}

// NewOrderCode genera el código legible de un pedido a partir de la fecha.
func NewOrderCode(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("PED-%s-%s", at.Format("20060102"), suffix)
}

// Margin margen porcentual (valor − custo)/valor × 100; cero si el valor no es positivo.
func (o *Order) Margin() decimal.Decimal {
	return MarginPercent(o.Value, o.Cost)
}

// MarginPercent calcula el margen de un par valor/costo.
func MarginPercent(value, cost decimal.Decimal) decimal.Decimal {
	if !value.IsPositive() {
		return decimal.Zero
	}
	return value.Sub(cost).Div(value).Mul(decimal.NewFromInt(100))
}

// DaysUntilDelivery días enteros hasta la entrega (negativo si ya pasó); nil sin fecha.
func (o *Order) DaysUntilDelivery(now time.Time) *int {
	return DaysUntil(o.DeliveryAt, now)
}

// DaysUntil redondea hacia abajo la diferencia en días, como un calendario.
func DaysUntil(at *time.Time, now time.Time) *int {
	if at == nil {
		return nil
	}
	d := int(math.Floor(at.Sub(now).Hours() / 24))
	return &d
}

// DeadlineStatus clasifica el pedido según su entrega.
func (o *Order) DeadlineStatus(now time.Time) string {
	if o.Status == OrderStatusCompleted {
		return DeadlineOnTime
	}
	days := o.DaysUntilDelivery(now)
	switch {
	case days == nil:
		return DeadlineOnTime
	case *days < 0:
		return DeadlineLate
	case *days <= UrgentDeadlineDays:
		return DeadlineUrgent
	default:
		return DeadlineOnTime
	}
}

// IsOverdue pedido con entrega estrictamente anterior a now y no concluido.
func (o *Order) IsOverdue(now time.Time) bool {
	return o.DeliveryAt != nil && o.DeliveryAt.Before(now) && o.Status != OrderStatusCompleted
}

// IsValidOrderStatus indica si s pertenece a la enumeración de estados de pedido.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusQuote, OrderStatusApproved, OrderStatusProduction, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// InProgressOrderStatuses estados considerados "em andamento".
func InProgressOrderStatuses() []string {
	return []string{OrderStatusApproved, OrderStatusProduction}
}
