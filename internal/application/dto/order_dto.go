package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear un pedido. Code se genera si viene vacío.
type CreateOrderRequest struct {
	Code          string           `json:"id_pedido" validate:"max=50"`
	CustomerID    string           `json:"cliente_id" validate:"required"`
	ServiceType   string           `json:"tipo_servico" validate:"required,max=100"`
	Description   string           `json:"descricao"`
	Status        string           `json:"status"`
	Priority      string           `json:"prioridade"`
	PlacedAt      *Date            `json:"data_pedido"`
	DeliveryAt    *Date            `json:"data_entrega"`
	Owner         string           `json:"responsavel" validate:"max=100"`
	Value         decimal.Decimal  `json:"valor" validate:"gte=0"`
	Cost          *decimal.Decimal `json:"custo"`
	PaymentMethod string           `json:"forma_pagamento" validate:"max=50"`
	PaymentStatus string           `json:"status_pagamento"`
	Notes         string           `json:"observacoes"`
	Attachments   string           `json:"arquivos"`
}

// UpdateOrderRequest actualización parcial de un pedido.
type UpdateOrderRequest struct {
	CustomerID    *string          `json:"cliente_id"`
	ServiceType   *string          `json:"tipo_servico" validate:"omitempty,max=100"`
	Description   *string          `json:"descricao"`
	Status        *string          `json:"status"`
	Priority      *string          `json:"prioridade"`
	PlacedAt      *Date            `json:"data_pedido"`
	DeliveryAt    *Date            `json:"data_entrega"`
	Owner         *string          `json:"responsavel"`
	Value         *decimal.Decimal `json:"valor"`
	Cost          *decimal.Decimal `json:"custo"`
	PaymentMethod *string          `json:"forma_pagamento"`
	PaymentStatus *string          `json:"status_pagamento"`
	Notes         *string          `json:"observacoes"`
	Attachments   *string          `json:"arquivos"`
}

// OrderResponse salida de un pedido con campos derivados.
type OrderResponse struct {
	ID                string          `json:"id"`
	Code              string          `json:"id_pedido"`
	CustomerID        string          `json:"cliente_id"`
	ServiceType       string          `json:"tipo_servico"`
	Description       string          `json:"descricao"`
	Status            string          `json:"status"`
	Priority          string          `json:"prioridade"`
	PlacedAt          time.Time       `json:"data_pedido"`
	DeliveryAt        *time.Time      `json:"data_entrega"`
	Owner             string          `json:"responsavel"`
	Value             decimal.Decimal `json:"valor"`
	Cost              decimal.Decimal `json:"custo"`
	PaymentMethod     string          `json:"forma_pagamento"`
	PaymentStatus     string          `json:"status_pagamento"`
	Notes             string          `json:"observacoes"`
	Attachments       string          `json:"arquivos"`
	Margin            decimal.Decimal `json:"margem"`
	DaysUntilDelivery *int            `json:"dias_para_entrega"`
	DeadlineStatus    string          `json:"status_prazo"`
	Overdue           bool            `json:"atrasado"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// OrderStatsResponse estadísticas de pedidos.
type OrderStatsResponse struct {
	Total        int             `json:"total_pedidos"`
	InProgress   int             `json:"pedidos_andamento"`
	Completed    int             `json:"pedidos_concluidos"`
	Overdue      int             `json:"pedidos_atrasados"`
	MonthRevenue decimal.Decimal `json:"faturamento_mes"`
	AvgMargin    decimal.Decimal `json:"margem_media"`
}
