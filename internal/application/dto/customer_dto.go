package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name          string `json:"nome" validate:"required,max=200"`
	Type          string `json:"tipo" validate:"required,max=50"`
	City          string `json:"cidade" validate:"max=100"`
	Population    *int   `json:"populacao" validate:"omitempty,gte=0"`
	MainContact   string `json:"contato_principal" validate:"max=100"`
	WhatsApp      string `json:"whatsapp" validate:"max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	Status        string `json:"status"`
	Segment       string `json:"segmento" validate:"max=50"`
	LastContactAt *Date  `json:"ultimo_contato"`
	Notes         string `json:"observacoes"`
}

// UpdateCustomerRequest actualización parcial de un cliente.
type UpdateCustomerRequest struct {
	Name          *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Type          *string `json:"tipo" validate:"omitempty,max=50"`
	City          *string `json:"cidade" validate:"omitempty,max=100"`
	Population    *int    `json:"populacao" validate:"omitempty,gte=0"`
	MainContact   *string `json:"contato_principal"`
	WhatsApp      *string `json:"whatsapp" validate:"omitempty,max=20"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Status        *string `json:"status"`
	Segment       *string `json:"segmento"`
	LastContactAt *Date   `json:"ultimo_contato"`
	Notes         *string `json:"observacoes"`
}

// CustomerResponse salida de un cliente con sus totales derivados.
type CustomerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"nome"`
	Type          string          `json:"tipo"`
	City          string          `json:"cidade"`
	Population    *int            `json:"populacao"`
	MainContact   string          `json:"contato_principal"`
	WhatsApp      string          `json:"whatsapp"`
	Email         string          `json:"email"`
	Status        string          `json:"status"`
	Segment       string          `json:"segmento"`
	RegisteredAt  time.Time       `json:"data_cadastro"`
	LastContactAt *time.Time      `json:"ultimo_contato"`
	Notes         string          `json:"observacoes"`
	TotalValue    decimal.Decimal `json:"valor_total"`
	OrderCount    int             `json:"qtd_pedidos"`
	AverageTicket decimal.Decimal `json:"ticket_medio"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// TopCustomerDTO cliente en el ranking por facturación.
type TopCustomerDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"nome"`
	TotalValue decimal.Decimal `json:"valor_total"`
	OrderCount int             `json:"qtd_pedidos"`
}

// CustomerStatsResponse estadísticas de clientes.
type CustomerStatsResponse struct {
	Total        int              `json:"total_clientes"`
	Active       int              `json:"clientes_ativos"`
	Prospects    int              `json:"prospects"`
	TopCustomers []TopCustomerDTO `json:"top_clientes"`
}
