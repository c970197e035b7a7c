package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un cliente.
const (
	CustomerStatusProspect = "Prospect"
	CustomerStatusActive   = "Ativo"
	CustomerStatusInactive = "Inativo"
	CustomerStatusBlocked  = "Bloqueado"
)

// Tipos de cliente.
const (
	CustomerTypeRetailer   = "Varejista"
	CustomerTypeCityHall   = "Prefeitura"
	CustomerTypeIndividual = "Pessoa Física"
	CustomerTypeOther      = "Outros"
)

// Customer representa un cliente de la agencia (CRM).
type Customer struct {
	ID            string
	Name          string
	Type          string
	City          string
	Population    *int
	MainContact   string
	WhatsApp      string
	Email         string
	Status        string
	Segment       string
	RegisteredAt  time.Time
	LastContactAt *time.Time
	Notes         string
	UpdatedAt     time.Time
}

// CustomerTotals agregados de pedidos de un cliente (derivados, no persistidos).
type CustomerTotals struct {
	TotalValue decimal.Decimal
	OrderCount int
}

// AverageTicket valor medio por pedido; cero si no hay pedidos.
func (t CustomerTotals) AverageTicket() decimal.Decimal {
	if t.OrderCount == 0 {
		return decimal.Zero
	}
	return t.TotalValue.Div(decimal.NewFromInt(int64(t.OrderCount))).Round(2)
}

// IsValidCustomerStatus indica si s pertenece a la enumeración de estados.
func IsValidCustomerStatus(s string) bool {
	switch s {
	case CustomerStatusProspect, CustomerStatusActive, CustomerStatusInactive, CustomerStatusBlocked:
		return true
	}
	return false
}
