package repository

import (
	"context"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

// CustomerFilter filtros de listado de clientes. City es subcadena sin distinguir mayúsculas.
type CustomerFilter struct {
	Status  string
	Type    string
	Segment string
	City    string
	Limit   int
	Offset  int
}

// CustomerSummary cliente con los totales derivados de sus pedidos.
type CustomerSummary struct {
	Customer *entity.Customer
	Totals   entity.CustomerTotals
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, f CustomerFilter) ([]CustomerSummary, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	// Totals suma y cantidad de pedidos del cliente.
	Totals(ctx context.Context, id string) (entity.CustomerTotals, error)
}
