package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

// OrderFilter filtros de listado de pedidos; PlacedFrom/PlacedTo acotan data_pedido.
type OrderFilter struct {
	CustomerID string
	Status     string
	Priority   string
	Owner      string
	PlacedFrom *time.Time
	PlacedTo   *time.Time
	Limit      int
	Offset     int
}

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, f OrderFilter) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
}
