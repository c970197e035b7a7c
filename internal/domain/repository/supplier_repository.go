package repository

import (
	"context"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

// SupplierFilter filtros de listado de proveedores.
type SupplierFilter struct {
	ServiceType string
	Status      string
	City        string
	Limit       int
	Offset      int
}

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	List(ctx context.Context, f SupplierFilter) ([]*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status string) (int, error)
	CountByServiceType(ctx context.Context) ([]GroupCount, error)
	CountByRating(ctx context.Context) ([]GroupCount, error)
}
