package repository

import (
	"context"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

// PriceFilter filtros de la tabla de precios. Active nil no filtra.
type PriceFilter struct {
	Category   string
	SupplierID string
	Active     *bool
	Limit      int
	Offset     int
}

// PriceTableRepository define el puerto de persistencia para PriceEntry.
type PriceTableRepository interface {
	Create(ctx context.Context, p *entity.PriceEntry) error
	GetByID(ctx context.Context, id string) (*entity.PriceEntry, error)
	List(ctx context.Context, f PriceFilter) ([]*entity.PriceEntry, error)
	Update(ctx context.Context, p *entity.PriceEntry) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, onlyActive bool) (int, error)
	CountByCategory(ctx context.Context) ([]GroupCount, error)
	AvgMarkupByCategory(ctx context.Context) ([]GroupAmount, error)
}
