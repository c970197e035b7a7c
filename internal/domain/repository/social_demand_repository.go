package repository

import (
	"context"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

// DemandFilter filtros de listado de demandas de social media.
type DemandFilter struct {
	CustomerID string
	Status     string
	Priority   string
	ArtType    string
	Limit      int
	Offset     int
}

// SocialDemandRepository define el puerto de persistencia para SocialDemand.
type SocialDemandRepository interface {
	Create(ctx context.Context, d *entity.SocialDemand) error
	GetByID(ctx context.Context, id string) (*entity.SocialDemand, error)
	List(ctx context.Context, f DemandFilter) ([]*entity.SocialDemand, error)
	Update(ctx context.Context, d *entity.SocialDemand) error
	Delete(ctx context.Context, id string) error
	CountByArtType(ctx context.Context) ([]GroupCount, error)
}
