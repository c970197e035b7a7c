package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

// PriceTableUseCase casos de uso de la tabla de precios.
type PriceTableUseCase struct {
	repo      repository.PriceTableRepository
	suppliers repository.SupplierRepository
}

// NewPriceTableUseCase construye el caso de uso.
func NewPriceTableUseCase(repo repository.PriceTableRepository, suppliers repository.SupplierRepository) *PriceTableUseCase {
	return &PriceTableUseCase{repo: repo, suppliers: suppliers}
}

// Create registra una línea de precio; activa por defecto.
func (uc *PriceTableUseCase) Create(ctx context.Context, in dto.CreatePriceRequest) (*dto.PriceResponse, error) {
	if in.CostPrice.IsNegative() || in.Markup.IsNegative() {
		return nil, invalid("preço de custo e markup não podem ser negativos")
	}
	supplierID := optionalID(in.SupplierID)
	if err := uc.ensureSupplier(ctx, supplierID); err != nil {
		return nil, err
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	if in.Unit == "" {
		in.Unit = "un"
	}
	p := &entity.PriceEntry{
		ID:          uuid.New().String(),
		Item:        in.Item,
		Category:    in.Category,
		Description: in.Description,
		CostPrice:   in.CostPrice,
		Markup:      in.Markup,
		Unit:        in.Unit,
		SupplierID:  supplierID,
		Active:      active,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPriceResponse(p), nil
}

func (uc *PriceTableUseCase) GetByID(ctx context.Context, id string) (*dto.PriceResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return toPriceResponse(p), nil
}

func (uc *PriceTableUseCase) List(ctx context.Context, f repository.PriceFilter) (*dto.PriceListResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PriceResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPriceResponse(p))
	}
	return &dto.PriceListResponse{Items: items, Page: dto.PageResponse{Limit: f.Limit, Offset: f.Offset}}, nil
}

// Update aplica solo los campos presentes y renueva ultima_atualizacao.
func (uc *PriceTableUseCase) Update(ctx context.Context, id string, in dto.UpdatePriceRequest) (*dto.PriceResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	if in.SupplierID != nil {
		supplierID := optionalID(in.SupplierID)
		if err := uc.ensureSupplier(ctx, supplierID); err != nil {
			return nil, err
		}
		p.SupplierID = supplierID
	}
	setString(&p.Item, in.Item)
	setString(&p.Category, in.Category)
	setString(&p.Description, in.Description)
	setString(&p.Unit, in.Unit)
	if in.CostPrice != nil {
		p.CostPrice = *in.CostPrice
	}
	if in.Markup != nil {
		p.Markup = *in.Markup
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if p.CostPrice.IsNegative() || p.Markup.IsNegative() {
		return nil, invalid("preço de custo e markup não podem ser negativos")
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPriceResponse(p), nil
}

func (uc *PriceTableUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Stats conteos y markup medio por categoría.
func (uc *PriceTableUseCase) Stats(ctx context.Context) (*dto.PriceStatsResponse, error) {
	total, err := uc.repo.Count(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("price.Stats: %w", err)
	}
	active, err := uc.repo.Count(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("price.Stats: %w", err)
	}
	byCat, err := uc.repo.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("price.Stats: %w", err)
	}
	markup, err := uc.repo.AvgMarkupByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("price.Stats: %w", err)
	}
	return &dto.PriceStatsResponse{
		Total:               total,
		Active:              active,
		ByCategory:          toLabelCounts(byCat),
		AvgMarkupByCategory: toLabelAmounts(markup),
	}, nil
}

func (uc *PriceTableUseCase) ensureSupplier(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	s, err := uc.suppliers.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if s == nil {
		return notFound("fornecedor " + *id)
	}
	return nil
}

func toPriceResponse(p *entity.PriceEntry) *dto.PriceResponse {
	return &dto.PriceResponse{
		ID:          p.ID,
		Item:        p.Item,
		Category:    p.Category,
		Description: p.Description,
		CostPrice:   p.CostPrice,
		Markup:      p.Markup,
		SalePrice:   p.SalePrice(),
		Unit:        p.Unit,
		SupplierID:  p.SupplierID,
		Active:      p.Active,
		UpdatedAt:   p.UpdatedAt,
	}
}
