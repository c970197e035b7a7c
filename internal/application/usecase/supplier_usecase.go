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

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Status == "" {
		in.Status = entity.SupplierStatusActive
	}
	if !entity.IsValidSupplierStatus(in.Status) {
		return nil, invalid("status de fornecedor inválido: %s", in.Status)
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        in.Name,
		ServiceType: in.ServiceType,
		Contact:     in.Contact,
		WhatsApp:    in.WhatsApp,
		Email:       in.Email,
		City:        in.City,
		AvgLeadDays: in.AvgLeadDays,
		Rating:      in.Rating,
		Status:      in.Status,
		Notes:       in.Notes,
		PriceSheet:  in.PriceSheet,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

func (uc *SupplierUseCase) List(ctx context.Context, f repository.SupplierFilter) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Page: dto.PageResponse{Limit: f.Limit, Offset: f.Offset}}, nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	if in.Status != nil {
		if !entity.IsValidSupplierStatus(*in.Status) {
			return nil, invalid("status de fornecedor inválido: %s", *in.Status)
		}
		s.Status = *in.Status
	}
	setString(&s.Name, in.Name)
	setString(&s.ServiceType, in.ServiceType)
	setString(&s.Contact, in.Contact)
	setString(&s.WhatsApp, in.WhatsApp)
	setString(&s.Email, in.Email)
	setString(&s.City, in.City)
	setString(&s.Notes, in.Notes)
	setString(&s.PriceSheet, in.PriceSheet)
	if in.AvgLeadDays != nil {
		s.AvgLeadDays = in.AvgLeadDays
	}
	if in.Rating != nil {
		s.Rating = in.Rating
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Delete elimina un proveedor; sus líneas de precio quedan sin proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Stats conteos por estado, tipo de servicio y evaluación.
func (uc *SupplierUseCase) Stats(ctx context.Context) (*dto.SupplierStatsResponse, error) {
	total, err := uc.repo.Count(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("supplier.Stats: %w", err)
	}
	active, err := uc.repo.Count(ctx, entity.SupplierStatusActive)
	if err != nil {
		return nil, fmt.Errorf("supplier.Stats: %w", err)
	}
	byType, err := uc.repo.CountByServiceType(ctx)
	if err != nil {
		return nil, fmt.Errorf("supplier.Stats: %w", err)
	}
	byRating, err := uc.repo.CountByRating(ctx)
	if err != nil {
		return nil, fmt.Errorf("supplier.Stats: %w", err)
	}
	return &dto.SupplierStatsResponse{
		Total:         total,
		Active:        active,
		ByServiceType: toLabelCounts(byType),
		ByRating:      toLabelCounts(byRating),
	}, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		ServiceType: s.ServiceType,
		Contact:     s.Contact,
		WhatsApp:    s.WhatsApp,
		Email:       s.Email,
		City:        s.City,
		AvgLeadDays: s.AvgLeadDays,
		Rating:      s.Rating,
		Status:      s.Status,
		Notes:       s.Notes,
		PriceSheet:  s.PriceSheet,
		CreatedAt:   s.CreatedAt,
	}
}
