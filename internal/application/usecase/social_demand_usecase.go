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

// SocialDemandUseCase casos de uso de demandas de social media.
type SocialDemandUseCase struct {
	repo      repository.SocialDemandRepository
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	analytics repository.AnalyticsRepository
}

// NewSocialDemandUseCase construye el caso de uso.
func NewSocialDemandUseCase(
	repo repository.SocialDemandRepository,
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	analytics repository.AnalyticsRepository,
) *SocialDemandUseCase {
	return &SocialDemandUseCase{repo: repo, customers: customers, orders: orders, analytics: analytics}
}

// Create registra una demanda. Cliente obligatorio; pedido opcional.
func (uc *SocialDemandUseCase) Create(ctx context.Context, in dto.CreateDemandRequest) (*dto.DemandResponse, error) {
	if in.Status == "" {
		in.Status = entity.DemandStatusBriefing
	}
	if in.Priority == "" {
		in.Priority = entity.PriorityNormal
	}
	if !entity.IsValidDemandStatus(in.Status) {
		return nil, invalid("status de demanda inválido: %s", in.Status)
	}
	if !entity.IsValidDemandPriority(in.Priority) {
		return nil, invalid("prioridade inválida: %s", in.Priority)
	}
	orderID := optionalID(in.OrderID)
	if err := uc.ensureRefs(ctx, in.CustomerID, orderID); err != nil {
		return nil, err
	}
	now := time.Now()
	requested := now
	if r := in.RequestedAt.TimePtr(); r != nil {
		requested = *r
	}
	d := &entity.SocialDemand{
		ID:          uuid.New().String(),
		Title:       in.Title,
		CustomerID:  in.CustomerID,
		OrderID:     orderID,
		ArtType:     in.ArtType,
		Theme:       in.Theme,
		RequestedAt: requested,
		DeliveryAt:  in.DeliveryAt.TimePtr(),
		Status:      in.Status,
		Priority:    in.Priority,
		Notes:       in.Notes,
		FinalFile:   in.FinalFile,
		Approved:    in.Approved,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDemandResponse(d, now), nil
}

// GetByID devuelve nil, nil si la demanda no existe.
func (uc *SocialDemandUseCase) GetByID(ctx context.Context, id string) (*dto.DemandResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil || d == nil {
		return nil, err
	}
	return toDemandResponse(d, time.Now()), nil
}

// List lista demandas filtradas.
func (uc *SocialDemandUseCase) List(ctx context.Context, f repository.DemandFilter) (*dto.DemandListResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.DemandResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDemandResponse(d, now))
	}
	return &dto.DemandListResponse{Items: items, Page: dto.PageResponse{Limit: f.Limit, Offset: f.Offset}}, nil
}

// Update aplica solo los campos presentes.
func (uc *SocialDemandUseCase) Update(ctx context.Context, id string, in dto.UpdateDemandRequest) (*dto.DemandResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil || d == nil {
		return nil, err
	}
	if in.Status != nil {
		if !entity.IsValidDemandStatus(*in.Status) {
			return nil, invalid("status de demanda inválido: %s", *in.Status)
		}
		d.Status = *in.Status
	}
	if in.Priority != nil {
		if !entity.IsValidDemandPriority(*in.Priority) {
			return nil, invalid("prioridade inválida: %s", *in.Priority)
		}
		d.Priority = *in.Priority
	}
	customerID := d.CustomerID
	if in.CustomerID != nil {
		customerID = *in.CustomerID
	}
	orderID := d.OrderID
	if in.OrderID != nil {
		orderID = optionalID(in.OrderID)
	}
	if in.CustomerID != nil || in.OrderID != nil {
		if err := uc.ensureRefs(ctx, customerID, orderID); err != nil {
			return nil, err
		}
	}
	d.CustomerID, d.OrderID = customerID, orderID
	setString(&d.Title, in.Title)
	setString(&d.ArtType, in.ArtType)
	setString(&d.Theme, in.Theme)
	setString(&d.Notes, in.Notes)
	setString(&d.FinalFile, in.FinalFile)
	if r := in.RequestedAt.TimePtr(); r != nil {
		d.RequestedAt = *r
	}
	if in.DeliveryAt != nil {
		d.DeliveryAt = in.DeliveryAt.TimePtr()
	}
	if in.Approved != nil {
		d.Approved = *in.Approved
	}
	now := time.Now()
	d.UpdatedAt = now
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDemandResponse(d, now), nil
}

// Delete elimina una demanda.
func (uc *SocialDemandUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Stats conteos por etapa, urgentes y por tipo de arte.
func (uc *SocialDemandUseCase) Stats(ctx context.Context) (*dto.DemandStatsResponse, error) {
	var (
		out dto.DemandStatsResponse
		err error
	)
	if out.Total, err = uc.analytics.CountDemands(ctx, "", ""); err != nil {
		return nil, fmt.Errorf("demand.Stats: %w", err)
	}
	if out.InCreation, err = uc.analytics.CountDemands(ctx, entity.DemandStatusCreation, ""); err != nil {
		return nil, fmt.Errorf("demand.Stats: %w", err)
	}
	if out.AwaitingApproval, err = uc.analytics.CountDemands(ctx, entity.DemandStatusAwaitingApproval, ""); err != nil {
		return nil, fmt.Errorf("demand.Stats: %w", err)
	}
	if out.Urgent, err = uc.analytics.CountDemands(ctx, "", entity.PriorityUrgent); err != nil {
		return nil, fmt.Errorf("demand.Stats: %w", err)
	}
	byArt, err := uc.repo.CountByArtType(ctx)
	if err != nil {
		return nil, fmt.Errorf("demand.Stats: %w", err)
	}
	out.ByArtType = toLabelCounts(byArt)
	return &out, nil
}

func (uc *SocialDemandUseCase) ensureRefs(ctx context.Context, customerID string, orderID *string) error {
	c, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if c == nil {
		return notFound("cliente " + customerID)
	}
	if orderID == nil {
		return nil
	}
	o, err := uc.orders.GetByID(ctx, *orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return notFound("pedido " + *orderID)
	}
	return nil
}

func toDemandResponse(d *entity.SocialDemand, now time.Time) *dto.DemandResponse {
	return &dto.DemandResponse{
		ID:                d.ID,
		Title:             d.Title,
		CustomerID:        d.CustomerID,
		OrderID:           d.OrderID,
		ArtType:           d.ArtType,
		Theme:             d.Theme,
		RequestedAt:       d.RequestedAt,
		DeliveryAt:        d.DeliveryAt,
		Status:            d.Status,
		Priority:          d.Priority,
		Notes:             d.Notes,
		FinalFile:         d.FinalFile,
		Approved:          d.Approved,
		DaysUntilDelivery: d.DaysUntilDelivery(now),
	}
}
