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

// CustomerUseCase casos de uso del CRM de clientes.
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	analytics repository.AnalyticsRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, analytics repository.AnalyticsRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, analytics: analytics}
}

// Create registra un cliente. Sin status explícito entra como Prospect.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Status == "" {
		in.Status = entity.CustomerStatusProspect
	}
	if !entity.IsValidCustomerStatus(in.Status) {
		return nil, invalid("status de cliente inválido: %s", in.Status)
	}
	now := time.Now()
	c := &entity.Customer{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Type:          in.Type,
		City:          in.City,
		Population:    in.Population,
		MainContact:   in.MainContact,
		WhatsApp:      in.WhatsApp,
		Email:         in.Email,
		Status:        in.Status,
		Segment:       in.Segment,
		RegisteredAt:  now,
		LastContactAt: in.LastContactAt.TimePtr(),
		Notes:         in.Notes,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c, entity.CustomerTotals{}), nil
}

// GetByID devuelve nil, nil si el cliente no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	totals, err := uc.repo.Totals(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c, totals), nil
}

// List lista clientes con filtros y totales derivados.
func (uc *CustomerUseCase) List(ctx context.Context, f repository.CustomerFilter) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toCustomerResponse(s.Customer, s.Totals))
	}
	return &dto.CustomerListResponse{Items: items, Page: dto.PageResponse{Limit: f.Limit, Offset: f.Offset}}, nil
}

// Update aplica solo los campos presentes.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	setString(&c.Name, in.Name)
	setString(&c.Type, in.Type)
	setString(&c.City, in.City)
	setString(&c.MainContact, in.MainContact)
	setString(&c.WhatsApp, in.WhatsApp)
	setString(&c.Email, in.Email)
	setString(&c.Segment, in.Segment)
	setString(&c.Notes, in.Notes)
	if in.Population != nil {
		c.Population = in.Population
	}
	if in.Status != nil {
		if !entity.IsValidCustomerStatus(*in.Status) {
			return nil, invalid("status de cliente inválido: %s", *in.Status)
		}
		c.Status = *in.Status
	}
	if in.LastContactAt != nil {
		c.LastContactAt = in.LastContactAt.TimePtr()
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	totals, err := uc.repo.Totals(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c, totals), nil
}

// Delete elimina un cliente. Falla con ErrConflict si tiene pedidos asociados.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Stats totales del CRM y ranking de clientes por facturación.
func (uc *CustomerUseCase) Stats(ctx context.Context) (*dto.CustomerStatsResponse, error) {
	total, err := uc.analytics.CountCustomers(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("customer.Stats: %w", err)
	}
	active, err := uc.analytics.CountCustomers(ctx, entity.CustomerStatusActive)
	if err != nil {
		return nil, fmt.Errorf("customer.Stats: %w", err)
	}
	prospects, err := uc.analytics.CountCustomers(ctx, entity.CustomerStatusProspect)
	if err != nil {
		return nil, fmt.Errorf("customer.Stats: %w", err)
	}
	top, err := uc.analytics.TopCustomers(ctx, topCustomersLimit)
	if err != nil {
		return nil, fmt.Errorf("customer.Stats: %w", err)
	}
	return &dto.CustomerStatsResponse{
		Total:        total,
		Active:       active,
		Prospects:    prospects,
		TopCustomers: toTopCustomers(top),
	}, nil
}

func toCustomerResponse(c *entity.Customer, t entity.CustomerTotals) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Type:          c.Type,
		City:          c.City,
		Population:    c.Population,
		MainContact:   c.MainContact,
		WhatsApp:      c.WhatsApp,
		Email:         c.Email,
		Status:        c.Status,
		Segment:       c.Segment,
		RegisteredAt:  c.RegisteredAt,
		LastContactAt: c.LastContactAt,
		Notes:         c.Notes,
		TotalValue:    t.TotalValue.Round(2),
		OrderCount:    t.OrderCount,
		AverageTicket: t.AverageTicket(),
	}
}
