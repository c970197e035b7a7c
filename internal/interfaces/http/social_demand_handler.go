package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

type demandService interface {
	Create(ctx context.Context, in dto.CreateDemandRequest) (*dto.DemandResponse, error)
	GetByID(ctx context.Context, id string) (*dto.DemandResponse, error)
	List(ctx context.Context, f repository.DemandFilter) (*dto.DemandListResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateDemandRequest) (*dto.DemandResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*dto.DemandStatsResponse, error)
}

// SocialDemandHandler demandas de social media.
type SocialDemandHandler struct {
	uc demandService
}

func NewSocialDemandHandler(uc demandService) *SocialDemandHandler {
	return &SocialDemandHandler{uc: uc}
}

// Create godoc
// @Summary      Crear demanda de social media
// @Tags         demandas-social
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDemandRequest  true  "demanda"
// @Success      201   {object}  dto.DemandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/demandas-social [post]
func (h *SocialDemandHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDemandRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/demandas-social?cliente_id=&status=&prioridade=&tipo_arte=
func (h *SocialDemandHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), repository.DemandFilter{
		CustomerID: c.Query("cliente_id"),
		Status:     c.Query("status"),
		Priority:   c.Query("prioridade"),
		ArtType:    c.Query("tipo_arte"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SocialDemandHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "demanda não encontrada")
	}
	return c.JSON(out)
}

func (h *SocialDemandHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDemandRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "demanda não encontrada")
	}
	return c.JSON(out)
}

func (h *SocialDemandHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "demanda excluída"})
}

// Stats GET /api/demandas-social/stats
func (h *SocialDemandHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
