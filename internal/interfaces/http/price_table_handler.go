package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

type priceTableService interface {
	Create(ctx context.Context, in dto.CreatePriceRequest) (*dto.PriceResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PriceResponse, error)
	List(ctx context.Context, f repository.PriceFilter) (*dto.PriceListResponse, error)
	Update(ctx context.Context, id string, in dto.UpdatePriceRequest) (*dto.PriceResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*dto.PriceStatsResponse, error)
}

// PriceTableHandler tabla de precios.
type PriceTableHandler struct {
	uc priceTableService
}

func NewPriceTableHandler(uc priceTableService) *PriceTableHandler {
	return &PriceTableHandler{uc: uc}
}

// Create godoc
// @Summary      Crear entrada de la tabla de precios
// @Description  preco_venda se deriva de preco_custo y markup.
// @Tags         tabela-precos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePriceRequest  true  "preço"
// @Success      201   {object}  dto.PriceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tabela-precos [post]
func (h *PriceTableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePriceRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/tabela-precos?categoria=&fornecedor_id=&ativo=
func (h *PriceTableHandler) List(c *fiber.Ctx) error {
	active, err := queryBool(c, "ativo")
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", err.Error())
	}
	page := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), repository.PriceFilter{
		Category:   c.Query("categoria"),
		SupplierID: c.Query("fornecedor_id"),
		Active:     active,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PriceTableHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "preço não encontrado")
	}
	return c.JSON(out)
}

func (h *PriceTableHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePriceRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "preço não encontrado")
	}
	return c.JSON(out)
}

func (h *PriceTableHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "preço excluído"})
}

func (h *PriceTableHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
