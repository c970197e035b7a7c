package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

type orderService interface {
	Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetByID(ctx context.Context, id string) (*dto.OrderResponse, error)
	List(ctx context.Context, f repository.OrderFilter) (*dto.OrderListResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*dto.OrderStatsResponse, error)
}

// OrderHandler pedidos.
type OrderHandler struct {
	uc orderService
}

func NewOrderHandler(uc orderService) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Sin codigo se genera PED-YYYYMMDD-XXXXXXXX. El cliente debe existir.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        cliente_id   query  string  false  "cliente"
// @Param        status       query  string  false  "status"
// @Param        prioridade   query  string  false  "prioridade"
// @Param        responsavel  query  string  false  "responsável"
// @Param        data_inicio  query  string  false  "data_pedido >= (YYYY-MM-DD)"
// @Param        data_fim     query  string  false  "data_pedido < (YYYY-MM-DD)"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pedidos [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	from, err := queryDate(c, "data_inicio")
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", err.Error())
	}
	to, err := queryDate(c, "data_fim")
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", err.Error())
	}
	page := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), repository.OrderFilter{
		CustomerID: c.Query("cliente_id"),
		Status:     c.Query("status"),
		Priority:   c.Query("prioridade"),
		Owner:      c.Query("responsavel"),
		PlacedFrom: from,
		PlacedTo:   to,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido não encontrado")
	}
	return c.JSON(out)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido não encontrado")
	}
	return c.JSON(out)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido excluído"})
}

// Stats godoc
// @Summary      Estadísticas de pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderStatsResponse
// @Router       /api/pedidos/stats [get]
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
