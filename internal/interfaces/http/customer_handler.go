package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

type customerService interface {
	Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error)
	List(ctx context.Context, f repository.CustomerFilter) (*dto.CustomerListResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*dto.CustomerStatsResponse, error)
}

// CustomerHandler maneja las peticiones HTTP de clientes (CRM, protegido).
type CustomerHandler struct {
	uc customerService
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc customerService) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
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
// @Summary      Listar clientes
// @Description  Filtros por igualdad (status, tipo, segmento); cidade es búsqueda parcial sin distinguir mayúsculas.
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "Prospect | Ativo | Inativo | Bloqueado"
// @Param        tipo      query  string  false  "tipo de cliente"
// @Param        segmento  query  string  false  "segmento"
// @Param        cidade    query  string  false  "cidade (parcial)"
// @Param        limit     query  int     false  "default 50, max 200"
// @Param        offset    query  int     false  "default 0"
// @Success      200  {object}  dto.CustomerListResponse
// @Router       /api/clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), repository.CustomerFilter{
		Status:  c.Query("status"),
		Type:    c.Query("tipo"),
		Segment: c.Query("segmento"),
		City:    c.Query("cidade"),
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/clientes/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "cliente não encontrado")
	}
	return c.JSON(out)
}

// Update PUT /api/clientes/:id (parcial)
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "cliente não encontrado")
	}
	return c.JSON(out)
}

// Delete DELETE /api/clientes/:id. 409 si el cliente tiene pedidos o demandas.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente excluído"})
}

// Stats godoc
// @Summary      Estadísticas de clientes
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CustomerStatsResponse
// @Router       /api/clientes/stats [get]
func (h *CustomerHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
