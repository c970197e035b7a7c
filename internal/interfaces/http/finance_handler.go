package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

type financeService interface {
	Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error)
	List(ctx context.Context, f repository.TransactionFilter) (*dto.TransactionListResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*dto.FinanceStatsResponse, error)
	CashFlow(ctx context.Context) (*dto.CashFlowResponse, error)
}

// FinanceHandler transacciones financieras y flujo de caja.
type FinanceHandler struct {
	uc financeService
}

func NewFinanceHandler(uc financeService) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar transacción
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "transação"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/financeiro [post]
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
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
// @Summary      Listar transacciones
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        tipo         query  string  false  "Receita | Despesa"
// @Param        categoria    query  string  false  "categoria"
// @Param        status       query  string  false  "Pago | Pendente | Atrasado"
// @Param        data_inicio  query  string  false  "data >= (YYYY-MM-DD)"
// @Param        data_fim     query  string  false  "data < (YYYY-MM-DD)"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/financeiro [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	from, err := queryDate(c, "data_inicio")
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", err.Error())
	}
	to, err := queryDate(c, "data_fim")
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", err.Error())
	}
	page := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), repository.TransactionFilter{
		Type:     c.Query("tipo"),
		Category: c.Query("categoria"),
		Status:   c.Query("status"),
		From:     from,
		To:       to,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FinanceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "transação não encontrada")
	}
	return c.JSON(out)
}

func (h *FinanceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "transação não encontrada")
	}
	return c.JSON(out)
}

func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "transação excluída"})
}

// Stats godoc
// @Summary      Resumen financiero del mes
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FinanceStatsResponse
// @Router       /api/financeiro/stats [get]
func (h *FinanceHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CashFlow godoc
// @Summary      Flujo de caja de los últimos 12 meses
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CashFlowResponse
// @Router       /api/financeiro/fluxo-caixa [get]
func (h *FinanceHandler) CashFlow(c *fiber.Ctx) error {
	out, err := h.uc.CashFlow(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
