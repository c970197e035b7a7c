package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-api/internal/application/dto"
)

type assistantService interface {
	GeneralAnalysis(ctx context.Context) (*dto.GeneralAnalysisResponse, error)
	Trends(ctx context.Context) (*dto.TrendsResponse, error)
	Suggestions(ctx context.Context) (*dto.SuggestionsResponse, error)
	FullReport(ctx context.Context) (*dto.FullReportResponse, error)
	FullReportPDF(ctx context.Context) ([]byte, error)
	Ask(ctx context.Context, question string) (*dto.AnswerResponse, error)
}

// AssistantHandler expone el asistente de insights (reglas sobre métricas agregadas).
type AssistantHandler struct {
	uc assistantService
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc assistantService) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// GeneralAnalysis godoc
// @Summary      Análisis general del negocio
// @Description  Conversión, prospects, pedidos atrasados, flujo de caja y margen.
// @Tags         assistente-ia
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GeneralAnalysisResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/assistente-ia/analise-geral [get]
func (h *AssistantHandler) GeneralAnalysis(c *fiber.Ctx) error {
	out, err := h.uc.GeneralAnalysis(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Trends godoc
// @Summary      Tendencia de facturación (últimos 6 meses)
// @Tags         assistente-ia
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TrendsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/assistente-ia/tendencias [get]
func (h *AssistantHandler) Trends(c *fiber.Ctx) error {
	out, err := h.uc.Trends(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Suggestions godoc
// @Summary      Acciones sugeridas
// @Tags         assistente-ia
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuggestionsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/assistente-ia/sugestoes [get]
func (h *AssistantHandler) Suggestions(c *fiber.Ctx) error {
	out, err := h.uc.Suggestions(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FullReport godoc
// @Summary      Informe completo con score de salud
// @Tags         assistente-ia
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FullReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/assistente-ia/relatorio-completo [get]
func (h *AssistantHandler) FullReport(c *fiber.Ctx) error {
	out, err := h.uc.FullReport(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FullReportPDF godoc
// @Summary      Informe completo en PDF
// @Tags         assistente-ia
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/assistente-ia/relatorio-completo/pdf [get]
func (h *AssistantHandler) FullReportPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.FullReportPDF(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("relatorio-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// Ask godoc
// @Summary      Pregunta en lenguaje natural
// @Description  Reconoce faturamento/receita, clientes, pedidos y atrasos; cualquier otra pregunta, o un cuerpo vacío, recibe una respuesta de ayuda.
// @Tags         assistente-ia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuestionRequest  true  "pergunta"
// @Success      200  {object}  dto.AnswerResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/assistente-ia/pergunta [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	// Un cuerpo vacío o ilegible cuenta como pregunta vacía: recibe la respuesta de ayuda.
	var in dto.QuestionRequest
	if err := c.BodyParser(&in); err != nil {
		in.Question = ""
	}
	out, err := h.uc.Ask(c.UserContext(), in.Question)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
