package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FindingDTO hallazgo del asistente. Tipo y Prioridade dependen de la variante.
type FindingDTO struct {
	Tipo       string           `json:"tipo,omitempty"`
	Titulo     string           `json:"titulo"`
	Descricao  string           `json:"descricao"`
	Prioridade string           `json:"prioridade,omitempty"`
	Categoria  string           `json:"categoria"`
	Variacao   *decimal.Decimal `json:"variacao_percentual,omitempty"`
}

// GeneralAnalysisResponse resultado del análisis general.
type GeneralAnalysisResponse struct {
	Insights        []FindingDTO `json:"insights"`
	Alerts          []FindingDTO `json:"alertas"`
	Recommendations []FindingDTO `json:"recomendacoes"`
}

// TrendsResponse tendencias de facturación.
type TrendsResponse struct {
	Trends []FindingDTO `json:"tendencias"`
}

// SuggestionsResponse acciones sugeridas.
type SuggestionsResponse struct {
	Actions []FindingDTO `json:"acoes"`
}

// ReportSummary resumen numérico del informe completo.
type ReportSummary struct {
	TotalCustomers int `json:"total_clientes"`
	TotalOrders    int `json:"total_pedidos"`
	OrdersInMonth  int `json:"pedidos_mes"`
}

// FullReportResponse informe completo del asistente.
type FullReportResponse struct {
	Timestamp   time.Time               `json:"timestamp"`
	Summary     ReportSummary           `json:"resumo"`
	General     GeneralAnalysisResponse `json:"analise_geral"`
	Trends      []FindingDTO            `json:"tendencias"`
	Actions     []FindingDTO            `json:"acoes_sugeridas"`
	HealthScore int                     `json:"score_saude"`
}

// QuestionRequest pregunta en lenguaje natural.
type QuestionRequest struct {
	Question string `json:"pergunta"`
}

// AnswerResponse respuesta del asistente.
type AnswerResponse struct {
	Answer string `json:"resposta"`
}
