package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/application/ports"
	"github.com/jhoicas/gestao-api/internal/domain"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/insights"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
	"github.com/jhoicas/gestao-api/pkg/logger"
)

// Métricas que alimenta cada operación del asistente.
var (
	generalMetrics = []insights.Metric{
		insights.MetricTotalCustomers, insights.MetricActiveCustomers, insights.MetricProspectCustomers,
		insights.MetricOverdueOrders, insights.MetricIncome, insights.MetricExpenses, insights.MetricMarginAverage,
	}
	trendMetrics  = []insights.Metric{insights.MetricMonthlyRevenue}
	actionMetrics = []insights.Metric{
		insights.MetricUrgentDemands, insights.MetricStaleActiveCustomers, insights.MetricSingleOrderActiveCustomers,
	}
)

// AssistantUseCase operaciones del asistente de análisis: análisis general,
// tendencias, sugerencias, informe completo (JSON y PDF) y preguntas.
type AssistantUseCase struct {
	aggregator *MetricAggregator
	repo       repository.AnalyticsRepository
	settings   repository.SettingsRepository
	pdf        ports.ReportPDFGenerator
	metrics    ports.AssistantMetrics
	log        *logger.Logger
	now        func() time.Time
}

// NewAssistantUseCase construye el caso de uso. pdf y metrics pueden ser nil.
func NewAssistantUseCase(
	repo repository.AnalyticsRepository,
	settings repository.SettingsRepository,
	pdf ports.ReportPDFGenerator,
	metrics ports.AssistantMetrics,
	log *logger.Logger,
) *AssistantUseCase {
	return &AssistantUseCase{
		aggregator: NewMetricAggregator(repo, log.Component("aggregator")),
		repo:       repo,
		settings:   settings,
		pdf:        pdf,
		metrics:    metrics,
		log:        log,
		now:        time.Now,
	}
}

// GeneralAnalysis conversión, prospects, atrasos, flujo de caja y margen.
func (uc *AssistantUseCase) GeneralAnalysis(ctx context.Context) (*dto.GeneralAnalysisResponse, error) {
	s, err := uc.aggregator.Collect(ctx, uc.now(), generalMetrics...)
	if err != nil {
		return nil, err
	}
	out := uc.general(s)
	return &out, nil
}

// Trends tendencia de facturación de los últimos meses.
func (uc *AssistantUseCase) Trends(ctx context.Context) (*dto.TrendsResponse, error) {
	s, err := uc.aggregator.Collect(ctx, uc.now(), trendMetrics...)
	if err != nil {
		return nil, err
	}
	return &dto.TrendsResponse{Trends: uc.findings(insights.AnalyzeTrends(s), insights.KindTrend)}, nil
}

// Suggestions acciones sugeridas.
func (uc *AssistantUseCase) Suggestions(ctx context.Context) (*dto.SuggestionsResponse, error) {
	s, err := uc.aggregator.Collect(ctx, uc.now(), actionMetrics...)
	if err != nil {
		return nil, err
	}
	return &dto.SuggestionsResponse{Actions: uc.findings(insights.SuggestActions(s), insights.KindAction)}, nil
}

// FullReport informe completo sobre un único snapshot.
func (uc *AssistantUseCase) FullReport(ctx context.Context) (*dto.FullReportResponse, error) {
	now := uc.now()
	s, err := uc.aggregator.Collect(ctx, now)
	if err != nil {
		return nil, err
	}

	score := insights.HealthScore(s)
	if uc.metrics != nil {
		uc.metrics.SetHealthScore(score)
	}

	return &dto.FullReportResponse{
		Timestamp: now,
		Summary: dto.ReportSummary{
			TotalCustomers: s.TotalCustomers,
			TotalOrders:    s.TotalOrders,
			OrdersInMonth:  s.OrdersInWindow,
		},
		General:     uc.general(s),
		Trends:      uc.findings(insights.AnalyzeTrends(s), insights.KindTrend),
		Actions:     uc.findings(insights.SuggestActions(s), insights.KindAction),
		HealthScore: score,
	}, nil
}

// FullReportPDF renderiza el informe completo con el nombre de la empresa.
func (uc *AssistantUseCase) FullReportPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("assistant.FullReportPDF: gerador de PDF não configurado")
	}
	report, err := uc.FullReport(ctx)
	if err != nil {
		return nil, err
	}

	company := entity.DefaultCompanySettings().CompanyName
	if uc.settings != nil {
		cur, err := uc.settings.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
		}
		if cur != nil && cur.CompanyName != "" {
			company = cur.CompanyName
		}
	}

	doc, err := uc.pdf.GenerateAssistantReport(ctx, company, report)
	if err != nil {
		return nil, fmt.Errorf("assistant.FullReportPDF: %w", err)
	}
	return doc, nil
}

// Ask responde una pregunta en lenguaje natural. Solo consulta los datos del
// tema detectado; una pregunta no reconocida devuelve el texto de ayuda.
func (uc *AssistantUseCase) Ask(ctx context.Context, question string) (*dto.AnswerResponse, error) {
	topic := insights.ClassifyQuestion(question)
	answer, err := uc.answer(ctx, topic)
	if err != nil {
		uc.log.Warn().Err(err).Str("topic", topic.String()).Msg("pergunta sem dados")
		return nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}
	uc.log.Debug().Str("topic", topic.String()).Msg("pergunta respondida")
	return &dto.AnswerResponse{Answer: answer}, nil
}

func (uc *AssistantUseCase) answer(ctx context.Context, topic insights.Topic) (string, error) {
	switch topic {
	case insights.TopicRevenue:
		w := insights.MonthWindow(uc.now())
		v, err := uc.repo.SumCompletedOrderValue(ctx, w.Start, w.End)
		if err != nil {
			return "", err
		}
		return insights.RevenueAnswer(v), nil

	case insights.TopicCustomers:
		total, err := uc.repo.CountCustomers(ctx, "")
		if err != nil {
			return "", err
		}
		active, err := uc.repo.CountCustomers(ctx, entity.CustomerStatusActive)
		if err != nil {
			return "", err
		}
		return insights.CustomersAnswer(total, active), nil

	case insights.TopicOrders:
		total, err := uc.repo.CountOrders(ctx)
		if err != nil {
			return "", err
		}
		inProgress, err := uc.repo.CountOrders(ctx, entity.InProgressOrderStatuses()...)
		if err != nil {
			return "", err
		}
		return insights.OrdersAnswer(total, inProgress), nil

	case insights.TopicOverdue:
		n, err := uc.repo.CountOverdueOrders(ctx, uc.now())
		if err != nil {
			return "", err
		}
		return insights.OverdueAnswer(n), nil
	}
	return insights.FallbackAnswer, nil
}

func (uc *AssistantUseCase) general(s insights.Snapshot) dto.GeneralAnalysisResponse {
	g := insights.AnalyzeGeneral(s)
	return dto.GeneralAnalysisResponse{
		Insights:        uc.findings(g.Insights, insights.KindInsight),
		Alerts:          uc.findings(g.Alerts, insights.KindAlert),
		Recommendations: uc.findings(g.Recommendations, insights.KindRecommendation),
	}
}

// findings convierte a DTO (lista vacía, nunca null) y cuenta los hallazgos.
func (uc *AssistantUseCase) findings(fs []insights.Finding, kind insights.Kind) []dto.FindingDTO {
	if uc.metrics != nil {
		uc.metrics.ObserveFindings(string(kind), len(fs))
	}
	out := make([]dto.FindingDTO, 0, len(fs))
	for _, f := range fs {
		out = append(out, dto.FindingDTO{
			Tipo:       f.Tone,
			Titulo:     f.Title,
			Descricao:  f.Description,
			Prioridade: f.Priority,
			Categoria:  f.Category,
			Variacao:   f.ChangePct,
		})
	}
	return out
}
