package ports

import (
	"context"

	"github.com/jhoicas/gestao-api/internal/application/dto"
)

// ReportPDFGenerator puerto de salida para renderizar el informe completo del asistente.
type ReportPDFGenerator interface {
	GenerateAssistantReport(ctx context.Context, companyName string, report *dto.FullReportResponse) ([]byte, error)
}

// AssistantMetrics puerto de observabilidad del asistente (Prometheus, noop en tests).
type AssistantMetrics interface {
	ObserveFindings(kind string, n int)
	SetHealthScore(score int)
}
