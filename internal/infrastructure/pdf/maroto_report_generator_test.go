package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/infrastructure/pdf"
)

func TestGenerateAssistantReport(t *testing.T) {
	report := &dto.FullReportResponse{
		Timestamp: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		Summary:   dto.ReportSummary{TotalCustomers: 12, TotalOrders: 30, OrdersInMonth: 4},
		General: dto.GeneralAnalysisResponse{
			Alerts: []dto.FindingDTO{{Tipo: "danger", Titulo: "Pedidos Atrasados", Descricao: "2 pedidos estão atrasados."}},
		},
		Actions:     []dto.FindingDTO{{Tipo: "acao_imediata", Titulo: "Priorizar Demandas Urgentes", Descricao: "1 demanda."}},
		HealthScore: 76,
	}

	doc, err := pdf.NewMarotoReportGenerator().GenerateAssistantReport(context.Background(), "TechMídia Agência", report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateAssistantReport_Nil(t *testing.T) {
	_, err := pdf.NewMarotoReportGenerator().GenerateAssistantReport(context.Background(), "x", nil)
	assert.Error(t, err)
}
