// Package pdf genera la versión PDF del informe completo del asistente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título     │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Clientes | Pedidos | Pedidos no mês | Score       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIONES: Insights / Alertas / Recomendações /            │
//	│             Tendências / Ações sugeridas                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/application/ports"
	"github.com/jhoicas/gestao-api/internal/domain/insights"
)

var _ ports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorSuccess = &props.Color{Red: 16, Green: 185, Blue: 129}
	colorWarning = &props.Color{Red: 245, Green: 158, Blue: 11}
	colorDanger  = &props.Color{Red: 239, Green: 68, Blue: 68}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateAssistantReport genera el PDF del informe y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateAssistantReport(
	_ context.Context,
	companyName string,
	report *dto.FullReportResponse,
) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: relatório vazio")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório do Assistente", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRows("Insights", report.General.Insights)...)
	m.AddRows(sectionRows("Alertas", report.General.Alerts)...)
	m.AddRows(sectionRows("Recomendações", report.General.Recommendations)...)
	m.AddRows(sectionRows("Tendências", report.Trends)...)
	m.AddRows(sectionRows("Ações sugeridas", report.Actions)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Análise gerada automaticamente a partir dos dados cadastrados no sistema.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa y título (izq), fecha (der).
func headerRow(companyName string, report *dto.FullReportResponse) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(nonEmpty(companyName, "Empresa"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório Completo do Assistente", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em", props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(report.Timestamp.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: cuatro indicadores en columnas iguales.
func summaryRow(report *dto.FullReportResponse) core.Row {
	kpi := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 8, Color: color,
			}),
		)
	}
	return row.New(20).Add(
		kpi("Clientes", strconv.Itoa(report.Summary.TotalCustomers), colorPrimary),
		kpi("Pedidos", strconv.Itoa(report.Summary.TotalOrders), colorPrimary),
		kpi("Pedidos no mês", strconv.Itoa(report.Summary.OrdersInMonth), colorPrimary),
		kpi("Score de saúde", fmt.Sprintf("%d/100", report.HealthScore), scoreColor(report.HealthScore)),
	)
}

// sectionRows: título de la sección y una fila por hallazgo.
func sectionRows(title string, findings []dto.FindingDTO) []core.Row {
	rows := []core.Row{
		row.New(9).Add(col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3}),
		)),
	}
	if len(findings) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Nenhum item.", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
		)))
	}
	for _, f := range findings {
		heading := f.Titulo
		if f.Prioridade != "" {
			heading += " (prioridade " + f.Prioridade + ")"
		}
		rows = append(rows, row.New(12).Add(
			col.New(12).Add(
				text.New(heading, props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 1, Left: 2, Color: toneColor(f.Tipo),
				}),
				text.New(f.Descricao, props.Text{Size: 8, Top: 6, Left: 2}),
			),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func toneColor(tone string) *props.Color {
	switch tone {
	case insights.ToneSuccess, insights.ToneGrowth, insights.ToneOpportunity:
		return colorSuccess
	case insights.ToneWarning, insights.ToneRelationship:
		return colorWarning
	case insights.ToneDanger, insights.ToneDecline, insights.ToneImmediate:
		return colorDanger
	}
	return nil
}

func scoreColor(score int) *props.Color {
	switch {
	case score >= 70:
		return colorSuccess
	case score >= 40:
		return colorWarning
	}
	return colorDanger
}
