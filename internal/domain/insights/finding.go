package insights

import "github.com/shopspring/decimal"

// Kind variante de un hallazgo; determina en qué lista de la respuesta aparece.
type Kind string

const (
	KindInsight        Kind = "insight"
	KindAlert          Kind = "alerta"
	KindRecommendation Kind = "recomendacao"
	KindTrend          Kind = "tendencia"
	KindAction         Kind = "acao"
)

// Tonos (campo "tipo" de la respuesta).
const (
	ToneSuccess      = "success"
	ToneWarning      = "warning"
	ToneDanger       = "danger"
	ToneGrowth       = "crescimento"
	ToneDecline      = "declinio"
	ToneImmediate    = "acao_imediata"
	ToneRelationship = "relacionamento"
	ToneOpportunity  = "oportunidade"
)

// Áreas de negocio.
const (
	CategoryCustomers  = "clientes"
	CategorySales      = "vendas"
	CategoryOperations = "operacional"
	CategoryFinance    = "financeiro"
)

// PriorityHigh prioridad de las recomendaciones.
const PriorityHigh = "alta"

// Finding hallazgo producido por una regla.
type Finding struct {
	Kind        Kind
	Tone        string
	Title       string
	Description string
	Category    string
	Priority    string
	// ChangePct variación porcentual (solo tendencias).
	ChangePct *decimal.Decimal
}

// ByKind filtra los hallazgos de una variante manteniendo el orden.
func ByKind(fs []Finding, k Kind) []Finding {
	out := make([]Finding, 0, len(fs))
	for _, f := range fs {
		if f.Kind == k {
			out = append(out, f)
		}
	}
	return out
}
