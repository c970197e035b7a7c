// Package insights contiene el motor de reglas del asistente: análisis general,
// tendencias, acciones sugeridas, score de salud y clasificación de preguntas.
//
// Todo es puro: recibe un Snapshot ya agregado y no accede a la base de datos.
package insights

// Rule regla con nombre que se evalúa sobre un Snapshot.
// Requires lista las métricas sin las cuales la regla no se evalúa.
type Rule struct {
	Name     string
	Requires []Metric
	Eval     func(Snapshot) []Finding
}

// Engine ejecuta un conjunto ordenado de reglas.
type Engine struct {
	rules []Rule
}

// NewEngine crea un motor con las reglas dadas, en ese orden.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Run evalúa todas las reglas (sin cortocircuito) y concatena sus hallazgos.
func (e *Engine) Run(s Snapshot) []Finding {
	var all []Finding
	for _, r := range e.rules {
		if !s.Has(r.Requires...) {
			continue
		}
		all = append(all, r.Eval(s)...)
	}
	return all
}

// Rules nombres de las reglas registradas, en orden.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

// GeneralAnalysis resultado del análisis general agrupado por variante.
type GeneralAnalysis struct {
	Insights        []Finding
	Alerts          []Finding
	Recommendations []Finding
}

var (
	generalEngine = NewEngine(GeneralRules()...)
	trendEngine   = NewEngine(TrendRules()...)
	actionEngine  = NewEngine(ActionRules()...)
)

// AnalyzeGeneral aplica las reglas generales: conversión, prospects, atrasos,
// flujo de caja y margen.
func AnalyzeGeneral(s Snapshot) GeneralAnalysis {
	fs := generalEngine.Run(s)
	return GeneralAnalysis{
		Insights:        ByKind(fs, KindInsight),
		Alerts:          ByKind(fs, KindAlert),
		Recommendations: ByKind(fs, KindRecommendation),
	}
}

// AnalyzeTrends aplica la regla de tendencia de facturación.
func AnalyzeTrends(s Snapshot) []Finding {
	return trendEngine.Run(s)
}

// SuggestActions aplica las reglas de acciones sugeridas.
func SuggestActions(s Snapshot) []Finding {
	return actionEngine.Run(s)
}
