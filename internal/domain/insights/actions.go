package insights

import "fmt"

// StaleContactDays días sin contacto a partir de los cuales un cliente activo
// necesita reactivar la relación.
const StaleContactDays = 30

// ActionRules reglas de acciones sugeridas, en orden.
func ActionRules() []Rule {
	return []Rule{
		{Name: "demandas_urgentes", Requires: []Metric{MetricUrgentDemands}, Eval: urgentDemandsRule},
		{Name: "reativar_clientes", Requires: []Metric{MetricStaleActiveCustomers}, Eval: staleCustomersRule},
		{Name: "upsell", Requires: []Metric{MetricSingleOrderActiveCustomers}, Eval: upsellRule},
	}
}

func urgentDemandsRule(s Snapshot) []Finding {
	if s.UrgentDemands <= 0 {
		return nil
	}
	return []Finding{{
		Kind:        KindAction,
		Tone:        ToneImmediate,
		Title:       "Priorizar Demandas Urgentes",
		Description: fmt.Sprintf("Existem %d demandas marcadas como urgentes.", s.UrgentDemands),
		Category:    CategoryOperations,
	}}
}

func staleCustomersRule(s Snapshot) []Finding {
	if s.StaleActiveCustomers <= 0 {
		return nil
	}
	return []Finding{{
		Kind:        KindAction,
		Tone:        ToneRelationship,
		Title:       "Reativar Relacionamento com Clientes",
		Description: fmt.Sprintf("%d clientes ativos não têm contato há mais de %d dias.", s.StaleActiveCustomers, StaleContactDays),
		Category:    CategorySales,
	}}
}

func upsellRule(s Snapshot) []Finding {
	if s.SingleOrderActiveCustomers <= 0 {
		return nil
	}
	return []Finding{{
		Kind:        KindAction,
		Tone:        ToneOpportunity,
		Title:       "Oportunidades de Upsell",
		Description: fmt.Sprintf("%d clientes ativos fizeram apenas 1 pedido. Ofereça novos serviços.", s.SingleOrderActiveCustomers),
		Category:    CategorySales,
	}}
}
