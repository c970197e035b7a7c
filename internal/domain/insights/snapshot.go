package insights

import "github.com/shopspring/decimal"

// Metric identifica una métrica del snapshot.
type Metric string

const (
	MetricTotalCustomers             Metric = "total_clientes"
	MetricActiveCustomers            Metric = "clientes_ativos"
	MetricProspectCustomers          Metric = "clientes_prospect"
	MetricNewCustomers               Metric = "clientes_novos"
	MetricStaleActiveCustomers       Metric = "clientes_sem_contato"
	MetricSingleOrderActiveCustomers Metric = "clientes_pedido_unico"
	MetricTotalOrders                Metric = "total_pedidos"
	MetricInProgressOrders           Metric = "pedidos_andamento"
	MetricOverdueOrders              Metric = "pedidos_atrasados"
	MetricOrdersInWindow             Metric = "pedidos_mes"
	MetricOrdersPrevWindow           Metric = "pedidos_mes_anterior"
	MetricRevenue                    Metric = "faturamento_mes"
	MetricIncome                     Metric = "receitas_mes"
	MetricExpenses                   Metric = "despesas_mes"
	MetricMarginAverage              Metric = "margem_media"
	MetricUrgentDemands              Metric = "demandas_urgentes"
	MetricDemandsInCreation          Metric = "demandas_criacao"
	MetricDemandsAwaitingApproval    Metric = "demandas_aguardando"
	MetricMonthlyRevenue             Metric = "faturamento_historico"
)

// Snapshot métricas agregadas para una ventana de referencia.
//
// Cada métrica se obtiene de forma independiente; las que fallaron quedan en
// Missing y las reglas que dependen de ellas no producen hallazgos.
type Snapshot struct {
	Window Window

	TotalCustomers             int
	ActiveCustomers            int
	ProspectCustomers          int
	NewCustomers               int
	StaleActiveCustomers       int
	SingleOrderActiveCustomers int

	TotalOrders      int
	InProgressOrders int
	OverdueOrders    int
	OrdersInWindow   int
	OrdersPrevWindow int

	Revenue  decimal.Decimal // pedidos concluidos en la ventana
	Income   decimal.Decimal // transacciones Receita en la ventana
	Expenses decimal.Decimal // transacciones Despesa en la ventana

	MarginAverage decimal.Decimal
	MarginSamples int

	UrgentDemands           int
	DemandsInCreation       int
	DemandsAwaitingApproval int

	// MonthlyRevenue facturación de pedidos concluidos por mes, del más antiguo al actual.
	MonthlyRevenue []decimal.Decimal

	Missing map[Metric]error
}

// Has indica si todas las métricas indicadas están disponibles.
func (s Snapshot) Has(ms ...Metric) bool {
	for _, m := range ms {
		if _, gone := s.Missing[m]; gone {
			return false
		}
	}
	return true
}

// MarkMissing registra que una métrica no pudo calcularse.
func (s *Snapshot) MarkMissing(m Metric, err error) {
	if s.Missing == nil {
		s.Missing = make(map[Metric]error)
	}
	s.Missing[m] = err
}
