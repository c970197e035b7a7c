package dto

import "github.com/shopspring/decimal"

// DashboardResponse KPIs y series del panel principal.
type DashboardResponse struct {
	KPIs   DashboardKPIs   `json:"kpis"`
	Charts DashboardCharts `json:"graficos"`
}

// DashboardKPIs indicadores del mes en curso.
type DashboardKPIs struct {
	TotalCustomers    int             `json:"total_clientes"`
	ActiveCustomers   int             `json:"clientes_ativos"`
	NewCustomers      int             `json:"clientes_novos_mes"`
	TotalOrders       int             `json:"total_pedidos"`
	InProgressOrders  int             `json:"pedidos_andamento"`
	OverdueOrders     int             `json:"pedidos_atrasados"`
	MonthRevenue      decimal.Decimal `json:"faturamento_mes"`
	AvgMargin         decimal.Decimal `json:"margem_media"`
	MonthIncome       decimal.Decimal `json:"receitas_mes"`
	MonthExpenses     decimal.Decimal `json:"despesas_mes"`
	MonthBalance      decimal.Decimal `json:"saldo_mes"`
	DemandsInCreation int             `json:"demandas_criacao"`
	DemandsAwaiting   int             `json:"demandas_aguardando"`
	UrgentDemands     int             `json:"demandas_urgentes"`
}

// DashboardCharts series para gráficos.
type DashboardCharts struct {
	OrdersByStatus []LabelCount     `json:"pedidos_por_status"`
	RevenueHistory []LabelAmount    `json:"faturamento_historico"`
	TopCustomers   []TopCustomerDTO `json:"top_clientes"`
}
