package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para registrar una transacción.
type CreateTransactionRequest struct {
	Description   string          `json:"descricao" validate:"required,max=200"`
	Type          string          `json:"tipo" validate:"required"`
	Category      string          `json:"categoria" validate:"required,max=50"`
	Amount        decimal.Decimal `json:"valor" validate:"gt=0"`
	Date          *Date           `json:"data"`
	Status        string          `json:"status"`
	Counterparty  string          `json:"cliente_fornecedor" validate:"max=200"`
	PaymentMethod string          `json:"forma_pagamento" validate:"max=50"`
	OrderID       *string         `json:"pedido_id"`
	Notes         string          `json:"observacoes"`
	Receipt       string          `json:"comprovante"`
}

// UpdateTransactionRequest actualización parcial de una transacción.
type UpdateTransactionRequest struct {
	Description   *string          `json:"descricao" validate:"omitempty,min=1,max=200"`
	Type          *string          `json:"tipo"`
	Category      *string          `json:"categoria"`
	Amount        *decimal.Decimal `json:"valor"`
	Date          *Date            `json:"data"`
	Status        *string          `json:"status"`
	Counterparty  *string          `json:"cliente_fornecedor"`
	PaymentMethod *string          `json:"forma_pagamento"`
	OrderID       *string          `json:"pedido_id"`
	Notes         *string          `json:"observacoes"`
	Receipt       *string          `json:"comprovante"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Description   string          `json:"descricao"`
	Type          string          `json:"tipo"`
	Category      string          `json:"categoria"`
	Amount        decimal.Decimal `json:"valor"`
	Date          time.Time       `json:"data"`
	Status        string          `json:"status"`
	Counterparty  string          `json:"cliente_fornecedor"`
	PaymentMethod string          `json:"forma_pagamento"`
	OrderID       *string         `json:"pedido_id"`
	Notes         string          `json:"observacoes"`
	Receipt       string          `json:"comprovante"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// FinanceStatsResponse resumen financiero del mes.
type FinanceStatsResponse struct {
	MonthIncome       decimal.Decimal `json:"receitas_mes"`
	MonthExpenses     decimal.Decimal `json:"despesas_mes"`
	MonthBalance      decimal.Decimal `json:"saldo_mes"`
	Pending           int             `json:"pendentes"`
	IncomeByCategory  []LabelAmount   `json:"receitas_por_categoria"`
	ExpenseByCategory []LabelAmount   `json:"despesas_por_categoria"`
}

// CashFlowResponse flujo de caja mensual, del mes más antiguo al actual.
type CashFlowResponse struct {
	Months   []string          `json:"meses"`
	Income   []decimal.Decimal `json:"receitas"`
	Expenses []decimal.Decimal `json:"despesas"`
}
