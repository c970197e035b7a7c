package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción financiera.
const (
	TransactionRevenue = "Receita"
	TransactionExpense = "Despesa"
)

// Estados de pago de una transacción.
const (
	TransactionPaid    = "Pago"
	TransactionPending = "Pendente"
	TransactionLate    = "Atrasado"
)

// FinancialTransaction ingreso o gasto registrado en el flujo de caja.
type FinancialTransaction struct {
	ID            string
	Description   string
	Type          string
	Category      string
	Amount        decimal.Decimal
	Date          time.Time
	Status        string
	Counterparty  string
	PaymentMethod string
	OrderID       *string
	Notes         string
	Receipt       string
	CreatedAt     time.Time
}

// IsValidTransactionType indica si s es Receita o Despesa.
func IsValidTransactionType(s string) bool {
	return s == TransactionRevenue || s == TransactionExpense
}

// IsValidTransactionStatus indica si s pertenece a la enumeración de estados de pago.
func IsValidTransactionStatus(s string) bool {
	switch s {
	case TransactionPaid, TransactionPending, TransactionLate:
		return true
	}
	return false
}
