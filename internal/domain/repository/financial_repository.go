package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

// TransactionFilter filtros de listado de transacciones; From/To acotan la fecha.
type TransactionFilter struct {
	Type     string
	Category string
	Status   string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// FinancialRepository define el puerto de persistencia para FinancialTransaction.
type FinancialRepository interface {
	Create(ctx context.Context, tx *entity.FinancialTransaction) error
	GetByID(ctx context.Context, id string) (*entity.FinancialTransaction, error)
	List(ctx context.Context, f TransactionFilter) ([]*entity.FinancialTransaction, error)
	Update(ctx context.Context, tx *entity.FinancialTransaction) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status string) (int, error)
	// SumByCategory totales por categoría de un tipo en [from, to).
	SumByCategory(ctx context.Context, txType string, from, to time.Time) ([]GroupAmount, error)
}
