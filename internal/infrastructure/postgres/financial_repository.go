package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

var _ repository.FinancialRepository = (*FinancialRepo)(nil)

// FinancialRepo implementación de FinancialRepository.
type FinancialRepo struct {
	q Querier
}

// NewFinancialRepository construye el adaptador.
func NewFinancialRepository(q Querier) *FinancialRepo {
	return &FinancialRepo{q: q}
}

const transactionColumns = `id, description, type, category, amount, date, status, counterparty,
	payment_method, order_id, notes, receipt, created_at`

func scanTransaction(row pgx.Row) (*entity.FinancialTransaction, error) {
	var t entity.FinancialTransaction
	err := row.Scan(
		&t.ID, &t.Description, &t.Type, &t.Category, &t.Amount, &t.Date, &t.Status, &t.Counterparty,
		&t.PaymentMethod, &t.OrderID, &t.Notes, &t.Receipt, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *FinancialRepo) Create(ctx context.Context, t *entity.FinancialTransaction) error {
	query := `
		INSERT INTO financial_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Description, t.Type, t.Category, t.Amount, t.Date, t.Status, t.Counterparty,
		t.PaymentMethod, t.OrderID, t.Notes, t.Receipt, t.CreatedAt,
	)
	if err != nil {
		return writeErr("financial.Create", err)
	}
	return nil
}

func (r *FinancialRepo) GetByID(ctx context.Context, id string) (*entity.FinancialTransaction, error) {
	t, err := scanTransaction(r.q.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM financial_transactions WHERE id = $1`, id))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("financial.GetByID: %w", err)
	}
	return t, nil
}

// List transacciones más recientes primero; From/To acotan la fecha en [From, To).
func (r *FinancialRepo) List(ctx context.Context, f repository.TransactionFilter) ([]*entity.FinancialTransaction, error) {
	var w whereBuilder
	w.addIf("type = ?", f.Type)
	w.addIf("category = ?", f.Category)
	w.addIf("status = ?", f.Status)
	if f.From != nil {
		w.add("date >= ?", *f.From)
	}
	if f.To != nil {
		w.add("date < ?", *f.To)
	}

	query := `SELECT ` + transactionColumns + ` FROM financial_transactions` + w.sql() +
		` ORDER BY date DESC` + w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("financial.List: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.FinancialTransaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("financial.List: scan: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *FinancialRepo) Update(ctx context.Context, t *entity.FinancialTransaction) error {
	query := `
		UPDATE financial_transactions SET description = $2, type = $3, category = $4, amount = $5,
			date = $6, status = $7, counterparty = $8, payment_method = $9, order_id = $10, notes = $11,
			receipt = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		t.ID, t.Description, t.Type, t.Category, t.Amount,
		t.Date, t.Status, t.Counterparty, t.PaymentMethod, t.OrderID, t.Notes,
		t.Receipt,
	)
	return affectedOne("financial.Update", tag, err)
}

func (r *FinancialRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM financial_transactions WHERE id = $1`, id)
	return affectedOne("financial.Delete", tag, err)
}

// CountByStatus cantidad de transacciones en un status.
func (r *FinancialRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	return queryCount(ctx, r.q, "financial.CountByStatus",
		`SELECT COUNT(*) FROM financial_transactions WHERE status = $1`, status)
}

// SumByCategory totales por categoría de un tipo en [from, to), mayor primero.
func (r *FinancialRepo) SumByCategory(ctx context.Context, txType string, from, to time.Time) ([]repository.GroupAmount, error) {
	const query = `
		SELECT category, COALESCE(SUM(amount), 0) AS total
		FROM financial_transactions
		WHERE type = $1 AND date >= $2 AND date < $3
		GROUP BY category
		ORDER BY total DESC`
	return queryGroupAmounts(ctx, r.q, "financial.SumByCategory", query, txType, from, to)
}
