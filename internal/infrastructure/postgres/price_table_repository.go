package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

var _ repository.PriceTableRepository = (*PriceTableRepo)(nil)

// PriceTableRepo implementación de PriceTableRepository.
type PriceTableRepo struct {
	q Querier
}

// NewPriceTableRepository construye el adaptador.
func NewPriceTableRepository(q Querier) *PriceTableRepo {
	return &PriceTableRepo{q: q}
}

const priceColumns = `id, item, category, description, cost_price, markup, unit, supplier_id, active, updated_at`

func scanPrice(row pgx.Row) (*entity.PriceEntry, error) {
	var p entity.PriceEntry
	err := row.Scan(
		&p.ID, &p.Item, &p.Category, &p.Description, &p.CostPrice, &p.Markup, &p.Unit, &p.SupplierID,
		&p.Active, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PriceTableRepo) Create(ctx context.Context, p *entity.PriceEntry) error {
	query := `
		INSERT INTO price_entries (` + priceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Item, p.Category, p.Description, p.CostPrice, p.Markup, p.Unit, p.SupplierID,
		p.Active, p.UpdatedAt,
	)
	if err != nil {
		return writeErr("price_table.Create", err)
	}
	return nil
}

func (r *PriceTableRepo) GetByID(ctx context.Context, id string) (*entity.PriceEntry, error) {
	p, err := scanPrice(r.q.QueryRow(ctx, `SELECT `+priceColumns+` FROM price_entries WHERE id = $1`, id))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("price_table.GetByID: %w", err)
	}
	return p, nil
}

// List precios por categoría e item.
func (r *PriceTableRepo) List(ctx context.Context, f repository.PriceFilter) ([]*entity.PriceEntry, error) {
	var w whereBuilder
	w.addIf("category = ?", f.Category)
	w.addIf("supplier_id = ?", f.SupplierID)
	if f.Active != nil {
		w.add("active = ?", *f.Active)
	}

	query := `SELECT ` + priceColumns + ` FROM price_entries` + w.sql() +
		` ORDER BY category, item` + w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("price_table.List: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.PriceEntry, 0)
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, fmt.Errorf("price_table.List: scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PriceTableRepo) Update(ctx context.Context, p *entity.PriceEntry) error {
	query := `
		UPDATE price_entries SET item = $2, category = $3, description = $4, cost_price = $5, markup = $6,
			unit = $7, supplier_id = $8, active = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Item, p.Category, p.Description, p.CostPrice, p.Markup,
		p.Unit, p.SupplierID, p.Active, p.UpdatedAt,
	)
	return affectedOne("price_table.Update", tag, err)
}

func (r *PriceTableRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM price_entries WHERE id = $1`, id)
	return affectedOne("price_table.Delete", tag, err)
}

// Count entradas; onlyActive limita a las activas.
func (r *PriceTableRepo) Count(ctx context.Context, onlyActive bool) (int, error) {
	query := `SELECT COUNT(*) FROM price_entries`
	if onlyActive {
		query += ` WHERE active`
	}
	return queryCount(ctx, r.q, "price_table.Count", query)
}

func (r *PriceTableRepo) CountByCategory(ctx context.Context) ([]repository.GroupCount, error) {
	return queryGroupCounts(ctx, r.q, "price_table.CountByCategory", `
		SELECT category, COUNT(*) FROM price_entries GROUP BY category ORDER BY category`)
}

// AvgMarkupByCategory markup medio por categoría, redondeado a 2 decimales.
func (r *PriceTableRepo) AvgMarkupByCategory(ctx context.Context) ([]repository.GroupAmount, error) {
	return queryGroupAmounts(ctx, r.q, "price_table.AvgMarkupByCategory", `
		SELECT category, ROUND(AVG(markup), 2) FROM price_entries GROUP BY category ORDER BY category`)
}
