package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `c.id, c.name, c.type, c.city, c.population, c.main_contact, c.whatsapp, c.email,
	c.status, c.segment, c.registered_at, c.last_contact_at, c.notes, c.updated_at`

func scanCustomer(row pgx.Row, extra ...any) (*entity.Customer, error) {
	var c entity.Customer
	dest := append([]any{
		&c.ID, &c.Name, &c.Type, &c.City, &c.Population, &c.MainContact, &c.WhatsApp, &c.Email,
		&c.Status, &c.Segment, &c.RegisteredAt, &c.LastContactAt, &c.Notes, &c.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, type, city, population, main_contact, whatsapp, email,
			status, segment, registered_at, last_contact_at, notes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Type, c.City, c.Population, c.MainContact, c.WhatsApp, c.Email,
		c.Status, c.Segment, c.RegisteredAt, c.LastContactAt, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("customer.Create", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; nil, nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers c WHERE c.id = $1`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("customer.GetByID: %w", err)
	}
	return c, nil
}

// List lista clientes con sus totales de pedidos, ordenados por nombre.
func (r *CustomerRepo) List(ctx context.Context, f repository.CustomerFilter) ([]repository.CustomerSummary, error) {
	var w whereBuilder
	w.addIf("c.status = ?", f.Status)
	w.addIf("c.type = ?", f.Type)
	w.addIf("c.segment = ?", f.Segment)
	if f.City != "" {
		w.add("c.city ILIKE ?", "%"+f.City+"%")
	}

	query := `
		SELECT ` + customerColumns + `,
			COALESCE(SUM(o.value), 0) AS total_value,
			COUNT(o.id)               AS order_count
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id` + w.sql() + `
		GROUP BY c.id
		ORDER BY c.name` + w.page(f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("customer.List: %w", err)
	}
	defer rows.Close()

	list := make([]repository.CustomerSummary, 0)
	for rows.Next() {
		var t entity.CustomerTotals
		c, err := scanCustomer(rows, &t.TotalValue, &t.OrderCount)
		if err != nil {
			return nil, fmt.Errorf("customer.List: scan: %w", err)
		}
		list = append(list, repository.CustomerSummary{Customer: c, Totals: t})
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, type = $3, city = $4, population = $5, main_contact = $6,
			whatsapp = $7, email = $8, status = $9, segment = $10, last_contact_at = $11, notes = $12,
			updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Type, c.City, c.Population, c.MainContact,
		c.WhatsApp, c.Email, c.Status, c.Segment, c.LastContactAt, c.Notes, c.UpdatedAt,
	)
	return affectedOne("customer.Update", tag, err)
}

// Delete elimina un cliente; ErrConflict si aún tiene pedidos o demandas.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return affectedOne("customer.Delete", tag, err)
}

// Totals suma y cantidad de pedidos del cliente.
func (r *CustomerRepo) Totals(ctx context.Context, id string) (entity.CustomerTotals, error) {
	var t entity.CustomerTotals
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(value), 0), COUNT(*) FROM orders WHERE customer_id = $1`, id,
	).Scan(&t.TotalValue, &t.OrderCount)
	if err != nil {
		return t, fmt.Errorf("customer.Totals: %w", err)
	}
	return t, nil
}
