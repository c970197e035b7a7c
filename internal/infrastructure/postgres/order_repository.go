package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, code, customer_id, service_type, description, status, priority, placed_at,
	delivery_at, owner, value, cost, payment_method, payment_status, notes, attachments, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.Code, &o.CustomerID, &o.ServiceType, &o.Description, &o.Status, &o.Priority, &o.PlacedAt,
		&o.DeliveryAt, &o.Owner, &o.Value, &o.Cost, &o.PaymentMethod, &o.PaymentStatus, &o.Notes,
		&o.Attachments, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste un pedido. Código repetido devuelve ErrDuplicate; cliente inexistente ErrConflict.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Code, o.CustomerID, o.ServiceType, o.Description, o.Status, o.Priority, o.PlacedAt,
		o.DeliveryAt, o.Owner, o.Value, o.Cost, o.PaymentMethod, o.PaymentStatus, o.Notes,
		o.Attachments, o.UpdatedAt,
	)
	if err != nil {
		return writeErr("order.Create", err)
	}
	return nil
}

// GetByID obtiene un pedido; nil, nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("order.GetByID: %w", err)
	}
	return o, nil
}

// List pedidos más recientes primero.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	var w whereBuilder
	w.addIf("customer_id = ?", f.CustomerID)
	w.addIf("status = ?", f.Status)
	w.addIf("priority = ?", f.Priority)
	w.addIf("owner = ?", f.Owner)
	if f.PlacedFrom != nil {
		w.add("placed_at >= ?", *f.PlacedFrom)
	}
	if f.PlacedTo != nil {
		w.add("placed_at < ?", *f.PlacedTo)
	}

	query := `SELECT ` + orderColumns + ` FROM orders` + w.sql() +
		` ORDER BY placed_at DESC` + w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("order.List: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("order.List: scan: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos editables del pedido.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders SET code = $2, customer_id = $3, service_type = $4, description = $5, status = $6,
			priority = $7, placed_at = $8, delivery_at = $9, owner = $10, value = $11, cost = $12,
			payment_method = $13, payment_status = $14, notes = $15, attachments = $16, updated_at = $17
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		o.ID, o.Code, o.CustomerID, o.ServiceType, o.Description, o.Status,
		o.Priority, o.PlacedAt, o.DeliveryAt, o.Owner, o.Value, o.Cost,
		o.PaymentMethod, o.PaymentStatus, o.Notes, o.Attachments, o.UpdatedAt,
	)
	return affectedOne("order.Update", tag, err)
}

// Delete elimina un pedido; ErrConflict si hay transacciones o demandas que lo referencian.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	return affectedOne("order.Delete", tag, err)
}
