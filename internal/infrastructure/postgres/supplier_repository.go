package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, service_type, contact, whatsapp, email, city, avg_lead_days, rating,
	status, notes, price_sheet, created_at, updated_at`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.Name, &s.ServiceType, &s.Contact, &s.WhatsApp, &s.Email, &s.City, &s.AvgLeadDays, &s.Rating,
		&s.Status, &s.Notes, &s.PriceSheet, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.ServiceType, s.Contact, s.WhatsApp, s.Email, s.City, s.AvgLeadDays, s.Rating,
		s.Status, s.Notes, s.PriceSheet, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return writeErr("supplier.Create", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("supplier.GetByID: %w", err)
	}
	return s, nil
}

// List proveedores por nombre.
func (r *SupplierRepo) List(ctx context.Context, f repository.SupplierFilter) ([]*entity.Supplier, error) {
	var w whereBuilder
	w.addIf("service_type = ?", f.ServiceType)
	w.addIf("status = ?", f.Status)
	if f.City != "" {
		w.add("city ILIKE ?", "%"+f.City+"%")
	}

	query := `SELECT ` + supplierColumns + ` FROM suppliers` + w.sql() + ` ORDER BY name` + w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("supplier.List: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("supplier.List: scan: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, service_type = $3, contact = $4, whatsapp = $5, email = $6, city = $7,
			avg_lead_days = $8, rating = $9, status = $10, notes = $11, price_sheet = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.ServiceType, s.Contact, s.WhatsApp, s.Email, s.City,
		s.AvgLeadDays, s.Rating, s.Status, s.Notes, s.PriceSheet, s.UpdatedAt,
	)
	return affectedOne("supplier.Update", tag, err)
}

// Delete elimina un proveedor; ErrConflict si hay precios que lo referencian.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	return affectedOne("supplier.Delete", tag, err)
}

// Count proveedores; status vacío cuenta todos.
func (r *SupplierRepo) Count(ctx context.Context, status string) (int, error) {
	if status == "" {
		return queryCount(ctx, r.q, "supplier.Count", `SELECT COUNT(*) FROM suppliers`)
	}
	return queryCount(ctx, r.q, "supplier.Count", `SELECT COUNT(*) FROM suppliers WHERE status = $1`, status)
}

func (r *SupplierRepo) CountByServiceType(ctx context.Context) ([]repository.GroupCount, error) {
	return queryGroupCounts(ctx, r.q, "supplier.CountByServiceType", `
		SELECT service_type, COUNT(*) FROM suppliers GROUP BY service_type ORDER BY COUNT(*) DESC, service_type`)
}

// CountByRating cantidad por avaliação ("1".."5"); sin avaliação no se cuenta.
func (r *SupplierRepo) CountByRating(ctx context.Context) ([]repository.GroupCount, error) {
	return queryGroupCounts(ctx, r.q, "supplier.CountByRating", `
		SELECT rating::TEXT, COUNT(*) FROM suppliers WHERE rating IS NOT NULL GROUP BY rating ORDER BY rating DESC`)
}
