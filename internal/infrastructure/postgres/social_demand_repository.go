package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

var _ repository.SocialDemandRepository = (*SocialDemandRepo)(nil)

// SocialDemandRepo implementación de SocialDemandRepository.
type SocialDemandRepo struct {
	q Querier
}

// NewSocialDemandRepository construye el adaptador.
func NewSocialDemandRepository(q Querier) *SocialDemandRepo {
	return &SocialDemandRepo{q: q}
}

const demandColumns = `id, title, customer_id, order_id, art_type, theme, requested_at, delivery_at,
	status, priority, notes, final_file, approved, updated_at`

func scanDemand(row pgx.Row) (*entity.SocialDemand, error) {
	var d entity.SocialDemand
	err := row.Scan(
		&d.ID, &d.Title, &d.CustomerID, &d.OrderID, &d.ArtType, &d.Theme, &d.RequestedAt, &d.DeliveryAt,
		&d.Status, &d.Priority, &d.Notes, &d.FinalFile, &d.Approved, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *SocialDemandRepo) Create(ctx context.Context, d *entity.SocialDemand) error {
	query := `
		INSERT INTO social_demands (` + demandColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Title, d.CustomerID, d.OrderID, d.ArtType, d.Theme, d.RequestedAt, d.DeliveryAt,
		d.Status, d.Priority, d.Notes, d.FinalFile, d.Approved, d.UpdatedAt,
	)
	if err != nil {
		return writeErr("social_demand.Create", err)
	}
	return nil
}

func (r *SocialDemandRepo) GetByID(ctx context.Context, id string) (*entity.SocialDemand, error) {
	d, err := scanDemand(r.q.QueryRow(ctx, `SELECT `+demandColumns+` FROM social_demands WHERE id = $1`, id))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("social_demand.GetByID: %w", err)
	}
	return d, nil
}

// List demandas ordenadas por fecha de entrega (sin fecha al final).
func (r *SocialDemandRepo) List(ctx context.Context, f repository.DemandFilter) ([]*entity.SocialDemand, error) {
	var w whereBuilder
	w.addIf("customer_id = ?", f.CustomerID)
	w.addIf("status = ?", f.Status)
	w.addIf("priority = ?", f.Priority)
	w.addIf("art_type = ?", f.ArtType)

	query := `SELECT ` + demandColumns + ` FROM social_demands` + w.sql() +
		` ORDER BY delivery_at ASC NULLS LAST, requested_at DESC` + w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("social_demand.List: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.SocialDemand, 0)
	for rows.Next() {
		d, err := scanDemand(rows)
		if err != nil {
			return nil, fmt.Errorf("social_demand.List: scan: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *SocialDemandRepo) Update(ctx context.Context, d *entity.SocialDemand) error {
	query := `
		UPDATE social_demands SET title = $2, customer_id = $3, order_id = $4, art_type = $5, theme = $6,
			requested_at = $7, delivery_at = $8, status = $9, priority = $10, notes = $11, final_file = $12,
			approved = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		d.ID, d.Title, d.CustomerID, d.OrderID, d.ArtType, d.Theme,
		d.RequestedAt, d.DeliveryAt, d.Status, d.Priority, d.Notes, d.FinalFile,
		d.Approved, d.UpdatedAt,
	)
	return affectedOne("social_demand.Update", tag, err)
}

func (r *SocialDemandRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM social_demands WHERE id = $1`, id)
	return affectedOne("social_demand.Delete", tag, err)
}

// CountByArtType cantidad de demandas por tipo de arte.
func (r *SocialDemandRepo) CountByArtType(ctx context.Context) ([]repository.GroupCount, error) {
	return queryGroupCounts(ctx, r.q, "social_demand.CountByArtType", `
		SELECT art_type, COUNT(*) FROM social_demands GROUP BY art_type ORDER BY COUNT(*) DESC, art_type`)
}
