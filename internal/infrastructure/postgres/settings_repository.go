package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo guarda la configuración de la empresa en una fila única (id = 1).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve nil, nil si la fila aún no existe.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.CompanySettings, error) {
	query := `
		SELECT company_name, logo_path, primary_color, secondary_color, accent_color, success_color,
			warning_color, danger_color, dark_theme, updated_at
		FROM company_settings WHERE id = 1`
	var s entity.CompanySettings
	err := r.q.QueryRow(ctx, query).Scan(
		&s.CompanyName, &s.LogoPath, &s.PrimaryColor, &s.SecondaryColor, &s.AccentColor, &s.SuccessColor,
		&s.WarningColor, &s.DangerColor, &s.DarkTheme, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("settings.Get: %w", err)
	}
	return &s, nil
}

// Save inserta o reemplaza la fila única.
func (r *SettingsRepo) Save(ctx context.Context, s *entity.CompanySettings) error {
	query := `
		INSERT INTO company_settings (id, company_name, logo_path, primary_color, secondary_color,
			accent_color, success_color, warning_color, danger_color, dark_theme, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			logo_path = EXCLUDED.logo_path,
			primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			accent_color = EXCLUDED.accent_color,
			success_color = EXCLUDED.success_color,
			warning_color = EXCLUDED.warning_color,
			danger_color = EXCLUDED.danger_color,
			dark_theme = EXCLUDED.dark_theme,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		s.CompanyName, s.LogoPath, s.PrimaryColor, s.SecondaryColor,
		s.AccentColor, s.SuccessColor, s.WarningColor, s.DangerColor, s.DarkTheme, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("settings.Save: %w", err)
	}
	return nil
}
