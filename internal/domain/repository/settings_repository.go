package repository

import (
	"context"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

// SettingsRepository persistencia de la configuración única de la empresa.
type SettingsRepository interface {
	// Get devuelve nil, nil si aún no existe configuración.
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Save(ctx context.Context, s *entity.CompanySettings) error
}
