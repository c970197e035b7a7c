package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

// SettingsUseCase configuración visual de la empresa.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración, creándola con valores por defecto si no existe.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// Update aplica solo los campos presentes.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	setString(&s.CompanyName, in.CompanyName)
	setString(&s.LogoPath, in.LogoPath)
	setString(&s.PrimaryColor, in.PrimaryColor)
	setString(&s.SecondaryColor, in.SecondaryColor)
	setString(&s.AccentColor, in.AccentColor)
	setString(&s.SuccessColor, in.SuccessColor)
	setString(&s.WarningColor, in.WarningColor)
	setString(&s.DangerColor, in.DangerColor)
	if in.DarkTheme != nil {
		s.DarkTheme = *in.DarkTheme
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

func (uc *SettingsUseCase) load(ctx context.Context) (*entity.CompanySettings, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	def := entity.DefaultCompanySettings()
	def.UpdatedAt = time.Now()
	if err := uc.repo.Save(ctx, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

func toSettingsResponse(s *entity.CompanySettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CompanyName:    s.CompanyName,
		LogoPath:       s.LogoPath,
		PrimaryColor:   s.PrimaryColor,
		SecondaryColor: s.SecondaryColor,
		AccentColor:    s.AccentColor,
		SuccessColor:   s.SuccessColor,
		WarningColor:   s.WarningColor,
		DangerColor:    s.DangerColor,
		DarkTheme:      s.DarkTheme,
	}
}
