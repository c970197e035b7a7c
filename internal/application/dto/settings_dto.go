package dto

// UpdateSettingsRequest actualización parcial de la configuración de la empresa.
type UpdateSettingsRequest struct {
	CompanyName    *string `json:"nome_empresa" validate:"omitempty,min=1,max=100"`
	LogoPath       *string `json:"logo_path"`
	PrimaryColor   *string `json:"cor_primaria" validate:"omitempty,hexcolor"`
	SecondaryColor *string `json:"cor_secundaria" validate:"omitempty,hexcolor"`
	AccentColor    *string `json:"cor_destaque" validate:"omitempty,hexcolor"`
	SuccessColor   *string `json:"cor_sucesso" validate:"omitempty,hexcolor"`
	WarningColor   *string `json:"cor_aviso" validate:"omitempty,hexcolor"`
	DangerColor    *string `json:"cor_perigo" validate:"omitempty,hexcolor"`
	DarkTheme      *bool   `json:"tema_escuro"`
}

// SettingsResponse configuración de la empresa.
type SettingsResponse struct {
	CompanyName    string `json:"nome_empresa"`
	LogoPath       string `json:"logo_path"`
	PrimaryColor   string `json:"cor_primaria"`
	SecondaryColor string `json:"cor_secundaria"`
	AccentColor    string `json:"cor_destaque"`
	SuccessColor   string `json:"cor_sucesso"`
	WarningColor   string `json:"cor_aviso"`
	DangerColor    string `json:"cor_perigo"`
	DarkTheme      bool   `json:"tema_escuro"`
}
