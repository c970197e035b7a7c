package entity

import "time"

// CompanySettings identidad visual de la empresa; existe una sola fila.
type CompanySettings struct {
	CompanyName    string
	LogoPath       string
	PrimaryColor   string
	SecondaryColor string
	AccentColor    string
	SuccessColor   string
	WarningColor   string
	DangerColor    string
	DarkTheme      bool
	UpdatedAt      time.Time
}

// DefaultCompanySettings valores iniciales cuando aún no hay configuración.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		CompanyName:    "TechMídia Agência",
		PrimaryColor:   "#3b82f6",
		SecondaryColor: "#64748b",
		AccentColor:    "#8b5cf6",
		SuccessColor:   "#10b981",
		WarningColor:   "#f59e0b",
		DangerColor:    "#ef4444",
	}
}
