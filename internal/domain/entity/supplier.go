package entity

import "time"

// Estados de un proveedor.
const (
	SupplierStatusActive   = "Ativo"
	SupplierStatusTrial    = "Teste"
	SupplierStatusInactive = "Inativo"
)

// Supplier proveedor de servicios o insumos.
type Supplier struct {
	ID          string
	Name        string
	ServiceType string
	Contact     string
	WhatsApp    string
	Email       string
	City        string
	AvgLeadDays *int
	Rating      *int // 1..5
	Status      string
	Notes       string
	PriceSheet  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsValidSupplierStatus indica si s pertenece a la enumeración de estados.
func IsValidSupplierStatus(s string) bool {
	switch s {
	case SupplierStatusActive, SupplierStatusTrial, SupplierStatusInactive:
		return true
	}
	return false
}
