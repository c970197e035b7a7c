package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name        string `json:"nome" validate:"required,max=200"`
	ServiceType string `json:"tipo_servico" validate:"required,max=100"`
	Contact     string `json:"contato" validate:"max=100"`
	WhatsApp    string `json:"whatsapp" validate:"max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	City        string `json:"cidade" validate:"max=100"`
	AvgLeadDays *int   `json:"prazo_medio" validate:"omitempty,gte=0"`
	Rating      *int   `json:"avaliacao" validate:"omitempty,min=1,max=5"`
	Status      string `json:"status"`
	Notes       string `json:"observacoes"`
	PriceSheet  string `json:"tabela_precos"`
}

// UpdateSupplierRequest actualización parcial de un proveedor.
type UpdateSupplierRequest struct {
	Name        *string `json:"nome" validate:"omitempty,min=1,max=200"`
	ServiceType *string `json:"tipo_servico"`
	Contact     *string `json:"contato"`
	WhatsApp    *string `json:"whatsapp" validate:"omitempty,max=20"`
	Email       *string `json:"email" validate:"omitempty,email"`
	City        *string `json:"cidade"`
	AvgLeadDays *int    `json:"prazo_medio" validate:"omitempty,gte=0"`
	Rating      *int    `json:"avaliacao" validate:"omitempty,min=1,max=5"`
	Status      *string `json:"status"`
	Notes       *string `json:"observacoes"`
	PriceSheet  *string `json:"tabela_precos"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	ServiceType string    `json:"tipo_servico"`
	Contact     string    `json:"contato"`
	WhatsApp    string    `json:"whatsapp"`
	Email       string    `json:"email"`
	City        string    `json:"cidade"`
	AvgLeadDays *int      `json:"prazo_medio"`
	Rating      *int      `json:"avaliacao"`
	Status      string    `json:"status"`
	Notes       string    `json:"observacoes"`
	PriceSheet  string    `json:"tabela_precos"`
	CreatedAt   time.Time `json:"created_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// SupplierStatsResponse estadísticas de proveedores.
type SupplierStatsResponse struct {
	Total         int          `json:"total_fornecedores"`
	Active        int          `json:"fornecedores_ativos"`
	ByServiceType []LabelCount `json:"por_tipo_servico"`
	ByRating      []LabelCount `json:"por_avaliacao"`
}
