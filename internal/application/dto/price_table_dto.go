package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePriceRequest entrada para crear una línea de la tabla de precios.
type CreatePriceRequest struct {
	Item        string          `json:"produto_servico" validate:"required,max=200"`
	Category    string          `json:"categoria" validate:"required,max=50"`
	Description string          `json:"descricao"`
	CostPrice   decimal.Decimal `json:"preco_custo" validate:"gte=0"`
	Markup      decimal.Decimal `json:"markup" validate:"gte=0"`
	Unit        string          `json:"unidade" validate:"max=20"`
	SupplierID  *string         `json:"fornecedor_id"`
	Active      *bool           `json:"ativo"`
}

// UpdatePriceRequest actualización parcial de una línea de precios.
type UpdatePriceRequest struct {
	Item        *string          `json:"produto_servico" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"categoria"`
	Description *string          `json:"descricao"`
	CostPrice   *decimal.Decimal `json:"preco_custo"`
	Markup      *decimal.Decimal `json:"markup"`
	Unit        *string          `json:"unidade"`
	SupplierID  *string          `json:"fornecedor_id"`
	Active      *bool            `json:"ativo"`
}

// PriceResponse salida de una línea de precios con precio de venta derivado.
type PriceResponse struct {
	ID          string          `json:"id"`
	Item        string          `json:"produto_servico"`
	Category    string          `json:"categoria"`
	Description string          `json:"descricao"`
	CostPrice   decimal.Decimal `json:"preco_custo"`
	Markup      decimal.Decimal `json:"markup"`
	SalePrice   decimal.Decimal `json:"preco_venda"`
	Unit        string          `json:"unidade"`
	SupplierID  *string         `json:"fornecedor_id"`
	Active      bool            `json:"ativo"`
	UpdatedAt   time.Time       `json:"ultima_atualizacao"`
}

// PriceListResponse lista paginada de la tabla de precios.
type PriceListResponse struct {
	Items []PriceResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// PriceStatsResponse estadísticas de la tabla de precios.
type PriceStatsResponse struct {
	Total               int           `json:"total_itens"`
	Active              int           `json:"itens_ativos"`
	ByCategory          []LabelCount  `json:"por_categoria"`
	AvgMarkupByCategory []LabelAmount `json:"markup_medio_por_categoria"`
}
