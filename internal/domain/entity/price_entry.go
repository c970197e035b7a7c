package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PriceEntry línea de la tabla de precios (costo + markup).
type PriceEntry struct {
	ID          string
	Item        string
	Category    string
	Description string
	CostPrice   decimal.Decimal
	Markup      decimal.Decimal // porcentaje
	Unit        string
	SupplierID  *string
	Active      bool
	UpdatedAt   time.Time
}

// SalePrice precio de venta = costo × (1 + markup/100).
func (p *PriceEntry) SalePrice() decimal.Decimal {
	if p.Markup.IsZero() {
		return p.CostPrice
	}
	return p.CostPrice.Mul(decimal.NewFromInt(1).Add(p.Markup.Div(hundred))).Round(2)
}
