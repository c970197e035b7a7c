package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

func TestPriceEntrySalePrice(t *testing.T) {
	p := entity.PriceEntry{CostPrice: decimal.RequireFromString("50"), Markup: decimal.RequireFromString("40")}
	assert.Equal(t, "70", p.SalePrice().String())

	p.Markup = decimal.Zero
	assert.Equal(t, "50", p.SalePrice().String())

	p = entity.PriceEntry{CostPrice: decimal.RequireFromString("10.10"), Markup: decimal.RequireFromString("33")}
	assert.Equal(t, "13.43", p.SalePrice().String())
}

func TestCustomerTotalsAverageTicket(t *testing.T) {
	assert.True(t, entity.CustomerTotals{}.AverageTicket().IsZero())

	tot := entity.CustomerTotals{TotalValue: decimal.NewFromInt(300), OrderCount: 4}
	assert.Equal(t, "75", tot.AverageTicket().String())
}
