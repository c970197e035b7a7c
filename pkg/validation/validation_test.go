package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestao-api/pkg/validation"
)

type sample struct {
	Name  string          `json:"nome" validate:"required,max=10"`
	Email string          `json:"email" validate:"omitempty,email"`
	Value decimal.Decimal `json:"valor" validate:"gte=0"`
	Score *int            `json:"avaliacao" validate:"omitempty,min=1,max=5"`
}

func TestStruct_Valid(t *testing.T) {
	five := 5
	err := validation.Struct(sample{Name: "ok", Value: decimal.NewFromInt(3), Score: &five})
	assert.NoError(t, err)
}

func TestStruct_MessagesUseJSONNames(t *testing.T) {
	err := validation.Struct(sample{Email: "nope", Value: decimal.NewFromInt(-1)})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "nome é obrigatório")
	assert.Contains(t, err.Error(), "email deve ser um email válido")
	assert.Contains(t, err.Error(), "valor")
}

func TestStruct_PointerRange(t *testing.T) {
	six := 6
	err := validation.Struct(sample{Name: "x", Score: &six})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "avaliacao")
}
