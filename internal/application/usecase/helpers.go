package usecase

import (
	"fmt"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

// topCustomersLimit tamaño de los rankings de clientes.
const topCustomersLimit = 5

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// optionalID normaliza referencias opcionales: "" equivale a sin referencia.
func optionalID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	v := *id
	return &v
}

func toLabelCounts(gs []repository.GroupCount) []dto.LabelCount {
	out := make([]dto.LabelCount, 0, len(gs))
	for _, g := range gs {
		out = append(out, dto.LabelCount{Label: g.Label, Count: g.Count})
	}
	return out
}

func toLabelAmounts(gs []repository.GroupAmount) []dto.LabelAmount {
	out := make([]dto.LabelAmount, 0, len(gs))
	for _, g := range gs {
		out = append(out, dto.LabelAmount{Label: g.Label, Amount: g.Amount.Round(2)})
	}
	return out
}

func toTopCustomers(rs []repository.CustomerRanking) []dto.TopCustomerDTO {
	out := make([]dto.TopCustomerDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, dto.TopCustomerDTO{ID: r.CustomerID, Name: r.Name, TotalValue: r.TotalValue.Round(2), OrderCount: r.OrderCount})
	}
	return out
}
