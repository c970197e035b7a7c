package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/insights"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

// CashFlowMonths meses cubiertos por el flujo de caja.
const CashFlowMonths = 12

// FinanceUseCase casos de uso de transacciones financieras.
type FinanceUseCase struct {
	repo      repository.FinancialRepository
	orders    repository.OrderRepository
	analytics repository.AnalyticsRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(repo repository.FinancialRepository, orders repository.OrderRepository, analytics repository.AnalyticsRepository) *FinanceUseCase {
	return &FinanceUseCase{repo: repo, orders: orders, analytics: analytics}
}

// Create registra una transacción. Sin fecha usa el momento actual.
func (uc *FinanceUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !entity.IsValidTransactionType(in.Type) {
		return nil, invalid("tipo deve ser Receita ou Despesa")
	}
	if in.Status == "" {
		in.Status = entity.TransactionPending
	}
	if !entity.IsValidTransactionStatus(in.Status) {
		return nil, invalid("status de transação inválido: %s", in.Status)
	}
	if !in.Amount.IsPositive() {
		return nil, invalid("valor deve ser positivo")
	}
	orderID := optionalID(in.OrderID)
	if err := uc.ensureOrder(ctx, orderID); err != nil {
		return nil, err
	}
	now := time.Now()
	date := now
	if d := in.Date.TimePtr(); d != nil {
		date = *d
	}
	tx := &entity.FinancialTransaction{
		ID:            uuid.New().String(),
		Description:   in.Description,
		Type:          in.Type,
		Category:      in.Category,
		Amount:        in.Amount,
		Date:          date,
		Status:        in.Status,
		Counterparty:  in.Counterparty,
		PaymentMethod: in.PaymentMethod,
		OrderID:       orderID,
		Notes:         in.Notes,
		Receipt:       in.Receipt,
		CreatedAt:     now,
	}
	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// GetByID devuelve nil, nil si la transacción no existe.
func (uc *FinanceUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(ctx, id)
	if err != nil || tx == nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// List lista transacciones filtradas.
func (uc *FinanceUseCase) List(ctx context.Context, f repository.TransactionFilter) (*dto.TransactionListResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, *toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{Items: items, Page: dto.PageResponse{Limit: f.Limit, Offset: f.Offset}}, nil
}

// Update aplica solo los campos presentes.
func (uc *FinanceUseCase) Update(ctx context.Context, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(ctx, id)
	if err != nil || tx == nil {
		return nil, err
	}
	if in.Type != nil {
		if !entity.IsValidTransactionType(*in.Type) {
			return nil, invalid("tipo deve ser Receita ou Despesa")
		}
		tx.Type = *in.Type
	}
	if in.Status != nil {
		if !entity.IsValidTransactionStatus(*in.Status) {
			return nil, invalid("status de transação inválido: %s", *in.Status)
		}
		tx.Status = *in.Status
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, invalid("valor deve ser positivo")
		}
		tx.Amount = *in.Amount
	}
	if in.OrderID != nil {
		orderID := optionalID(in.OrderID)
		if err := uc.ensureOrder(ctx, orderID); err != nil {
			return nil, err
		}
		tx.OrderID = orderID
	}
	if d := in.Date.TimePtr(); d != nil {
		tx.Date = *d
	}
	setString(&tx.Description, in.Description)
	setString(&tx.Category, in.Category)
	setString(&tx.Counterparty, in.Counterparty)
	setString(&tx.PaymentMethod, in.PaymentMethod)
	setString(&tx.Notes, in.Notes)
	setString(&tx.Receipt, in.Receipt)
	if err := uc.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// Delete elimina una transacción.
func (uc *FinanceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Stats resumen del mes en curso.
func (uc *FinanceUseCase) Stats(ctx context.Context) (*dto.FinanceStatsResponse, error) {
	month := insights.MonthWindow(time.Now())

	income, err := uc.analytics.SumTransactions(ctx, entity.TransactionRevenue, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("finance.Stats: %w", err)
	}
	expenses, err := uc.analytics.SumTransactions(ctx, entity.TransactionExpense, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("finance.Stats: %w", err)
	}
	pending, err := uc.repo.CountByStatus(ctx, entity.TransactionPending)
	if err != nil {
		return nil, fmt.Errorf("finance.Stats: %w", err)
	}
	incomeByCat, err := uc.repo.SumByCategory(ctx, entity.TransactionRevenue, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("finance.Stats: %w", err)
	}
	expenseByCat, err := uc.repo.SumByCategory(ctx, entity.TransactionExpense, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("finance.Stats: %w", err)
	}
	return &dto.FinanceStatsResponse{
		MonthIncome:       income.Round(2),
		MonthExpenses:     expenses.Round(2),
		MonthBalance:      income.Sub(expenses).Round(2),
		Pending:           pending,
		IncomeByCategory:  toLabelAmounts(incomeByCat),
		ExpenseByCategory: toLabelAmounts(expenseByCat),
	}, nil
}

// CashFlow receitas y despesas de los últimos 12 meses calendario.
func (uc *FinanceUseCase) CashFlow(ctx context.Context) (*dto.CashFlowResponse, error) {
	months := insights.TrailingMonths(time.Now(), CashFlowMonths)

	income, err := uc.analytics.MonthlyTransactions(ctx, entity.TransactionRevenue, months)
	if err != nil {
		return nil, fmt.Errorf("finance.CashFlow: %w", err)
	}
	expenses, err := uc.analytics.MonthlyTransactions(ctx, entity.TransactionExpense, months)
	if err != nil {
		return nil, fmt.Errorf("finance.CashFlow: %w", err)
	}
	out := &dto.CashFlowResponse{
		Months:   make([]string, len(months)),
		Income:   income,
		Expenses: expenses,
	}
	for i, m := range months {
		out.Months[i] = m.Label()
	}
	return out, nil
}

func (uc *FinanceUseCase) ensureOrder(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	o, err := uc.orders.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if o == nil {
		return notFound("pedido " + *id)
	}
	return nil
}

func toTransactionResponse(tx *entity.FinancialTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:            tx.ID,
		Description:   tx.Description,
		Type:          tx.Type,
		Category:      tx.Category,
		Amount:        tx.Amount,
		Date:          tx.Date,
		Status:        tx.Status,
		Counterparty:  tx.Counterparty,
		PaymentMethod: tx.PaymentMethod,
		OrderID:       tx.OrderID,
		Notes:         tx.Notes,
		Receipt:       tx.Receipt,
	}
}
