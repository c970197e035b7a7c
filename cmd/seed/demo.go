package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/application/usecase"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/infrastructure/postgres"
)

var (
	demoCities   = []string{"Sorocaba", "Itu", "Salto", "Votorantim", "Indaiatuba", "Campinas"}
	demoTypes    = []string{entity.CustomerTypeRetailer, entity.CustomerTypeCityHall, entity.CustomerTypeIndividual, entity.CustomerTypeOther}
	demoStatuses = []string{entity.CustomerStatusActive, entity.CustomerStatusActive, entity.CustomerStatusProspect, entity.CustomerStatusInactive}
	demoServices = []string{"Banner", "Fachada", "Adesivo", "Cartão de Visita", "Gestão de Redes"}
	demoArtTypes = []string{"Post Feed", "Stories", "Reels", "Carrossel"}
	demoOrderSts = []string{entity.OrderStatusQuote, entity.OrderStatusApproved, entity.OrderStatusProduction, entity.OrderStatusCompleted, entity.OrderStatusCompleted}
	demoCosts    = []string{"Aluguel", "Material", "Energia", "Transporte"}
)

// demoSeeder carga datos de ejemplo a través de los casos de uso, igual que lo haría la API.
type demoSeeder struct {
	rnd       *rand.Rand
	now       time.Time
	customers *usecase.CustomerUseCase
	orders    *usecase.OrderUseCase
	finance   *usecase.FinanceUseCase
	demands   *usecase.SocialDemandUseCase
	suppliers *usecase.SupplierUseCase
	prices    *usecase.PriceTableUseCase
}

func newDemoCmd(e *env) *cobra.Command {
	var n int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Carga clientes, pedidos, transacciones, demandas, proveedores y precios de ejemplo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n <= 0 {
				return fmt.Errorf("--clientes debe ser positivo")
			}
			customerRepo := postgres.NewCustomerRepository(e.pool)
			orderRepo := postgres.NewOrderRepository(e.pool)
			supplierRepo := postgres.NewSupplierRepository(e.pool)
			analyticsRepo := postgres.NewAnalyticsRepository(e.pool)

			s := &demoSeeder{
				rnd:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
				now:       time.Now(),
				customers: usecase.NewCustomerUseCase(customerRepo, analyticsRepo),
				orders:    usecase.NewOrderUseCase(orderRepo, customerRepo, analyticsRepo),
				finance:   usecase.NewFinanceUseCase(postgres.NewFinancialRepository(e.pool), orderRepo, analyticsRepo),
				demands:   usecase.NewSocialDemandUseCase(postgres.NewSocialDemandRepository(e.pool), customerRepo, orderRepo, analyticsRepo),
				suppliers: usecase.NewSupplierUseCase(supplierRepo),
				prices:    usecase.NewPriceTableUseCase(postgres.NewPriceTableRepository(e.pool), supplierRepo),
			}

			bar := progressbar.Default(int64(n+1), "demo")
			if err := s.seedSuppliers(cmd.Context()); err != nil {
				return err
			}
			_ = bar.Add(1)
			for i := 0; i < n; i++ {
				if err := s.seedCustomer(cmd.Context(), i); err != nil {
					return err
				}
				_ = bar.Add(1)
			}
			e.log.Info().Int("clientes", n).Msg("datos de demostración cargados")
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "clientes", 30, "cantidad de clientes a generar")
	cmd.Flags().Uint64Var(&seed, "seed", 42, "semilla del generador aleatorio")
	return cmd
}

func (s *demoSeeder) pick(xs []string) string {
	return xs[s.rnd.IntN(len(xs))]
}

func (s *demoSeeder) money(lo, hi int) decimal.Decimal {
	return decimal.NewFromInt(int64(lo + s.rnd.IntN(hi-lo+1)))
}

func (s *demoSeeder) seedSuppliers(ctx context.Context) error {
	for i, service := range demoServices {
		rating := 3 + s.rnd.IntN(3)
		lead := 2 + s.rnd.IntN(10)
		sup, err := s.suppliers.Create(ctx, dto.CreateSupplierRequest{
			Name:        fmt.Sprintf("Fornecedor %02d", i+1),
			ServiceType: service,
			City:        s.pick(demoCities),
			AvgLeadDays: &lead,
			Rating:      &rating,
			Status:      entity.SupplierStatusActive,
		})
		if err != nil {
			return fmt.Errorf("demo: fornecedor: %w", err)
		}
		for j := 0; j < 3; j++ {
			_, err := s.prices.Create(ctx, dto.CreatePriceRequest{
				Item:       fmt.Sprintf("%s modelo %d", service, j+1),
				Category:   service,
				CostPrice:  s.money(20, 400),
				Markup:     decimal.NewFromInt(int64(30 + s.rnd.IntN(90))),
				Unit:       "un",
				SupplierID: &sup.ID,
			})
			if err != nil {
				return fmt.Errorf("demo: preço: %w", err)
			}
		}
	}
	return nil
}

func (s *demoSeeder) seedCustomer(ctx context.Context, i int) error {
	lastContact := s.now.AddDate(0, 0, -s.rnd.IntN(90))
	c, err := s.customers.Create(ctx, dto.CreateCustomerRequest{
		Name:          fmt.Sprintf("Cliente Demo %03d", i+1),
		Type:          s.pick(demoTypes),
		City:          s.pick(demoCities),
		Status:        s.pick(demoStatuses),
		Segment:       "Comunicação Visual",
		LastContactAt: &dto.Date{Time: lastContact},
	})
	if err != nil {
		return fmt.Errorf("demo: cliente: %w", err)
	}

	for k := s.rnd.IntN(4); k > 0; k-- {
		placed := s.now.AddDate(0, -s.rnd.IntN(6), -s.rnd.IntN(28))
		delivery := placed.AddDate(0, 0, 3+s.rnd.IntN(20))
		value := s.money(150, 5000)
		cost := value.Mul(decimal.NewFromFloat(0.4 + s.rnd.Float64()*0.5)).Round(2)
		status := s.pick(demoOrderSts)
		o, err := s.orders.Create(ctx, dto.CreateOrderRequest{
			CustomerID:  c.ID,
			ServiceType: s.pick(demoServices),
			Status:      status,
			PlacedAt:    &dto.Date{Time: placed},
			DeliveryAt:  &dto.Date{Time: delivery},
			Value:       value,
			Cost:        &cost,
		})
		if err != nil {
			return fmt.Errorf("demo: pedido: %w", err)
		}
		if status == entity.OrderStatusCompleted {
			_, err := s.finance.Create(ctx, dto.CreateTransactionRequest{
				Description:  "Recebimento " + o.Code,
				Type:         entity.TransactionRevenue,
				Category:     "Vendas",
				Amount:       value,
				Date:         &dto.Date{Time: delivery},
				Status:       entity.TransactionPaid,
				Counterparty: c.Name,
				OrderID:      &o.ID,
			})
			if err != nil {
				return fmt.Errorf("demo: receita: %w", err)
			}
		}
		if s.rnd.IntN(3) == 0 {
			_, err := s.demands.Create(ctx, dto.CreateDemandRequest{
				Title:      "Divulgação " + o.Code,
				CustomerID: c.ID,
				OrderID:    &o.ID,
				ArtType:    s.pick(demoArtTypes),
				DeliveryAt: &dto.Date{Time: s.now.AddDate(0, 0, s.rnd.IntN(10))},
				Status:     entity.DemandStatusCreation,
				Priority:   []string{entity.PriorityUrgent, entity.PriorityHigh, entity.PriorityNormal}[s.rnd.IntN(3)],
			})
			if err != nil {
				return fmt.Errorf("demo: demanda: %w", err)
			}
		}
	}

	_, err = s.finance.Create(ctx, dto.CreateTransactionRequest{
		Description: "Despesa operacional",
		Type:        entity.TransactionExpense,
		Category:    s.pick(demoCosts),
		Amount:      s.money(50, 800),
		Date:        &dto.Date{Time: s.now.AddDate(0, -s.rnd.IntN(6), -s.rnd.IntN(28))},
		Status:      entity.TransactionPaid,
	})
	if err != nil {
		return fmt.Errorf("demo: despesa: %w", err)
	}
	return nil
}
