// seed prepara la base de datos: aplica el esquema, crea el administrador inicial
// y opcionalmente carga datos de demostración.
//
// Uso:
//
//	go run ./cmd/seed migrate
//	go run ./cmd/seed admin --username admin --password secreta
//	go run ./cmd/seed demo --clientes 40
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/gestao-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gestao-api/pkg/config"
	"github.com/jhoicas/gestao-api/pkg/logger"
)

// env compartido por los subcomandos; se llena en PersistentPreRunE.
type env struct {
	cfg  *config.Config
	log  *logger.Logger
	pool *pgxpool.Pool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Prepara la base de datos de la Gestão API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
			pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			e.pool = pool
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.pool != nil {
				e.pool.Close()
			}
		},
	}
	root.SetContext(context.Background())
	root.AddCommand(newMigrateCmd(e), newAdminCmd(e), newDemoCmd(e))
	return root
}

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica el esquema SQL embebido (idempotente)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := postgres.Migrate(cmd.Context(), e.pool); err != nil {
				return err
			}
			e.log.Info().Msg("esquema aplicado")
			return nil
		},
	}
}
