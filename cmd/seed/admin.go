package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/gestao-api/internal/application/auth"
	"github.com/jhoicas/gestao-api/internal/infrastructure/postgres"
)

func newAdminCmd(e *env) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Crea el usuario administrador y la configuración por defecto",
		Long: `Crea el administrador inicial y la fila de configuración de la empresa en una
única transacción. Si el usuario ya existe no modifica nada.

Los valores por defecto vienen de ADMIN_USERNAME, ADMIN_EMAIL y ADMIN_PASSWORD.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username == "" {
				username = e.cfg.Seed.AdminUsername
			}
			if email == "" {
				email = e.cfg.Seed.AdminEmail
			}
			if password == "" {
				password = e.cfg.Seed.AdminPassword
			}
			created, err := auth.BootstrapAdmin(cmd.Context(), postgres.NewTxRunner(e.pool), username, email, password)
			if err != nil {
				return err
			}
			if !created {
				e.log.Info().Str("username", username).Msg("administrador ya existe, sin cambios")
				return nil
			}
			e.log.Info().Str("username", username).Msg("administrador creado")
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username del administrador")
	cmd.Flags().StringVar(&email, "email", "", "email del administrador")
	cmd.Flags().StringVar(&password, "password", "", "contraseña (mínimo 6 caracteres)")
	return cmd
}
