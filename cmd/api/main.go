package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "beneficios_inss/docs"
	"beneficios_inss/internal/adapter/http/routes"
	"beneficios_inss/internal/infrastructure/auth"
	"beneficios_inss/internal/infrastructure/config"
	"beneficios_inss/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// @title           Benefícios INSS API
// @version         1.0
// @description     Benefit requests, exigências and caseworker review backed by DynamoDB or Firestore.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const appName = "beneficios-inss"

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var console bool

	cmd := &cobra.Command{
		Use:          appName,
		Short:        "Benefit request API for INSS citizens and caseworkers",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), console)
		},
	}
	cmd.PersistentFlags().BoolVar(&console, "console", false, "Human readable logs instead of JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), console)
		},
	})
	cmd.AddCommand(hashPasswordCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, version)
		},
	})

	return cmd
}

func serve(parent context.Context, console bool) error {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info", console)
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(cfg.LogLevel, console)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("version", version).Str("store", cfg.StoreBackend).Msg("[main] starting")
	return routes.Run(ctx, cfg)
}

// hashPasswordCmd prints the value expected in CASEWORKER_PASSWORD_HASH.
func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a caseworker password with Argon2id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
