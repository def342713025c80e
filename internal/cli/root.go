// Package cli implements the genexctl commands: a terminal front end for
// the Genex inventory API covering login, catalog browsing, admin
// management and the seller's sell/checkout flow.
package cli

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/pablonunez10/genex-store-inventory-front/internal/api"
	"github.com/pablonunez10/genex-store-inventory-front/internal/config"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		apiURL     string
	)

	cmd := &cobra.Command{
		Use:           "genexctl",
		Short:         "Genex Store inventory and point-of-sale client",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to config file")
	cmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides config)")

	build := func() (*app, error) { return buildApp(configPath, apiURL) }

	cmd.AddCommand(loginCmd(build))
	cmd.AddCommand(logoutCmd(build))
	cmd.AddCommand(profileCmd(build))
	cmd.AddCommand(productsCmd(build))
	cmd.AddCommand(categoriesCmd(build))
	cmd.AddCommand(purchasesCmd(build))
	cmd.AddCommand(salesCmd(build))
	cmd.AddCommand(reportCmd(build))
	cmd.AddCommand(sellCmd(build))

	return cmd
}

// app bundles what every command needs: config, logger and an API client
// carrying the saved session token, if any.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	client *api.Client
}

type appBuilder func() (*app, error)

func buildApp(configPath, apiURL string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.BaseURL = apiURL
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	opts := []api.ClientOption{
		api.WithLogger(logger),
		api.WithHTTPClient(&http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
	}
	if session, err := loadSession(cfg); err == nil {
		opts = append(opts, api.WithToken(session.Token))
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		client: api.NewClient(cfg.BaseURL, opts...),
	}, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "genexctl.yaml"
	}
	return home + "/.config/genex/config.yaml"
}
