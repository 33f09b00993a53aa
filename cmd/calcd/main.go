package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"romancalc/internal/app"
	"romancalc/internal/logger"
	"romancalc/internal/web"
)

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var (
		home       string
		configPath string
		addr       string
	)
	cmd := &cobra.Command{
		Use:          "calcd",
		Short:        "Serve the Roman numeral calculator over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			cfg, err := app.LoadConfig(configPath, home)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			log := logger.New(logger.LogLevel(cfg.LogLevel), logger.FormatJSON, os.Stderr)
			logger.SetDefault(log)

			w, err := app.NewWire(cfg, prometheus.DefaultRegisterer, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := w.Close(); err != nil {
					log.Error("close store", "error", err)
				}
			}()

			srv, err := web.NewServer(web.Options{
				Addr:            cfg.Server.Addr,
				CookieSecret:    cfg.Server.CookieSecret,
				RateLimit:       cfg.Server.RateLimit,
				RateBurst:       cfg.Server.RateBurst,
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
				TrustedProxies:  cfg.Server.TrustedProxies,
			}, w.Calculator, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			log.Info("calcd listening", "addr", cfg.Server.Addr, "store", cfg.Store.Backend)
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "data dir (default ~/.romancalc)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides config")
	return cmd
}
