package commands

import (
	"os"

	"github.com/spf13/cobra"

	"romancalc/internal/app"
	"romancalc/internal/domain"
	"romancalc/internal/logger"
)

var (
	home       string
	configPath string
	session    string
	logLevel   string
	appCtx     *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "romancalc",
		Short:        "Roman numeral calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
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
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			log := logger.New(logger.LogLevel(cfg.LogLevel), logger.Format(cfg.LogFormat), cmd.ErrOrStderr())
			logger.SetDefault(log)

			w, err := app.NewWire(cfg, nil, log)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			err := appCtx.Close()
			appCtx = nil
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.romancalc)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVarP(&session, "session", "s", string(domain.DefaultSessionID), "session name")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "debug, info, warn or error")

	root.AddCommand(
		toRomanCmd(),
		toIntCmd(),
		pressCmd(),
		showCmd(),
		clearCmd(),
		replCmd(),
		keypadCmd(),
	)
	return root
}

func sessionID() domain.SessionID { return domain.SessionID(session) }
