package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"romancalc/internal/client"
	"romancalc/internal/domain"
	"romancalc/internal/repl"
	"romancalc/internal/tui"
)

// calculator picks the local service, or a calcd client when remote is set.
func calculator(remote string) domain.CalculatorService {
	if remote != "" {
		return client.NewHTTP(remote)
	}
	return appCtx.Calculator
}

func replCmd() *cobra.Command {
	var remote string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive line calculator on the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := repl.NewSession(calculator(remote), sessionID())
			return repl.Run(cmd.Context(), s, repl.Config{
				HistoryFile: filepath.Join(home, "history"),
				Stdout:      cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringVar(&remote, "remote", "", "calcd base URL; use a server session instead of the local one")
	return cmd
}

func keypadCmd() *cobra.Command {
	var remote string
	cmd := &cobra.Command{
		Use:   "keypad",
		Short: "Full-screen keypad calculator on the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), calculator(remote), sessionID(), os.Stdin, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&remote, "remote", "", "calcd base URL; use a server session instead of the local one")
	return cmd
}
