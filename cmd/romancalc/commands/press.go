package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"romancalc/internal/domain"
)

// press X + V =: apply tokens to the stored session and print the display.
func pressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "press <token>...",
		Short: "Apply actions (I V X L C D M, +, -, =, AC) to the session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := domain.ParseActions(args)
			if err != nil {
				return err
			}
			sess, err := appCtx.Calculator.PressAll(cmd.Context(), sessionID(), actions)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sess.State.Display)
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the session's display and state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := appCtx.Calculator.Get(cmd.Context(), sessionID())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sess.State.String())
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the session (AC)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := appCtx.Calculator.Reset(cmd.Context(), sessionID())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sess.State.Display)
			return nil
		},
	}
}
