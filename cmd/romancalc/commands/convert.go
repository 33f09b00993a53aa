package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"romancalc/internal/roman"
)

func toRomanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-roman <n>",
		Short: "Print the canonical numeral for an integer in 1..3999",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%q is not an integer", args[0])
			}
			s, err := roman.FromInt(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func toIntCmd() *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:   "to-int <numeral>",
		Short: "Print the value of a Roman numeral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numeral := strings.ToUpper(args[0])
			n, err := roman.ToInt(numeral)
			if err != nil {
				return err
			}
			if !normalize {
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			}
			canonical, err := roman.FromInt(n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", n, canonical)
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "also print the canonical spelling")
	return cmd
}
