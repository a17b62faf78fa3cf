package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/lineviz"
)

var convertCmd = &cobra.Command{
	Use:   "convert <expression>",
	Short: "Convert an infix expression to postfix",
	Long:  `Runs a full conversion and prints the postfix result. With --trace every step is printed first.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trace, _ := cmd.Flags().GetBool("trace")

		result, steps, err := lineviz.Convert(strings.Join(args, " "))
		out := cmd.OutOrStdout()
		if trace {
			for i, step := range steps {
				fmt.Fprintf(out, "%3d  %s\n", i+1, step)
			}
		}
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
		fmt.Fprintln(out, result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolP("trace", "t", false, "Print the explanation of every step")
}
