package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/lineviz"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lineviz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lineviz version %s\n", strings.TrimSpace(lineviz.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
