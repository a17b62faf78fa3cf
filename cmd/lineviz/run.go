package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/lineviz"
	"github.com/aretw0/lineviz/internal/cli"
	"github.com/aretw0/lineviz/pkg/observability"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive visualizer",
	Long:  `Starts an interactive session reading commands such as "stack push 4" or "postfix start A+B*C".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		wb := lineviz.New(workbenchOptions(cfg, logger, observability.LogHooks(logger))...)
		return cli.RunSession(cmd.Context(), wb, logger)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// 'run' is the default when no command is given.
	rootCmd.RunE = runCmd.RunE
}
