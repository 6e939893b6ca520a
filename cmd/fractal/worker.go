package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/fractal"
)

// workerCmd is the process-mode entry point. The engine launches
// "<exe> worker" children itself with the assignment in the
// environment and the shared segments on inherited descriptors, so the
// command is hidden from help.
var workerCmd = &cobra.Command{
	Use:    "worker",
	Short:  "Compute one task assignment from the environment",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fractal.WorkerMain(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
