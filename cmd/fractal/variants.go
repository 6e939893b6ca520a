package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/fractal"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the registered fractal variants",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range fractal.Variants() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}
