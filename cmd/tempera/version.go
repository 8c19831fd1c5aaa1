package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/tempera"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tempera",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tempera version %s\n", strings.TrimSpace(tempera.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
