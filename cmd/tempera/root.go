package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tempera/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tempera",
	Short: "Tempera works out how to mix hot liquid with cold water or ice",
	Long: `Tempera computes how much hot liquid and how much coolant (cold water or ice)
to combine so the mix reaches a target temperature, and shows the derivation.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func globalOptions(cmd *cobra.Command) cli.GlobalOptions {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.GlobalOptions{ConfigPath: configPath, Debug: debug}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "tempera.yaml", "Config file with start-up defaults (missing file is ignored)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
