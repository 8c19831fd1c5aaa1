package main

import (
	"github.com/aretw0/tempera/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive calculator",
	Long: `Starts an interactive session. The result is shown right away and recomputed
after every command, e.g. "hot 85" or "mode ice". Type "help" for the full list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		plain, _ := cmd.Flags().GetBool("plain")
		return cli.RunSession(cli.SessionOptions{
			GlobalOptions: globalOptions(cmd),
			JSON:          jsonMode,
			Plain:         plain,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("plain", false, "Plain text output without banner or markdown rendering")

	// 'run' is the default if no command is provided.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
