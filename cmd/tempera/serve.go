package main

import (
	"github.com/aretw0/tempera/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Serves the calculator page on /, a JSON API on POST /calculate,
Prometheus metrics on /metrics and the OpenAPI document on /openapi.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		return cli.RunServe(cli.ServeOptions{
			GlobalOptions: globalOptions(cmd),
			Port:          port,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config, 8080)")
}
