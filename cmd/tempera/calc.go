package main

import (
	"os"

	"github.com/aretw0/tempera/internal/cli"
	"github.com/aretw0/tempera/pkg/domain"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute one mix and print it",
	Long: `Computes a single mix from the configured defaults and the given flags.
Numbers are read forgivingly: "85abc" reads as 85, unparsable text as 0.`,
	Example: `  tempera calc --hot 85 --target 60
  tempera calc --mode ice --target 5 --ice -10 --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var fields domain.Fields
		for flag, field := range calcFlags {
			if cmd.Flags().Changed(flag) {
				v, _ := cmd.Flags().GetString(flag)
				_ = fields.Set(field, v)
			}
		}
		format, _ := cmd.Flags().GetString("format")

		return cli.RunCalc(cmd.Context(), cli.CalcOptions{
			GlobalOptions: globalOptions(cmd),
			Fields:        fields,
			Format:        format,
		}, os.Stdout)
	},
}

// calcFlags maps flag names to the field they set.
var calcFlags = map[string]string{
	"total":  domain.FieldTotal,
	"target": domain.FieldTarget,
	"hot":    domain.FieldHot,
	"mode":   domain.FieldMode,
	"cold":   domain.FieldColdWater,
	"ice":    domain.FieldIceStart,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().String("total", "", "Total amount of the mix in g")
	calcCmd.Flags().String("target", "", "Target temperature in °C")
	calcCmd.Flags().String("hot", "", "Temperature of the hot liquid in °C")
	calcCmd.Flags().String("mode", "", "Coolant: water or ice")
	calcCmd.Flags().String("cold", "", "Cold water temperature in °C (water mode)")
	calcCmd.Flags().String("ice", "", "Ice temperature in °C (ice mode)")
	calcCmd.Flags().StringP("format", "f", cli.FormatText, "Output format: text, markdown or json")
}
