package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/ampstage/pushpull/pkg/eseries"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var biasCmd = &cobra.Command{
	Use:   "bias",
	Short: "Suggest E24 divider pairs for a target bias current",
	Long: `Suggest standard E24 resistor pairs for the bias divider: each candidate
is ranked by how close it comes to the target current while keeping the
R2 voltage near the supply midpoint.`,
	RunE: runBias,
}

func init() {
	rootCmd.AddCommand(biasCmd)

	biasCmd.Flags().Float64("target-ibias", 5.0, "target divider current (mA)")
	biasCmd.Flags().Float64("supply", 0, "supply voltage VCC (V)")
	biasCmd.Flags().Int("count", 5, "number of suggestions")
}

func runBias(cmd *cobra.Command, _ []string) error {
	vcc := viper.GetFloat64("supply")
	if cmd.Flags().Changed("supply") {
		vcc, _ = cmd.Flags().GetFloat64("supply")
	}

	ma, _ := cmd.Flags().GetFloat64("target-ibias")
	count, _ := cmd.Flags().GetInt("count")

	opts := eseries.DividerOptions(vcc, ma/1e3, count)
	if len(opts) == 0 {
		return fmt.Errorf("no divider suggestions for %.2f V / %.2f mA", vcc, ma)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "R1 (Ω)\tR2 (Ω)\tIBIAS\tVR2\tBIAS ERR (%)\tMID ERR (%)")
	for _, o := range opts {
		fmt.Fprintf(tw, "%.0f\t%.0f\t%s\t%s\t%.2f\t%.2f\n",
			o.R1, o.R2, o.Ibias.Humanized(), o.VR2.Humanized(), o.BiasErr*100, o.MidErr*100)
	}

	return tw.Flush()
}
