package main

import (
	"strings"

	"github.com/ampstage/pushpull/pkg/classb"
	"github.com/ampstage/pushpull/pkg/report"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Evaluate one measured operating point",
	Long: `Evaluate one operating point from bench measurements: generator and
output amplitudes in Vp-p plus the DC voltage across R2, from which the
bias current is inferred.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	circuitFlags(analyzeCmd)
	analyzeCmd.Flags().Float64("uin", 0, "generator amplitude (Vp-p)")
	analyzeCmd.Flags().Float64("uout", 0, "output amplitude on RL (Vp-p)")
	analyzeCmd.Flags().Float64("vr2", 0, "measured DC voltage across R2 (V)")
	analyzeCmd.Flags().String("label", "Measured case", "report label")
	analyzeCmd.Flags().Float64("gain-threshold", 0, "advisory threshold for Av")
	analyzeCmd.Flags().StringP("format", "f", "text", "report format: "+strings.Join(report.Formats(), "|"))
	analyzeCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")

	_ = analyzeCmd.MarkFlagRequired("uin")
	_ = analyzeCmd.MarkFlagRequired("uout")
	_ = analyzeCmd.MarkFlagRequired("vr2")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	c, err := resolveCircuit(cmd)
	if err != nil {
		return err
	}

	uin, _ := cmd.Flags().GetFloat64("uin")
	uout, _ := cmd.Flags().GetFloat64("uout")
	vr2, _ := cmd.Flags().GetFloat64("vr2")

	s := classb.NewSession(c, &classb.Options{GainThreshold: gainThreshold(cmd)})
	a := s.Apply(classb.Measurement{UinPP: uin, UoutPP: uout, VR2: vr2})

	label, _ := cmd.Flags().GetString("label")

	return writeReport(cmd, report.New(label, report.KindMeasured, c, a))
}
