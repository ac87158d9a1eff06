package main

import (
	"strings"

	"github.com/ampstage/pushpull/pkg/classb"
	"github.com/ampstage/pushpull/pkg/report"
	"github.com/spf13/cobra"
)

var theoreticalCmd = &cobra.Command{
	Use:   "theoretical",
	Short: "Evaluate the idealized full-drive operating point",
	Long: `Evaluate the idealized class-B operating point: output swinging the whole
supply rail, bias divider carrying only its static current. This is the
paper estimate to compare bench measurements against.`,
	RunE: runTheoretical,
}

func init() {
	rootCmd.AddCommand(theoreticalCmd)

	circuitFlags(theoreticalCmd)
	theoreticalCmd.Flags().String("label", "Theoretical full drive", "report label")
	theoreticalCmd.Flags().StringP("format", "f", "text", "report format: "+strings.Join(report.Formats(), "|"))
	theoreticalCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
}

func runTheoretical(cmd *cobra.Command, _ []string) error {
	c, err := resolveCircuit(cmd)
	if err != nil {
		return err
	}

	label, _ := cmd.Flags().GetString("label")

	return writeReport(cmd, report.New(label, report.KindTheoretical, c, classb.Theoretical(c)))
}
