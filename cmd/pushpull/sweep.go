package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/ampstage/pushpull/pkg/report"
	"github.com/ampstage/pushpull/pkg/sweep"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the output drive range and tabulate the power figures",
	Long: `Sweep the output drive from zero to the top of the range and tabulate
Pout, Pdc, per-device dissipation and efficiency at each level. The sweep
shows where the efficiency and dissipation extremes sit before touching
the bench.`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	circuitFlags(sweepCmd)
	sweepCmd.Flags().Int("points", 50, "number of drive levels")
	sweepCmd.Flags().Float64("max", 0, "top of the drive range in Vp-p (default VCC)")
	sweepCmd.Flags().String("filter", "", "row filter expression, e.g. 'eta > 0.5'")
	sweepCmd.Flags().String("plot", "", "write a line chart to this file (png/svg/pdf)")
	sweepCmd.Flags().StringP("format", "f", "table", "output format: table|csv|json|yaml")
	sweepCmd.Flags().StringP("output", "o", "", "write the table to a file instead of stdout")
}

func runSweep(cmd *cobra.Command, _ []string) error {
	c, err := resolveCircuit(cmd)
	if err != nil {
		return err
	}

	points, _ := cmd.Flags().GetInt("points")
	max, _ := cmd.Flags().GetFloat64("max")
	rows := sweep.Run(c, sweep.Config{Points: points, MaxPP: max})

	if src, _ := cmd.Flags().GetString("filter"); src != "" {
		rows, err = sweep.Filter(rows, src)
		if err != nil {
			return err
		}
		slog.Debug("filter applied", "expr", src, "rows", len(rows))
	}

	if path, _ := cmd.Flags().GetString("plot"); path != "" {
		if err := sweep.SavePlot(rows, path); err != nil {
			return err
		}
		slog.Info("plot written", "path", path)
	}

	w, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("format")
	werr := writeSweep(w, rows, name)
	cerr := closeOut()
	if werr != nil {
		return werr
	}

	return cerr
}

// writeSweep renders sweep rows; table is the human default, the rest are
// machine syntaxes.
func writeSweep(w io.Writer, rows []sweep.Point, format string) error {
	switch format {
	case "", "table":
		return writeSweepTable(w, rows)
	case "csv":
		return writeSweepCSV(w, rows)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", report.ErrUnknownFormat, format)
	}
}

func writeSweepTable(w io.Writer, rows []sweep.Point) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "UOUT (Vp-p)\tVPEAK (V)\tPOUT (mW)\tPDC (mW)\tPD EACH (mW)\tETA (%)")
	for _, pt := range rows {
		fmt.Fprintf(tw, "%.2f\t%.2f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			pt.UoutPP, float64(pt.Vpeak), pt.Pout.Milli(), pt.Pdc.Milli(), pt.PdEach.Milli(), pt.Eta*100)
	}

	return tw.Flush()
}

func writeSweepCSV(w io.Writer, rows []sweep.Point) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"uout_pp", "vpeak_v", "pout_w", "pdc_w", "pd_each_w", "eta"}); err != nil {
		return err
	}
	for _, pt := range rows {
		rec := []string{
			fmtG(pt.UoutPP), fmtG(float64(pt.Vpeak)),
			fmtG(float64(pt.Pout)), fmtG(float64(pt.Pdc)), fmtG(float64(pt.PdEach)),
			fmtG(pt.Eta),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func fmtG(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
