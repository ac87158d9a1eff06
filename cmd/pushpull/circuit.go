package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ampstage/pushpull/pkg/classb"
	"github.com/ampstage/pushpull/pkg/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// circuitFlags registers the constant-overriding flags shared by the
// evaluating subcommands.
func circuitFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("supply", 0, "supply voltage VCC (V)")
	cmd.Flags().Float64("load", 0, "load resistance RL (ohm)")
	cmd.Flags().Float64("r1", 0, "upper bias resistor (ohm)")
	cmd.Flags().Float64("r2", 0, "lower bias resistor (ohm)")
	cmd.Flags().String("circuit", "", "circuit constants YAML file")
}

// resolveCircuit builds the circuit for one invocation. Precedence, lowest
// first: compiled defaults, config file and environment (viper), --circuit
// YAML file, explicit flags.
func resolveCircuit(cmd *cobra.Command) (classb.Circuit, error) {
	c := classb.Circuit{
		VCC: viper.GetFloat64("supply"),
		RL:  viper.GetFloat64("load"),
		R1:  viper.GetFloat64("r1"),
		R2:  viper.GetFloat64("r2"),
	}

	if path, _ := cmd.Flags().GetString("circuit"); path != "" {
		loaded, err := classb.LoadCircuit(path)
		if err != nil {
			return classb.Circuit{}, err
		}
		c = loaded
	}

	overrides := map[string]*float64{
		"supply": &c.VCC,
		"load":   &c.RL,
		"r1":     &c.R1,
		"r2":     &c.R2,
	}
	for name, dst := range overrides {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(name)
		if err != nil {
			return classb.Circuit{}, err
		}
		*dst = v
	}

	slog.Debug("resolved circuit", "vcc", c.VCC, "rl", c.RL, "r1", c.R1, "r2", c.R2)

	return c, nil
}

// gainThreshold resolves the advisory threshold: flag beats config beats the
// compiled default.
func gainThreshold(cmd *cobra.Command) float64 {
	if cmd.Flags().Changed("gain-threshold") {
		v, _ := cmd.Flags().GetFloat64("gain-threshold")
		return v
	}

	return viper.GetFloat64("gain_threshold")
}

// openOutput returns the report destination and a close function. Without
// -o the destination is the command's stdout and closing is a no-op.
func openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}

	return f, f.Close, nil
}

// writeReport renders one report in the selected format to the selected
// destination.
func writeReport(cmd *cobra.Command, r *report.Report) error {
	w, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("format")
	f, err := report.NewFormatter(name, w)
	if err != nil {
		_ = closeOut()
		return err
	}

	ferr := f.Format(r)
	cerr := closeOut()
	if ferr != nil {
		return ferr
	}

	return cerr
}
