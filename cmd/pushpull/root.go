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

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pushpull",
	Short: "Figures of merit for a class-B push-pull output stage",
	Long: `pushpull computes the textbook figures of merit of a class-B push-pull
amplifier stage: output power, supply power, per-device dissipation,
efficiency and voltage gain, from idealized or bench-measured values.

Run without arguments it prints the lab worksheet: the theoretical
full-drive estimate followed by two example bench measurements.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

// Execute runs the root command and exits non-zero on error. Cobra already
// printed the error by then.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.pushpull.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pushpull")
	}

	viper.SetEnvPrefix("PUSHPULL")
	viper.AutomaticEnv()

	setViperDefaults()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

func setViperDefaults() {
	def := classb.DefaultCircuit()
	viper.SetDefault("supply", def.VCC)
	viper.SetDefault("load", def.RL)
	viper.SetDefault("r1", def.R1)
	viper.SetDefault("r2", def.R2)
	viper.SetDefault("gain_threshold", classb.DefaultGainThreshold)
}

// runDemo prints the lab worksheet: the theoretical full-drive estimate and
// two example bench measurements, always against the compiled lab constants.
func runDemo(w io.Writer) error {
	c := classb.DefaultCircuit()
	f := report.NewTextFormatter(w)

	theo := report.New("Step 1 - theoretical (Uin = 10 Vp-p)", report.KindTheoretical, c, classb.Theoretical(c))
	if err := f.Format(theo); err != nil {
		return err
	}

	s := classb.NewSession(c, nil)
	cases := []struct {
		label string
		m     classb.Measurement
	}{
		{"Step 2 - example measurement", classb.Measurement{UinPP: 5.0, UoutPP: 4.0, VR2: 2.0}},
		{"Step 3 - example (adjusted bias)", classb.Measurement{UinPP: 5.0, UoutPP: 6.0, VR2: 3.5}},
	}
	for _, tc := range cases {
		r := report.New(tc.label, report.KindMeasured, c, s.Apply(tc.m))
		if err := f.Format(r); err != nil {
			return err
		}
	}

	best, _ := s.BestEfficiency()
	fmt.Fprintf(w, "\nsession: %d measured cases, mean Av = %.2f, best η = %.1f %% at Uout = %.2f Vp-p\n",
		s.Count(), s.AvgGain(), best.Eta*100, best.Input.UoutPP)

	return nil
}
