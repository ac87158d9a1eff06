package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ampstage/pushpull/pkg/classb"
)

// TextFormatter renders reports as the aligned worksheet blocks used at the
// bench: inputs, derived voltages and currents, powers, then the verdict.
type TextFormatter struct {
	w io.Writer
}

// NewTextFormatter creates a text formatter writing to w.
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{w: w}
}

// Format writes one worksheet block. Voltages print in V, currents in mA,
// powers in mW, matching how the figures are read off the instruments.
func (f *TextFormatter) Format(r *Report) error {
	a := r.Analysis

	var b strings.Builder
	b.WriteString("\n==============================\n")
	fmt.Fprintf(&b, " %s\n", r.Label)
	b.WriteString("==============================\n")

	tw := tabwriter.NewWriter(&b, 0, 4, 1, ' ', 0)

	switch r.Kind {
	case KindTheoretical:
		fmt.Fprintf(tw, "VCC\t= %.2f V\n", r.Circuit.VCC)
		fmt.Fprintf(tw, "RL\t= %.2f Ω\n", r.Circuit.RL)
		fmt.Fprintf(tw, "Uin pp\t= %.2f V\n", a.Input.UinPP)
		fmt.Fprintf(tw, "Uout pp\t= %.2f V (max undistorted)\n", a.Input.UoutPP)
	default:
		fmt.Fprintf(tw, "Uin pp\t= %.2f V\n", a.Input.UinPP)
		fmt.Fprintf(tw, "Uout pp\t= %.2f V\n", a.Input.UoutPP)
		fmt.Fprintf(tw, "VR2 dc\t= %.2f V (across R2)\n", a.Input.VR2)
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Vpeak\t= %.2f V\n", float64(a.Vpeak))
	fmt.Fprintf(tw, "Vrms\t= %.3f V\n", float64(a.Vrms))
	fmt.Fprintf(tw, "Ipeak\t= %.1f mA\n", a.Ipeak.Milli())
	fmt.Fprintf(tw, "Iav\t= %.1f mA (per device)\n", a.Iav.Milli())
	fmt.Fprintf(tw, "Ibias\t= %.1f mA\n", a.Ibias.Milli())
	fmt.Fprintf(tw, "Idc\t= %.1f mA (total from supply)\n", a.Idc.Milli())

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Pout\t= %.1f mW\n", a.Pout.Milli())
	fmt.Fprintf(tw, "Pdc\t= %.1f mW\n", a.Pdc.Milli())
	fmt.Fprintf(tw, "Pd each\t= %.1f mW (per device)\n", a.PdEach.Milli())
	fmt.Fprintf(tw, "η\t= %.1f %%\n", a.Eta*100)
	if r.Kind != KindTheoretical {
		fmt.Fprintf(tw, "Av\t= %.2f\n", a.Av)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush report block: %w", err)
	}

	b.WriteString("\n")
	if r.Kind == KindTheoretical {
		fmt.Fprintf(&b, "class-B ceiling: η max = π/4 ≈ %.1f %%\n", classb.MaxEfficiency*100)
	} else {
		fmt.Fprintf(&b, "hint: %s\n", a.Advisory)
	}

	if _, err := io.WriteString(f.w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
