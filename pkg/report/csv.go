package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader names the columns of a report row. Electrical quantities are in
// base SI units.
var csvHeader = []string{
	"id", "label", "kind",
	"uin_pp", "uout_pp", "vr2_dc",
	"vpeak_v", "vrms_v",
	"ipeak_a", "iav_a", "ibias_a", "idc_a",
	"pout_w", "pdc_w", "pd_each_w",
	"eta", "av", "advisory",
}

// CSVFormatter renders reports as CSV rows. The header is written once, on
// the first call, so successive reports append to the same table.
type CSVFormatter struct {
	w         *csv.Writer
	headerOut bool
}

// NewCSVFormatter creates a CSV formatter writing to w.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: csv.NewWriter(w)}
}

// Format appends one row, emitting the header first if needed.
func (f *CSVFormatter) Format(r *Report) error {
	if !f.headerOut {
		if err := f.w.Write(csvHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		f.headerOut = true
	}

	a := r.Analysis
	row := []string{
		r.ID, r.Label, string(r.Kind),
		ftoa(a.Input.UinPP), ftoa(a.Input.UoutPP), ftoa(a.Input.VR2),
		ftoa(float64(a.Vpeak)), ftoa(float64(a.Vrms)),
		ftoa(float64(a.Ipeak)), ftoa(float64(a.Iav)), ftoa(float64(a.Ibias)), ftoa(float64(a.Idc)),
		ftoa(float64(a.Pout)), ftoa(float64(a.Pdc)), ftoa(float64(a.PdEach)),
		ftoa(a.Eta), ftoa(a.Av), string(a.Advisory),
	}

	if err := f.w.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	f.w.Flush()
	return f.w.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
