package sweep

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// WritePlot renders the three power curves as a line chart into w.
// Supported formats are the vg canvas formats, typically png, svg and pdf.
func WritePlot(w io.Writer, points []Point, format string) error {
	p, err := newPlot(points)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(plotWidth, plotHeight, format)
	if err != nil {
		return fmt.Errorf("render plot: %w", err)
	}

	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}

	return nil
}

// SavePlot renders the sweep into the file named by path; the extension
// selects the format.
func SavePlot(points []Point, path string) error {
	p, err := newPlot(points)
	if err != nil {
		return err
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	return nil
}

func newPlot(points []Point) (*plot.Plot, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	p := plot.New()
	p.Title.Text = "class-B power sweep"
	p.X.Label.Text = "Uout (Vp-p)"
	p.Y.Label.Text = "P (W)"
	p.Add(plotter.NewGrid())

	err := plotutil.AddLinePoints(p,
		"Pout", curve(points, func(pt Point) float64 { return float64(pt.Pout) }),
		"Pdc", curve(points, func(pt Point) float64 { return float64(pt.Pdc) }),
		"Pd each", curve(points, func(pt Point) float64 { return float64(pt.PdEach) }),
	)
	if err != nil {
		return nil, fmt.Errorf("add curves: %w", err)
	}

	return p, nil
}

func curve(points []Point, y func(Point) float64) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.UoutPP, Y: y(pt)}
	}

	return xys
}
