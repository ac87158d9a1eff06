// Package report renders push-pull analyses for humans and machines.
//
// A Report wraps one classb.Analysis in an identifying envelope (run ID,
// label, kind, timestamp, circuit constants). Formatters render reports to
// an io.Writer in one concrete syntax each; NewFormatter picks one by name.
package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ampstage/pushpull/pkg/classb"
	"github.com/google/uuid"
)

// Kind tells which evaluator produced the analysis.
type Kind string

const (
	// KindTheoretical marks the idealized full-drive estimate.
	KindTheoretical Kind = "theoretical"

	// KindMeasured marks an analysis of bench-measured values.
	KindMeasured Kind = "measured"
)

// ErrUnknownFormat indicates a format name NewFormatter has no renderer for.
var ErrUnknownFormat = errors.New("report: unknown format")

// Report is one analysis with its identifying envelope.
type Report struct {
	ID        string          `json:"id" yaml:"id"`
	Label     string          `json:"label" yaml:"label"`
	Kind      Kind            `json:"kind" yaml:"kind"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
	Circuit   classb.Circuit  `json:"circuit" yaml:"circuit"`
	Analysis  classb.Analysis `json:"analysis" yaml:"analysis"`
}

// New assembles a report envelope around one analysis. Each call gets a
// fresh run ID and a UTC timestamp.
func New(label string, kind Kind, c classb.Circuit, a classb.Analysis) *Report {
	return &Report{
		ID:        uuid.NewString(),
		Label:     label,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
		Circuit:   c,
		Analysis:  a,
	}
}

// Formatter renders reports to its writer, one call per report.
type Formatter interface {
	Format(r *Report) error
}

// Formats lists the names NewFormatter accepts, in display order.
func Formats() []string {
	return []string{"text", "json", "yaml", "csv", "html"}
}

// NewFormatter returns the formatter registered under name writing to w.
// The empty name means text.
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "", "text":
		return NewTextFormatter(w), nil
	case "json":
		return NewJSONFormatter(w, true), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "html":
		return NewHTMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownFormat, name, Formats())
	}
}
