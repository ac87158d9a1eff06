package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders reports as YAML, one document per call.
type YAMLFormatter struct {
	w io.Writer
}

// NewYAMLFormatter creates a YAML formatter writing to w.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{w: w}
}

// Format encodes one report with two-space indentation.
func (f *YAMLFormatter) Format(r *Report) error {
	enc := yaml.NewEncoder(f.w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		return fmt.Errorf("encode report: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}

	return nil
}
