package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter renders reports as JSON, one document per call.
type JSONFormatter struct {
	w      io.Writer
	indent bool
}

// NewJSONFormatter creates a JSON formatter writing to w. With indent set
// the output is pretty-printed for terminals.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{w: w, indent: indent}
}

// Format encodes one report, newline-terminated.
func (f *JSONFormatter) Format(r *Report) error {
	enc := json.NewEncoder(f.w)
	if f.indent {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}
