package classb

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// LoadCircuit reads circuit constants from a YAML file. The file is opened
// through an os.Root scoped to its directory, so symlinks cannot escape it.
func LoadCircuit(path string) (Circuit, error) {
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return Circuit{}, fmt.Errorf("open circuit directory: %w", err)
	}
	defer func() {
		_ = root.Close()
	}()

	f, err := root.Open(filepath.Base(path))
	if err != nil {
		return Circuit{}, fmt.Errorf("open circuit file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return LoadCircuitFromReader(f)
}

// LoadCircuitFromReader decodes circuit constants from YAML. Decoding starts
// from DefaultCircuit, so a partial file overrides only the keys it names;
// an empty file yields the defaults unchanged.
func LoadCircuitFromReader(r io.Reader) (Circuit, error) {
	c := DefaultCircuit()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if !errors.Is(err, io.EOF) {
			return Circuit{}, fmt.Errorf("decode circuit: %w", err)
		}
		// Decode zeroes the destination before reporting an empty stream.
		c = DefaultCircuit()
	}

	if err := c.validate(); err != nil {
		return Circuit{}, err
	}

	return c, nil
}

func (c Circuit) validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"supply", c.VCC},
		{"load", c.RL},
		{"r1", c.R1},
		{"r2", c.R2},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s = %v", ErrCircuitValue, f.name, f.value)
		}
	}

	return nil
}
