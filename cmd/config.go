package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the defaults read from the settings file.
//
// Columns are part of the presets and cannot be changed here.
type Settings struct {
	Input  string `yaml:"input"`
	OutDir string `yaml:"out_dir"`
	// Path selects the holdings array in the input document.
	Path     string `yaml:"path"`
	Theme    string `yaml:"theme"`
	Break    string `yaml:"break"`
	Currency string `yaml:"currency"`
	// Presets are rendered by the all command.
	Presets []string `yaml:"presets"`
}

// LoadSettings reads a settings file. Unknown keys are an error.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	f, err := os.Open(path)
	if err != nil {
		return s, fmt.Errorf("could not open settings file %q: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("could not decode settings file %q: %w", path, err)
	}
	return s, nil
}
