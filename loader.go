package portfolio

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultInput is the holdings file looked up when the input is a folder.
const DefaultInput = "data.json"

// LoadRecords opens and decodes the holdings file at path.
// If path is a folder, the DefaultInput file of that folder is loaded.
func LoadRecords(path string, opts DecodeOptions) ([]*Record, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultInput)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open holdings file %q: %w", path, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f, opts)
	if err != nil {
		return nil, fmt.Errorf("could not decode holdings file %q: %w", path, err)
	}
	return records, nil
}
