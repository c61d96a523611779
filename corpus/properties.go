package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MarshalProperties renders a property record as indented JSON.
// Key order is whatever the record's MarshalJSON emits.
func MarshalProperties(rec json.Marshaler) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("corpus: marshal properties: %w", err)
	}

	return append(data, '\n'), nil
}

// WriteProperties writes rec to path, creating parent directories, and
// returns the bytes written.
func WriteProperties(path string, rec json.Marshaler) ([]byte, error) {
	data, err := MarshalProperties(rec)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("corpus: mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("corpus: write %s: %w", path, err)
	}

	return data, nil
}

// ReadProperties loads a property file as a generic JSON object.
func ReadProperties(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", path, err)
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("corpus: decode %s: %w", path, err)
	}

	return out, nil
}
