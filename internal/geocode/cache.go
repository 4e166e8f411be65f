package geocode

import (
	"fmt"
	"os"

	"github.com/jszwec/csvutil"
)

// LoadCache reads the full record set from the cache file. Empty cells
// decode to nil pointer fields.
func LoadCache(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geocode: failed to read cache: %w", err)
	}

	var records []Record
	if err := csvutil.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("geocode: failed to parse cache %s: %w", path, err)
	}
	return records, nil
}

// SaveCache writes the full record set to the cache file, replacing any
// previous contents.
func SaveCache(path string, records []Record) error {
	data, err := csvutil.Marshal(records)
	if err != nil {
		return fmt.Errorf("geocode: failed to encode cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("geocode: failed to write cache: %w", err)
	}
	return nil
}
