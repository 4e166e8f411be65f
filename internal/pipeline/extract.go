// Package pipeline contains the batch steps that take the raw elections
// table to a merged, geocoded dataset ready for persistence.
package pipeline

import (
	"elections-api/internal/geocode"
	"elections-api/internal/tabular"
)

// Column names fixed by the Elections Canada source files.
const (
	ColProvince    = "Province"
	ColInstitution = "Post-secondary Institution"

	// DefaultVoteColumn holds comma-grouped vote counts as text.
	DefaultVoteColumn = "43rd General Election"
)

// UniqueInstitutions returns the distinct (province, institution) pairs of
// the raw table, in order of first occurrence.
func UniqueInstitutions(t *tabular.Table) ([]geocode.Key, error) {
	provIdx, err := t.ColumnIndex(ColProvince)
	if err != nil {
		return nil, err
	}
	instIdx, err := t.ColumnIndex(ColInstitution)
	if err != nil {
		return nil, err
	}

	seen := make(map[geocode.Key]struct{})
	var keys []geocode.Key
	for i := range t.Rows {
		key := geocode.Key{Province: t.Value(i, provIdx), Institution: t.Value(i, instIdx)}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys, nil
}
