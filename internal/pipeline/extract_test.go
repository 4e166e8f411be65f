package pipeline

import (
	"testing"

	"elections-api/internal/geocode"
	"elections-api/internal/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawTable(rows ...[]string) *tabular.Table {
	return &tabular.Table{
		Columns: []string{ColProvince, ColInstitution, DefaultVoteColumn},
		Rows:    rows,
	}
}

func TestUniqueInstitutions(t *testing.T) {
	table := rawTable(
		[]string{"Ontario", "Carleton University", "2,335"},
		[]string{"Quebec", "McGill University", "980"},
		[]string{"Ontario", "Carleton University", "1,871"},
		[]string{"Ontario", "McGill University", "12"},
	)

	keys, err := UniqueInstitutions(table)
	require.NoError(t, err)

	// First-occurrence order, duplicates removed. The same institution
	// name under a different province is a distinct key.
	assert.Equal(t, []geocode.Key{
		{Province: "Ontario", Institution: "Carleton University"},
		{Province: "Quebec", Institution: "McGill University"},
		{Province: "Ontario", Institution: "McGill University"},
	}, keys)
}

func TestUniqueInstitutions_MissingColumn(t *testing.T) {
	table := &tabular.Table{Columns: []string{"Province"}, Rows: [][]string{{"Ontario"}}}

	_, err := UniqueInstitutions(table)
	assert.Error(t, err)
}

func TestUniqueInstitutions_Empty(t *testing.T) {
	keys, err := UniqueInstitutions(rawTable())
	require.NoError(t, err)
	assert.Empty(t, keys)
}
