package turnout

import (
	"os"
	"path/filepath"
	"testing"

	"elections-api/internal/models"
	"elections-api/internal/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func turnoutTable(rows ...[]string) *tabular.Table {
	return &tabular.Table{
		Columns: []string{ColElectionYear, ColAgeGroup, ColTurnoutPercentage},
		Rows:    rows,
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]string
		expected    []models.TurnoutRecord
		wantDropped int
	}{
		{
			name: "coerces types and trims age group",
			rows: [][]string{{"2019", " 18-24 ", "57.3"}},
			expected: []models.TurnoutRecord{
				{ElectionYear: 2019, AgeGroup: "18-24", TurnoutPercentage: 57.3},
			},
		},
		{
			name:        "drops percentage above 100",
			rows:        [][]string{{"2019", "18-24", "150"}},
			expected:    []models.TurnoutRecord{},
			wantDropped: 1,
		},
		{
			name:        "drops negative percentage",
			rows:        [][]string{{"2019", "18-24", "-3"}},
			expected:    []models.TurnoutRecord{},
			wantDropped: 1,
		},
		{
			name:        "drops unparsable year",
			rows:        [][]string{{"twenty-nineteen", "18-24", "57.3"}},
			expected:    []models.TurnoutRecord{},
			wantDropped: 1,
		},
		{
			name:        "drops unparsable percentage",
			rows:        [][]string{{"2019", "18-24", "n/a"}},
			expected:    []models.TurnoutRecord{},
			wantDropped: 1,
		},
		{
			name:        "drops blank age group",
			rows:        [][]string{{"2019", "   ", "57.3"}},
			expected:    []models.TurnoutRecord{},
			wantDropped: 1,
		},
		{
			name: "keeps boundary percentages",
			rows: [][]string{{"2019", "18-24", "0"}, {"2019", "25-34", "100"}},
			expected: []models.TurnoutRecord{
				{ElectionYear: 2019, AgeGroup: "18-24", TurnoutPercentage: 0},
				{ElectionYear: 2019, AgeGroup: "25-34", TurnoutPercentage: 100},
			},
		},
		{
			name: "sorts ascending by year, stable within a year",
			rows: [][]string{
				{"2021", "18-24", "46.7"},
				{"2015", "65-74", "78.8"},
				{"2021", "25-34", "51.2"},
				{"2019", "18-24", "57.3"},
			},
			expected: []models.TurnoutRecord{
				{ElectionYear: 2015, AgeGroup: "65-74", TurnoutPercentage: 78.8},
				{ElectionYear: 2019, AgeGroup: "18-24", TurnoutPercentage: 57.3},
				{ElectionYear: 2021, AgeGroup: "18-24", TurnoutPercentage: 46.7},
				{ElectionYear: 2021, AgeGroup: "25-34", TurnoutPercentage: 51.2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, dropped, err := Clean(turnoutTable(tt.rows...))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, records)
			assert.Equal(t, tt.wantDropped, dropped)
		})
	}
}

func TestClean_MissingColumn(t *testing.T) {
	table := &tabular.Table{Columns: []string{ColElectionYear, ColAgeGroup}, Rows: nil}

	_, _, err := Clean(table)
	assert.Error(t, err)
}

func TestWriteRecords(t *testing.T) {
	records := []models.TurnoutRecord{
		{ElectionYear: 2019, AgeGroup: "18-24", TurnoutPercentage: 57.3},
	}

	path := filepath.Join(t.TempDir(), "cleaned.csv")
	require.NoError(t, WriteRecords(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "election_year,age_group,turnout_percentage")
	assert.Contains(t, string(data), "2019,18-24,57.3")
}
