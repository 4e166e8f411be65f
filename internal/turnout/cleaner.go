// Package turnout cleans the national turnout-by-age-group dataset.
package turnout

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"

	"elections-api/internal/models"
	"elections-api/internal/tabular"
)

// Source columns of the simple turnout file.
const (
	ColElectionYear      = "election_year"
	ColAgeGroup          = "age_group"
	ColTurnoutPercentage = "turnout_percentage"
)

// Clean projects the table to its three known columns, coerces types,
// and drops invalid rows: unparsable year or percentage, blank age group,
// or a percentage outside [0,100]. Surviving rows come back sorted
// ascending by election year, along with the number of rows dropped.
func Clean(t *tabular.Table) ([]models.TurnoutRecord, int, error) {
	yearIdx, err := t.ColumnIndex(ColElectionYear)
	if err != nil {
		return nil, 0, err
	}
	ageIdx, err := t.ColumnIndex(ColAgeGroup)
	if err != nil {
		return nil, 0, err
	}
	pctIdx, err := t.ColumnIndex(ColTurnoutPercentage)
	if err != nil {
		return nil, 0, err
	}

	records := make([]models.TurnoutRecord, 0, len(t.Rows))
	dropped := 0
	for i := range t.Rows {
		year, err := strconv.Atoi(strings.TrimSpace(t.Value(i, yearIdx)))
		if err != nil {
			dropped++
			continue
		}

		ageGroup := strings.TrimSpace(t.Value(i, ageIdx))
		if ageGroup == "" {
			dropped++
			continue
		}

		pct, err := strconv.ParseFloat(strings.TrimSpace(t.Value(i, pctIdx)), 64)
		if err != nil || pct < 0 || pct > 100 {
			dropped++
			continue
		}

		records = append(records, models.TurnoutRecord{
			ElectionYear:      year,
			AgeGroup:          ageGroup,
			TurnoutPercentage: pct,
		})
	}

	sort.SliceStable(records, func(a, b int) bool {
		return records[a].ElectionYear < records[b].ElectionYear
	})
	return records, dropped, nil
}

// WriteRecords saves the cleaned set as CSV, overwriting any existing
// file.
func WriteRecords(path string, records []models.TurnoutRecord) error {
	data, err := csvutil.Marshal(records)
	if err != nil {
		return fmt.Errorf("turnout: failed to encode records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("turnout: failed to write %s: %w", path, err)
	}
	return nil
}
