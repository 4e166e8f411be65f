package pipeline

import (
	"strconv"
	"strings"

	"elections-api/internal/models"
	"elections-api/internal/tabular"
)

// Column names of the turnout-by-age/gender/province file. The source
// mixes upper- and lower-case names; they are used verbatim.
var ageGenderColumns = []string{
	"YEAR", "ELECTION_E", "ELECTION_F", "PROVINCE_ID", "province",
	"PROVINCE_F", "gender", "GENDER_F", "AGE_GROUP_ID", "age_group",
	"AGE_GROUP_F", "VOTES", "ELIGIBLE_ELECTORS", "turnout_rate",
}

// AgeGenderRows converts the raw breakdown table into relational
// entities. Every column is optional: empty or unparsable cells map
// uniformly to nil rather than rejecting the row.
func AgeGenderRows(t *tabular.Table) ([]models.AgeGenderTurnout, error) {
	idx := make(map[string]int, len(ageGenderColumns))
	for _, name := range ageGenderColumns {
		i, err := t.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		idx[name] = i
	}

	rows := make([]models.AgeGenderTurnout, 0, len(t.Rows))
	for i := range t.Rows {
		cell := func(name string) string { return t.Value(i, idx[name]) }

		rows = append(rows, models.AgeGenderTurnout{
			Year:             nullInt(cell("YEAR")),
			ElectionE:        nullString(cell("ELECTION_E")),
			ElectionF:        nullString(cell("ELECTION_F")),
			ProvinceID:       nullInt(cell("PROVINCE_ID")),
			Province:         nullString(cell("province")),
			ProvinceF:        nullString(cell("PROVINCE_F")),
			Gender:           nullString(cell("gender")),
			GenderF:          nullString(cell("GENDER_F")),
			AgeGroupID:       nullInt(cell("AGE_GROUP_ID")),
			AgeGroup:         nullString(cell("age_group")),
			AgeGroupF:        nullString(cell("AGE_GROUP_F")),
			Votes:            nullInt(cell("VOTES")),
			EligibleElectors: nullInt(cell("ELIGIBLE_ELECTORS")),
			TurnoutRate:      nullFloat(cell("turnout_rate")),
		})
	}
	return rows, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullInt(s string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func nullFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}
