package models

// TurnoutRecord is one cleaned national turnout observation. Rows only
// exist in this form after the cleaner has validated them, so all fields
// are concrete values.
type TurnoutRecord struct {
	ElectionYear      int     `csv:"election_year" json:"election_year"`
	AgeGroup          string  `csv:"age_group" json:"age_group"`
	TurnoutPercentage float64 `csv:"turnout_percentage" json:"turnout_percentage"`
}
