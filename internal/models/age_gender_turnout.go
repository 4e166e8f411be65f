package models

// AgeGenderTurnout mirrors one row of Elections Canada's turnout breakdown
// by age group, gender and province. Every source column is nullable, so
// each field except the surrogate id is a pointer.
type AgeGenderTurnout struct {
	ID               int64    `json:"id"`
	Year             *int64   `json:"year"`
	ElectionE        *string  `json:"election_e"`
	ElectionF        *string  `json:"election_f"`
	ProvinceID       *int64   `json:"province_id"`
	Province         *string  `json:"province"`
	ProvinceF        *string  `json:"province_f"`
	Gender           *string  `json:"gender"`
	GenderF          *string  `json:"gender_f"`
	AgeGroupID       *int64   `json:"age_group_id"`
	AgeGroup         *string  `json:"age_group"`
	AgeGroupF        *string  `json:"age_group_f"`
	Votes            *int64   `json:"votes"`
	EligibleElectors *int64   `json:"eligible_electors"`
	TurnoutRate      *float64 `json:"turnout_rate"`
}
