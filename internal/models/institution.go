package models

// Institution represents one post-secondary institution's on-campus vote
// result together with its geocoded position. Pointer fields are nullable:
// votes is absent when the source file had no count, and the coordinate
// fields are absent when geocoding missed or failed.
type Institution struct {
	ID             int64    `json:"-"`
	Province       string   `json:"province"`
	Name           string   `json:"name"`
	Votes          *int64   `json:"votes"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	GeocodeStatus  *string  `json:"geocode_status"`
	GeocodeAddress *string  `json:"geocode_address"`
}
