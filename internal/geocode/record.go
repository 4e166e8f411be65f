package geocode

import "fmt"

// Geocode outcome for a single institution key.
const (
	StatusOK       = "OK"
	StatusNotFound = "NOT_FOUND"
	StatusError    = "ERROR"
)

// Key identifies an institution within a province. It is the sole join
// key between the raw elections table and the geocode cache; matching is
// exact-string only, so naming drift between files reads as a cache miss.
type Key struct {
	Province    string
	Institution string
}

// Query formats the key as the free-text lookup sent to the provider.
func (k Key) Query() string {
	return fmt.Sprintf("%s, %s, Canada", k.Institution, k.Province)
}

// Record is one cached geocode outcome. Latitude and longitude are nil
// unless Status is OK. When Status is ERROR the Address field carries the
// provider error text as a diagnostic.
type Record struct {
	Province    string   `csv:"Province"`
	Institution string   `csv:"Post-secondary Institution"`
	Latitude    *float64 `csv:"latitude"`
	Longitude   *float64 `csv:"longitude"`
	Status      string   `csv:"geocode_status"`
	Address     *string  `csv:"geocode_address"`
}
