package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"elections-api/internal/geocode"
	"elections-api/internal/models"
	"elections-api/internal/tabular"
)

// Geocode columns appended to the raw table by Merge.
var geocodeColumns = []string{"latitude", "longitude", "geocode_status", "geocode_address"}

// Merge left-joins the raw table with the geocode records on the
// (province, institution) key. Every raw row and column survives; rows
// whose key has no record get empty geocode cells.
func Merge(raw *tabular.Table, records []geocode.Record) (*tabular.Table, error) {
	provIdx, err := raw.ColumnIndex(ColProvince)
	if err != nil {
		return nil, err
	}
	instIdx, err := raw.ColumnIndex(ColInstitution)
	if err != nil {
		return nil, err
	}

	index := make(map[geocode.Key]geocode.Record, len(records))
	for _, rec := range records {
		index[geocode.Key{Province: rec.Province, Institution: rec.Institution}] = rec
	}

	columns := make([]string, 0, len(raw.Columns)+len(geocodeColumns))
	columns = append(columns, raw.Columns...)
	columns = append(columns, geocodeColumns...)

	merged := &tabular.Table{Columns: columns, Rows: make([][]string, 0, len(raw.Rows))}
	for i, row := range raw.Rows {
		cells := make([]string, len(raw.Columns), len(columns))
		copy(cells, row)

		key := geocode.Key{Province: raw.Value(i, provIdx), Institution: raw.Value(i, instIdx)}
		if rec, ok := index[key]; ok {
			cells = append(cells,
				formatCoord(rec.Latitude),
				formatCoord(rec.Longitude),
				rec.Status,
				derefString(rec.Address),
			)
		} else {
			cells = append(cells, "", "", "", "")
		}
		merged.Rows = append(merged.Rows, cells)
	}
	return merged, nil
}

// InstitutionRows converts the merged table into relational entities,
// normalizing the vote column from comma-grouped text to an integer.
func InstitutionRows(merged *tabular.Table, voteColumn string) ([]models.Institution, error) {
	provIdx, err := merged.ColumnIndex(ColProvince)
	if err != nil {
		return nil, err
	}
	instIdx, err := merged.ColumnIndex(ColInstitution)
	if err != nil {
		return nil, err
	}
	voteIdx, err := merged.ColumnIndex(voteColumn)
	if err != nil {
		return nil, err
	}
	latIdx, err := merged.ColumnIndex("latitude")
	if err != nil {
		return nil, err
	}
	lonIdx, err := merged.ColumnIndex("longitude")
	if err != nil {
		return nil, err
	}
	statusIdx, err := merged.ColumnIndex("geocode_status")
	if err != nil {
		return nil, err
	}
	addrIdx, err := merged.ColumnIndex("geocode_address")
	if err != nil {
		return nil, err
	}

	rows := make([]models.Institution, 0, len(merged.Rows))
	for i := range merged.Rows {
		votes, err := ParseVoteCount(merged.Value(i, voteIdx))
		if err != nil {
			return nil, fmt.Errorf("pipeline: row %d: %w", i, err)
		}

		lat, err := parseCoord(merged.Value(i, latIdx))
		if err != nil {
			return nil, fmt.Errorf("pipeline: row %d: invalid latitude: %w", i, err)
		}
		lon, err := parseCoord(merged.Value(i, lonIdx))
		if err != nil {
			return nil, fmt.Errorf("pipeline: row %d: invalid longitude: %w", i, err)
		}

		rows = append(rows, models.Institution{
			Province:       merged.Value(i, provIdx),
			Name:           merged.Value(i, instIdx),
			Votes:          votes,
			Latitude:       lat,
			Longitude:      lon,
			GeocodeStatus:  nullString(merged.Value(i, statusIdx)),
			GeocodeAddress: nullString(merged.Value(i, addrIdx)),
		})
	}
	return rows, nil
}

// ParseVoteCount strips thousands separators and parses the count, or
// returns nil when the source cell is empty.
func ParseVoteCount(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("pipeline: invalid vote count %q: %w", s, err)
	}
	return &n, nil
}

// parseCoord parses an optional coordinate cell. The merged table's
// coordinate cells are pipeline-produced, so non-empty garbage is an
// error rather than a silent null.
func parseCoord(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
