package repository

import (
	"context"
	"fmt"

	"elections-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the repository interface for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListInstitutions returns every institutions row. There is no ORDER BY:
// rows come back in load order, which the loader fixes by inserting in
// source-file order.
func (r *Repository) ListInstitutions(ctx context.Context) ([]models.Institution, error) {
	sql := `
		SELECT
			id,
			province,
			name,
			votes,
			latitude,
			longitude,
			geocode_status,
			geocode_address
		FROM institutions
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query institutions: %w", err)
	}
	defer rows.Close()

	var institutions []models.Institution
	for rows.Next() {
		var inst models.Institution
		err := rows.Scan(
			&inst.ID,
			&inst.Province,
			&inst.Name,
			&inst.Votes,
			&inst.Latitude,
			&inst.Longitude,
			&inst.GeocodeStatus,
			&inst.GeocodeAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan institution: %w", err)
		}
		institutions = append(institutions, inst)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return institutions, nil
}

// ListAgeGenderTurnout returns every age_gender_turnout row.
func (r *Repository) ListAgeGenderTurnout(ctx context.Context) ([]models.AgeGenderTurnout, error) {
	sql := `
		SELECT
			id,
			year,
			election_e,
			election_f,
			province_id,
			province,
			province_f,
			gender,
			gender_f,
			age_group_id,
			age_group,
			age_group_f,
			votes,
			eligible_electors,
			turnout_rate
		FROM age_gender_turnout
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query age_gender_turnout: %w", err)
	}
	defer rows.Close()

	var records []models.AgeGenderTurnout
	for rows.Next() {
		var rec models.AgeGenderTurnout
		err := rows.Scan(
			&rec.ID,
			&rec.Year,
			&rec.ElectionE,
			&rec.ElectionF,
			&rec.ProvinceID,
			&rec.Province,
			&rec.ProvinceF,
			&rec.Gender,
			&rec.GenderF,
			&rec.AgeGroupID,
			&rec.AgeGroup,
			&rec.AgeGroupF,
			&rec.Votes,
			&rec.EligibleElectors,
			&rec.TurnoutRate,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan age_gender_turnout: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return records, nil
}
