package repository

import (
	"context"
	"fmt"

	"elections-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// CreateSchema creates both destination tables if they do not exist.
// Surrogate ids only; the tables are independent and carry no foreign
// keys.
func (r *Repository) CreateSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS institutions (
		id BIGSERIAL PRIMARY KEY,
		province VARCHAR(255),
		name VARCHAR(255),
		votes BIGINT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		geocode_status VARCHAR(32),
		geocode_address TEXT
	);
	CREATE TABLE IF NOT EXISTS age_gender_turnout (
		id BIGSERIAL PRIMARY KEY,
		year BIGINT,
		election_e TEXT,
		election_f TEXT,
		province_id BIGINT,
		province TEXT,
		province_f TEXT,
		gender TEXT,
		gender_f TEXT,
		age_group_id BIGINT,
		age_group TEXT,
		age_group_f TEXT,
		votes BIGINT,
		eligible_electors BIGINT,
		turnout_rate DOUBLE PRECISION
	);
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// LoadInstitutions bulk-inserts the rows in one transaction with a single
// commit. Insertion order follows the slice, so the serving layer's
// unordered scans come back in source-file order.
func (r *Repository) LoadInstitutions(ctx context.Context, rows []models.Institution) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	count, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"institutions"},
		[]string{"province", "name", "votes", "latitude", "longitude", "geocode_status", "geocode_address"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]interface{}, error) {
			row := rows[i]
			return []interface{}{row.Province, row.Name, row.Votes, row.Latitude, row.Longitude, row.GeocodeStatus, row.GeocodeAddress}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy institutions: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit institutions: %w", err)
	}
	return count, nil
}

// LoadAgeGenderTurnout bulk-inserts the rows in one transaction with a
// single commit.
func (r *Repository) LoadAgeGenderTurnout(ctx context.Context, rows []models.AgeGenderTurnout) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	count, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"age_gender_turnout"},
		[]string{
			"year", "election_e", "election_f", "province_id", "province",
			"province_f", "gender", "gender_f", "age_group_id", "age_group",
			"age_group_f", "votes", "eligible_electors", "turnout_rate",
		},
		pgx.CopyFromSlice(len(rows), func(i int) ([]interface{}, error) {
			row := rows[i]
			return []interface{}{
				row.Year, row.ElectionE, row.ElectionF, row.ProvinceID, row.Province,
				row.ProvinceF, row.Gender, row.GenderF, row.AgeGroupID, row.AgeGroup,
				row.AgeGroupF, row.Votes, row.EligibleElectors, row.TurnoutRate,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy age_gender_turnout: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit age_gender_turnout: %w", err)
	}
	return count, nil
}
