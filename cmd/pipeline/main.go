package main

import (
	"context"
	"flag"

	"elections-api/internal/config"
	"elections-api/internal/geocode"
	"elections-api/internal/pipeline"
	"elections-api/internal/repository"
	"elections-api/internal/tabular"
	"elections-api/internal/turnout"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	elections := flag.String("elections", "", "Path to the on-campus voting results CSV")
	cache := flag.String("cache", "data/institution_locations.csv", "Path to the geocode cache CSV")
	merged := flag.String("merged", "data/voter_turnout_with_coords.csv", "Output path for the merged CSV")
	voteColumn := flag.String("vote-column", pipeline.DefaultVoteColumn, "Name of the election-result column")
	ageGender := flag.String("agegender", "", "Optional path to the turnout-by-age/gender/province CSV")
	turnoutPath := flag.String("turnout", "", "Optional path to the simple turnout CSV to clean")
	cleaned := flag.String("cleaned", "", "Optional output path for the cleaned turnout CSV")
	flag.Parse()

	if *elections == "" {
		log.Fatal().Msg("-elections flag is required")
	}

	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx := context.Background()

	raw, err := tabular.ReadFile(*elections)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load elections file")
	}
	log.Info().Int("rows", len(raw.Rows)).Str("path", *elections).Msg("loaded elections data")

	keys, err := pipeline.UniqueInstitutions(raw)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot extract institutions")
	}
	log.Info().Int("institutions", len(keys)).Msg("extracted unique institutions")

	client := geocode.NewNominatimClient(
		geocode.WithBaseURL(cfg.GeocoderBaseURL),
		geocode.WithUserAgent(cfg.GeocoderUserAgent),
		geocode.WithMinInterval(cfg.GeocoderMinInterval),
	)
	resolver := geocode.NewResolver(client, *cache, cfg.TrustGeocodeCache)

	records, err := resolver.ResolveAll(ctx, keys)
	if err != nil {
		log.Fatal().Err(err).Msg("geocoding failed")
	}

	mergedTable, err := pipeline.Merge(raw, records)
	if err != nil {
		log.Fatal().Err(err).Msg("merge failed")
	}

	instRows, err := pipeline.InstitutionRows(mergedTable, *voteColumn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build institution rows")
	}

	if err := mergedTable.WriteFile(*merged); err != nil {
		log.Fatal().Err(err).Msg("cannot write merged file")
	}
	log.Info().Str("path", *merged).Int("rows", len(mergedTable.Rows)).Msg("saved merged data")

	// Database load
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.CreateSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	count, err := repo.LoadInstitutions(ctx, instRows)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load institutions")
	}
	log.Info().Int64("rows", count).Msg("loaded institutions table")

	if *ageGender != "" {
		table, err := tabular.ReadFile(*ageGender)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot load age/gender file")
		}
		rows, err := pipeline.AgeGenderRows(table)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot build age/gender rows")
		}
		count, err := repo.LoadAgeGenderTurnout(ctx, rows)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot load age_gender_turnout")
		}
		log.Info().Int64("rows", count).Msg("loaded age_gender_turnout table")
	}

	if *turnoutPath != "" {
		table, err := tabular.ReadFile(*turnoutPath)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot load turnout file")
		}
		cleanedRecords, dropped, err := turnout.Clean(table)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot clean turnout data")
		}
		log.Info().Int("rows", len(cleanedRecords)).Int("dropped", dropped).Msg("cleaned turnout data")

		if *cleaned != "" {
			if err := turnout.WriteRecords(*cleaned, cleanedRecords); err != nil {
				log.Fatal().Err(err).Msg("cannot write cleaned turnout file")
			}
			log.Info().Str("path", *cleaned).Msg("saved cleaned turnout data")
		}
	}
}
