package geocode

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
)

// Resolver turns institution keys into geocode records, going through the
// cache file whenever it already exists.
type Resolver struct {
	client     Client
	cachePath  string
	trustCache bool
}

// NewResolver creates a Resolver. When trustCache is true and the cache
// file exists, it is loaded wholesale and no external lookups happen —
// including for keys added to the source since the cache was written.
// Delete the cache file (or disable the flag) to force a re-geocode.
func NewResolver(client Client, cachePath string, trustCache bool) *Resolver {
	return &Resolver{client: client, cachePath: cachePath, trustCache: trustCache}
}

// ResolveAll returns one Record per key. A from-scratch run looks every
// key up once, never aborts on a single failed key, and persists the full
// result set to the cache file exactly once at the end.
func (r *Resolver) ResolveAll(ctx context.Context, keys []Key) ([]Record, error) {
	if r.trustCache {
		if _, err := os.Stat(r.cachePath); err == nil {
			log.Info().Str("path", r.cachePath).Msg("loading cached coordinates")
			return LoadCache(r.cachePath)
		}
	}

	records := make([]Record, 0, len(keys))
	for i, key := range keys {
		rec := r.lookup(ctx, key)
		log.Info().
			Int("progress", i+1).
			Int("total", len(keys)).
			Str("institution", key.Institution).
			Str("status", rec.Status).
			Msg("geocoded institution")
		records = append(records, rec)
	}

	if err := SaveCache(r.cachePath, records); err != nil {
		return nil, err
	}
	log.Info().Str("path", r.cachePath).Int("records", len(records)).Msg("saved geocode cache")
	return records, nil
}

// lookup performs a single lookup and classifies the outcome. Provider
// failures become ERROR records rather than errors, so one bad key cannot
// take down the rest of the batch.
func (r *Resolver) lookup(ctx context.Context, key Key) Record {
	rec := Record{Province: key.Province, Institution: key.Institution}

	loc, err := r.client.Geocode(ctx, key.Query())
	switch {
	case err != nil:
		msg := err.Error()
		rec.Status = StatusError
		rec.Address = &msg
		log.Warn().Err(err).Str("institution", key.Institution).Msg("geocode lookup failed")
	case loc == nil:
		rec.Status = StatusNotFound
	default:
		rec.Status = StatusOK
		rec.Latitude = &loc.Latitude
		rec.Longitude = &loc.Longitude
		rec.Address = &loc.DisplayName
	}
	return rec
}
