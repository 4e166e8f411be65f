//go:build integration

package repository

import (
	"context"
	"testing"

	"elections-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func TestRepository_LoadAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.CreateSchema(ctx))
	// CreateSchema is idempotent.
	require.NoError(t, repo.CreateSchema(ctx))

	votes := int64(2335)
	lat := 45.3823
	lon := -75.6974
	status := "OK"
	address := "Carleton University, Ottawa, Ontario, Canada"

	institutions := []models.Institution{
		{
			Province:       "Ontario",
			Name:           "Carleton University",
			Votes:          &votes,
			Latitude:       &lat,
			Longitude:      &lon,
			GeocodeStatus:  &status,
			GeocodeAddress: &address,
		},
		{Province: "Quebec", Name: "Unknown College"},
	}

	count, err := repo.LoadInstitutions(ctx, institutions)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	listed, err := repo.ListInstitutions(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Scan order follows insertion order.
	assert.Equal(t, "Carleton University", listed[0].Name)
	require.NotNil(t, listed[0].Votes)
	assert.Equal(t, int64(2335), *listed[0].Votes)
	require.NotNil(t, listed[0].Latitude)
	assert.InDelta(t, 45.3823, *listed[0].Latitude, 1e-9)

	assert.Equal(t, "Unknown College", listed[1].Name)
	assert.Nil(t, listed[1].Votes)
	assert.Nil(t, listed[1].Latitude)
	assert.Nil(t, listed[1].GeocodeStatus)
}

func TestRepository_LoadAndListAgeGenderTurnout(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.CreateSchema(ctx))

	year := int64(2019)
	province := "Ontario"
	rate := 37.6

	rows := []models.AgeGenderTurnout{
		{Year: &year, Province: &province, TurnoutRate: &rate},
		{},
	}

	count, err := repo.LoadAgeGenderTurnout(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	listed, err := repo.ListAgeGenderTurnout(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	require.NotNil(t, listed[0].Year)
	assert.Equal(t, int64(2019), *listed[0].Year)
	require.NotNil(t, listed[0].TurnoutRate)
	assert.InDelta(t, 37.6, *listed[0].TurnoutRate, 1e-9)

	// All-null source row loads and reads back as nils.
	assert.Nil(t, listed[1].Year)
	assert.Nil(t, listed[1].Province)
	assert.Nil(t, listed[1].TurnoutRate)
}
