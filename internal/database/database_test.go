package database

import (
	"context"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/repositories"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite uses the path",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "pizza.sqlite"},
			expected: "pizza.sqlite",
		},
		{
			name:     "empty driver defaults to sqlite",
			cfg:      DatabaseConfig{Path: ":memory:"},
			expected: ":memory:",
		},
		{
			name:     "postgres from fields",
			cfg:      DatabaseConfig{Driver: "Postgres", Host: "db", Port: "5432", User: "u", Password: "p", Name: "pizza", SSLMode: "disable"},
			expected: "host=db user=u password=p dbname=pizza port=5432 sslmode=disable",
		},
		{
			name:     "postgres url wins",
			cfg:      DatabaseConfig{Driver: "postgresql", Host: "db", URL: "postgres://u:p@db:5432/pizza"},
			expected: "postgres://u:p@db:5432/pizza",
		},
		{
			name:     "unknown driver",
			cfg:      DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestStringMasksSecrets(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "hunter2", URL: "postgres://u:hunter2@db/pizza"}
	assert.NotContains(t, cfg.String(), "hunter2")
}

func TestInitDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestInitDatabaseMigrateAndSeed(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:", RetryDelays: []time.Duration{}})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	ctx := context.Background()
	repo := repositories.NewIngredientRepository(db)
	require.NoError(t, SeedIngredients(ctx, repo))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultIngredients)), count)

	// Seeding twice leaves the catalogue untouched
	require.NoError(t, SeedIngredients(ctx, repo))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultIngredients)), count)
}

func TestDefaultIngredientsCoverEveryType(t *testing.T) {
	seen := map[models.IngredientType]bool{}
	ids := map[string]bool{}
	for _, ingredient := range DefaultIngredients {
		assert.True(t, ingredient.Type.IsValid(), ingredient.ID)
		assert.False(t, ids[ingredient.ID], "duplicate id %s", ingredient.ID)
		ids[ingredient.ID] = true
		seen[ingredient.Type] = true
	}
	assert.Len(t, seen, len(models.IngredientTypes()))
}

func TestSetLogLevel(t *testing.T) {
	previous := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(previous) })

	SetLogLevel(logrus.WarnLevel)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}
