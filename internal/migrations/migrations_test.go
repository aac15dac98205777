package migrations

import (
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsRegistered(t *testing.T) {
	migrations, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	want := []int64{20250301090000, 20250301090100, 20250301090200}
	for i, m := range migrations {
		assert.Equal(t, want[i], m.Version)
		assert.True(t, m.Registered, "migration %d has no Go implementation", m.Version)
	}
}

func TestSeedVersionIsLastDirectoryStep(t *testing.T) {
	migrations, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	require.NoError(t, err)

	seed, err := migrations.Current(SeedVersion)
	require.NoError(t, err)

	assert.True(t, seed.Registered)

	// rolling back to SeedVersion-1 keeps the schema and drops only the seed
	prev, err := migrations.Previous(SeedVersion)
	require.NoError(t, err)
	assert.Equal(t, int64(20250301090100), prev.Version)

	_, err = migrations.Next(SeedVersion)
	assert.Error(t, err)
}
