package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statdle/statdle/internal/storage/memory"
)

func TestNewDefaultsToMemoryStorage(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)

	assert.IsType(t, &memory.Storage{}, app.Store)
	assert.NotNil(t, app.Catalog)
	assert.NotNil(t, app.Autocomplete)
	assert.NotNil(t, app.GameController)
	assert.NotNil(t, app.Sweeper)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "postgres"})
	assert.Error(t, err)
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestTestAppSeedCatalog(t *testing.T) {
	app := NewTestApp()
	app.SeedCatalog()

	assert.True(t, app.Catalog.IsLoaded())
	assert.Equal(t, len(TestRoster()), app.Catalog.Count())

	// The autocomplete index is rebuilt alongside the catalog
	assert.NotEmpty(t, app.Autocomplete.Suggest("jo", 10))

	p, err := app.Catalog.FindByName("joe montana")
	require.NoError(t, err)
	assert.Equal(t, "MontJo00", p.PfrID)
	assert.Equal(t, 1979, p.CareerStart)
}
