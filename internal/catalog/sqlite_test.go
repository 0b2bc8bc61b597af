package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statdle/statdle/internal/model"
	"github.com/statdle/statdle/internal/testutil"
)

func createStatsDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stats.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	schema := []string{
		`CREATE TABLE players (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			pfr_id TEXT,
			position TEXT NOT NULL
		)`,
		`CREATE TABLE passing_seasons (
			player_id INTEGER,
			season INTEGER,
			team TEXT,
			games INTEGER,
			games_started INTEGER,
			completions INTEGER,
			attempts INTEGER,
			yards INTEGER,
			touchdowns INTEGER,
			interceptions INTEGER,
			passer_rating REAL,
			awards TEXT
		)`,
		`CREATE TABLE receiving_seasons (
			player_id INTEGER,
			season INTEGER,
			team TEXT,
			games INTEGER,
			targets INTEGER,
			receptions INTEGER,
			yards INTEGER,
			yards_per_reception REAL,
			touchdowns INTEGER,
			awards TEXT
		)`,
		`CREATE TABLE rushing_seasons (
			player_id INTEGER,
			season INTEGER,
			team TEXT,
			games INTEGER,
			attempts INTEGER,
			yards INTEGER,
			yards_per_attempt REAL,
			touchdowns INTEGER,
			receptions INTEGER,
			receiving_yards INTEGER,
			awards TEXT
		)`,
	}
	for _, stmt := range schema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	seed := []string{
		`INSERT INTO players VALUES (1, 'Joe Montana', 'MontJo01', 'QB')`,
		`INSERT INTO players VALUES (2, 'Jerry Rice', 'RiceJe00', 'WR')`,
		`INSERT INTO players VALUES (3, 'Barry Sanders', 'SandBa00', 'RB')`,
		`INSERT INTO players VALUES (4, 'No Stats', NULL, 'QB')`,
		`INSERT INTO passing_seasons VALUES (1, 1989, 'SFO', 13, 13, 271, 386, 3521, 26, 8, 112.4, 'MVP-1')`,
		`INSERT INTO passing_seasons VALUES (1, 1984, 'SFO', 16, NULL, 279, 432, 3630, 28, 10, 102.9, NULL)`,
		`INSERT INTO receiving_seasons VALUES (2, 1995, 'SFO', 16, NULL, 122, 1848, 15.1, 15, 'AP1')`,
		`INSERT INTO rushing_seasons VALUES (3, 1997, 'DET', 16, 335, 2053, 6.1, 11, 33, 305, 'MVP-1')`,
	}
	for _, stmt := range seed {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	return path
}

func TestLoadFromSQLite(t *testing.T) {
	path := createStatsDB(t)

	c := New(testutil.NopLogger())
	err := c.LoadFromSQLite(context.Background(), path)
	require.NoError(t, err)

	// The player with no season rows is not eligible
	assert.Equal(t, 3, c.Count())
	_, err = c.FindByName("No Stats")
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestLoadFromSQLitePassingSeasons(t *testing.T) {
	path := createStatsDB(t)

	c := New(testutil.NopLogger())
	require.NoError(t, c.LoadFromSQLite(context.Background(), path))

	p, err := c.FindByName("Joe Montana")
	require.NoError(t, err)

	assert.Equal(t, model.PositionQB, p.Position)
	assert.Equal(t, "MontJo01", p.PfrID)
	assert.Equal(t, 1984, p.CareerStart)
	assert.Equal(t, 1989, p.CareerEnd)
	require.Len(t, p.Seasons, 2)

	// Seasons come back ordered by year, with NULLs as nil pointers
	first := p.Seasons[0]
	assert.Equal(t, 1984, first.Year)
	assert.Equal(t, "SFO", first.Team)
	require.NotNil(t, first.Completions)
	assert.EqualValues(t, 279, *first.Completions)
	assert.Nil(t, first.GamesStarted)
	assert.Nil(t, first.Awards)

	second := p.Seasons[1]
	require.NotNil(t, second.Awards)
	assert.Equal(t, "MVP-1", *second.Awards)
	require.NotNil(t, second.PasserRating)
	assert.InDelta(t, 112.4, *second.PasserRating, 0.001)
}

func TestLoadFromSQLiteReceivingSeasons(t *testing.T) {
	path := createStatsDB(t)

	c := New(testutil.NopLogger())
	require.NoError(t, c.LoadFromSQLite(context.Background(), path))

	p, err := c.FindByName("Jerry Rice")
	require.NoError(t, err)

	assert.Equal(t, model.PositionWR, p.Position)
	require.Len(t, p.Seasons, 1)
	s := p.Seasons[0]
	require.NotNil(t, s.Receptions)
	assert.EqualValues(t, 122, *s.Receptions)
	require.NotNil(t, s.RecYards)
	assert.EqualValues(t, 1848, *s.RecYards)
	assert.Nil(t, s.Targets)
}

func TestLoadFromSQLiteRushingSeasons(t *testing.T) {
	path := createStatsDB(t)

	c := New(testutil.NopLogger())
	require.NoError(t, c.LoadFromSQLite(context.Background(), path))

	p, err := c.FindByName("Barry Sanders")
	require.NoError(t, err)

	assert.Equal(t, model.PositionRB, p.Position)
	require.Len(t, p.Seasons, 1)
	s := p.Seasons[0]
	require.NotNil(t, s.RushYards)
	assert.EqualValues(t, 2053, *s.RushYards)
	require.NotNil(t, s.Receptions)
	assert.EqualValues(t, 33, *s.Receptions)
}

func TestLoadFromSQLiteMissingFile(t *testing.T) {
	c := New(testutil.NopLogger())
	err := c.LoadFromSQLite(context.Background(), filepath.Join(t.TempDir(), "missing", "stats.db"))
	assert.Error(t, err)
}
