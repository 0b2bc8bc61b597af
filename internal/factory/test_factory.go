package factory

import (
	"log/slog"
	"strings"
	"time"

	"github.com/statdle/statdle/internal/dependencies/mocks"
	"github.com/statdle/statdle/internal/model"
	"github.com/statdle/statdle/internal/services/game"
	"github.com/statdle/statdle/internal/storage/memory"
	"github.com/statdle/statdle/internal/testutil"
)

// TestApp wraps App with mocked external dependencies for testing
type TestApp struct {
	*App

	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MemStore   *memory.Storage
}

// TestAppTime is the frozen clock value every TestApp starts at
var TestAppTime = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

// NewTestApp creates an App with mocked clock and random for testing.
// The session store is always in-memory.
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(game.DefaultConfig(), memory.DefaultConfig())
}

// NewTestAppWithConfig creates a TestApp with custom game and store settings
func NewTestAppWithConfig(gameCfg game.Config, memCfg memory.Config) *TestApp {
	mockClock := mocks.NewMockClock(TestAppTime)
	mockRandom := mocks.NewMockRandom()
	store := memory.New(memCfg, mockClock)

	app := newWithDependencies(store, mockClock, mockRandom, gameCfg, time.Minute, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MemStore:   store,
	}
}

// SeedCatalog loads a small fixed roster into the catalog and rebuilds the
// autocomplete index. The roster covers all three positions and includes
// pairs of players with overlapping teams and close career starts.
func (a *TestApp) SeedCatalog() {
	if err := a.Catalog.LoadPlayers(TestRoster()); err != nil {
		panic("seeding test catalog: " + err.Error())
	}
	a.IndexCatalog()
}

// TestRoster returns the fixed set of players used by SeedCatalog
func TestRoster() []*model.PlayerRecord {
	return []*model.PlayerRecord{
		testQB(1, "Joe Montana", []testSeason{
			{1979, "SFO"}, {1984, "SFO"}, {1993, "KAN"},
		}),
		testQB(2, "Steve Young", []testSeason{
			{1985, "TAM"}, {1987, "SFO"}, {1994, "SFO"},
		}),
		testQB(3, "Peyton Manning", []testSeason{
			{1998, "IND"}, {2004, "IND"}, {2013, "DEN"},
		}),
		testQB(4, "Eli Manning", []testSeason{
			{2004, "NYG"}, {2011, "NYG"},
		}),
		testQB(5, "Josh Allen", []testSeason{
			{2018, "BUF"}, {2020, "BUF"},
		}),
		testQB(6, "Drake Maye", []testSeason{
			{2024, "NWE"},
		}),
		testWR(7, "Jerry Rice", []testSeason{
			{1985, "SFO"}, {1995, "SFO"}, {2001, "OAK"},
		}),
		testWR(8, "Randy Moss", []testSeason{
			{1998, "MIN"}, {2007, "NWE"},
		}),
		testRB(9, "Barry Sanders", []testSeason{
			{1989, "DET"}, {1997, "DET"},
		}),
	}
}

type testSeason struct {
	year int
	team string
}

func i64(v int64) *int64 { return &v }

func testQB(id int64, name string, seasons []testSeason) *model.PlayerRecord {
	p := &model.PlayerRecord{
		ID:       model.PlayerID(id),
		Name:     name,
		PfrID:    testPfrID(name),
		Position: model.PositionQB,
	}
	for _, s := range seasons {
		p.Seasons = append(p.Seasons, model.Season{
			Year:          s.year,
			Team:          s.team,
			Games:         i64(16),
			Completions:   i64(300),
			PassAttempts:  i64(480),
			PassYards:     i64(3600),
			PassTDs:       i64(25),
			Interceptions: i64(10),
		})
	}
	return p
}

func testWR(id int64, name string, seasons []testSeason) *model.PlayerRecord {
	p := &model.PlayerRecord{
		ID:       model.PlayerID(id),
		Name:     name,
		PfrID:    testPfrID(name),
		Position: model.PositionWR,
	}
	for _, s := range seasons {
		p.Seasons = append(p.Seasons, model.Season{
			Year:       s.year,
			Team:       s.team,
			Games:      i64(16),
			Targets:    i64(140),
			Receptions: i64(95),
			RecYards:   i64(1300),
			RecTDs:     i64(11),
		})
	}
	return p
}

func testRB(id int64, name string, seasons []testSeason) *model.PlayerRecord {
	p := &model.PlayerRecord{
		ID:       model.PlayerID(id),
		Name:     name,
		PfrID:    testPfrID(name),
		Position: model.PositionRB,
	}
	for _, s := range seasons {
		p.Seasons = append(p.Seasons, model.Season{
			Year:         s.year,
			Team:         s.team,
			Games:        i64(16),
			RushAttempts: i64(320),
			RushYards:    i64(1500),
			RushTDs:      i64(12),
		})
	}
	return p
}

// testPfrID builds a stable fake reference id from a player name,
// e.g. "Joe Montana" -> "MontJo00"
func testPfrID(name string) string {
	parts := strings.Fields(name)
	first, last := parts[0], parts[len(parts)-1]
	if len(first) > 2 {
		first = first[:2]
	}
	if len(last) > 4 {
		last = last[:4]
	}
	return last + first + "00"
}

// NopLogger re-exported for test convenience
func NopLogger() *slog.Logger {
	return testutil.NopLogger()
}
