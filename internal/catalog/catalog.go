package catalog

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/statdle/statdle/internal/model"
)

// Catalog holds the immutable reference data for every eligible athlete.
// It is populated once at startup and read-only afterwards, so lookups
// after load need no synchronization; the mutex only guards the load itself.
type Catalog struct {
	logger *slog.Logger

	mu        sync.RWMutex
	byID      map[model.PlayerID]*model.PlayerRecord
	nameIndex map[string]model.PlayerID
	ordered   []*model.PlayerRecord
	loaded    bool
}

// New creates an empty catalog
func New(logger *slog.Logger) *Catalog {
	return &Catalog{
		logger:    logger,
		byID:      make(map[model.PlayerID]*model.PlayerRecord),
		nameIndex: make(map[string]model.PlayerID),
	}
}

// LoadPlayers loads the given records directly (useful for testing).
// Derived fields (team set, career start and end) are computed here, so
// callers only need to provide identity and seasons.
func (c *Catalog) LoadPlayers(players []*model.PlayerRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byID = make(map[model.PlayerID]*model.PlayerRecord, len(players))
	c.nameIndex = make(map[string]model.PlayerID, len(players))
	c.ordered = make([]*model.PlayerRecord, 0, len(players))

	for _, p := range players {
		derive(p)
		c.byID[p.ID] = p
		c.nameIndex[normalizeName(p.Name)] = p.ID
		c.ordered = append(c.ordered, p)
	}

	sort.Slice(c.ordered, func(i, j int) bool {
		return c.ordered[i].ID < c.ordered[j].ID
	})

	c.loaded = true
	return nil
}

// FindByName resolves a player by case-insensitive exact name match
func (c *Catalog) FindByName(name string) (*model.PlayerRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, model.ErrCatalogNotLoaded
	}

	id, ok := c.nameIndex[normalizeName(name)]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return c.byID[id], nil
}

// ByID returns the player with the given catalog id
func (c *Catalog) ByID(id model.PlayerID) (*model.PlayerRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, model.ErrCatalogNotLoaded
	}

	p, ok := c.byID[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return p, nil
}

// All returns every player ordered by catalog id. The returned slice is
// shared; callers must not mutate it.
func (c *Catalog) All() []*model.PlayerRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ordered
}

// Names returns every player display name (unordered ownership is fine;
// the autocomplete index sorts its own copy)
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.ordered))
	for _, p := range c.ordered {
		names = append(names, p.Name)
	}
	return names
}

// Count returns the number of eligible players
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ordered)
}

// IsLoaded returns whether the catalog has been loaded
func (c *Catalog) IsLoaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// derive fills in the team set and career start/end years from the seasons
func derive(p *model.PlayerRecord) {
	sort.Slice(p.Seasons, func(i, j int) bool {
		return p.Seasons[i].Year < p.Seasons[j].Year
	})

	p.Teams = make(map[string]struct{})
	p.CareerStart = 0
	p.CareerEnd = 0

	for _, s := range p.Seasons {
		if s.Team != "" {
			p.Teams[s.Team] = struct{}{}
		}
		if s.Year == 0 {
			continue
		}
		if p.CareerStart == 0 || s.Year < p.CareerStart {
			p.CareerStart = s.Year
		}
		if s.Year > p.CareerEnd {
			p.CareerEnd = s.Year
		}
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Interface for dependency injection
type CatalogInterface interface {
	FindByName(name string) (*model.PlayerRecord, error)
	ByID(id model.PlayerID) (*model.PlayerRecord, error)
	All() []*model.PlayerRecord
	Names() []string
	Count() int
	IsLoaded() bool
}

var _ CatalogInterface = (*Catalog)(nil)
