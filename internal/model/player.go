package model

// PlayerID uniquely identifies an athlete in the catalog
type PlayerID int64

// Position is an athlete's primary position
type Position string

const (
	PositionQB Position = "QB"
	PositionWR Position = "WR"
	PositionRB Position = "RB"
)

// Valid reports whether the position is one the catalog supports
func (p Position) Valid() bool {
	return p == PositionQB || p == PositionWR || p == PositionRB
}

// Season holds one season line of counting stats for a player.
// Which fields are populated depends on the player's position: passing
// stats for QBs, receiving stats for WRs, rushing stats for RBs.
// Nil pointers mean the source had no value for that column.
type Season struct {
	Year int
	Team string

	Games        *int64
	GamesStarted *int64

	// Passing (QB)
	Completions   *int64
	PassAttempts  *int64
	PassYards     *int64
	PassTDs       *int64
	Interceptions *int64
	PasserRating  *float64

	// Receiving (WR, plus the receiving half of an RB line)
	Targets           *int64
	Receptions        *int64
	RecYards          *int64
	YardsPerReception *float64
	RecTDs            *int64

	// Rushing (RB)
	RushAttempts *int64
	RushYards    *int64
	YardsPerRush *float64
	RushTDs      *int64

	Awards *string
}

// PlayerRecord is one eligible athlete: identity plus full season history.
// Records are immutable after catalog load and safe for concurrent reads.
type PlayerRecord struct {
	ID       PlayerID
	Name     string
	PfrID    string
	Position Position

	// Seasons ordered by year ascending
	Seasons []Season

	// Derived at load time
	Teams       map[string]struct{}
	CareerStart int
	CareerEnd   int
}

// HasEra reports whether a career start year could be derived for the player
func (p *PlayerRecord) HasEra() bool {
	return p.CareerStart != 0
}

// SharesTeamWith reports whether both players have played for at least one
// common franchise
func (p *PlayerRecord) SharesTeamWith(other *PlayerRecord) bool {
	for team := range p.Teams {
		if _, ok := other.Teams[team]; ok {
			return true
		}
	}
	return false
}
