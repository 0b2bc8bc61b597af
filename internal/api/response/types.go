package response

import (
	"sort"
	"time"

	"github.com/statdle/statdle/internal/model"
)

// NewGameResponse is the response for starting a daily or unlimited game.
// Seasons carry the answer's stat lines with the name withheld; the column
// set depends on the player's position.
type NewGameResponse struct {
	SessionID string `json:"session_id"`
	GameMode  string `json:"game_mode"`
	Position  string `json:"position"`
	Seasons   any    `json:"seasons"`
}

// NewGameFromModel builds the start-game response for a session and answer
func NewGameFromModel(s *model.Session, answer *model.PlayerRecord) NewGameResponse {
	return NewGameResponse{
		SessionID: string(s.ID),
		GameMode:  string(s.Mode),
		Position:  string(answer.Position),
		Seasons:   SeasonsFromModel(answer),
	}
}

// PassingSeason is one QB season line
type PassingSeason struct {
	Season        int      `json:"season"`
	Team          *string  `json:"team"`
	Games         *int64   `json:"games"`
	GamesStarted  *int64   `json:"games_started"`
	Completions   *int64   `json:"completions"`
	Attempts      *int64   `json:"attempts"`
	Yards         *int64   `json:"yards"`
	Touchdowns    *int64   `json:"touchdowns"`
	Interceptions *int64   `json:"interceptions"`
	PasserRating  *float64 `json:"passer_rating"`
	Awards        *string  `json:"awards"`
}

// ReceivingSeason is one WR season line
type ReceivingSeason struct {
	Season            int      `json:"season"`
	Team              *string  `json:"team"`
	Games             *int64   `json:"games"`
	Targets           *int64   `json:"targets"`
	Receptions        *int64   `json:"receptions"`
	Yards             *int64   `json:"yards"`
	YardsPerReception *float64 `json:"yards_per_reception"`
	Touchdowns        *int64   `json:"touchdowns"`
	Awards            *string  `json:"awards"`
}

// RushingSeason is one RB season line
type RushingSeason struct {
	Season          int      `json:"season"`
	Team            *string  `json:"team"`
	Games           *int64   `json:"games"`
	Attempts        *int64   `json:"attempts"`
	Yards           *int64   `json:"yards"`
	YardsPerAttempt *float64 `json:"yards_per_attempt"`
	Touchdowns      *int64   `json:"touchdowns"`
	Receptions      *int64   `json:"receptions"`
	ReceivingYards  *int64   `json:"receiving_yards"`
	Awards          *string  `json:"awards"`
}

// SeasonsFromModel serializes a player's seasons with the column set the
// client expects for that position
func SeasonsFromModel(p *model.PlayerRecord) any {
	switch p.Position {
	case model.PositionQB:
		out := make([]PassingSeason, len(p.Seasons))
		for i, s := range p.Seasons {
			out[i] = PassingSeason{
				Season:        s.Year,
				Team:          teamPtr(s.Team),
				Games:         s.Games,
				GamesStarted:  s.GamesStarted,
				Completions:   s.Completions,
				Attempts:      s.PassAttempts,
				Yards:         s.PassYards,
				Touchdowns:    s.PassTDs,
				Interceptions: s.Interceptions,
				PasserRating:  s.PasserRating,
				Awards:        s.Awards,
			}
		}
		return out
	case model.PositionWR:
		out := make([]ReceivingSeason, len(p.Seasons))
		for i, s := range p.Seasons {
			out[i] = ReceivingSeason{
				Season:            s.Year,
				Team:              teamPtr(s.Team),
				Games:             s.Games,
				Targets:           s.Targets,
				Receptions:        s.Receptions,
				Yards:             s.RecYards,
				YardsPerReception: s.YardsPerReception,
				Touchdowns:        s.RecTDs,
				Awards:            s.Awards,
			}
		}
		return out
	default:
		out := make([]RushingSeason, len(p.Seasons))
		for i, s := range p.Seasons {
			out[i] = RushingSeason{
				Season:          s.Year,
				Team:            teamPtr(s.Team),
				Games:           s.Games,
				Attempts:        s.RushAttempts,
				Yards:           s.RushYards,
				YardsPerAttempt: s.YardsPerRush,
				Touchdowns:      s.RushTDs,
				Receptions:      s.Receptions,
				ReceivingYards:  s.RecYards,
				Awards:          s.Awards,
			}
		}
		return out
	}
}

func teamPtr(team string) *string {
	if team == "" {
		return nil
	}
	return &team
}

// Feedback carries the era and team-overlap signals for an incorrect guess
type Feedback struct {
	Era          string `json:"era"`
	TeamsOverlap bool   `json:"teams_overlap"`
}

// GuessResponse is the response for a submitted guess
type GuessResponse struct {
	Correct  bool      `json:"correct"`
	PfrID    string    `json:"pfr_id"`
	Feedback *Feedback `json:"feedback,omitempty"`
}

// GuessFromModel converts an evaluated guess
func GuessFromModel(g model.Guess) GuessResponse {
	resp := GuessResponse{
		Correct: g.Correct,
		PfrID:   g.PfrID,
	}
	if !g.Correct {
		resp.Feedback = &Feedback{
			Era:          string(g.Era),
			TeamsOverlap: g.TeamsOverlap,
		}
	}
	return resp
}

// RevealResponse discloses the answer's identity
type RevealResponse struct {
	Name     string `json:"name"`
	PfrID    string `json:"pfr_id"`
	Position string `json:"position"`
}

// RevealFromModel converts the revealed answer
func RevealFromModel(p *model.PlayerRecord) RevealResponse {
	return RevealResponse{
		Name:     p.Name,
		PfrID:    p.PfrID,
		Position: string(p.Position),
	}
}

// HintResponse lists the hints revealed so far on a session
type HintResponse struct {
	SessionID string   `json:"session_id"`
	Hints     []string `json:"hints"`
}

// HintFromModel converts a session's hint flags
func HintFromModel(s *model.Session) HintResponse {
	hints := make([]string, 0, len(s.Hints))
	for h, revealed := range s.Hints {
		if revealed {
			hints = append(hints, string(h))
		}
	}
	sort.Strings(hints)
	return HintResponse{
		SessionID: string(s.ID),
		Hints:     hints,
	}
}

// AutocompleteResponse is the typeahead suggestion list
type AutocompleteResponse struct {
	Players []string `json:"players"`
}

// RootResponse is the body of GET /
type RootResponse struct {
	Status string `json:"status"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
