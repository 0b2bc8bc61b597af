package model

import "time"

// SessionID uniquely identifies a game session. IDs are UUIDv4 strings so
// they cannot be guessed or enumerated.
type SessionID string

// GameMode selects how the session's answer was chosen
type GameMode string

const (
	ModeDaily     GameMode = "daily"     // deterministic per UTC date
	ModeUnlimited GameMode = "unlimited" // uniform random pick
)

// Outcome is the terminal state of a session
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
)

// EraFeedback signals how close a guessed player's career start is to the answer's
type EraFeedback string

const (
	EraSame EraFeedback = "same" // career start years within 2 of each other
	EraFar  EraFeedback = "far"
)

// Hint identifies a category of informational hint the client has revealed.
// Hints are tracked on the session for completeness but are not authoritative;
// the client keeps its own copy.
type Hint string

const (
	HintSeasons Hint = "seasons"
	HintTeams   Hint = "teams"
	HintAwards  Hint = "awards"
)

// Valid reports whether the hint is a known category
func (h Hint) Valid() bool {
	return h == HintSeasons || h == HintTeams || h == HintAwards
}

// Guess is one recorded guess with its evaluation
type Guess struct {
	Name         string
	PlayerID     PlayerID
	PfrID        string
	Correct      bool
	Era          EraFeedback
	TeamsOverlap bool
	GuessedAt    time.Time
}

// Session is a single player's in-progress or completed game
type Session struct {
	ID       SessionID
	AnswerID PlayerID
	Mode     GameMode

	Guesses []Guess
	Hints   map[Hint]bool
	Outcome Outcome

	CreatedAt    time.Time
	LastAccessed time.Time
}

// Terminal reports whether the session has finished
func (s *Session) Terminal() bool {
	return s.Outcome != OutcomeInProgress
}

// GuessCount returns the number of guesses recorded so far
func (s *Session) GuessCount() int {
	return len(s.Guesses)
}

// Clone returns a deep copy of the session. Stores hand clones to mutation
// callbacks so an aborted update never leaks into the stored state.
func (s *Session) Clone() *Session {
	out := *s
	out.Guesses = make([]Guess, len(s.Guesses))
	copy(out.Guesses, s.Guesses)
	out.Hints = make(map[Hint]bool, len(s.Hints))
	for h, v := range s.Hints {
		out.Hints[h] = v
	}
	return &out
}
