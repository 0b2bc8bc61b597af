package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"detail": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case NewGame:
		o.printNewGame(v)
	case GuessResult:
		o.printGuessResult(v)
	case RevealResult:
		o.printRevealResult(v)
	case HintResult:
		o.printHintResult(v)
	case AutocompleteResult:
		o.printAutocompleteResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// NewGame response type (matches API)
type NewGame struct {
	SessionID string           `json:"session_id"`
	GameMode  string           `json:"game_mode"`
	Position  string           `json:"position"`
	Seasons   []map[string]any `json:"seasons"`
}

// Feedback response type
type Feedback struct {
	Era          string `json:"era"`
	TeamsOverlap bool   `json:"teams_overlap"`
}

// GuessResult response type
type GuessResult struct {
	Correct  bool      `json:"correct"`
	PfrID    string    `json:"pfr_id"`
	Feedback *Feedback `json:"feedback,omitempty"`
}

// RevealResult response type
type RevealResult struct {
	Name     string `json:"name"`
	PfrID    string `json:"pfr_id"`
	Position string `json:"position"`
}

// HintResult response type
type HintResult struct {
	SessionID string   `json:"session_id"`
	Hints     []string `json:"hints"`
}

// AutocompleteResult response type
type AutocompleteResult struct {
	Players []string `json:"players"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printNewGame(g NewGame) {
	fmt.Printf("Session: %s\n", g.SessionID)
	fmt.Printf("Mode: %s\n", g.GameMode)
	fmt.Printf("Position: %s\n", g.Position)
	fmt.Printf("Seasons (%d):\n", len(g.Seasons))
	for _, s := range g.Seasons {
		o.printSeasonLine(s)
	}
}

// printSeasonLine renders one obfuscated stat line. The column set varies
// by position, so print season and team first and the rest sorted by key.
func (o *Output) printSeasonLine(s map[string]any) {
	parts := []string{}
	if year, ok := s["season"]; ok {
		parts = append(parts, fmt.Sprintf("%v", year))
	}
	if team, ok := s["team"]; ok && team != nil {
		parts = append(parts, fmt.Sprintf("%v", team))
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		if k == "season" || k == "team" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s[k] == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", k, s[k]))
	}
	fmt.Printf("  %s\n", strings.Join(parts, " "))
}

func (o *Output) printGuessResult(g GuessResult) {
	if g.Correct {
		fmt.Println("Correct!")
		fmt.Printf("Player: %s\n", g.PfrID)
		return
	}

	fmt.Println("Incorrect")
	if g.Feedback != nil {
		fmt.Printf("Era: %s\n", g.Feedback.Era)
		overlap := "no"
		if g.Feedback.TeamsOverlap {
			overlap = "yes"
		}
		fmt.Printf("Teams overlap: %s\n", overlap)
	}
}

func (o *Output) printRevealResult(r RevealResult) {
	fmt.Printf("Answer: %s (%s)\n", r.Name, r.Position)
	fmt.Printf("Reference: %s\n", r.PfrID)
}

func (o *Output) printHintResult(h HintResult) {
	fmt.Printf("Session: %s\n", h.SessionID)
	if len(h.Hints) == 0 {
		fmt.Println("No hints revealed")
		return
	}
	fmt.Printf("Hints revealed: %s\n", strings.Join(h.Hints, ", "))
}

func (o *Output) printAutocompleteResult(a AutocompleteResult) {
	if len(a.Players) == 0 {
		fmt.Println("No matches")
		return
	}
	for _, name := range a.Players {
		fmt.Println(name)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
