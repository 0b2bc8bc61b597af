package request

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	Guess     string `json:"guess"`
	SessionID string `json:"session_id"`
}

// RevealRequest is the request body for revealing the answer
type RevealRequest struct {
	SessionID string `json:"session_id"`
}

// HintRequest is the request body for recording a revealed hint
type HintRequest struct {
	SessionID string `json:"session_id"`
	Hint      string `json:"hint"`
}
