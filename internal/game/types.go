package game

import "strings"

const (
	CodeLen     = 4
	MaxAttempts = 10
)

// Code is a secret or a guess: CodeLen characters '0'..'9'.
type Code string

// Status of the turn state machine.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Outcome is empty while the game is in progress.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// Feedback: Exact — same digit at the same position, Partial — digit present elsewhere.
type Feedback struct {
	Exact   int `json:"exact"`
	Partial int `json:"partial"`
}

// String renders "=" per exact match followed by "/" per partial match.
func (f Feedback) String() string {
	return strings.Repeat("=", f.Exact) + strings.Repeat("/", f.Partial)
}

// Solved reports whether every position matched.
func (f Feedback) Solved() bool {
	return f.Exact == CodeLen
}

type PlayRecord struct {
	Guess    Code     `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// GameState is a copy of the engine state safe to hand to a presentation layer.
type GameState struct {
	GameID       string       `json:"gameId"`
	Status       Status       `json:"status"`
	AttemptsUsed int          `json:"attemptsUsed"`
	MaxAttempts  int          `json:"maxAttempts"`
	History      []PlayRecord `json:"history"`
	Finished     bool         `json:"finished"`
	Outcome      Outcome      `json:"outcome"`
	Message      string       `json:"message"`
	Secret       Code         `json:"secret,omitempty"` // only after finished
}

// Result is returned by SubmitGuess.
type Result struct {
	Feedback          Feedback     `json:"feedback"`
	FeedbackText      string       `json:"feedbackText"`
	Finished          bool         `json:"finished"`
	Outcome           Outcome      `json:"outcome"`
	AttemptsRemaining int          `json:"attemptsRemaining"`
	History           []PlayRecord `json:"history"`
	Message           string       `json:"message"`
}
