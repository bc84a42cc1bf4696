package game

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrGameFinished = errors.New("game already finished")

// Engine owns one game session. It is not safe for concurrent use;
// hosts serialize calls to a single engine.
type Engine struct {
	id     string
	secret Code

	status       Status
	attemptsUsed int
	history      []PlayRecord
	message      string

	gen         *Generator
	log         *slog.Logger
	printer     *message.Printer
	revealDebug bool
}

type Option func(*Engine)

// WithGenerator injects the secret source (seeded generators in tests).
func WithGenerator(g *Generator) Option {
	return func(e *Engine) { e.gen = g }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithLanguage selects the catalog used for progress and outcome messages.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) { e.printer = message.NewPrinter(tag) }
}

// WithSecretLogging logs every drawn secret at debug level.
func WithSecretLogging(on bool) Option {
	return func(e *Engine) { e.revealDebug = on }
}

// New creates an engine and starts the first game.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, o := range opts {
		o(e)
	}
	if e.gen == nil {
		e.gen = NewGenerator(nil)
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.printer == nil {
		e.printer = message.NewPrinter(language.English)
	}
	e.Reset()
	return e
}

// Reset starts a new game from any state.
func (e *Engine) Reset() GameState {
	e.id = uuid.NewString()
	e.secret = e.gen.Generate()
	e.status = StatusInProgress
	e.attemptsUsed = 0
	e.history = nil
	e.message = ""

	e.log.Info("game started", "game_id", e.id, "max_attempts", MaxAttempts)
	if e.revealDebug {
		e.log.Debug("secret generated", "game_id", e.id, "secret", string(e.secret))
	}
	return e.State()
}

// SubmitGuess plays one turn. After the game is over it returns
// ErrGameFinished and leaves the state untouched.
func (e *Engine) SubmitGuess(guess Code) (Result, error) {
	if e.status != StatusInProgress {
		e.log.Warn("guess after game finished", "game_id", e.id, "status", string(e.status))
		return e.result(Feedback{}), ErrGameFinished
	}

	e.attemptsUsed++

	fb := Score(e.secret, guess)
	e.history = append(e.history, PlayRecord{Guess: guess, Feedback: fb})

	switch {
	case guess == e.secret:
		e.status = StatusWon
		e.message = e.printer.Sprintf(msgWon, string(e.secret))
	case e.attemptsUsed >= MaxAttempts:
		e.status = StatusLost
		e.message = e.printer.Sprintf(msgLost, string(e.secret))
	default:
		e.message = e.printer.Sprintf(msgProgress, fb.String(), MaxAttempts-e.attemptsUsed)
	}

	e.log.Debug("guess scored",
		"game_id", e.id,
		"attempt", e.attemptsUsed,
		"feedback", fb.String(),
	)
	if e.status != StatusInProgress {
		e.log.Info("game finished",
			"game_id", e.id,
			"outcome", string(e.outcome()),
			"attempts", e.attemptsUsed,
		)
	}

	return e.result(fb), nil
}

func (e *Engine) result(fb Feedback) Result {
	return Result{
		Feedback:          fb,
		FeedbackText:      fb.String(),
		Finished:          e.Finished(),
		Outcome:           e.outcome(),
		AttemptsRemaining: e.attemptsRemaining(),
		History:           e.History(),
		Message:           e.message,
	}
}

func (e *Engine) ID() string        { return e.id }
func (e *Engine) Status() Status    { return e.status }
func (e *Engine) AttemptsUsed() int { return e.attemptsUsed }
func (e *Engine) MaxAttempts() int  { return MaxAttempts }
func (e *Engine) Finished() bool    { return e.status != StatusInProgress }
func (e *Engine) Outcome() Outcome  { return e.outcome() }
func (e *Engine) Message() string   { return e.message }

// History returns a copy of the plays so far, oldest first.
func (e *Engine) History() []PlayRecord {
	return append([]PlayRecord{}, e.history...)
}

func (e *Engine) outcome() Outcome {
	switch e.status {
	case StatusWon:
		return OutcomeWon
	case StatusLost:
		return OutcomeLost
	}
	return OutcomeNone
}

func (e *Engine) attemptsRemaining() int {
	if e.attemptsUsed >= MaxAttempts {
		return 0
	}
	return MaxAttempts - e.attemptsUsed
}
