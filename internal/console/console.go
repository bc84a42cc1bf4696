package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"example.com/defuse/internal/game"
)

const helpText = `Guess the 4-digit code (digits 0-9, repeats allowed) in %d attempts.
  "=" a digit is right and in the right place
  "/" a digit is in the code but somewhere else
Commands: new, history, help, quit
`

// Console renders an engine over a line-oriented terminal. It holds no game
// rules of its own.
type Console struct {
	eng *game.Engine
	out io.Writer
	log *slog.Logger
}

func New(eng *game.Engine, out io.Writer, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{eng: eng, out: out, log: log}
}

func (c *Console) Greet() {
	c.printf("Defuse the bomb!\n")
	c.printf(helpText, c.eng.MaxAttempts())
	c.prompt()
}

// Handle processes one input line and reports whether the player quit.
func (c *Console) Handle(line string) (quit bool) {
	cmd := Parse(line)

	switch cmd.Kind {
	case KindEmpty:
	case KindQuit:
		c.printf("Bye.\n")
		return true
	case KindHelp:
		c.printf(helpText, c.eng.MaxAttempts())
	case KindHistory:
		c.renderHistory(c.eng.History())
	case KindReset:
		c.eng.Reset()
		c.printf("New code armed. You have %d attempts.\n", c.eng.MaxAttempts())
	case KindInvalid:
		c.log.Debug("rejected input", "game_id", c.eng.ID(), "input", cmd.Raw)
		c.printf("Please enter exactly 4 digits (0-9).\n")
	case KindGuess:
		c.submit(cmd.Guess)
	}

	c.prompt()
	return false
}

func (c *Console) submit(guess game.Code) {
	res, err := c.eng.SubmitGuess(guess)
	if errors.Is(err, game.ErrGameFinished) {
		c.printf("The game is over. Type \"new\" to play again.\n")
		return
	}
	if err != nil {
		c.log.Error("submit guess", "game_id", c.eng.ID(), "err", err)
		return
	}

	c.printf("%s\n", res.Message)
	if res.Finished {
		c.renderHistory(res.History)
		c.printf("Type \"new\" to play again.\n")
	}
}

func (c *Console) renderHistory(h []game.PlayRecord) {
	if len(h) == 0 {
		c.printf("No guesses yet.\n")
		return
	}
	for i, rec := range h {
		c.printf("%d. Guess: %s  Feedback: %s\n", i+1, rec.Guess, rec.Feedback)
	}
}

func (c *Console) prompt() {
	if c.eng.Finished() {
		c.printf("> ")
		return
	}
	c.printf("[%d/%d] > ", c.eng.AttemptsUsed()+1, c.eng.MaxAttempts())
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
