package console

import (
	"strings"

	"example.com/defuse/internal/game"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindGuess
	KindReset
	KindHistory
	KindHelp
	KindQuit
	KindInvalid
)

type Command struct {
	Kind  Kind
	Guess game.Code
	Raw   string
}

var keywords = map[string]Kind{
	"new":     KindReset,
	"reset":   KindReset,
	"again":   KindReset,
	"history": KindHistory,
	"h":       KindHistory,
	"help":    KindHelp,
	"?":       KindHelp,
	"quit":    KindQuit,
	"exit":    KindQuit,
	"q":       KindQuit,
}

// Parse turns one input line into a command. Guesses are validated here so
// that the engine only ever sees 4-digit codes.
func Parse(line string) Command {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return Command{Kind: KindEmpty}
	}
	if k, ok := keywords[strings.ToLower(raw)]; ok {
		return Command{Kind: k, Raw: raw}
	}
	// digits may be typed with separators: "1 2 3 4" or "1-2-3-4"
	compact := strings.NewReplacer(" ", "", "-", "", "\t", "").Replace(raw)
	code, err := game.ParseCode(compact)
	if err != nil {
		return Command{Kind: KindInvalid, Raw: raw}
	}
	return Command{Kind: KindGuess, Guess: code, Raw: raw}
}
