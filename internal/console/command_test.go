package console

import (
	"testing"

	"example.com/defuse/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line  string
		kind  Kind
		guess game.Code
	}{
		{"", KindEmpty, ""},
		{"   \n", KindEmpty, ""},
		{"1234", KindGuess, "1234"},
		{" 0042\n", KindGuess, "0042"},
		{"1 2 3 4", KindGuess, "1234"},
		{"1-2-3-4", KindGuess, "1234"},
		{"new", KindReset, ""},
		{"Reset", KindReset, ""},
		{"again", KindReset, ""},
		{"history", KindHistory, ""},
		{"help", KindHelp, ""},
		{"QUIT", KindQuit, ""},
		{"exit", KindQuit, ""},
		{"123", KindInvalid, ""},
		{"12345", KindInvalid, ""},
		{"12a4", KindInvalid, ""},
		{"hello", KindInvalid, ""},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			cmd := Parse(tc.line)
			assert.Equal(t, tc.kind, cmd.Kind)
			assert.Equal(t, tc.guess, cmd.Guess)
		})
	}
}
