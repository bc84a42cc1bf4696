package game

import (
	"errors"
	"strings"
)

var ErrInvalidGuess = errors.New("guess must be exactly 4 digits (0-9)")

// Score compares guess against secret. Exact matches are consumed first,
// then each remaining guess digit takes the first unconsumed equal digit
// of the secret. Malformed codes score zero.
func Score(secret, guess Code) Feedback {
	var f Feedback
	if !valid4Digits(string(secret)) || !valid4Digits(string(guess)) {
		return f
	}

	usedS := [CodeLen]bool{}
	usedG := [CodeLen]bool{}

	for i := 0; i < CodeLen; i++ {
		if secret[i] == guess[i] {
			f.Exact++
			usedS[i] = true
			usedG[i] = true
		}
	}

	for i := 0; i < CodeLen; i++ {
		if usedG[i] {
			continue
		}
		for j := 0; j < CodeLen; j++ {
			if !usedS[j] && guess[i] == secret[j] {
				f.Partial++
				usedS[j] = true
				break
			}
		}
	}

	return f
}

// ParseCode trims surrounding whitespace and validates the result.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if !valid4Digits(s) {
		return "", ErrInvalidGuess
	}
	return Code(s), nil
}

// Valid reports whether c is CodeLen digits.
func (c Code) Valid() bool {
	return valid4Digits(string(c))
}

func valid4Digits(s string) bool {
	if len(s) != CodeLen {
		return false
	}
	for i := 0; i < CodeLen; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
