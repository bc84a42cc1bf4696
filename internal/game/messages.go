package game

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys double as the English text.
const (
	msgWon      = "You've guessed the number %s correctly! The world is safe!"
	msgLost     = "The world has ended! The correct number was %s."
	msgProgress = "Feedback: %s. Attempts left: %d"
)

var supportedLangs = []language.Tag{language.English, language.Russian}

var langMatcher = language.NewMatcher(supportedLangs)

func init() {
	catalog := map[language.Tag]map[string]string{
		language.English: {
			msgWon:      msgWon,
			msgLost:     msgLost,
			msgProgress: msgProgress,
		},
		language.Russian: {
			msgWon:      "Вы угадали число %s! Мир спасён!",
			msgLost:     "Мир уничтожен! Загаданное число было %s.",
			msgProgress: "Подсказка: %s. Осталось попыток: %d",
		},
	}
	for tag, msgs := range catalog {
		for key, text := range msgs {
			_ = message.SetString(tag, key, text)
		}
	}
}

// MatchLanguage maps a user preference such as "ru-RU" onto a supported
// language, falling back to English.
func MatchLanguage(pref string) language.Tag {
	tag, _ := language.MatchStrings(langMatcher, pref)
	base, _ := tag.Base()
	for _, t := range supportedLangs {
		if b, _ := t.Base(); b == base {
			return t
		}
	}
	return language.English
}
