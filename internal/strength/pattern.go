package strength

import "github.com/nbutton23/zxcvbn-go"

// maxPatternRunes caps the input to zxcvbn, whose matching cost grows quickly
// with password length.
const maxPatternRunes = 50

// PatternScore returns the zxcvbn score (0 = too guessable .. 4 = very
// unguessable) of password. Dictionary words, keyboard walks and dates lower
// the score even when every character class is present.
func PatternScore(password string) int {
	if password == "" {
		return 0
	}
	runes := []rune(password)
	if len(runes) > maxPatternRunes {
		password = string(runes[:maxPatternRunes])
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}
