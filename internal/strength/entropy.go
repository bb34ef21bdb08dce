// Package strength estimates how hard a password is to guess.
package strength

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Punctuation is the ASCII punctuation set that makes up the symbol class.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Alphabet sizes contributed by each character class.
const (
	LowercaseSize = 26
	UppercaseSize = 26
	DigitSize     = 10
	SymbolSize    = len(Punctuation)
)

// Classes records which character classes appear in a password.
// One occurrence is enough for a class to be present.
type Classes struct {
	Lower  bool
	Upper  bool
	Digit  bool
	Symbol bool
}

// ScanClasses scans password once and reports the classes it contains.
func ScanClasses(password string) Classes {
	var c Classes
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			c.Lower = true
		case unicode.IsUpper(r):
			c.Upper = true
		case unicode.IsDigit(r):
			c.Digit = true
		case strings.ContainsRune(Punctuation, r):
			c.Symbol = true
		}
	}
	return c
}

// AlphabetSize sums the alphabet sizes of the present classes.
func (c Classes) AlphabetSize() int {
	size := 0
	if c.Lower {
		size += LowercaseSize
	}
	if c.Upper {
		size += UppercaseSize
	}
	if c.Digit {
		size += DigitSize
	}
	if c.Symbol {
		size += SymbolSize
	}
	return size
}

// Estimate returns length * log2(alphabet size) in bits, rounded to two
// decimal places (half away from zero). The alphabet is built from the
// classes present in password, so this assumes uniform random selection
// from those classes. An empty password scores 0.
func Estimate(password string) float64 {
	size := ScanClasses(password).AlphabetSize()
	if size == 0 {
		return 0
	}
	bits := float64(utf8.RuneCountInString(password)) * math.Log2(float64(size))
	return round2(bits)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
