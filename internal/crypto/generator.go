package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/vaultpass/passcheck/internal/strength"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = strength.Punctuation

	// Alphabet is the 94-character pool used by RandomPassword.
	Alphabet = uppercaseChars + lowercaseChars + numberChars + symbolChars

	// PassphraseSeparator joins passphrase words.
	PassphraseSeparator = "-"

	MinLength = 8
	MaxLength = 128
)

// ErrInvalidArgument is wrapped by every argument validation error below.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrLengthTooShort       = fmt.Errorf("%w: password length must be at least 8", ErrInvalidArgument)
	ErrLengthTooLong        = fmt.Errorf("%w: password length must be at most 128", ErrInvalidArgument)
	ErrNoCharacterTypes     = fmt.Errorf("%w: at least one character type must be selected", ErrInvalidArgument)
	ErrLengthInsufficient   = fmt.Errorf("%w: password length must be at least equal to the number of selected character types", ErrInvalidArgument)
	ErrLengthNotPositive    = fmt.Errorf("%w: password length must be positive", ErrInvalidArgument)
	ErrWordCountNotPositive = fmt.Errorf("%w: word count must be positive", ErrInvalidArgument)
	ErrWordCountTooLarge    = fmt.Errorf("%w: word count exceeds wordlist size", ErrInvalidArgument)
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool

	// Rand is the randomness source; nil means crypto/rand.Reader.
	Rand io.Reader
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Generate creates a cryptographically secure random password based on the given options.
// Every selected character type appears at least once.
func Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.Reader
	}

	// Build the character pool and collect required sets.
	var pool string
	var requiredSets []string

	if opts.Uppercase {
		pool += uppercaseChars
		requiredSets = append(requiredSets, uppercaseChars)
	}
	if opts.Lowercase {
		pool += lowercaseChars
		requiredSets = append(requiredSets, lowercaseChars)
	}
	if opts.Numbers {
		pool += numberChars
		requiredSets = append(requiredSets, numberChars)
	}
	if opts.Symbols {
		pool += symbolChars
		requiredSets = append(requiredSets, symbolChars)
	}

	if len(requiredSets) == 0 {
		return "", ErrNoCharacterTypes
	}
	if opts.Length < len(requiredSets) {
		return "", ErrLengthInsufficient
	}

	result := make([]byte, opts.Length)

	// Guarantee at least one character from each selected type.
	for i, charset := range requiredSets {
		ch, err := randChar(rng, charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full pool.
	for i := len(requiredSets); i < opts.Length; i++ {
		ch, err := randChar(rng, pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := secureShuffle(rng, result); err != nil {
		return "", err
	}

	return string(result), nil
}

// RandomPassword draws length independent, uniform characters from Alphabet.
// Unlike Generate it does not force every character type to appear.
func RandomPassword(length int, rng io.Reader) (string, error) {
	if length <= 0 {
		return "", ErrLengthNotPositive
	}

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		ch, err := randChar(rng, Alphabet)
		if err != nil {
			return "", err
		}
		sb.WriteByte(ch)
	}
	return sb.String(), nil
}

// Passphrase picks wordCount distinct words from wordlist without
// replacement, in random order, and joins them with PassphraseSeparator.
// Duplicate entries in wordlist are only counted once.
func Passphrase(wordCount int, rng io.Reader, wordlist []string) (string, error) {
	if wordCount <= 0 {
		return "", ErrWordCountNotPositive
	}

	words := distinct(wordlist)
	if wordCount > len(words) {
		return "", ErrWordCountTooLarge
	}

	// Partial Fisher-Yates: the first wordCount slots end up holding a
	// uniform sample in uniform order.
	for i := 0; i < wordCount; i++ {
		j, err := randIntn(rng, len(words)-i)
		if err != nil {
			return "", err
		}
		j += i
		words[i], words[j] = words[j], words[i]
	}

	return strings.Join(words[:wordCount], PassphraseSeparator), nil
}

// distinct returns a copy of words without blanks or repeats, keeping order.
func distinct(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// randChar picks a random character from charset.
func randChar(rng io.Reader, charset string) (byte, error) {
	n, err := randIntn(rng, len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randIntn returns a uniform int in [0, n) read from rng.
func randIntn(rng io.Reader, n int) (int, error) {
	if rng == nil {
		rng = rand.Reader
	}
	v, err := rand.Int(rng, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading randomness: %w", err)
	}
	return int(v.Int64()), nil
}

// secureShuffle performs a Fisher-Yates shuffle driven by rng.
func secureShuffle(rng io.Reader, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := randIntn(rng, i+1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
