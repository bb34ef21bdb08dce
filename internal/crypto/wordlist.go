package crypto

import "github.com/tyler-smith/go-bip39"

const (
	WordlistNATO  = "nato"
	WordlistBIP39 = "bip39"
)

var natoWords = [...]string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
	"golf", "hotel", "india", "juliet", "kilo", "lima",
	"mike", "november", "oscar", "papa", "quebec", "romeo",
	"sierra", "tango", "uniform", "victor", "whiskey", "xray", "yankee", "zulu",
}

// NATOWordlist returns the 26 NATO phonetic alphabet words.
func NATOWordlist() []string {
	return append([]string(nil), natoWords[:]...)
}

// BIP39Wordlist returns the 2048-word English BIP-39 list. Four words from
// it carry roughly 44 bits of entropy against 18 for the NATO list.
func BIP39Wordlist() []string {
	return append([]string(nil), bip39.GetWordList()...)
}

// Wordlist resolves a wordlist by name. The empty name selects NATO.
func Wordlist(name string) ([]string, bool) {
	switch name {
	case "", WordlistNATO:
		return NATOWordlist(), true
	case WordlistBIP39:
		return BIP39Wordlist(), true
	default:
		return nil, false
	}
}
