package strength

import (
	_ "embed"
	"strings"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// Blocklist is an immutable set of passwords that must never be accepted.
// Lookups are case-insensitive.
type Blocklist struct {
	words map[string]struct{}
}

// NewBlocklist builds a Blocklist from words. Blank entries are ignored.
func NewBlocklist(words ...string) *Blocklist {
	b := &Blocklist{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		b.words[strings.ToLower(w)] = struct{}{}
	}
	return b
}

// DefaultBlocklist returns the embedded list of common passwords.
func DefaultBlocklist() *Blocklist {
	return NewBlocklist(strings.Split(commonPasswordsRaw, "\n")...)
}

// Contains reports whether password is on the list, ignoring case.
func (b *Blocklist) Contains(password string) bool {
	if b == nil {
		return false
	}
	_, ok := b.words[strings.ToLower(password)]
	return ok
}

// Len returns the number of distinct entries.
func (b *Blocklist) Len() int {
	if b == nil {
		return 0
	}
	return len(b.words)
}
